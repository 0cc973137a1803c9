package rights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	unlogged = Caller{}
	logged   = Caller{Logged: true}
	admin    = Caller{Logged: true, Admin: true}
)

func defaultTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable(DefaultEntries())
	require.NoError(t, err)
	return table
}

func TestTable_Check(t *testing.T) {
	table := defaultTable(t)

	tests := []struct {
		name   string
		path   string
		caller Caller
		want   Decision
	}{
		{name: "login unlogged", path: "/login", caller: unlogged, want: Decision{Allow: true}},
		{name: "login logged", path: "/login", caller: logged, want: Decision{Redirect: "/"}},
		{name: "dashboard unlogged", path: "/dashboard", caller: unlogged, want: Decision{Redirect: "/login"}},
		{name: "dashboard logged", path: "/dashboard", caller: logged, want: Decision{Allow: true}},
		{name: "admin page non admin", path: "/admin/foo", caller: logged, want: Decision{Redirect: "/"}},
		{name: "admin page unlogged", path: "/admin/foo", caller: unlogged, want: Decision{Redirect: "/"}},
		{name: "admin page admin", path: "/admin/foo", caller: admin, want: Decision{Allow: true}},
		{name: "admin root admin", path: "/admin", caller: admin, want: Decision{Allow: true}},
		{name: "home unlogged", path: "/", caller: unlogged, want: Decision{Allow: true}},
		{name: "home logged", path: "/", caller: logged, want: Decision{Allow: true}},
		{name: "home admin", path: "/", caller: admin, want: Decision{Allow: true}},
		{name: "character param unlogged", path: "/character/42", caller: unlogged, want: Decision{Redirect: "/login"}},
		{name: "character param logged", path: "/character/42", caller: logged, want: Decision{Allow: true}},
		{name: "reset link logged", path: "/reset/password/u1/tok", caller: logged, want: Decision{Redirect: "/"}},
		{name: "unknown path is public", path: "/somewhere/else", caller: unlogged, want: Decision{Allow: true}},
		{name: "query string ignored", path: "/dashboard?tab=1", caller: unlogged, want: Decision{Redirect: "/login"}},
		{name: "trailing slash", path: "/dashboard/", caller: unlogged, want: Decision{Redirect: "/login"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.Check(tc.path, tc.caller))
		})
	}
}

func TestTable_FirstMatchWins(t *testing.T) {
	table, err := NewTable([]Entry{
		{Pattern: "/admin/public", Class: All},
		{Pattern: "/admin/*", Class: Admin},
	})
	require.NoError(t, err)

	assert.Equal(t, Decision{Allow: true}, table.Check("/admin/public", unlogged))
	assert.Equal(t, Decision{Redirect: "/"}, table.Check("/admin/other", unlogged))
}

func TestTable_ParamNeedsSegment(t *testing.T) {
	table := defaultTable(t)

	class, ok := table.Match("/character/abc")
	assert.True(t, ok)
	assert.Equal(t, Logged, class)

	_, ok = table.Match("/character/abc/sheet")
	assert.False(t, ok)
}

func TestNewTable_Rejects(t *testing.T) {
	_, err := NewTable([]Entry{{Pattern: "/x", Class: "superuser"}})
	assert.Error(t, err)

	_, err = NewTable([]Entry{{Pattern: "x", Class: All}})
	assert.Error(t, err)

	_, err = NewTable([]Entry{{Pattern: "/a/*/b", Class: All}})
	assert.Error(t, err)
}

func TestDecide(t *testing.T) {
	assert.True(t, Decide(All, unlogged).Allow)
	assert.True(t, Decide(All, admin).Allow)
	assert.True(t, Decide(Unlogged, unlogged).Allow)
	assert.Equal(t, "/", Decide(Unlogged, admin).Redirect)
	assert.Equal(t, "/login", Decide(Logged, unlogged).Redirect)
	assert.True(t, Decide(Logged, admin).Allow)
	assert.Equal(t, "/", Decide(Admin, Caller{Admin: true}).Redirect)
}
