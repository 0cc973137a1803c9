package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypu/rulebook-api/internal/ordering"
)

// memSiblings is an in-memory sibling table that records every write.
type memSiblings struct {
	parentOfID map[string]string
	children   map[string][]string
	locked     []string
	writes     []ordering.Move
}

func newMemSiblings() *memSiblings {
	return &memSiblings{
		parentOfID: map[string]string{"c1": "b1", "c2": "b1", "c3": "b1", "x1": "b2"},
		children:   map[string][]string{"b1": {"c1", "c2", "c3"}, "b2": {"x1"}},
	}
}

func (m *memSiblings) parentOf(_ context.Context, id string) (string, error) {
	p, ok := m.parentOfID[id]
	if !ok {
		return "", fmt.Errorf("chapters %s: %w", id, ErrNotFound)
	}
	return p, nil
}

func (m *memSiblings) lockParent(_ context.Context, parentID string) error {
	m.locked = append(m.locked, parentID)
	return nil
}

func (m *memSiblings) ids(_ context.Context, parentID string) ([]string, error) {
	return m.children[parentID], nil
}

func (m *memSiblings) setPosition(_ context.Context, id string, pos int) error {
	m.writes = append(m.writes, ordering.Move{ID: id, Position: pos})
	return nil
}

func TestApplyReorder_Rejections(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		moves   []ordering.Move
		unknown string
		want    error
		locked  bool
	}{
		{
			name:    "first id unknown",
			moves:   []ordering.Move{{ID: "nope", Position: 0}, {ID: "c1", Position: 1}},
			unknown: "nope",
			want:    ordering.ErrUnknownSibling,
		},
		{
			name:    "later id unknown",
			moves:   []ordering.Move{{ID: "c1", Position: 0}, {ID: "c2", Position: 1}, {ID: "ghost", Position: 2}},
			unknown: "ghost",
			want:    ordering.ErrUnknownSibling,
			locked:  true,
		},
		{
			name:    "id from another parent",
			moves:   []ordering.Move{{ID: "c1", Position: 0}, {ID: "c2", Position: 1}, {ID: "x1", Position: 2}},
			unknown: "x1",
			want:    ordering.ErrUnknownSibling,
			locked:  true,
		},
		{
			name:   "incomplete",
			moves:  []ordering.Move{{ID: "c2", Position: 0}, {ID: "c1", Position: 1}},
			want:   ordering.ErrIncomplete,
			locked: true,
		},
		{
			name:  "empty",
			moves: nil,
			want:  ordering.ErrEmpty,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := newMemSiblings()
			parentID, err := applyReorder(ctx, st, tc.moves)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), err)
			assert.Empty(t, parentID)
			assert.Empty(t, st.writes, "nothing may be written for a rejected arrangement")
			if tc.unknown != "" {
				var ue *ordering.UnknownSiblingError
				require.True(t, errors.As(err, &ue))
				assert.Equal(t, tc.unknown, ue.ID)
			}
			if tc.locked {
				assert.Equal(t, []string{"b1"}, st.locked)
			} else {
				assert.Empty(t, st.locked)
			}
		})
	}
}

func TestApplyReorder_WritesWholePlan(t *testing.T) {
	st := newMemSiblings()
	moves := []ordering.Move{{ID: "c3", Position: 0}, {ID: "c1", Position: 2}, {ID: "c2", Position: 1}}

	parentID, err := applyReorder(context.Background(), st, moves)
	require.NoError(t, err)
	assert.Equal(t, "b1", parentID)
	assert.Equal(t, []string{"b1"}, st.locked)
	assert.Equal(t, []ordering.Move{
		{ID: "c3", Position: 0},
		{ID: "c2", Position: 1},
		{ID: "c1", Position: 2},
	}, st.writes)
}

func TestApplyReorder_StoreErrorsPassThrough(t *testing.T) {
	boom := errors.New("connection reset")
	st := &failingParent{err: boom}

	_, err := applyReorder(context.Background(), st, []ordering.Move{{ID: "c1", Position: 0}})
	assert.ErrorIs(t, err, boom)
	var ue *ordering.UnknownSiblingError
	assert.False(t, errors.As(err, &ue))
}

type failingParent struct {
	memSiblings
	err error
}

func (f *failingParent) parentOf(context.Context, string) (string, error) { return "", f.err }
