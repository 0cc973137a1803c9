package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cypu/rulebook-api/internal/database"
	"github.com/cypu/rulebook-api/internal/i18n"
	"github.com/cypu/rulebook-api/internal/model"
	"github.com/cypu/rulebook-api/internal/ordering"
)

var testDB *sql.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Printf("skipping mysql tests, could not construct pool: %s", err)
		os.Exit(m.Run())
	}
	if err := pool.Client.Ping(); err != nil {
		log.Printf("skipping mysql tests, could not connect to docker: %s", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=password",
			"MYSQL_DATABASE=cypu",
		},
	}, func(cfg *docker.HostConfig) {
		cfg.AutoRemove = true
		cfg.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start resource: %s", err)
	}

	dsn := mysql.NewConfig()
	dsn.User = "root"
	dsn.Passwd = "password"
	dsn.Net = "tcp"
	dsn.Addr = fmt.Sprintf("localhost:%s", resource.GetPort("3306/tcp"))
	dsn.DBName = "cypu"
	dsn.ParseTime = true

	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		db, err := sql.Open("mysql", dsn.FormatDSN())
		if err != nil {
			return err
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return err
		}
		testDB = db
		return nil
	})
	if err != nil {
		log.Fatalf("could not connect to mysql: %s", err)
	}
	if err := database.Migrate(context.Background(), testDB); err != nil {
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	_ = testDB.Close()
	if err := pool.Purge(resource); err != nil {
		log.Fatalf("could not purge resource: %s", err)
	}
	os.Exit(code)
}

func requireDB(t *testing.T) *sql.DB {
	t.Helper()
	if testDB == nil {
		t.Skip("docker not available")
	}
	return testDB
}

func newBook(t *testing.T, db *sql.DB) *model.RuleBook {
	t.Helper()
	b, err := NewRuleBookRepo(db).Create(context.Background(), &model.RuleBook{Title: "Core", Summary: "Core rules"})
	require.NoError(t, err)
	return b
}

func TestChapterRepo_AppendIsDense(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)
	repo := NewChapterRepo(db)

	for i := 0; i < 4; i++ {
		c, err := repo.Create(ctx, &model.Chapter{Title: fmt.Sprintf("c%d", i), RuleBookID: book.ID})
		require.NoError(t, err)
		assert.Equal(t, i, c.Position)
	}

	positions, err := repo.Positions(ctx, book.ID)
	require.NoError(t, err)
	assert.True(t, ordering.Dense(positions))
}

func TestChapterRepo_ConcurrentAppend(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)
	repo := NewChapterRepo(db)

	const n = 8
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			_, err := repo.Create(ctx, &model.Chapter{Title: fmt.Sprintf("c%d", i), RuleBookID: book.ID})
			errs <- err
		}(i)
	}
	for i := 0; i < n; i++ {
		require.NoError(t, <-errs)
	}

	positions, err := repo.Positions(ctx, book.ID)
	require.NoError(t, err)
	assert.Len(t, positions, n)
	assert.True(t, ordering.Dense(positions))
}

func TestChapterRepo_CreateUnknownBook(t *testing.T) {
	db := requireDB(t)
	_, err := NewChapterRepo(db).Create(context.Background(), &model.Chapter{Title: "x", RuleBookID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageRepo_ReorderAndDelete(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)
	chapter, err := NewChapterRepo(db).Create(ctx, &model.Chapter{Title: "c", RuleBookID: book.ID})
	require.NoError(t, err)

	repo := NewPageRepo(db)
	var ids []string
	for i := 0; i < 3; i++ {
		p, err := repo.Create(ctx, &model.Page{Title: fmt.Sprintf("p%d", i), ChapterID: chapter.ID})
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	pages, err := repo.Reorder(ctx, []ordering.Move{
		{ID: ids[0], Position: 2},
		{ID: ids[1], Position: 0},
		{ID: ids[2], Position: 1},
	})
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{ids[1], ids[2], ids[0]}, []string{pages[0].ID, pages[1].ID, pages[2].ID})

	require.NoError(t, repo.Delete(ctx, ids[2]))
	positions, err := repo.Positions(ctx, chapter.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, positions)

	remaining, err := repo.ListByChapter(ctx, chapter.ID)
	require.NoError(t, err)
	assert.Equal(t, ids[1], remaining[0].ID)
	assert.Equal(t, ids[0], remaining[1].ID)
}

func TestPageRepo_ReorderUnknownIDWritesNothing(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)
	chapter, err := NewChapterRepo(db).Create(ctx, &model.Chapter{Title: "c", RuleBookID: book.ID})
	require.NoError(t, err)

	repo := NewPageRepo(db)
	a, err := repo.Create(ctx, &model.Page{Title: "a", ChapterID: chapter.ID})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &model.Page{Title: "b", ChapterID: chapter.ID})
	require.NoError(t, err)

	_, err = repo.Reorder(ctx, []ordering.Move{
		{ID: a.ID, Position: 1},
		{ID: "ghost", Position: 0},
	})
	assert.ErrorIs(t, err, ordering.ErrUnknownSibling)

	_, err = repo.Reorder(ctx, []ordering.Move{{ID: b.ID, Position: 0}})
	assert.ErrorIs(t, err, ordering.ErrIncomplete)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Position)
	got, err = repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Position)
}

func TestChapterRepo_DeleteCascadesPages(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)
	chapters := NewChapterRepo(db)
	pages := NewPageRepo(db)

	first, err := chapters.Create(ctx, &model.Chapter{Title: "first", RuleBookID: book.ID})
	require.NoError(t, err)
	second, err := chapters.Create(ctx, &model.Chapter{Title: "second", RuleBookID: book.ID})
	require.NoError(t, err)
	_, err = pages.Create(ctx, &model.Page{Title: "p", ChapterID: first.ID})
	require.NoError(t, err)

	require.NoError(t, chapters.Delete(ctx, first.ID))

	left, err := pages.ListByChapter(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	moved, err := chapters.GetByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, moved.Position)

	assert.ErrorIs(t, chapters.Delete(ctx, first.ID), ErrNotFound)
}

func TestRuleBookRepo_DeleteCascades(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	book := newBook(t, db)

	chapter, err := NewChapterRepo(db).Create(ctx, &model.Chapter{Title: "c", RuleBookID: book.ID})
	require.NoError(t, err)
	_, err = NewPageRepo(db).Create(ctx, &model.Page{Title: "p", ChapterID: chapter.ID})
	require.NoError(t, err)
	notions := NewNotionRepo(db)
	_, err = notions.Create(ctx, &model.Notion{Title: "n", RuleBookID: book.ID})
	require.NoError(t, err)

	composed, err := NewRuleBookRepo(db).GetWithChapters(ctx, book.ID)
	require.NoError(t, err)
	require.Len(t, composed.Chapters, 1)
	assert.Len(t, composed.Chapters[0].Pages, 1)

	require.NoError(t, NewRuleBookRepo(db).Delete(ctx, book.ID))

	left, err := notions.List(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	chs, err := NewChapterRepo(db).ListByRuleBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Empty(t, chs)
	_, err = NewRuleBookRepo(db).GetByID(ctx, book.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestItemModifierRepo_Duplicate(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewItemModifierRepo(db)

	first, err := repo.Create(ctx, &model.ItemModifier{Title: "Heavy", ModifierID: "HV"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.ItemModifier{Title: "Other", ModifierID: "HV"})
	assert.ErrorIs(t, err, ErrDuplicate)

	first.Title = "Heavier"
	updated, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, "Heavier", updated.Title)

	second, err := repo.Create(ctx, &model.ItemModifier{Title: "Light", ModifierID: "LT"})
	require.NoError(t, err)
	second.ModifierID = "HV"
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestNodeRepo_UpdateMergesI18n(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewNodeRepo(db)

	n, err := repo.Create(ctx, &model.Node{Title: "Hack", I18n: i18n.Map{
		"en": {"title": "Hack"},
		"fr": {"title": "Pirater", "summary": "x"},
	}})
	require.NoError(t, err)

	n.I18n = i18n.Map{"fr": {"title": "Piratage"}}
	updated, err := repo.Update(ctx, n)
	require.NoError(t, err)
	assert.Equal(t, i18n.Fields{"title": "Hack"}, updated.I18n["en"])
	assert.Equal(t, i18n.Fields{"title": "Piratage"}, updated.I18n["fr"])
}

func TestUserRepo_CreateAndRoles(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	roles := NewRoleRepo(db)
	users := NewUserRepo(db)

	resolved, err := roles.GetByNames(ctx, []string{model.RoleUser})
	require.NoError(t, err)
	require.Len(t, resolved, 1)

	_, err = roles.GetByNames(ctx, []string{"wizard"})
	assert.ErrorIs(t, err, ErrRoleNotFound)

	u := &model.User{Mail: " Someone@Example.com ", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, u, []string{resolved[0].ID}))
	assert.Equal(t, "someone@example.com", u.Mail)
	assert.Equal(t, []string{model.RoleUser}, u.RoleNames())

	err = users.Create(ctx, &model.User{Mail: "someone@example.com", PasswordHash: "hash"}, nil)
	assert.ErrorIs(t, err, ErrDuplicate)

	require.NoError(t, users.SetVerified(ctx, u.ID, true))
	got, err := users.GetByMail(ctx, "SOMEONE@example.com")
	require.NoError(t, err)
	assert.True(t, got.Verified)
}

func newUser(t *testing.T, db *sql.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Mail: newID() + "@example.com", PasswordHash: "hash", Name: name, Lang: "en", Scale: 1}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), u, nil))
	return u
}

func TestCampaignRepo_JoinAndMembership(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCampaignRepo(db)
	owner := newUser(t, db, "Owner")
	player := newUser(t, db, "Player")
	stranger := newUser(t, db, "Stranger")

	c := &model.Campaign{Name: "Night City", Owner: model.UserRef{ID: owner.ID}}
	require.NoError(t, repo.Create(ctx, c))
	assert.Len(t, c.Code, campaignCodeLength)
	assert.Equal(t, "Owner", c.Owner.Name)

	joined, err := repo.Join(ctx, c.Code, player.ID)
	require.NoError(t, err)
	require.Len(t, joined.Players, 1)
	assert.Equal(t, player.ID, joined.Players[0].ID)

	again, err := repo.Join(ctx, c.Code, player.ID)
	require.NoError(t, err)
	assert.Len(t, again.Players, 1)

	_, err = repo.Join(ctx, "NOPE00", player.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	for id, want := range map[string]bool{owner.ID: true, player.ID: true, stranger.ID: false} {
		ok, err := repo.IsMember(ctx, c.ID, id)
		require.NoError(t, err)
		assert.Equal(t, want, ok)
	}

	list, err := repo.ListForUser(ctx, player.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	_, err = repo.Update(ctx, c.ID, player.ID, "Mine now")
	assert.ErrorIs(t, err, ErrForbidden)
	renamed, err := repo.Update(ctx, c.ID, owner.ID, "Pacifica")
	require.NoError(t, err)
	assert.Equal(t, "Pacifica", renamed.Name)

	assert.ErrorIs(t, repo.Delete(ctx, c.ID, player.ID), ErrForbidden)
	require.NoError(t, repo.Delete(ctx, c.ID, owner.ID))
	_, err = repo.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCharacterRepo_Nodes(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewCharacterRepo(db)
	player := newUser(t, db, "Vex")

	node, err := NewNodeRepo(db).Create(ctx, &model.Node{Title: "Netrunning", Rank: 1})
	require.NoError(t, err)

	ch, err := repo.Create(ctx, &model.Character{Name: "Vex", PlayerID: player.ID, CreatedBy: player.ID})
	require.NoError(t, err)
	assert.Nil(t, ch.CampaignID)
	assert.Empty(t, ch.Nodes)

	ch, err = repo.AddNode(ctx, ch.ID, node.ID)
	require.NoError(t, err)
	require.Len(t, ch.Nodes, 1)
	assert.Equal(t, node.ID, ch.Nodes[0].NodeID)

	_, err = repo.AddNode(ctx, ch.ID, node.ID)
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.AddNode(ctx, ch.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	ch, err = repo.RemoveNode(ctx, ch.ID, node.ID)
	require.NoError(t, err)
	assert.Empty(t, ch.Nodes)

	_, err = repo.RemoveNode(ctx, ch.ID, node.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ghost := "no-such-campaign"
	ch.CampaignID = &ghost
	_, err = repo.Update(ctx, ch)
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestNamedTypeRepo_UniqueName(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewNamedTypeRepo(db, Rarities)
	name := "Legendary " + newID()

	first, err := repo.Create(ctx, &model.NamedType{Name: name})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.NamedType{Name: name})
	assert.ErrorIs(t, err, ErrDuplicate)

	same, err := repo.Update(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, name, same.Name)

	assert.Panics(t, func() { NewNamedTypeRepo(db, TypeKind("users")) })
}

func TestMailTokenRepo_Expiry(t *testing.T) {
	db := requireDB(t)
	ctx := context.Background()
	repo := NewMailTokenRepo(db)
	u := newUser(t, db, "Reset")
	now := time.Now().UTC()

	live := &model.MailToken{UserID: u.ID, Token: "live", ExpiresAt: now.Add(time.Hour)}
	stale := &model.MailToken{UserID: u.ID, Token: "stale", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, live))
	require.NoError(t, repo.Create(ctx, stale))

	got, err := repo.Get(ctx, u.ID, "live")
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)

	_, err = repo.Get(ctx, u.ID, "stale")
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, int64(1))

	require.NoError(t, repo.Delete(ctx, live.ID))
	_, err = repo.Get(ctx, u.ID, "live")
	assert.ErrorIs(t, err, ErrNotFound)
}
