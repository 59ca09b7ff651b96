package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophnotes/internal/common"
	"github.com/dmitrijs2005/gophnotes/internal/server/auth"
	"github.com/dmitrijs2005/gophnotes/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)

	_, err := f.notes.Create(ctx, as(nil), CreateNoteInput{Title: "T", Description: "D"})
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	_, err = f.notes.Create(ctx, as(alice), CreateNoteInput{Title: "", Description: "D"})
	assert.ErrorIs(t, err, common.ErrorValidation)

	n, err := f.notes.Create(ctx, as(alice), CreateNoteInput{Title: "T", Description: "D"})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, n.AuthorID)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.CreatedAt.IsZero())
}

func TestNoteAccess_UnknownIsNotFoundForeignIsForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)
	bob := f.seedUser(t, "bob", models.RoleRegular)
	note := f.seedNote(t, alice, "secret")

	_, err := f.notes.Get(ctx, as(bob), "no-such-note")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.notes.Get(ctx, as(bob), note.ID)
	assert.ErrorIs(t, err, common.ErrorForbidden)

	_, err = f.notes.Update(ctx, as(bob), note.ID, UpdateNoteInput{Title: ptr("x")})
	assert.ErrorIs(t, err, common.ErrorForbidden)
	assert.Equal(t, "secret", f.store.notes[note.ID].Title)

	_, err = f.notes.Get(ctx, as(nil), note.ID)
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	got, err := f.notes.Get(ctx, as(alice), note.ID)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Title)
}

func TestDeleteNote_ForeignForbiddenAdminSucceeds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)
	bob := f.seedUser(t, "bob", models.RoleRegular)
	admin := f.seedUser(t, "root", models.RoleAdmin)
	note := f.seedNote(t, alice, "n")

	ok, err := f.notes.Delete(ctx, as(bob), note.ID)
	assert.False(t, ok)
	assert.ErrorIs(t, err, common.ErrorForbidden)
	assert.Contains(t, f.store.notes, note.ID)

	ok, err = f.notes.Delete(ctx, as(admin), note.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotContains(t, f.store.notes, note.ID)

	_, err = f.notes.Delete(ctx, as(admin), note.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdateNote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)
	admin := f.seedUser(t, "root", models.RoleAdmin)
	note := f.seedNote(t, alice, "n")

	got, err := f.notes.Update(ctx, as(alice), note.ID, UpdateNoteInput{Description: ptr("body")})
	require.NoError(t, err)
	assert.Equal(t, "n", got.Title)
	assert.Equal(t, "body", got.Description)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	got, err = f.notes.Update(ctx, as(admin), note.ID, UpdateNoteInput{Title: ptr("by admin")})
	require.NoError(t, err)
	assert.Equal(t, "by admin", got.Title)
	assert.Equal(t, alice.ID, got.AuthorID)

	_, err = f.notes.Update(ctx, as(alice), note.ID, UpdateNoteInput{Title: ptr("")})
	assert.ErrorIs(t, err, common.ErrorValidation)

	unchanged, err := f.notes.Update(ctx, as(alice), note.ID, UpdateNoteInput{})
	require.NoError(t, err)
	assert.Equal(t, "by admin", unchanged.Title)
}

func TestListNotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)
	bob := f.seedUser(t, "bob", models.RoleRegular)
	admin := f.seedUser(t, "root", models.RoleAdmin)
	a1 := f.seedNote(t, alice, "a1")
	b1 := f.seedNote(t, bob, "b1")
	a2 := f.seedNote(t, alice, "a2")

	_, err := f.notes.ListMine(ctx, as(nil))
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)

	mine, err := f.notes.ListMine(ctx, as(alice))
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, a2.ID, mine[0].ID)
	assert.Equal(t, a1.ID, mine[1].ID)

	none, err := f.notes.ListMine(ctx, as(admin))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = f.notes.ListAll(ctx, as(bob))
	assert.ErrorIs(t, err, common.ErrorForbidden)

	all, err := f.notes.ListAll(ctx, as(admin))
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{a2.ID, b1.ID, a1.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestNotes_CarryAuthor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.seedUser(t, "alice", models.RoleRegular)
	bob := f.seedUser(t, "bob", models.RoleRegular)
	admin := f.seedUser(t, "root", models.RoleAdmin)
	a1 := f.seedNote(t, alice, "a1")
	f.seedNote(t, bob, "b1")
	f.seedNote(t, alice, "a2")

	created, err := f.notes.Create(ctx, as(bob), CreateNoteInput{Title: "b2"})
	require.NoError(t, err)
	require.NotNil(t, created.Author)
	assert.Equal(t, bob.Email, created.Author.Email)

	got, err := f.notes.Get(ctx, as(admin), a1.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, alice.ID, got.Author.ID)
	assert.Equal(t, "alice@example.com", got.Author.Email)

	updated, err := f.notes.Update(ctx, as(admin), a1.ID, UpdateNoteInput{Title: ptr("renamed")})
	require.NoError(t, err)
	require.NotNil(t, updated.Author)
	assert.Equal(t, alice.ID, updated.Author.ID)

	all, err := f.notes.ListAll(ctx, as(admin))
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, n := range all {
		require.NotNil(t, n.Author, n.Title)
		assert.Equal(t, n.AuthorID, n.Author.ID)
	}

	mine, err := f.notes.ListMine(ctx, as(alice))
	require.NoError(t, err)
	for _, n := range mine {
		assert.Equal(t, alice.Email, n.Author.Email)
	}

	delete(f.store.users, bob.ID)
	all, err = f.notes.ListAll(ctx, as(admin))
	require.NoError(t, err)
	for _, n := range all {
		if n.AuthorID == bob.ID {
			assert.Nil(t, n.Author, "a missing author is left empty")
		}
	}

	f.store.failUsers = errBoom{}
	_, err = f.notes.ListAll(ctx, as(admin))
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestNotes_StorageFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "alice", models.RoleRegular)
	f.store.failNotes = errBoom{}

	_, err := f.notes.ListMine(context.Background(), as(alice))
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = f.notes.Create(context.Background(), as(alice), CreateNoteInput{Title: "t"})
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestCreateNote_VanishedAuthorIsUnauthenticated(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "alice", models.RoleRegular)
	f.store.failNotes = fmt.Errorf("%w: author %s no longer exists", common.ErrorUnauthenticated, alice.ID)

	_, err := f.notes.Create(context.Background(), as(alice), CreateNoteInput{Title: "t"})
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)
	assert.NotErrorIs(t, err, common.ErrorInternal)
}

func TestExpiredToken_ProtectedOpsUnauthenticated(t *testing.T) {
	f := newFixture(t)
	alice := f.seedUser(t, "alice", models.RoleRegular)

	shortLived := auth.NewTokenService([]byte("test-secret"), time.Second)
	tok, err := shortLived.Issue(alice.ID)
	require.NoError(t, err)

	loader := memUsers{f.store}
	resolver := auth.NewResolver(shortLived)
	require.NotNil(t, resolver.Resolve(context.Background(), "Bearer "+tok, loader))

	time.Sleep(2100 * time.Millisecond)

	identity := resolver.Resolve(context.Background(), "Bearer "+tok, loader)
	assert.Nil(t, identity)

	_, err = f.notes.Create(context.Background(), as(identity), CreateNoteInput{Title: "t"})
	assert.ErrorIs(t, err, common.ErrorUnauthenticated)
}
