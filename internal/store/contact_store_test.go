package store

import (
	"contact-service/internal/apperror"
	"contact-service/internal/model"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContactStore(t *testing.T) *ContactStore {
	t.Helper()
	return NewContactStore(newTestDB(t), testLogger())
}

func mustCreate(t *testing.T, s *ContactStore, first, last, email string) *model.Contact {
	t.Helper()
	c, err := s.Create(context.Background(), model.ContactInput{FirstName: first, LastName: last, Email: email})
	require.NoError(t, err)
	return c
}

func emails(contacts []model.Contact) []string {
	out := make([]string, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, c.Email)
	}
	return out
}

func TestContactCreateThenGet(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	in := model.ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Phone:     strPtr("555-0100"),
		Company:   nil,
	}
	created, err := s.Create(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, in.FirstName, got.FirstName)
	assert.Equal(t, in.LastName, got.LastName)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.Phone, got.Phone)
	assert.Nil(t, got.Company)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, created.UpdatedAt.Equal(got.UpdatedAt))
}

func TestContactCreateDuplicateEmail(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Ada", "Lovelace", "ada@example.com")

	_, err := s.Create(ctx, model.ContactInput{FirstName: "Other", LastName: "Person", Email: "ada@example.com"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, "Email already exists", err.Error())

	// Uniqueness is an exact, case-sensitive match.
	_, err = s.Create(ctx, model.ContactInput{FirstName: "Ada", LastName: "Upper", Email: "ADA@example.com"})
	require.NoError(t, err)
}

func TestContactGetMissing(t *testing.T) {
	s := newContactStore(t)

	_, err := s.Get(context.Background(), 4242)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestContactListSearch(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "John", "Smith", "john@example.com")
	mustCreate(t, s, "Smithy", "Jones", "sj@example.com")
	mustCreate(t, s, "Mary", "Major", "MARY.SMITH@example.com")
	mustCreate(t, s, "Pat", "Brown", "pat@example.com")
	mustCreate(t, s, "Blacksmith", "Lee", "lee@example.com")

	page, err := s.List(ctx, model.ListQuery{Search: "smith", Sort: "email:asc"})
	require.NoError(t, err)

	assert.Equal(t, int64(4), page.Total)
	assert.ElementsMatch(t,
		[]string{"john@example.com", "sj@example.com", "MARY.SMITH@example.com", "lee@example.com"},
		emails(page.Data))

	page, err = s.List(ctx, model.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
}

func TestContactListSearchTreatsWildcardsLiterally(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Under", "Score", "under_score@example.com")
	mustCreate(t, s, "Plain", "Name", "plain@example.com")

	page, err := s.List(ctx, model.ListQuery{Search: "_"})
	require.NoError(t, err)
	assert.Equal(t, []string{"under_score@example.com"}, emails(page.Data))

	page, err = s.List(ctx, model.ListQuery{Search: "%"})
	require.NoError(t, err)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
}

func TestContactListPagination(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	for i := 1; i <= 25; i++ {
		mustCreate(t, s, "First", fmt.Sprintf("Last%02d", i), fmt.Sprintf("contact%02d@example.com", i))
	}

	page, err := s.List(ctx, model.ListQuery{Page: 2, PageSize: 10, Sort: "email:asc"})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.PageSize)
	require.Len(t, page.Data, 10)
	assert.Equal(t, "contact11@example.com", page.Data[0].Email)
	assert.Equal(t, "contact20@example.com", page.Data[9].Email)

	last, err := s.List(ctx, model.ListQuery{Page: 3, PageSize: 10, Sort: "email:asc"})
	require.NoError(t, err)
	assert.Len(t, last.Data, 5)

	beyond, err := s.List(ctx, model.ListQuery{Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, beyond.Data)
	assert.Equal(t, int64(25), beyond.Total)
}

func TestContactListSortAllowList(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Zed", "Charlie", "a@example.com")
	mustCreate(t, s, "Amy", "Alpha", "c@example.com")
	mustCreate(t, s, "Bob", "Bravo", "b@example.com")

	page, err := s.List(ctx, model.ListQuery{Sort: "DROP TABLE"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c@example.com", "b@example.com", "a@example.com"}, emails(page.Data))

	page, err = s.List(ctx, model.ListQuery{Sort: "first_name:DESC"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com", "c@example.com"}, emails(page.Data))

	page, err = s.List(ctx, model.ListQuery{Sort: "created_at:desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b@example.com", "c@example.com", "a@example.com"}, emails(page.Data))
}

func TestContactListSearchNonASCII(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Émile", "Zola", "emile@example.com")
	mustCreate(t, s, "Jürgen", "Müller", "jm@example.com")
	mustCreate(t, s, "Pat", "Brown", "pat@example.com")

	for search, want := range map[string]string{
		"Émile":  "emile@example.com",
		"mile":   "emile@example.com",
		"Müller": "jm@example.com",
		"ürg":    "jm@example.com",
		"ZOLA":   "emile@example.com",
	} {
		page, err := s.List(ctx, model.ListQuery{Search: search})
		require.NoError(t, err)
		assert.Equal(t, []string{want}, emails(page.Data), "search %q", search)
	}
}

func TestContactUpdatePartial(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	created, err := s.Create(ctx, model.ContactInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Company:   strPtr("Analytical Engines"),
	})
	require.NoError(t, err)

	updated, err := s.Update(ctx, created.ID, model.ContactPatch{Phone: model.Some("555-1111")})
	require.NoError(t, err)

	assert.Equal(t, "Ada", updated.FirstName)
	assert.Equal(t, "Lovelace", updated.LastName)
	assert.Equal(t, "ada@example.com", updated.Email)
	require.NotNil(t, updated.Company)
	assert.Equal(t, "Analytical Engines", *updated.Company)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-1111", *updated.Phone)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "555-1111", *got.Phone)
	assert.True(t, got.UpdatedAt.Equal(updated.UpdatedAt))

	cleared, err := s.Update(ctx, created.ID, model.ContactPatch{Company: model.Null()})
	require.NoError(t, err)
	assert.Nil(t, cleared.Company)
	assert.Equal(t, "555-1111", *cleared.Phone)
}

func TestContactUpdateErrors(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	mustCreate(t, s, "Ada", "Lovelace", "ada@example.com")
	grace := mustCreate(t, s, "Grace", "Hopper", "grace@example.com")

	_, err := s.Update(ctx, 999, model.ContactPatch{Phone: model.Some("1")})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = s.Update(ctx, grace.ID, model.ContactPatch{Email: strPtr("ada@example.com")})
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))

	got, err := s.Get(ctx, grace.ID)
	require.NoError(t, err)
	assert.Equal(t, "grace@example.com", got.Email)
}

func TestContactUpdateRowRemovedMidway(t *testing.T) {
	db := newTestDB(t)
	s := NewContactStore(db, testLogger())
	ctx := context.Background()

	c := mustCreate(t, s, "Ada", "Lovelace", "ada@example.com")

	err := db.Callback().Update().Before("gorm:update").Register("test:remove_row", func(tx *gorm.DB) {
		tx.Session(&gorm.Session{NewDB: true}).Exec("DELETE FROM contacts WHERE id = ?", c.ID)
	})
	require.NoError(t, err)

	_, err = s.Update(ctx, c.ID, model.ContactPatch{Phone: model.Some("555-1111")})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = s.Get(ctx, c.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestContactDelete(t *testing.T) {
	s := newContactStore(t)
	ctx := context.Background()

	c := mustCreate(t, s, "Ada", "Lovelace", "ada@example.com")

	require.NoError(t, s.Delete(ctx, c.ID))

	_, err := s.Get(ctx, c.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = s.Delete(ctx, c.ID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
