package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/logging"
	"github.com/dmitrijs2005/portfolio/internal/models"
	"github.com/dmitrijs2005/portfolio/internal/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo fails every call with err.
type failingRepo struct{ err error }

func (f failingRepo) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingRepo) Set(context.Context, string, []byte) error { return f.err }
func (f failingRepo) Delete(context.Context, string) error { return f.err }

var ada = models.User{ID: 1717000000000, Name: "Ada", Email: "ada@x.com", Password: "secret1", CreatedAt: "2024-05-29T16:26:40.000Z"}

func newStore(t *testing.T) (*Store, *kv.MemoryRepository) {
	t.Helper()
	repo := kv.NewMemoryRepository()
	return NewStore(repo, logging.Nop()), repo
}

func TestLoadUsers_MissingIsEmpty(t *testing.T) {
	s, _ := newStore(t)

	users := s.LoadUsers(context.Background())
	require.NotNil(t, users)
	assert.Empty(t, users)
}

func TestLoadUsers_CorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{`{not json`, `{"id":1}`, `null`, ``} {
		s, repo := newStore(t)
		require.NoError(t, repo.Set(ctx, common.UsersKey, []byte(raw)))

		users, err := s.ReadUsers(ctx)
		require.NoError(t, err, raw)
		assert.Empty(t, users, raw)
	}
}

func TestReadUsers_BackendErrorReturned(t *testing.T) {
	boom := errors.New("disk gone")
	s := NewStore(failingRepo{err: boom}, logging.Nop())

	_, err := s.ReadUsers(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Empty(t, s.LoadUsers(context.Background()))
}

func TestSaveUsers_RoundTripPreservesContent(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	// as written by the browser script
	blob := `[{"id":1717000000000,"name":"Ada","email":"ada@x.com","password":"secret1","createdAt":"2024-05-29T16:26:40.000Z"},` +
		`{"id":1717000000001,"name":"Bob","email":"bob@x.com","password":"hunter22","createdAt":"2024-05-29T16:26:40.001Z"}]`
	require.NoError(t, repo.Set(ctx, common.UsersKey, []byte(blob)))

	require.NoError(t, s.SaveUsers(ctx, s.LoadUsers(ctx)))

	got, err := repo.Get(ctx, common.UsersKey)
	require.NoError(t, err)
	assert.JSONEq(t, blob, string(got))
}

func TestSaveUsers_NilWritesEmptyArray(t *testing.T) {
	s, repo := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveUsers(ctx, nil))

	got, _ := repo.Get(ctx, common.UsersKey)
	assert.Equal(t, "[]", string(got))
}

func TestSaveUsers_PreservesOrder(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()
	bob := models.User{ID: 2, Name: "Bob", Email: "bob@x.com"}

	require.NoError(t, s.SaveUsers(ctx, []models.User{ada, bob}))
	assert.Equal(t, []models.User{ada, bob}, s.LoadUsers(ctx))
}

func TestSession_SaveLoadClear(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	assert.Nil(t, s.LoadSession(ctx))

	require.NoError(t, s.SaveSession(ctx, ada))
	got := s.LoadSession(ctx)
	require.NotNil(t, got)
	assert.Equal(t, ada, *got)

	require.NoError(t, s.ClearSession(ctx))
	assert.Nil(t, s.LoadSession(ctx))

	require.NoError(t, s.ClearSession(ctx))
}

func TestLoadSession_CorruptOrNullIsAbsent(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{`null`, `{"id":`, `[]`} {
		s, repo := newStore(t)
		require.NoError(t, repo.Set(ctx, common.CurrentUserKey, []byte(raw)))
		assert.Nil(t, s.LoadSession(ctx), raw)
	}
}

func TestStore_BackendErrorsWrapped(t *testing.T) {
	boom := errors.New("read-only")
	s := NewStore(failingRepo{err: boom}, logging.Nop())
	ctx := context.Background()

	assert.Nil(t, s.LoadSession(ctx))
	assert.ErrorIs(t, s.SaveUsers(ctx, []models.User{ada}), boom)
	assert.ErrorIs(t, s.SaveSession(ctx, ada), boom)
	assert.ErrorIs(t, s.ClearSession(ctx), boom)
}

func TestFindByEmail(t *testing.T) {
	users := []models.User{ada, {ID: 2, Email: "ada@x.com", Name: "Shadow"}}

	u, ok := FindByEmail(users, "ada@x.com")
	require.True(t, ok)
	assert.Equal(t, "Ada", u.Name, "first match wins")

	_, ok = FindByEmail(users, "ADA@x.com")
	assert.False(t, ok, "comparison is case-sensitive")

	_, ok = FindByEmail(nil, "ada@x.com")
	assert.False(t, ok)

	u.Name = "changed"
	assert.Equal(t, "Ada", users[0].Name, "result is a copy")
}

func TestFindByCredentials(t *testing.T) {
	users := []models.User{ada}

	_, ok := FindByCredentials(users, "ada@x.com", "secret1")
	assert.True(t, ok)

	_, ok = FindByCredentials(users, "ada@x.com", "wrong")
	assert.False(t, ok)

	_, ok = FindByCredentials(users, "nobody@x.com", "secret1")
	assert.False(t, ok)
}
