package session

import (
	"testing"

	"webshop-client/internal/storage"

	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	st, err := storage.NewStore(t.TempDir())
	assert.NoError(t, err)
	return NewStore(st), st
}

func TestStore_GetSet(t *testing.T) {
	store, _ := newTestStore(t)

	// Empty store holds no session
	assert.Nil(t, store.Get())
	assert.False(t, store.IsAuthenticated())

	sess := Session{
		ID:        1,
		FirstName: "Ana",
		LastName:  "Horvat",
		Email:     "ana@example.com",
		Role:      Role{ID: 1, Name: RoleUser},
	}
	assert.NoError(t, store.Set(sess))

	got := store.Get()
	assert.NotNil(t, got)
	assert.Equal(t, sess, *got)
	assert.True(t, store.IsAuthenticated())
}

func TestStore_ClearRemovesCartToo(t *testing.T) {
	store, st := newTestStore(t)

	assert.NoError(t, store.Set(Session{ID: 1, Email: "ana@example.com"}))
	assert.NoError(t, st.Set(storage.KeyCart, []string{"placeholder"}))

	store.Clear()

	assert.Nil(t, store.Get())
	var out []string
	found, err := st.Get(storage.KeyCart, &out)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_Roles(t *testing.T) {
	store, _ := newTestStore(t)

	assert.False(t, store.IsAdmin())

	assert.NoError(t, store.Set(Session{ID: 2, Role: Role{ID: 2, Name: RoleAdmin}}))
	assert.True(t, store.IsAdmin())
	assert.True(t, store.HasRole(RoleAdmin))
	assert.False(t, store.HasRole(RoleUser))
}
