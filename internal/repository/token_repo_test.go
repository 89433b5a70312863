package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTokenGetOrCreateIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	repo := NewTokenRepo(db)

	token, created, err := repo.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.True(t, created)
	require.Len(t, token.Key, 40)

	again, created, err := repo.GetOrCreate(user.ID)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, token.Key, again.Key)
}

func TestTokenFindByKeyLoadsUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice")
	repo := NewTokenRepo(db)

	token, _, err := repo.GetOrCreate(user.ID)
	require.NoError(t, err)

	found, err := repo.FindByKey(token.Key)
	require.NoError(t, err)
	require.Equal(t, user.ID, found.UserID)
	require.NotNil(t, found.User)
	require.Equal(t, "alice", found.User.Username)

	_, err = repo.FindByKey("0000000000000000000000000000000000000000")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
