package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/weekwise/weekwise/internal/model"
)

func TestUserCreateAndLookup(t *testing.T) {
	conn := testDB(t)
	repo := NewUserRepository(conn)

	user := &model.User{
		ID:        uuid.New().String(),
		Email:     "dana@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(user))

	byID, err := repo.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byID.Email)
	assert.Nil(t, byID.EmailVerifiedAt)

	byEmail, err := repo.ByEmail("dana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserDuplicateEmail(t *testing.T) {
	conn := testDB(t)
	repo := NewUserRepository(conn)

	first := &model.User{ID: uuid.New().String(), Email: "dana@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Create(first))

	second := &model.User{ID: uuid.New().String(), Email: "dana@example.com", CreatedAt: time.Now()}
	assert.ErrorIs(t, repo.Create(second), ErrDuplicateEmail)
}

func TestUserUpdateVerifiedAt(t *testing.T) {
	conn := testDB(t)
	repo := NewUserRepository(conn)
	user := testUser(t, conn)

	now := time.Now()
	user.EmailVerifiedAt = &now
	require.NoError(t, repo.Update(user))

	found, err := repo.ByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.EmailVerifiedAt)
	assert.WithinDuration(t, now, *found.EmailVerifiedAt, time.Second)
}

func TestUserNotFound(t *testing.T) {
	conn := testDB(t)
	repo := NewUserRepository(conn)

	_, err := repo.ByID(uuid.New().String())
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.ByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, repo.Delete(uuid.New().String()), ErrUserNotFound)
}
