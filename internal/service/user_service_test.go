package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestRegister_Validation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users, bcrypt.MinCost)
	ctx := context.Background()

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "password123"},
		{"short username", "ab", "password123"},
		{"empty password", "alice", ""},
		{"short password", "alice", "12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.username, tc.password)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}

	// validation failures must leave no trace in the store
	_, err := repos.users.GetByUsername(ctx, "alice")
	require.Error(t, err)
}

func TestRegister_Success(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users, bcrypt.MinCost)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Positive(t, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "hash must not leave the service")

	stored, err := repos.users.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegister_Duplicate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users, bcrypt.MinCost)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "another-password")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users, bcrypt.MinCost)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "secret1")
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)

	// wrong password and unknown username must be indistinguishable
	_, errWrongPassword := svc.Authenticate(ctx, "alice", "wrong-password")
	_, errUnknownUser := svc.Authenticate(ctx, "nobody", "secret1")
	assert.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestAuthenticate_EmptyFields(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewUserService(repos.users, bcrypt.MinCost)
	ctx := context.Background()

	var verr *ValidationError
	_, err := svc.Authenticate(ctx, "", "secret1")
	require.ErrorAs(t, err, &verr)
	_, err = svc.Authenticate(ctx, "alice", "")
	require.ErrorAs(t, err, &verr)
}
