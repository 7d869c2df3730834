package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrUserAlreadyExists
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, user User) (string, error) {
	return "token-for-" + user.ID.String(), nil
}

func newTestService(repo UserRepository) AuthUseCase {
	// MinCost keeps bcrypt fast in tests; behavior is identical.
	return NewAuthService(repo, NewBcryptHasher(4), staticTokens{})
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	stored, err := repo.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.True(t, NewBcryptHasher(4).Compare("secret1", stored.PasswordHash))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	cases := []struct {
		name                      string
		username, email, password string
	}{
		{"empty username", "", "a@example.com", "pw"},
		{"empty email", "alice", "", "pw"},
		{"empty password", "alice", "a@example.com", ""},
		{"blank username", "   ", "a@example.com", "pw"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.username, tc.email, tc.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice2", "alice@example.com", "secret2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginSuccess(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, "token-for-"+user.ID.String(), result.Token)
}

// Unknown email and wrong password must be observationally identical.
func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), "nobody@example.com", "secret1")
	_, errWrongPw := svc.Login(context.Background(), "alice@example.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestBcryptHasherCompare(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.True(t, h.Compare("secret1", hash))
	assert.False(t, h.Compare("secret2", hash))
	assert.False(t, h.Compare("secret1", "not-a-bcrypt-hash"))
}
