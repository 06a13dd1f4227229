package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAccountStore struct {
	admins map[string]*Admin
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{admins: map[string]*Admin{}}
}

func (f *fakeAccountStore) GetByUsername(_ context.Context, username string) (*Admin, error) {
	return f.admins[username], nil
}

func (f *fakeAccountStore) Create(_ context.Context, a *Admin) error {
	f.admins[a.Username] = a
	return nil
}

func (f *fakeAccountStore) Update(_ context.Context, username string, upd AccountUpdate) (int64, error) {
	a, ok := f.admins[username]
	if !ok {
		return 0, nil
	}
	var aff int64
	if upd.Email != nil && *upd.Email != a.Email {
		a.Email = *upd.Email
		aff = 1
	}
	if upd.PasswordHash != nil {
		a.PasswordHash = *upd.PasswordHash
		aff = 1
	}
	return aff, nil
}

func seedAdmin(t *testing.T, store *fakeAccountStore, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	store.admins[username] = &Admin{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	store := newFakeAccountStore()
	seedAdmin(t, store, "admin", "s3cret")
	svc := newServiceWithStore(store, "test-secret")

	token, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["sub"])
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	store := newFakeAccountStore()
	seedAdmin(t, store, "admin", "s3cret")
	svc := newServiceWithStore(store, "test-secret")

	// 不在とパスワード不一致は同じエラーにする
	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)

	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestRegister_RejectsDuplicateUsername(t *testing.T) {
	store := newFakeAccountStore()
	svc := newServiceWithStore(store, "test-secret")

	require.NoError(t, svc.Register(context.Background(), "admin", "admin@example.com", "s3cret"))
	assert.ErrorIs(t, svc.Register(context.Background(), "admin", "other@example.com", "x"), ErrAlreadyExists)

	// 平文は保存しない
	assert.NotEqual(t, "s3cret", store.admins["admin"].PasswordHash)
}

func TestUpdateAccount(t *testing.T) {
	store := newFakeAccountStore()
	seedAdmin(t, store, "admin", "s3cret")
	svc := newServiceWithStore(store, "test-secret")

	email := "new@example.com"
	require.NoError(t, svc.UpdateAccount(context.Background(), "admin", &email, nil))
	assert.Equal(t, "new@example.com", store.admins["admin"].Email)

	pass := "n3w-pass"
	require.NoError(t, svc.UpdateAccount(context.Background(), "admin", nil, &pass))
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(store.admins["admin"].PasswordHash), []byte("n3w-pass")))
}

func TestUpdateAccount_NotFound(t *testing.T) {
	svc := newServiceWithStore(newFakeAccountStore(), "test-secret")

	email := "x@example.com"
	assert.ErrorIs(t, svc.UpdateAccount(context.Background(), "ghost", &email, nil), ErrNotFound)
}

func TestUpdateAccount_NoFieldsIsNoop(t *testing.T) {
	store := newFakeAccountStore()
	seedAdmin(t, store, "admin", "s3cret")
	svc := newServiceWithStore(store, "test-secret")

	require.NoError(t, svc.UpdateAccount(context.Background(), "admin", nil, nil))
	assert.Equal(t, "admin@example.com", store.admins["admin"].Email)
}
