package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/models"
)

// fakeUserStore meniru perilaku storage: keunikan username case-insensitive,
// pencarian case-insensitive.
type fakeUserStore struct {
	users  map[string]*models.User // key: lowercase username
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, nextID: 1}
}

func (s *fakeUserStore) CreateUser(_ context.Context, username, passwordHash string) (int, error) {
	key := strings.ToLower(username)
	if _, exists := s.users[key]; exists {
		return 0, ErrDuplicateUsername
	}
	id := s.nextID
	s.nextID++
	s.users[key] = &models.User{ID: id, Username: username, PasswordHash: passwordHash, CreatedAt: time.Now()}
	return id, nil
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	user, exists := s.users[strings.ToLower(username)]
	if !exists {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func newTestService(t *testing.T) (*Service, *JWTManager) {
	t.Helper()
	manager, err := NewJWTManager(testConfig())
	require.NoError(t, err)
	return NewService(newFakeUserStore(), manager), manager
}

func TestRegisterIssuesValidToken(t *testing.T) {
	service, manager := newTestService(t)

	token, err := service.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	id, err := ExtractIdentity(claims)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "alice", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// Keunikan bersifat case-insensitive
	_, err = service.Register(context.Background(), "ALICE", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestLogin(t *testing.T) {
	service, manager := newTestService(t)

	_, err := service.Register(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	// Password salah dan user tidak ada menghasilkan error yang sama
	_, err = service.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = service.Login(context.Background(), "nobody", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := service.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	id, err := ExtractIdentity(claims)
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestLoginIsCaseInsensitiveOnUsername(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Register(context.Background(), "Alice", "pw1")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), "alice", "pw1")
	assert.NoError(t, err)
}
