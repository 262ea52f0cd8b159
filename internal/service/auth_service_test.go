package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/repository"
)

// mockUserRepo is an in-memory implementation of repository.UserRepository.
type mockUserRepo struct {
	users map[string]*domain.User
	prefs map[string]*domain.Preferences
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users: make(map[string]*domain.User),
		prefs: make(map[string]*domain.Preferences),
	}
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	user, ok := m.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) DeleteUser(ctx context.Context, userID string) error {
	if _, ok := m.users[userID]; !ok {
		return repository.ErrNotFound
	}
	delete(m.users, userID)
	return nil
}

func (m *mockUserRepo) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, ok := m.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return prefs, nil
}

func (m *mockUserRepo) UpdatePreferences(ctx context.Context, userID string, prefs *domain.Preferences) error {
	m.prefs[userID] = prefs
	return nil
}

func newAuthFixture(repo repository.UserRepository) AuthService {
	return NewAuthService(AuthServiceConfig{
		UserRepo:             repo,
		JWTSecret:            "test-secret",
		JWTAccessExpiration:  time.Hour,
		JWTRefreshExpiration: 24 * time.Hour,
	})
}

func registerTestUser(t *testing.T, svc AuthService) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), "Jane Doe", "jane@example.com", "Secret1")
	require.NoError(t, err)
	return resp
}

func TestRegisterCreatesUserAndTokens(t *testing.T) {
	repo := newMockUserRepo()
	svc := newAuthFixture(repo)

	resp := registerTestUser(t, svc)

	assert.Equal(t, "Jane Doe", resp.User.Name)
	assert.NotEmpty(t, resp.User.ID)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	// Password is stored hashed, never as given.
	stored := repo.users[resp.User.ID]
	assert.NotEqual(t, "Secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), "Other", "jane@example.com", "Secret2")
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), "jane@example.com", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), "jane@example.com", "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "Secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateAccessTokenRoundTrip(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestValidateAccessTokenRejectsOtherSecret(t *testing.T) {
	repo := newMockUserRepo()
	svc := newAuthFixture(repo)
	resp := registerTestUser(t, svc)

	other := NewAuthService(AuthServiceConfig{
		UserRepo:             repo,
		JWTSecret:            "different-secret",
		JWTAccessExpiration:  time.Hour,
		JWTRefreshExpiration: 24 * time.Hour,
	})

	_, err := other.ValidateAccessToken(resp.AccessToken)
	assert.Error(t, err)
}

func TestRefreshAccessToken(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	pair, err := svc.RefreshAccessToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), "Sam", "sam@example.com", "Secret1")
	require.NoError(t, err)

	taken := "sam@example.com"
	_, err = svc.UpdateProfile(context.Background(), resp.User.ID, nil, &taken, nil)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	name := "Jane Smith"
	user, err := svc.UpdateProfile(context.Background(), resp.User.ID, &name, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", user.Name)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), resp.User.ID, "Secret1", "NewSecret2")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "jane@example.com", "NewSecret2")
	assert.NoError(t, err)
	_, err = svc.Login(context.Background(), "jane@example.com", "Secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := newAuthFixture(newMockUserRepo())
	resp := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), resp.User.ID, "WrongPass1", "NewSecret2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteAccountRequiresPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newAuthFixture(repo)
	resp := registerTestUser(t, svc)

	err := svc.DeleteAccount(context.Background(), resp.User.ID, "WrongPass1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.DeleteAccount(context.Background(), resp.User.ID, "Secret1")
	require.NoError(t, err)

	_, err = svc.GetUserByID(context.Background(), resp.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
