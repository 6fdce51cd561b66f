package auth

import (
	"context"
	"testing"
	"time"

	"survey-backend/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if v, ok := args.Get(0).(*models.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUsers) Create(ctx context.Context, u *models.User) (*models.User, error) {
	args := m.Called(ctx, u)
	if v, ok := args.Get(0).(*models.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type stubTokens struct{}

func (stubTokens) GenerateJWT(userID, _, _ string) (string, time.Time, error) {
	return "token-" + userID, time.Now().Add(time.Hour), nil
}

type mockGuard struct{ mock.Mock }

func (m *mockGuard) LoginCooldown(ctx context.Context, email string, max int64) (time.Duration, error) {
	args := m.Called(ctx, email, max)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *mockGuard) RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error) {
	args := m.Called(ctx, email, window)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGuard) ResetLogin(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockGuard) BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error {
	return m.Called(ctx, token, expiresIn).Error(0)
}

func hashed(t *testing.T, pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("TestCreatesUserWithHash", func(t *testing.T) {
		users := new(mockUsers)
		users.On("FindByEmail", ctx, "ana@example.com").Return(nil, &models.NotFoundError{Resource: "user"})
		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "ana@example.com" && bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
		})).Return(&models.User{ID: primitive.NewObjectID(), Name: "Ana", Email: "ana@example.com"}, nil)

		svc := NewService(users, stubTokens{}, new(mockGuard), Options{})
		got, err := svc.Register(ctx, models.RegisterRequest{Name: "Ana", Email: " Ana@Example.com ", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", got.Email)
		users.AssertExpectations(t)
	})

	t.Run("TestDuplicateEmail", func(t *testing.T) {
		users := new(mockUsers)
		users.On("FindByEmail", ctx, "ana@example.com").Return(&models.User{}, nil)

		_, err := NewService(users, stubTokens{}, new(mockGuard), Options{}).
			Register(ctx, models.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := &models.User{ID: primitive.NewObjectID(), Name: "Ana", Email: "ana@example.com", Password: hashed(t, "secret1")}
	opts := Options{MaxAttempts: 3, Cooldown: time.Minute}

	t.Run("TestSuccessResetsCounter", func(t *testing.T) {
		users, guard := new(mockUsers), new(mockGuard)
		users.On("FindByEmail", ctx, user.Email).Return(user, nil)
		guard.On("LoginCooldown", ctx, user.Email, int64(3)).Return(time.Duration(0), nil)
		guard.On("ResetLogin", ctx, user.Email).Return(nil)

		got, err := NewService(users, stubTokens{}, guard, opts).Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "token-"+user.ID.Hex(), got.Token)
		assert.Equal(t, user.ID.Hex(), got.User.ID)
		guard.AssertExpectations(t)
	})

	t.Run("TestWrongPasswordCountsFailure", func(t *testing.T) {
		users, guard := new(mockUsers), new(mockGuard)
		users.On("FindByEmail", ctx, user.Email).Return(user, nil)
		guard.On("LoginCooldown", ctx, user.Email, int64(3)).Return(time.Duration(0), nil)
		guard.On("RecordFailedLogin", ctx, user.Email, time.Minute).Return(int64(1), nil)

		_, err := NewService(users, stubTokens{}, guard, opts).Login(ctx, models.LoginRequest{Email: user.Email, Password: "nope"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
		guard.AssertExpectations(t)
	})

	t.Run("TestUnknownEmailSameError", func(t *testing.T) {
		users, guard := new(mockUsers), new(mockGuard)
		users.On("FindByEmail", ctx, "x@example.com").Return(nil, &models.NotFoundError{Resource: "user"})
		guard.On("LoginCooldown", ctx, "x@example.com", int64(3)).Return(time.Duration(0), nil)
		guard.On("RecordFailedLogin", ctx, "x@example.com", time.Minute).Return(int64(1), nil)

		_, err := NewService(users, stubTokens{}, guard, opts).Login(ctx, models.LoginRequest{Email: "x@example.com", Password: "nope"})
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("TestCooldownBlocks", func(t *testing.T) {
		users, guard := new(mockUsers), new(mockGuard)
		guard.On("LoginCooldown", ctx, user.Email, int64(3)).Return(40*time.Second, nil)

		_, err := NewService(users, stubTokens{}, guard, opts).Login(ctx, models.LoginRequest{Email: user.Email, Password: "secret1"})
		var rl *models.RateLimitedError
		require.ErrorAs(t, err, &rl)
		assert.Equal(t, 40*time.Second, rl.RetryAfter)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	guard := new(mockGuard)
	guard.On("BlacklistToken", ctx, "tok", 30*time.Minute).Return(nil)

	svc := NewService(new(mockUsers), stubTokens{}, guard, Options{})
	svc.now = func() time.Time { return now }

	require.NoError(t, svc.Logout(ctx, "tok", now.Add(30*time.Minute)))
	guard.AssertExpectations(t)
}
