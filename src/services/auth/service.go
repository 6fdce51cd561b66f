package auth

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"survey-backend/src/models"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

type TokenIssuer interface {
	GenerateJWT(userID, name, email string) (string, time.Time, error)
}

// Guard throttles failed logins and blacklists tokens on logout.
type Guard interface {
	LoginCooldown(ctx context.Context, email string, maxAttempts int64) (time.Duration, error)
	RecordFailedLogin(ctx context.Context, email string, window time.Duration) (int64, error)
	ResetLogin(ctx context.Context, email string) error
	BlacklistToken(ctx context.Context, token string, expiresIn time.Duration) error
}

type Options struct {
	MaxAttempts int64
	Cooldown    time.Duration
}

type Service struct {
	users  UserStore
	tokens TokenIssuer
	guard  Guard
	opts   Options
	now    func() time.Time
}

func NewService(users UserStore, tokens TokenIssuer, guard Guard, opts Options) *Service {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = 15 * time.Minute
	}
	return &Service{users: users, tokens: tokens, guard: guard, opts: opts, now: time.Now}
}

// Register creates an owner account. The duplicate email check is a read
// followed by an insert with no unique index behind it, so two concurrent
// registrations for one address can both succeed.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.PublicUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return nil, &models.ValidationError{Field: "email", Message: "email already registered"}
	}
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[auth] registered user=%s", user.ID.Hex())
	return publicUser(user), nil
}

// Login ตรวจสอบรหัสผ่านและออก token
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	wait, err := s.guard.LoginCooldown(ctx, email, s.opts.MaxAttempts)
	if err != nil {
		log.Printf("⚠️ [auth] cooldown check failed: %v", err)
	}
	if wait > 0 {
		return nil, &models.RateLimitedError{RetryAfter: wait}
	}

	user, err := s.users.FindByEmail(ctx, email)
	var nf *models.NotFoundError
	if errors.As(err, &nf) {
		s.failed(ctx, email)
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.failed(ctx, email)
		return nil, models.ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateJWT(user.ID.Hex(), user.Name, user.Email)
	if err != nil {
		return nil, err
	}
	if err := s.guard.ResetLogin(ctx, email); err != nil {
		log.Printf("⚠️ [auth] reset login counter failed: %v", err)
	}

	log.Printf("[auth] login user=%s", user.ID.Hex())
	return &models.LoginResponse{Token: token, User: *publicUser(user)}, nil
}

// Logout blacklists the token for the rest of its lifetime.
func (s *Service) Logout(ctx context.Context, token string, expiresAt time.Time) error {
	return s.guard.BlacklistToken(ctx, token, expiresAt.Sub(s.now()))
}

func (s *Service) failed(ctx context.Context, email string) {
	if _, err := s.guard.RecordFailedLogin(ctx, email, s.opts.Cooldown); err != nil {
		log.Printf("⚠️ [auth] record failed login: %v", err)
	}
}

func publicUser(u *models.User) *models.PublicUser {
	return &models.PublicUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}
