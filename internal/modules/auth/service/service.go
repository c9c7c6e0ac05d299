// Package service implements the authentication flow: credential check,
// optional email OTP challenge, session issuance, registration and the
// account-level 2FA toggles. Handlers stay thin; every outcome crosses
// this boundary as a typed result or a sentinel error, never a panic.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
)

var (
	// deliberately identical for unknown email and wrong password
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrAccountSuspended   = errors.New("account suspended")
	ErrNoPendingChallenge = errors.New("no pending verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrEmailTaken         = errors.New("email already registered")
	ErrResendCooldown     = errors.New("code recently sent, wait before requesting another")
	ErrNotFound           = errors.New("not found")
	ErrInvalidRefresh     = errors.New("invalid or expired refresh token")
)

// RoleMismatchError is a UX gate, not an authorization boundary: the
// stored role always wins, the claimed one only steers the client to
// the right sign-in form. The message names the actual role so the
// caller can retry correctly.
type RoleMismatchError struct {
	Actual domain.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("this account is registered as a %s, sign in with that role", e.Actual)
}

// ValidationError carries per-field blocking messages from the
// validation engine.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// CodeMailer delivers one-time codes out of band.
type CodeMailer interface {
	SendLoginCode(ctx context.Context, to, code string) error
	SendResetCode(ctx context.Context, to, code string) error
}

// Session is the artifact handed to a caller after successful
// authentication.
type Session struct {
	User         *domain.User
	SessionID    string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// LoginResult is the discriminated outcome of Login: either a session,
// or a 2FA continuation carrying only the user id.
type LoginResult struct {
	Requires2FA bool
	UserID      string
	Session     *Session
}

// DeviceInfo is optional request metadata recorded on the session row.
type DeviceInfo struct {
	DeviceName string
	IPAddress  string
	UserAgent  string
}

type Service struct {
	users      domain.UserRepo
	challenges domain.ChallengeRepo
	sessions   domain.SessionRepo
	tokens     *security.JWTManager
	mailer     CodeMailer

	otpTTL     time.Duration
	resetTTL   time.Duration
	refreshTTL time.Duration
	cooldown   time.Duration

	// per-(user,kind) send limiters; the server-side counterpart to the
	// client's advisory resend timer. Gates repeat sends only: the code
	// mailed during Login itself is not counted, so one resend straight
	// after signing in is always allowed and a second login within the
	// window is never blocked.
	limiters sync.Map // map[string]*rate.Limiter

	now func() time.Time
}

type Options struct {
	OTPTTL     time.Duration // login code lifetime, default 10m
	ResetTTL   time.Duration // reset code lifetime, default 1h
	RefreshTTL time.Duration // refresh token lifetime, default 30d
	Cooldown   time.Duration // min interval between sends, default 60s
}

func New(users domain.UserRepo, challenges domain.ChallengeRepo, sessions domain.SessionRepo,
	tokens *security.JWTManager, mailer CodeMailer, opts Options) *Service {
	if opts.OTPTTL == 0 {
		opts.OTPTTL = 10 * time.Minute
	}
	if opts.ResetTTL == 0 {
		opts.ResetTTL = time.Hour
	}
	if opts.RefreshTTL == 0 {
		opts.RefreshTTL = 30 * 24 * time.Hour
	}
	if opts.Cooldown == 0 {
		opts.Cooldown = 60 * time.Second
	}
	return &Service{
		users:      users,
		challenges: challenges,
		sessions:   sessions,
		tokens:     tokens,
		mailer:     mailer,
		otpTTL:     opts.OTPTTL,
		resetTTL:   opts.ResetTTL,
		refreshTTL: opts.RefreshTTL,
		cooldown:   opts.Cooldown,
		now:        time.Now,
	}
}

// WithClock overrides the clock. Test hook.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) sendAllowed(userID string, kind domain.ChallengeKind) bool {
	key := userID + "|" + string(kind)
	l, _ := s.limiters.LoadOrStore(key, rate.NewLimiter(rate.Every(s.cooldown), 1))
	return l.(*rate.Limiter).Allow()
}
