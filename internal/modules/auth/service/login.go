package service

import (
	"context"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
	"edulink/internal/validate"
)

// Login runs the credential check and branches on the account's 2FA
// flag. Unknown email, wrong password and password-less (OAuth)
// accounts all fail with the same ErrInvalidCredentials so the
// response never reveals whether an address is registered.
func (s *Service) Login(ctx context.Context, email, password string, claimedRole domain.Role, dev DeviceInfo) (*LoginResult, error) {
	u, err := s.users.GetByEmail(validate.NormalizeEmail(email))
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}

	if u.Status == domain.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}
	ok, _ := security.CheckPassword(*u.PasswordHash, password)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if claimedRole != "" && claimedRole != u.Role {
		return nil, &RoleMismatchError{Actual: u.Role}
	}

	if u.TwoFactorEnabled {
		if err := s.issueChallenge(ctx, u, domain.ChallengeLogin); err != nil {
			return nil, err
		}
		return &LoginResult{Requires2FA: true, UserID: u.ID}, nil
	}

	sess, err := s.issueSession(u, dev)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: sess}, nil
}

// VerifyOTP completes the 2FA branch. Codes are single use: the
// challenge row is deleted on success, and an expired one is deleted
// on sight so it cannot be retried.
func (s *Service) VerifyOTP(ctx context.Context, userID, code string, dev DeviceInfo) (*LoginResult, error) {
	ch, err := s.challenges.Find(userID, domain.ChallengeLogin)
	if err != nil || ch == nil {
		return nil, ErrNoPendingChallenge
	}
	if s.now().After(ch.ExpiresAt) {
		_ = s.challenges.Delete(userID, domain.ChallengeLogin)
		return nil, ErrCodeExpired
	}
	if ch.Code != code {
		return nil, ErrInvalidCode
	}

	if err := s.challenges.Delete(userID, domain.ChallengeLogin); err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrNoPendingChallenge
	}
	if u.Status == domain.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	sess, err := s.issueSession(u, dev)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: sess}, nil
}

// ResendOTP replaces the pending login code with a fresh one. The
// previous code stops validating the moment the new one is stored.
// The cooldown counts resends, not the login-time send, so the first
// call after a fresh sign-in always goes through.
func (s *Service) ResendOTP(ctx context.Context, userID string) error {
	ch, err := s.challenges.Find(userID, domain.ChallengeLogin)
	if err != nil || ch == nil {
		return ErrNoPendingChallenge
	}
	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		return ErrNoPendingChallenge
	}
	if !s.sendAllowed(userID, domain.ChallengeLogin) {
		return ErrResendCooldown
	}
	return s.issueChallenge(ctx, u, domain.ChallengeLogin)
}

// LoginWithGoogle signs in (or signs up) via a Google token. Accounts
// created this way have no password hash; password login for them
// fails closed with ErrInvalidCredentials.
func (s *Service) LoginWithGoogle(ctx context.Context, accessToken string, dev DeviceInfo) (*LoginResult, error) {
	email, name, err := security.VerifyGoogleToken(accessToken)
	if err != nil {
		return nil, err
	}
	email = validate.NormalizeEmail(email)

	u, _ := s.users.GetByEmail(email)
	if u == nil {
		u, err = s.users.Create(domain.CreateUserParams{
			Name:     name,
			Email:    email,
			Role:     domain.RoleStudent,
			Provider: domain.ProviderGoogle,
		})
		if err != nil {
			return nil, err
		}
	}
	if u.Status == domain.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	if u.TwoFactorEnabled {
		if err := s.issueChallenge(ctx, u, domain.ChallengeLogin); err != nil {
			return nil, err
		}
		return &LoginResult{Requires2FA: true, UserID: u.ID}, nil
	}

	sess, err := s.issueSession(u, dev)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Session: sess}, nil
}

func (s *Service) issueChallenge(ctx context.Context, u *domain.User, kind domain.ChallengeKind) error {
	code, err := security.RandomDigits(6)
	if err != nil {
		return err
	}
	ttl := s.otpTTL
	if kind == domain.ChallengeReset {
		ttl = s.resetTTL
	}
	now := s.now()
	if err := s.challenges.Replace(domain.Challenge{
		UserID:    u.ID,
		Kind:      kind,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
		SentTo:    u.Email,
	}); err != nil {
		return err
	}
	if kind == domain.ChallengeReset {
		return s.mailer.SendResetCode(ctx, u.Email, code)
	}
	return s.mailer.SendLoginCode(ctx, u.Email, code)
}
