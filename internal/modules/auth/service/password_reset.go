package service

import (
	"context"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
	"edulink/internal/validate"
)

// ForgotPassword mails a reset code. It reports success even for
// unknown addresses so the endpoint cannot be used to probe which
// emails are registered.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(validate.NormalizeEmail(email))
	if err != nil || u == nil {
		return nil
	}
	if u.PasswordHash == nil {
		// OAuth account, nothing to reset
		return nil
	}
	if !s.sendAllowed(u.ID, domain.ChallengeReset) {
		return ErrResendCooldown
	}
	return s.issueChallenge(ctx, u, domain.ChallengeReset)
}

// ResetPassword consumes a reset code, re-validates the new password
// through the engine and revokes every active session.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	u, err := s.users.GetByEmail(validate.NormalizeEmail(email))
	if err != nil || u == nil {
		return ErrInvalidCode
	}

	ch, err := s.challenges.Find(u.ID, domain.ChallengeReset)
	if err != nil || ch == nil {
		return ErrNoPendingChallenge
	}
	if s.now().After(ch.ExpiresAt) {
		_ = s.challenges.Delete(u.ID, domain.ChallengeReset)
		return ErrCodeExpired
	}
	if ch.Code != code {
		return ErrInvalidCode
	}

	pv := validate.Password(newPassword, validate.PasswordContext{Name: u.Name, Email: u.Email})
	if !pv.Valid {
		return &ValidationError{Fields: map[string][]string{"new_password": pv.Errors}}
	}

	hash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(u.ID, hash); err != nil {
		return err
	}

	_ = s.challenges.Delete(u.ID, domain.ChallengeReset)
	_, _ = s.sessions.RevokeAll(u.ID)
	return nil
}
