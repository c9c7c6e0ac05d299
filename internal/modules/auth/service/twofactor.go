package service

import (
	"context"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
)

// EnableTwoFactor turns on the email OTP requirement for every future
// login. Takes effect on the next sign-in; existing sessions keep
// working.
func (s *Service) EnableTwoFactor(ctx context.Context, userID string) error {
	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		return ErrNotFound
	}
	return s.users.SetTwoFactor(userID, true)
}

// DisableTwoFactor requires the current password so a hijacked session
// alone cannot weaken the account.
func (s *Service) DisableTwoFactor(ctx context.Context, userID, password string) error {
	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		return ErrNotFound
	}
	if u.PasswordHash == nil {
		return ErrInvalidCredentials
	}
	ok, _ := security.CheckPassword(*u.PasswordHash, password)
	if !ok {
		return ErrInvalidCredentials
	}
	if err := s.users.SetTwoFactor(userID, false); err != nil {
		return err
	}
	// any code issued while 2FA was on is dead now
	_ = s.challenges.Delete(userID, domain.ChallengeLogin)
	return nil
}
