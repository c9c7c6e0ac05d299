package service

import (
	"context"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
)

func (s *Service) issueSession(u *domain.User, dev DeviceInfo) (*Session, error) {
	rt, err := security.IssueRefresh()
	if err != nil {
		return nil, err
	}

	sess := domain.Session{
		UserID:           u.ID,
		RefreshTokenHash: security.HashToken(rt),
		ExpiresAt:        s.now().Add(s.refreshTTL),
	}
	if dev.DeviceName != "" {
		sess.DeviceName = &dev.DeviceName
	}
	if dev.IPAddress != "" {
		sess.IPAddress = &dev.IPAddress
	}
	if dev.UserAgent != "" {
		sess.UserAgent = &dev.UserAgent
	}

	created, err := s.sessions.Create(sess)
	if err != nil {
		return nil, err
	}

	at, exp, err := s.tokens.IssueAccess(u.ID, string(u.Role), created.ID)
	if err != nil {
		return nil, err
	}

	return &Session{
		User:         u,
		SessionID:    created.ID,
		AccessToken:  at,
		RefreshToken: rt,
		ExpiresAt:    exp,
	}, nil
}

// Refresh rotates a refresh token: the presented session is revoked
// and a new one is created, so a stolen token stops working the first
// time the real owner refreshes.
func (s *Service) Refresh(ctx context.Context, refreshToken string, dev DeviceInfo) (*Session, error) {
	old, err := s.sessions.FindByRefreshHash(security.HashToken(refreshToken))
	if err != nil || old == nil || old.RevokedAt != nil || s.now().After(old.ExpiresAt) {
		return nil, ErrInvalidRefresh
	}

	u, err := s.users.GetByID(old.UserID)
	if err != nil || u == nil {
		return nil, ErrInvalidRefresh
	}
	if u.Status == domain.StatusSuspended {
		return nil, ErrAccountSuspended
	}

	_ = s.sessions.Revoke(old.ID, old.UserID)

	return s.issueSession(u, dev)
}

// Logout revokes the session the access token was issued against.
func (s *Service) Logout(ctx context.Context, sessionID, userID string) error {
	return s.sessions.Revoke(sessionID, userID)
}

// Devices lists the user's sessions for the account security page.
func (s *Service) Devices(ctx context.Context, userID string, page, limit int) ([]domain.Session, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.sessions.ListByUser(userID, page, limit)
}

// RevokeDevice signs out one session; RevokeOtherDevices keeps only
// the current one.
func (s *Service) RevokeDevice(ctx context.Context, sessionID, userID string) error {
	return s.sessions.Revoke(sessionID, userID)
}

func (s *Service) RevokeOtherDevices(ctx context.Context, currentSessionID, userID string) (int, error) {
	return s.sessions.RevokeOthers(currentSessionID, userID)
}
