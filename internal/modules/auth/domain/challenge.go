package domain

import "time"

type ChallengeKind string

const (
	ChallengeLogin ChallengeKind = "login" // 2FA code sent during sign-in
	ChallengeReset ChallengeKind = "reset" // password recovery code
)

// Challenge is a pending one-time code. At most one challenge exists
// per (user, kind): issuing a new one replaces any previous code, so
// two different codes can never both validate.
type Challenge struct {
	ID        string
	UserID    string
	Kind      ChallengeKind
	Code      string
	IssuedAt  time.Time
	ExpiresAt time.Time
	SentTo    string
}

type ChallengeRepo interface {
	// Replace atomically creates or overwrites the pending challenge
	// for (UserID, Kind).
	Replace(c Challenge) error
	Find(userID string, kind ChallengeKind) (*Challenge, error)
	Delete(userID string, kind ChallengeKind) error
}
