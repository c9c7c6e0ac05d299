package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWTManager struct {
	secret    []byte
	accessTTL time.Duration
}

func NewJWTManager(secret string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), accessTTL: accessTTL}
}

// IssueAccess signs a short-lived access token bound to a session via
// the sid claim, so revoking the session kills the token's refreshes.
func (j *JWTManager) IssueAccess(userID, role, sessionID string) (string, time.Time, error) {
	exp := time.Now().Add(j.accessTTL)
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"sid":  sessionID,
		"exp":  exp.Unix(),
		"iat":  time.Now().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString(j.secret)
	return token, exp, err
}

// IssueRefresh returns an opaque refresh token. Only its hash is
// stored server-side.
func IssueRefresh() (string, error) {
	return RandomToken(32)
}
