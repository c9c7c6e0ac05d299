package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edulink/internal/modules/auth/domain"
)

type ChallengeRepo struct{ db *pgxpool.Pool }

func NewChallengeRepo(db *pgxpool.Pool) *ChallengeRepo { return &ChallengeRepo{db: db} }

// Replace relies on the (user_id, kind) unique constraint: the upsert
// is atomic, so two concurrent logins cannot leave two valid codes.
func (r *ChallengeRepo) Replace(c domain.Challenge) error {
	_, err := r.db.Exec(context.Background(), `
INSERT INTO login_challenges (user_id, kind, code, issued_at, expires_at, sent_to)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, kind) DO UPDATE
SET code = EXCLUDED.code,
    issued_at = EXCLUDED.issued_at,
    expires_at = EXCLUDED.expires_at,
    sent_to = EXCLUDED.sent_to`,
		c.UserID, c.Kind, c.Code, c.IssuedAt, c.ExpiresAt, c.SentTo)
	return err
}

func (r *ChallengeRepo) Find(userID string, kind domain.ChallengeKind) (*domain.Challenge, error) {
	row := r.db.QueryRow(context.Background(), `
SELECT id, user_id, kind, code, issued_at, expires_at, sent_to
FROM login_challenges WHERE user_id=$1 AND kind=$2`, userID, kind)

	var c domain.Challenge
	if err := row.Scan(&c.ID, &c.UserID, &c.Kind, &c.Code, &c.IssuedAt, &c.ExpiresAt, &c.SentTo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *ChallengeRepo) Delete(userID string, kind domain.ChallengeKind) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM login_challenges WHERE user_id=$1 AND kind=$2`, userID, kind)
	return err
}
