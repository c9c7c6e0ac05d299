package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edulink/internal/modules/auth/domain"
)

const sessionColumns = `id, user_id, refresh_token_hash, device_name, ip_address,
	user_agent, last_active, created_at, expires_at, revoked_at`

type SessionRepo struct{ db *pgxpool.Pool }

func NewSessionRepo(db *pgxpool.Pool) *SessionRepo { return &SessionRepo{db: db} }

func scanSession(row pgx.Row) (*domain.Session, error) {
	var s domain.Session
	if err := row.Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.DeviceName, &s.IPAddress,
		&s.UserAgent, &s.LastActive, &s.CreatedAt, &s.ExpiresAt, &s.RevokedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) Create(s domain.Session) (*domain.Session, error) {
	q := `INSERT INTO sessions (user_id, refresh_token_hash, device_name, ip_address, user_agent, expires_at)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      RETURNING ` + sessionColumns
	row := r.db.QueryRow(context.Background(), q,
		s.UserID, s.RefreshTokenHash, s.DeviceName, s.IPAddress, s.UserAgent, s.ExpiresAt)
	return scanSession(row)
}

func (r *SessionRepo) FindByRefreshHash(hash string) (*domain.Session, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+sessionColumns+` FROM sessions WHERE refresh_token_hash=$1`, hash)
	return scanSession(row)
}

func (r *SessionRepo) ListByUser(userID string, page, limit int) ([]domain.Session, int, error) {
	ctx := context.Background()
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sessions WHERE user_id=$1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	rows, err := r.db.Query(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []domain.Session{}
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.DeviceName, &s.IPAddress,
			&s.UserAgent, &s.LastActive, &s.CreatedAt, &s.ExpiresAt, &s.RevokedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, total, rows.Err()
}

func (r *SessionRepo) Revoke(sessionID, userID string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE sessions SET revoked_at=now() WHERE id=$1 AND user_id=$2 AND revoked_at IS NULL`,
		sessionID, userID)
	return err
}

func (r *SessionRepo) RevokeOthers(currentSessionID, userID string) (int, error) {
	ct, err := r.db.Exec(context.Background(),
		`UPDATE sessions SET revoked_at=now() WHERE user_id=$1 AND id<>$2 AND revoked_at IS NULL`,
		userID, currentSessionID)
	return int(ct.RowsAffected()), err
}

func (r *SessionRepo) RevokeAll(userID string) (int, error) {
	ct, err := r.db.Exec(context.Background(),
		`UPDATE sessions SET revoked_at=now() WHERE user_id=$1 AND revoked_at IS NULL`, userID)
	return int(ct.RowsAffected()), err
}
