package pg

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"edulink/internal/modules/auth/domain"
)

const userColumns = `id, name, email, password_hash, role, age, status,
	two_factor_enabled, auth_provider, created_at, updated_at`

type UserRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) *UserRepo { return &UserRepo{db: db} }

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var hash *string
	var created, updated time.Time
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &hash, &u.Role, &u.Age, &u.Status,
		&u.TwoFactorEnabled, &u.Provider, &created, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.PasswordHash = hash
	u.CreatedAt = created
	u.UpdatedAt = updated
	return &u, nil
}

func (r *UserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	provider := p.Provider
	if provider == "" {
		provider = domain.ProviderLocal
	}
	q := `
INSERT INTO users (name, email, password_hash, role, age, auth_provider)
VALUES ($1, LOWER($2), $3, $4, $5, $6)
RETURNING ` + userColumns
	row := r.db.QueryRow(context.Background(), q, p.Name, p.Email, p.PasswordHash, p.Role, p.Age, provider)
	return scanUser(row)
}

func (r *UserRepo) GetByEmail(email string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = LOWER($1)`, email)
	return scanUser(row)
}

func (r *UserRepo) GetByID(id string) (*domain.User, error) {
	row := r.db.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepo) ExistsByEmail(email string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = LOWER($1))`, email).Scan(&ok)
	return ok, err
}

func (r *UserRepo) SetTwoFactor(userID string, enabled bool) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET two_factor_enabled=$2, updated_at=now() WHERE id=$1`, userID, enabled)
	return err
}

func (r *UserRepo) UpdatePassword(userID string, newHash string) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET password_hash=$2, updated_at=now() WHERE id=$1`, userID, newHash)
	return err
}

func (r *UserRepo) UpdateProfile(userID string, name *string, age *int) error {
	q := `UPDATE users SET
	        name       = COALESCE($2, name),
	        age        = COALESCE($3, age),
	        updated_at = now()
	      WHERE id=$1`
	_, err := r.db.Exec(context.Background(), q, userID, name, age)
	return err
}

func (r *UserRepo) SetStatus(userID string, s domain.Status) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE users SET status=$2, updated_at=now() WHERE id=$1`, userID, s)
	return err
}

func (r *UserRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM users WHERE id=$1`, id)
	return err
}
