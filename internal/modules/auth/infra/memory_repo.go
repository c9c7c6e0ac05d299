package infra

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"edulink/internal/modules/auth/domain"
)

var errNotFound = errors.New("not_found")

type memUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*domain.User // id -> user
	byEmail map[string]string       // email -> id
}

func NewMemUserRepo() domain.UserRepo {
	return &memUserRepo{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memUserRepo) Create(p domain.CreateUserParams) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[p.Email]; ok {
		return nil, errors.New("email_taken")
	}
	provider := p.Provider
	if provider == "" {
		provider = domain.ProviderLocal
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:           uuid.New().String(),
		Name:         p.Name,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Role:         p.Role,
		Age:          p.Age,
		Status:       domain.StatusActive,
		Provider:     provider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, errNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *memUserRepo) GetByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *memUserRepo) SetTwoFactor(userID string, enabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errNotFound
	}
	u.TwoFactorEnabled = enabled
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) UpdatePassword(userID string, newHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errNotFound
	}
	u.PasswordHash = &newHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) UpdateProfile(userID string, name *string, age *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if age != nil {
		u.Age = *age
	}
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) SetStatus(userID string, s domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return errNotFound
	}
	u.Status = s
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return errNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.users, id)
	return nil
}

type memChallengeRepo struct {
	mu      sync.RWMutex
	pending map[string]*domain.Challenge // userID|kind -> challenge
}

func NewMemChallengeRepo() domain.ChallengeRepo {
	return &memChallengeRepo{pending: make(map[string]*domain.Challenge)}
}

func challengeKey(userID string, kind domain.ChallengeKind) string {
	return userID + "|" + string(kind)
}

func (r *memChallengeRepo) Replace(c domain.Challenge) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	cp := c
	r.pending[challengeKey(c.UserID, c.Kind)] = &cp
	return nil
}

func (r *memChallengeRepo) Find(userID string, kind domain.ChallengeKind) (*domain.Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.pending[challengeKey(userID, kind)]
	if !ok {
		return nil, errNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memChallengeRepo) Delete(userID string, kind domain.ChallengeKind) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, challengeKey(userID, kind))
	return nil
}

type memSessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	byUser   map[string][]string
}

func NewMemSessionRepo() domain.SessionRepo {
	return &memSessionRepo{
		sessions: make(map[string]*domain.Session),
		byUser:   make(map[string][]string),
	}
}

func (r *memSessionRepo) Create(s domain.Session) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.LastActive = now
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = now.Add(30 * 24 * time.Hour)
	}
	cp := s
	r.sessions[s.ID] = &cp
	r.byUser[s.UserID] = append(r.byUser[s.UserID], s.ID)
	out := cp
	return &out, nil
}

func (r *memSessionRepo) FindByRefreshHash(hash string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.sessions {
		if s.RefreshTokenHash == hash {
			cp := *s
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *memSessionRepo) ListByUser(userID string, page, limit int) ([]domain.Session, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	total := len(ids)
	start := (page - 1) * limit
	if start >= total {
		return []domain.Session{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	out := make([]domain.Session, 0, end-start)
	for _, id := range ids[start:end] {
		out = append(out, *r.sessions[id])
	}
	return out, total, nil
}

func (r *memSessionRepo) Revoke(sessionID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sessionID]
	if !ok || s.UserID != userID {
		return errNotFound
	}
	now := time.Now().UTC()
	s.RevokedAt = &now
	return nil
}

func (r *memSessionRepo) RevokeOthers(currentSessionID, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	now := time.Now().UTC()
	for _, id := range r.byUser[userID] {
		if id == currentSessionID {
			continue
		}
		if s, ok := r.sessions[id]; ok && s.RevokedAt == nil {
			s.RevokedAt = &now
			count++
		}
	}
	return count, nil
}

func (r *memSessionRepo) RevokeAll(userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	now := time.Now().UTC()
	for _, id := range r.byUser[userID] {
		if s, ok := r.sessions[id]; ok && s.RevokedAt == nil {
			s.RevokedAt = &now
			count++
		}
	}
	return count, nil
}
