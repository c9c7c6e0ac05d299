package service

import (
	"context"
	"strconv"

	"edulink/internal/modules/auth/domain"
	"edulink/internal/platform/security"
	"edulink/internal/validate"
)

// RegisterParams are the raw form values as submitted. Age arrives as
// a string and is coerced by the validation engine.
type RegisterParams struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	Age             string
}

func registerRules() map[string]validate.FieldRule {
	return map[string]validate.FieldRule{
		"name":             {Kind: validate.FieldName, Required: true},
		"email":            {Kind: validate.FieldEmail, Required: true},
		"password":         {Kind: validate.FieldPassword, Required: true},
		"confirm_password": {Kind: validate.FieldConfirmPassword, Required: true},
		"age":              {Kind: validate.FieldAge, Required: true},
	}
}

// Register creates an account and signs it in immediately. Either every
// field passes the validation engine and the account persists, or
// nothing is written.
func (s *Service) Register(ctx context.Context, p RegisterParams, dev DeviceInfo) (*Session, error) {
	if p.ConfirmPassword == "" {
		p.ConfirmPassword = p.Password
	}

	form := validate.Form(map[string]string{
		"name":             p.Name,
		"email":            p.Email,
		"password":         p.Password,
		"confirm_password": p.ConfirmPassword,
		"age":              p.Age,
	}, registerRules())

	role := domain.Role(p.Role)
	if !domain.ValidRole(role) {
		form.Valid = false
		form.Errors["role"] = append(form.Errors["role"], "Role must be one of student, tutor or admin")
	}

	if !form.Valid {
		return nil, &ValidationError{Fields: form.Errors}
	}

	email := form.Sanitized["email"]
	exists, err := s.users.ExistsByEmail(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := security.HashPassword(p.Password)
	if err != nil {
		return nil, err
	}
	age, _ := strconv.Atoi(form.Sanitized["age"])

	u, err := s.users.Create(domain.CreateUserParams{
		Name:         form.Sanitized["name"],
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
		Age:          age,
		Provider:     domain.ProviderLocal,
	})
	if err != nil {
		return nil, err
	}

	return s.issueSession(u, dev)
}

// UpdateProfile runs the engine over whichever fields are present.
func (s *Service) UpdateProfile(ctx context.Context, userID string, name *string, ageRaw *string) error {
	fields := map[string][]string{}

	var sanitizedName *string
	if name != nil {
		v := validate.Name(*name)
		if !v.Valid {
			fields["name"] = v.Errors
		} else {
			sanitizedName = &v.Sanitized
		}
	}

	var age *int
	if ageRaw != nil {
		v := validate.Age(*ageRaw)
		if !v.Valid {
			fields["age"] = v.Errors
		} else {
			age = &v.Value
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	if sanitizedName == nil && age == nil {
		return nil
	}
	return s.users.UpdateProfile(userID, sanitizedName, age)
}

// Profile returns the account for an authenticated user id.
func (s *Service) Profile(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil || u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}
