package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"edulink/internal/modules/auth/infra"
	pg "edulink/internal/modules/auth/infra/pg"
	"edulink/internal/modules/auth/service"
	plathttp "edulink/internal/platform/http"
	"edulink/internal/platform/notify"
	"edulink/internal/platform/security"
)

// Module wires up dependencies for the auth HTTP module.
type Module struct {
	svc       *service.Service
	jwtSecret []byte
}

// NewModule builds an in-memory module for local dev and tests.
func NewModule(mailer service.CodeMailer) *Module {
	secret := "dev-secret"
	svc := service.New(
		infra.NewMemUserRepo(),
		infra.NewMemChallengeRepo(),
		infra.NewMemSessionRepo(),
		security.NewJWTManager(secret, 15*time.Minute),
		mailer,
		service.Options{},
	)
	return &Module{svc: svc, jwtSecret: []byte(secret)}
}

// NewModulePG builds the production module over pgx repos.
func NewModulePG(db *pgxpool.Pool, jwtSecret string, accessTTL time.Duration, mailer *notify.Mailer, opts service.Options) *Module {
	if accessTTL == 0 {
		accessTTL = 15 * time.Minute
	}
	svc := service.New(
		pg.NewUserRepo(db),
		pg.NewChallengeRepo(db),
		pg.NewSessionRepo(db),
		security.NewJWTManager(jwtSecret, accessTTL),
		mailer,
		opts,
	)
	return &Module{svc: svc, jwtSecret: []byte(jwtSecret)}
}

// Service exposes the wired service for tests.
func (m *Module) Service() *service.Service { return m.svc }

func (m *Module) Register(r fiber.Router) {
	auth := r.Group("/auth")

	// -------- public --------
	auth.Post("/register", RegisterHandler(m.svc))
	auth.Post("/login", LoginHandler(m.svc))
	auth.Post("/verify-2fa", Verify2FAHandler(m.svc))
	auth.Post("/resend-2fa", Resend2FAHandler(m.svc))
	auth.Post("/google", GoogleSignInHandler(m.svc))
	auth.Post("/refresh", RefreshHandler(m.svc))
	auth.Post("/forgot-password", ForgotPasswordHandler(m.svc))
	auth.Post("/reset-password", ResetPasswordHandler(m.svc))
	auth.Post("/password-strength", PasswordStrengthHandler())

	// -------- protected --------
	protected := auth.Group("", plathttp.JWTAuth(m.jwtSecret))
	protected.Post("/enable-2fa", Enable2FAHandler(m.svc))
	protected.Post("/disable-2fa", Disable2FAHandler(m.svc))
	protected.Post("/logout", LogoutHandler(m.svc))
	protected.Get("/me", GetProfileHandler(m.svc))
	protected.Patch("/me", UpdateProfileHandler(m.svc))
	protected.Get("/devices", ListDevicesHandler(m.svc))
	protected.Delete("/devices/others", DeleteOtherDevicesHandler(m.svc))
	protected.Delete("/devices/:device_id", DeleteDeviceHandler(m.svc))
}
