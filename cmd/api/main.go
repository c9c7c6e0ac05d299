package main

import (
	"context"
	"log"

	"edulink/internal/db"
	"edulink/internal/modules/auth/service"
	"edulink/internal/platform/config"
	phttp "edulink/internal/platform/http"
	"edulink/internal/platform/notify"

	authhttp "edulink/internal/modules/auth/http"
)

func main() {
	cfg := config.Load()

	if err := db.Migrate(context.Background(), cfg.PGDSN); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	dbpool := db.MustOpen(cfg.PGDSN)
	defer dbpool.Close()

	mailer := notify.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if cfg.Env != "production" {
		mailer.InsecureSkipVerify = true
	}

	authModule := authhttp.NewModulePG(dbpool, cfg.JWTSecret, cfg.AccessTTL, mailer, service.Options{
		OTPTTL:   cfg.OTPTTL,
		ResetTTL: cfg.ResetTTL,
		Cooldown: cfg.ResendCooldown,
	})
	app := phttp.NewServer(phttp.Options{AppName: "edulink-auth"}, authModule)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
