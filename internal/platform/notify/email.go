package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	// Skip TLS certificate verification; only for local dev (MailHog).
	InsecureSkipVerify bool
}

func NewMailer(host string, port int, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// send delivers a single HTML message over SMTP. Works against MailHog
// (no auth, optional STARTTLS) and regular servers (PlainAuth).
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	var sb strings.Builder
	sb.WriteString("From: " + m.from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)

	dialer := &net.Dialer{Timeout: 5 * time.Second}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}
	addr := net.JoinHostPort(m.host, strconv.Itoa(m.port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if err := c.Hello("localhost"); err != nil {
		return err
	}

	if ok, _ := c.Extension("STARTTLS"); ok {
		cfg := &tls.Config{
			ServerName:         m.host,
			InsecureSkipVerify: m.InsecureSkipVerify,
		}
		if err := c.StartTLS(cfg); err != nil {
			return err
		}
		// refresh extension list after the TLS upgrade
		if err := c.Hello("localhost"); err != nil {
			return err
		}
	}

	if m.user != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", m.user, m.pass, m.host)
			if err := c.Auth(auth); err != nil {
				return err
			}
		}
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(sb.String())); err != nil {
		return err
	}
	return w.Close()
}

func (m *Mailer) SendLoginCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(
		`<h2>Sign-in verification</h2><p>Your EduLink verification code is <b>%s</b>.</p><p>It expires in 10 minutes. If you did not try to sign in, you can ignore this email.</p>`, code)
	return m.send(ctx, to, "Your EduLink sign-in code", body)
}

func (m *Mailer) SendResetCode(ctx context.Context, to, code string) error {
	body := fmt.Sprintf(
		`<h2>Password recovery</h2><p>Your EduLink recovery code is <b>%s</b>.</p><p>It expires in 1 hour.</p>`, code)
	return m.send(ctx, to, "Reset your EduLink password", body)
}
