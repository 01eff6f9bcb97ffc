package notifications

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/hasansisik/kurstanbul-kos-server/domain"
)

// SMTPMailer implements domain.Mailer over plain SMTP with STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// NewSMTPMailer creates the transactional email dispatcher.
func NewSMTPMailer(host string, port int, username, password, from, fromName string) domain.Mailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// SendVerificationEmail implements domain.Mailer
func (m *SMTPMailer) SendVerificationEmail(name, email string, code int) error {
	body := fmt.Sprintf("<h4>Merhaba, %s</h4><p>Doğrulama kodunuz: %d</p>", name, code)
	return m.send(email, "Kurstanbul Mail Doğrulama", body)
}

// SendResetPasswordEmail implements domain.Mailer
func (m *SMTPMailer) SendResetPasswordEmail(name, email string, code int) error {
	body := fmt.Sprintf("<h4>Merhaba, %s</h4><p>Şifre Sıfırlama Kodunuz: %d</p>", name, code)
	return m.send(email, "Şifre Sıfırla", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	// Without credentials, log instead of sending.
	if m.host == "" || m.username == "" {
		log.Printf("[MOCK EMAIL] to=%s subject=%q body=%q", to, subject, htmlBody)
		return nil
	}

	fromHeader := fmt.Sprintf("%s <%s>", m.fromName, m.from)
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := m.sendWithTimeout(to, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("[MAIL] sent to=%s", to)
	return nil
}

func (m *SMTPMailer) sendWithTimeout(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := c.Auth(auth); err != nil {
		return err
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
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
