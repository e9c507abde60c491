package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/horsepowerelectrical/horsepower-api/internal/config"
	"github.com/horsepowerelectrical/horsepower-api/internal/entity"
)

func NewEmailSender(cfg config.MailConfig, templateDir string, logger zerolog.Logger) *EmailSender {
	return &EmailSender{
		Host:        cfg.Host,
		Port:        cfg.Port,
		User:        cfg.User,
		Password:    cfg.Password,
		From:        cfg.From,
		TemplateDir: templateDir,
		Logger:      logger,
	}
}

func (s *EmailSender) SendVerificationCode(to, code string, changeType entity.ChangeType) error {
	action := "password change"
	if changeType == entity.ChangeTypeEmail {
		action = "email address change"
	}

	data := VerificationCodeData{
		Action:       action,
		Instructions: fmt.Sprintf("To complete your %s, please enter the verification code below:", action),
		Code:         code,
	}

	subject := fmt.Sprintf("Verification Code for %s - Horsepower Electrical", titleCase(action))
	return s.send(to, subject, "verification_code.html", data)
}

func (s *EmailSender) SendPasswordChanged(to string) error {
	return s.send(to, "Password Changed - Horsepower Electrical", "password_changed.html", PasswordChangedData{})
}

func (s *EmailSender) send(to, subject, templateName string, data interface{}) error {
	tmplPath := filepath.Join(s.TemplateDir, templateName)
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template: %w", err)
	}

	// Development fallback: without SMTP credentials the email is only
	// logged, and the caller sees success.
	if s.Host == "" {
		s.Logger.Info().
			Str("to", to).
			Str("subject", subject).
			Str("body", body.String()).
			Msg("development email (SMTP not configured)")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email via SMTP: %w", err)
	}

	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
