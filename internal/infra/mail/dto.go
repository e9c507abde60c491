package mail

import "github.com/rs/zerolog"

type EmailSender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
	Logger      zerolog.Logger
}

type VerificationCodeData struct {
	Action       string
	Instructions string
	Code         string
}

type PasswordChangedData struct{}
