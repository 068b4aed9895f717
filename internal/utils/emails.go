package utils

import (
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// Mailer sends notification e-mails over SMTP. Delivery is best effort;
// failures are logged and never surfaced to the request that triggered
// them.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	logger   zerolog.Logger
}

func NewMailer(host string, port int, username, password string, logger zerolog.Logger) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		logger:   logger,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.username)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(mailer)
}

// NotifyDecision e-mails the student when their enrollment is approved or
// rejected. Runs in its own goroutine so the deciding request never waits
// on SMTP.
func (m *Mailer) NotifyDecision(user *models.User, e *models.Enrollment) {
	subject := fmt.Sprintf("Your %s enrollment has been %s", e.Subject, e.Status)
	body := fmt.Sprintf(`
	<html>
	<body>
		<p>Hi %s,</p>
		<p>Your enrollment request for <strong>%s</strong> (%d/%d) has been <strong>%s</strong>.</p>
		<p>&copy; Edu-Nest Learning Platform</p>
	</body>
	</html>`, user.FirstName, e.Subject, e.Month, e.Year, e.Status)

	go func() {
		if err := m.send(user.Email, subject, body); err != nil {
			m.logger.Warn().Err(err).
				Str("to", user.Email).
				Msg("failed to send decision notification")
			return
		}
		m.logger.Info().Str("to", user.Email).Msg("decision notification sent")
	}()
}
