// Package mailer envia os relatórios renderizados por SMTP
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/config"
)

type SMTPMailer struct {
	cfg config.SMTP
}

func NewSMTPMailer(cfg config.SMTP) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send envia um corpo HTML aos destinatários. Com o envio desabilitado na
// configuração, apenas registra a mensagem (modo local).
func (m *SMTPMailer) Send(to []string, subject string, htmlBody string) error {
	if len(to) == 0 {
		return errors.New("nenhum destinatário informado")
	}

	if !m.cfg.Enabled {
		logrus.WithFields(logrus.Fields{
			"to":      strings.Join(to, ", "),
			"subject": subject,
		}).Info("Envio de e-mail desabilitado por configuração, mensagem descartada")
		return nil
	}

	message := buildMessage(m.cfg.From, to, subject, htmlBody)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	address := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)

	if err := smtp.SendMail(address, auth, m.cfg.From, to, message); err != nil {
		return errors.Wrapf(err, "erro ao enviar e-mail para %s", strings.Join(to, ", "))
	}

	logrus.WithFields(logrus.Fields{
		"to":      strings.Join(to, ", "),
		"subject": subject,
	}).Info("E-mail enviado com sucesso")

	return nil
}

// buildMessage monta a mensagem MIME com corpo HTML
func buildMessage(from string, to []string, subject string, htmlBody string) []byte {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: %s\r\n", from))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ", ")))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(htmlBody)

	return []byte(builder.String())
}
