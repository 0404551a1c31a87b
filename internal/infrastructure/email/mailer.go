package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/rpa-cotacao/internal/domain/quotation"
	"github.com/jhoicas/rpa-cotacao/pkg/config"
	"github.com/jhoicas/rpa-cotacao/pkg/logger"
)

// Mailer canal de notificación por SMTP/SSL. Un mensaje por destinatario,
// como el proceso manual que reemplaza; la falla con un destinatario no
// impide el envío a los demás.
type Mailer struct {
	cfg        config.SMTPConfig
	process    string
	recipients []string
	log        *logger.Logger
}

// NewMailer construye el notificador.
func NewMailer(cfg config.SMTPConfig, process string, recipients []string, log *logger.Logger) *Mailer {
	return &Mailer{cfg: cfg, process: process, recipients: recipients, log: log}
}

// SendReport envía el informe adjunto con el cierre de la ejecución.
func (m *Mailer) SendReport(attachmentPath string, totals quotation.Totals) error {
	subject := fmt.Sprintf("%s - Execução finalizada %s",
		m.process, time.Now().Format("02/01/2006 15:04"))
	body := fmt.Sprintf(
		"Processo %s finalizado.\n\nTotal de registros: %d\nFinalizados: %d\nCom erro: %d\n\n"+
			"O relatório com as cotações segue em anexo.",
		m.process, totals.Total, totals.Finished, totals.Errors)
	return m.send(subject, body, attachmentPath)
}

// SendFailure envía el diagnóstico de una falla fatal; screenshotPath
// adjunta, si existe, la captura del estado visual.
func (m *Mailer) SendFailure(msg string, screenshotPath string) error {
	subject := fmt.Sprintf("%s - Falha na execução %s",
		m.process, time.Now().Format("02/01/2006 15:04"))
	body := fmt.Sprintf("O processo %s foi finalizado com falha.\n\nErro: %s", m.process, msg)
	return m.send(subject, body, screenshotPath)
}

func (m *Mailer) send(subject, body, attachmentPath string) error {
	if len(m.recipients) == 0 {
		return fmt.Errorf("sin destinatarios configurados")
	}
	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	d.SSL = m.cfg.Port == 465

	var lastErr error
	for _, to := range m.recipients {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.cfg.Username)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/plain", body)
		if attachmentPath != "" {
			msg.Attach(attachmentPath)
		}
		if err := d.DialAndSend(msg); err != nil {
			m.log.Error().Err(err).Str("destinatario", to).Msg("falla enviando notificación")
			lastErr = err
			continue
		}
		m.log.Info().Str("destinatario", to).Msg("notificación enviada")
	}
	return lastErr
}
