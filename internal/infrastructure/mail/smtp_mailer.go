// Package mail implementa el envío de alertas de stock bajo por SMTP usando gomail.
package mail

import (
	"fmt"

	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	gomail "gopkg.in/gomail.v2"
)

// SMTPMailer envía correos de alerta vía SMTP. Si el host está vacío, las
// alertas solo se registran en el log (modo desarrollo).
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// SendLowStockAlert envía el aviso de stock bajo al dueño del inventario.
func (m *SMTPMailer) SendLowStockAlert(recipient, productName string, quantity, minimum int64) error {
	subject := fmt.Sprintf("Alerta de stock bajo: %s", productName)
	body := fmt.Sprintf(
		"El stock del producto %q está por debajo del mínimo.\n\n"+
			"Cantidad actual: %d\nMínimo configurado: %d\n\n"+
			"Reponga existencias para seguir registrando ventas.",
		productName, quantity, minimum,
	)

	if m.cfg.Host == "" {
		m.log.Info().
			Str("recipient", recipient).
			Str("product", productName).
			Int64("quantity", quantity).
			Int64("minimum", minimum).
			Msg("SMTP no configurado; alerta de stock bajo solo registrada")
		return nil
	}

	msg := gomail.NewMessage()
	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar alerta de stock bajo: %w", err)
	}
	return nil
}
