// Package notify despacha alertas de stock bajo fuera de la transacción de venta:
// las encola en un canal y un worker las entrega. Un fallo de entrega se
// registra en el log y nunca afecta la operación que lo originó.
package notify

import (
	"sync"

	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

var _ sales.LowStockNotifier = (*Dispatcher)(nil)

// AlertSender entrega una alerta de stock bajo (SMTP u otro canal).
type AlertSender interface {
	SendLowStockAlert(recipient, productName string, quantity, minimum int64) error
}

type alert struct {
	recipient   string
	productName string
	quantity    int64
	minimum     int64
}

// Dispatcher implementa sales.LowStockNotifier con un canal y un worker.
type Dispatcher struct {
	sender AlertSender
	log    *logger.Logger

	ch   chan alert
	wg   sync.WaitGroup
	once sync.Once
}

// NewDispatcher construye el dispatcher y arranca el worker.
func NewDispatcher(sender AlertSender, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		log:    log,
		ch:     make(chan alert, 64),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// NotifyLowStock encola la alerta. Si la cola está llena, la alerta se descarta
// con un warning: nunca bloquea al productor.
func (d *Dispatcher) NotifyLowStock(recipient, productName string, quantity, minimum int64) {
	a := alert{recipient: recipient, productName: productName, quantity: quantity, minimum: minimum}
	select {
	case d.ch <- a:
	default:
		d.log.Warn().
			Str("product", productName).
			Msg("cola de alertas llena; alerta de stock bajo descartada")
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for a := range d.ch {
		if err := d.sender.SendLowStockAlert(a.recipient, a.productName, a.quantity, a.minimum); err != nil {
			d.log.Error().Err(err).
				Str("recipient", a.recipient).
				Str("product", a.productName).
				Msg("fallo al enviar alerta de stock bajo")
		}
	}
}

// Close cierra la cola y espera a que el worker drene las alertas pendientes.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.ch)
	})
	d.wg.Wait()
}
