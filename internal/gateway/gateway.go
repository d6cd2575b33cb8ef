package gateway

import "context"

// IntentRequest es lo mínimo que la pasarela necesita para crear un
// intento de pago; amount viaja en unidades menores (centavos).
type IntentRequest struct {
	Amount   int64
	Currency string
	OrderID  string
	UserID   string
}

// Intent es la referencia devuelta por la pasarela. La confirmación
// del lado cliente y los webhooks quedan fuera de este sistema.
type Intent struct {
	TransactionID string
	ClientSecret  string
}

// PaymentGateway abstrae la pasarela externa; los servicios dependen
// solo de esta interfaz.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}

// Error envuelve un fallo de la pasarela conservando su mensaje para
// que el handler lo exponga tal cual.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return "payment gateway: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
