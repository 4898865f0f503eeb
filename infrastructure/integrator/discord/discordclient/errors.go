package discordclient

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrDelivery indica que o webhook não aceitou a mensagem
var ErrDelivery = errors.New("discord webhook delivery failed")

// DeliveryError carrega o status e o corpo devolvidos pelo webhook.
// StatusCode é 0 quando a falha ocorreu no transporte.
type DeliveryError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", ErrDelivery.Error(), e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: status %d: %s", ErrDelivery.Error(), e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: status %d", ErrDelivery.Error(), e.StatusCode)
}

// Is permite errors.Is(err, ErrDelivery)
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
