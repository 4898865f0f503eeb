package notifying

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// Erros de validação da requisição
	ErrInvalidContentType = errors.New("request body is not JSON")
	ErrInvalidShape       = errors.New("request must have an 'accounts' key holding a list")

	// Erros de entrega
	ErrDelivery = errors.New("error delivering notification to webhook")
)

// NotifyError é um erro com contexto adicional para o fluxo de notificação
type NotifyError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
	Cause   error  // Erro de origem, quando houver
}

func (e *NotifyError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap expõe o erro base e a causa, permitindo errors.Is em qualquer um dos dois
func (e *NotifyError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

func NewNotifyError(err error, code string, details string) *NotifyError {
	return &NotifyError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
