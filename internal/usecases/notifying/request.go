package notifying

import (
	"bytes"
	"fmt"
	"mime"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/metrics-relay/internal/domain"
	"github.com/vfg2006/metrics-relay/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseRequest valida o Content-Type e o formato do corpo e devolve os registros de contas.
// Retorna ErrInvalidContentType quando o corpo não é JSON e ErrInvalidShape quando
// falta a chave 'accounts' ou ela não é uma lista de objetos.
func ParseRequest(contentType string, body []byte) ([]domain.AccountMetricRecord, error) {
	if !IsJSONContentType(contentType) {
		return nil, NewNotifyError(ErrInvalidContentType, apiErrors.ErrInvalidContentType, "content-type "+quote(contentType))
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		e := NewNotifyError(ErrInvalidContentType, apiErrors.ErrInvalidContentType, "malformed JSON body")
		e.Cause = err
		return nil, e
	}

	if _, isObject := parsed.(map[string]interface{}); !isObject {
		return nil, NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "body is not a JSON object")
	}

	var envelope map[string]jsoniter.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "body is not a JSON object")
	}

	raw, ok := envelope["accounts"]
	if !ok {
		return nil, NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "missing 'accounts'")
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "'accounts' is not a list")
	}

	// Cada item precisa ser um objeto; null e valores escalares são rejeitados
	var items []jsoniter.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		e := NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "'accounts' is not a list")
		e.Cause = err
		return nil, e
	}
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, fmt.Sprintf("account record %d is not an object", i))
		}
	}

	request := domain.ReceiveDataRequest{Accounts: make([]domain.AccountMetricRecord, 0, len(items))}
	if err := json.Unmarshal(body, &request); err != nil {
		e := NewNotifyError(ErrInvalidShape, apiErrors.ErrInvalidShape, "invalid account record")
		e.Cause = err
		return nil, e
	}

	return request.Accounts, nil
}

// IsJSONContentType aceita application/json e tipos application/*+json
func IsJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

func quote(s string) string {
	if s == "" {
		return "<empty>"
	}
	return "'" + s + "'"
}
