package handler

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/metrics-relay/internal/usecases/notifying"
	"github.com/vfg2006/metrics-relay/pkg/apiErrors"
	"github.com/vfg2006/metrics-relay/pkg/log"
	"github.com/vfg2006/metrics-relay/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxBodyBytes = 1 << 20

	msgReceived           = "データを正常に受信し、Discordに送信しました"
	msgInvalidContentType = "リクエストはJSON形式である必要があります"
	msgInvalidShape       = "データは'accounts'キーを持つ必要があり、その値はリストである必要があります"
	msgDeliveryFailed     = "Discordへの送信に失敗しました"
)

type ReceiveDataResponse struct {
	Message string `json:"message"`
}

// ReceiveData valida o payload de métricas e repassa ao Discord de forma síncrona
func ReceiveData(service notifying.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			logger.WithError(err).Warn("Não foi possível ler o corpo da requisição")
			apiErrors.WriteError(w, apiErrors.ErrInvalidContentType, msgInvalidContentType)
			return
		}

		records, err := notifying.ParseRequest(r.Header.Get("Content-Type"), body)
		if err != nil {
			var notifyErr *notifying.NotifyError
			if !errors.As(err, &notifyErr) {
				logger.WithError(err).Error("Erro inesperado ao validar requisição")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error())
				return
			}

			if errors.Is(err, notifying.ErrInvalidContentType) {
				logger.WithError(err).Warn("Requisição recebida não é JSON")
				apiErrors.WriteError(w, notifyErr.Code, msgInvalidContentType)
				return
			}

			logger.WithField("payload", utils.CompactJSON(body)).Info("Dados recebidos")
			logger.WithError(err).Warn("Dados recebidos não estão no formato esperado")
			apiErrors.WriteError(w, notifyErr.Code, msgInvalidShape)
			return
		}

		logger.WithField("payload", utils.CompactJSON(body)).Info("Dados recebidos")

		if err := service.NotifyAccounts(r.Context(), records); err != nil {
			code := apiErrors.ErrDeliveryFailed
			var notifyErr *notifying.NotifyError
			if errors.As(err, &notifyErr) {
				code = notifyErr.Code
			}

			logger.WithError(err).Error("Erro ao repassar dados ao Discord")
			apiErrors.WriteError(w, code, msgDeliveryFailed)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(ReceiveDataResponse{Message: msgReceived}); err != nil {
			logger.WithError(err).Error("Erro ao codificar resposta")
		}
	})
}
