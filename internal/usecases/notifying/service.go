package notifying

import (
	"context"
	"time"

	"github.com/vfg2006/metrics-relay/infrastructure/integrator/discord/discordclient"
	"github.com/vfg2006/metrics-relay/internal/domain"
	"github.com/vfg2006/metrics-relay/pkg/apiErrors"
	"github.com/vfg2006/metrics-relay/pkg/log"
	"github.com/vfg2006/metrics-relay/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

type Notifier interface {
	NotifyAccounts(ctx context.Context, records []domain.AccountMetricRecord) error
}

type Service struct {
	client discordclient.Client
	now    func() time.Time
}

func NewService(client discordclient.Client, now func() time.Time) Notifier {
	if now == nil {
		now = time.Now
	}

	return &Service{
		client: client,
		now:    now,
	}
}

// NotifyAccounts formata os registros numa única mensagem e faz exatamente um envio ao webhook.
// Não há nova tentativa em caso de falha.
func (s *Service) NotifyAccounts(ctx context.Context, records []domain.AccountMetricRecord) error {
	deliveryID, err := utils.GenerateID()
	if err != nil {
		deliveryID = "unknown"
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"delivery_id": deliveryID,
		"accounts":    len(records),
	})

	content := BuildMessage(s.now(), records)

	logger.Infof("Enviando dados de %d conta(s) para o Discord", len(records))

	if err := s.client.Send(ctx, discordclient.WebhookMessage{Content: content}); err != nil {
		logger.WithError(err).Error("Falha ao enviar para o Discord")

		notifyErr := NewNotifyError(ErrDelivery, apiErrors.ErrDeliveryFailed, err.Error())
		notifyErr.Cause = err
		return notifyErr
	}

	logger.Info("Envio para o Discord concluído com sucesso")
	return nil
}
