package handler

import (
	"net/http"

	"github.com/vfg2006/metrics-relay/internal/api/handler/router"
	"github.com/vfg2006/metrics-relay/internal/usecases/notifying"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Relay(service notifying.Notifier) []router.Route {
	return []router.Route{
		{
			Path:    "/receive_data",
			Method:  http.MethodPost,
			Handler: ReceiveData(service),
		},
	}
}
