package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/metrics-relay/infrastructure/integrator/discord/discordclient"
	"github.com/vfg2006/metrics-relay/internal/api"
	"github.com/vfg2006/metrics-relay/internal/config"
	"github.com/vfg2006/metrics-relay/internal/usecases/notifying"
	"github.com/vfg2006/metrics-relay/pkg/log"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Configuração inválida")
	}

	logFile := log.Setup(log.Options{
		Level:      cfg.App.LogLevel,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	defer logFile.Close()

	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	discordClient := discordclient.NewClient(cfg)
	notifier := notifying.NewService(discordClient, time.Now)

	server, err := api.New(cfg, notifier)
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithField("port", cfg.Server.Port).Info("Iniciando a aplicação")

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
