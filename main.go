package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/ledger-store/api"
	"github.com/carson-networks/ledger-store/internal/config"
	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/operator"
	"github.com/carson-networks/ledger-store/internal/service"
	"github.com/carson-networks/ledger-store/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("ledger-store starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	if err := logging.ApplyConfig(logger, envConfig); err != nil {
		logrus.WithError(err).Fatal("logging.ApplyConfig")
		return
	}

	fileStorage := storage.NewStorage(envConfig)
	delegator := operator.NewOperatorDelegator(fileStorage, envConfig.QueueSize)
	delegator.Start()
	svc := service.NewService(fileStorage, delegator)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		return httpRest.Serve(groupCtx)
	})

	err = group.Wait()
	delegator.Stop()
	if err != nil {
		logger.WithError(err).Fatal("ledger-store stopped")
	}
	logger.Info("ledger-store stopped")
}
