package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/ledger-store/internal/config"
	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/storage"
)

func main() {
	logger := logging.SetupLogging()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}
	if err := logging.ApplyConfig(logger, env); err != nil {
		logrus.WithError(err).Fatal("logging.ApplyConfig")
		return
	}

	report, err := storage.NewStorage(env).Check(context.Background())
	if err != nil {
		logger.WithError(err).WithField("dataDir", env.DataDir).Fatal("storage.Check")
		return
	}

	for _, v := range report.Violations {
		logger.WithFields(logrus.Fields{
			"kind":          v.Kind,
			"accountNumber": v.AccountNumber,
		}).Warn(v.Detail)
	}

	logger.WithFields(logrus.Fields{
		"dataDir":    env.DataDir,
		"accounts":   report.Accounts,
		"entries":    report.Entries,
		"sequence":   report.Sequence,
		"violations": len(report.Violations),
	}).Info("Check status")

	if !report.OK() {
		os.Exit(1)
	}
}
