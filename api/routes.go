package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-store/internal/handlers/legacy"
	"github.com/carson-networks/ledger-store/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-store/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-store/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-store/internal/logging"
	"github.com/carson-networks/ledger-store/internal/operator"
	"github.com/carson-networks/ledger-store/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

// Handler builds the full route table.
func (r *Rest) Handler() http.Handler {
	apiMux := http.NewServeMux()
	humaAPI := humago.New(apiMux, huma.DefaultConfig("Ledger Store", "1.0.0"))

	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewDepositHandler(r.Service.Account).Register(humaAPI)
	account.NewWithdrawHandler(r.Service.Account).Register(humaAPI)
	account.NewRemoveAccountHandler(r.Service.Account).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)

	statusHandler := status.NewHandler(r.Operator)
	legacyHandler := legacy.NewHandler(r.Service.Account, r.Service.Transaction)

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.HandleFunc("/bank", logging.LoggingWrapper("Bank", r.Logger, legacyHandler.Handler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", logging.Middleware("V1", r.Logger, apiMux))
	return mux
}

// Serve listens until ctx is cancelled, then shuts the server down gracefully.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	go func() {
		<-ctx.Done()
		r.Logger.Info("HttpServer.Serve.shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		}
	}()

	r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	}
	return nil
}
