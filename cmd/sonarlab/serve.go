package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/san-kum/sonarlab/internal/catalog"
	"github.com/san-kum/sonarlab/internal/observability"
	"github.com/san-kum/sonarlab/internal/server"
)

const shutdownTimeout = 10 * time.Second

func serve(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Server.Addr = addr
	}

	st, err := openStore()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	formulas := catalog.Default()
	router := server.SetupRouter(server.Deps{
		Registry: formulas,
		Config:   cfg,
		Store:    st,
		Log:      log,
		Metrics:  metrics,
		Gatherer: reg,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	log.WithField("addr", cfg.Server.Addr).
		WithField("formulas", formulas.Len()).
		WithField("data", st.Dir()).
		Info("server listening")

	select {
	case <-cmd.Context().Done():
	case err := <-errCh:
		return err
	}
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
