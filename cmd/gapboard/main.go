package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/gapboard/gapboard/config"
	"github.com/gapboard/gapboard/dataset"
	"github.com/gapboard/gapboard/engine"
	"github.com/gapboard/gapboard/web"
)

var version = "dev"

// configPath is fixed: the server takes no flags. An absent file means
// built-in defaults, so the binary runs as-is.
const configPath = "gapboard.yaml"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}

	ds, err := loadDataset(cfg)
	if err != nil {
		// Startup failure is fatal: the process does not start serving.
		logrus.WithError(err).Fatal("load dataset")
	}

	defaults := engine.WidgetState{
		Rows:        cfg.Defaults.Rows,
		XField:      dataset.Field(cfg.Defaults.XField),
		YField:      dataset.Field(cfg.Defaults.YField),
		Country:     cfg.Defaults.Country,
		Year:        cfg.Defaults.Year,
		MapVariable: dataset.Field(cfg.Defaults.Variable),
		Continent:   cfg.Defaults.Continent,
	}.Normalize(ds)

	srv := web.NewServer(web.ServerConfig{
		Addr:     fmt.Sprintf(":%d", cfg.Port),
		Dataset:  ds,
		Defaults: defaults,
		Bindings: engine.Bindings(),
		Version:  version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.WithField("addr", "http://localhost"+srv.Addr).Info("dashboard listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("http server error")
			stop()
		}
	}()

	<-ctx.Done()

	shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logrus.Info("shutting down")
	_ = srv.Shutdown(shCtx)
}

func loadDataset(cfg *config.Config) (*dataset.Dataset, error) {
	if cfg.Dataset.File != "" {
		return dataset.LoadFile(cfg.Dataset.File)
	}
	url := cfg.Dataset.URL
	if url == "" {
		url = dataset.DefaultURL
	}
	timeout := time.Duration(cfg.Dataset.FetchTimeoutMS) * time.Millisecond
	return dataset.Fetch(context.Background(), url, timeout)
}
