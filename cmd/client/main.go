package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-cipher-drop/internal/adapter"
	"github.com/MKhiriev/go-cipher-drop/internal/client"
	"github.com/MKhiriev/go-cipher-drop/internal/config"
	"github.com/MKhiriev/go-cipher-drop/internal/logger"
	"github.com/MKhiriev/go-cipher-drop/internal/tui"
	"github.com/MKhiriev/go-cipher-drop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("cipher-client")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("build info")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	cipherAdapter, err := adapter.NewCipherAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}
	defer cipherAdapter.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(cipherAdapter, tui.New(), cfg.Options, log)
	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
		log.Error().Err(err).Msg("request failed")
		stop()
		cipherAdapter.Close()
		os.Exit(1)
	}
}
