package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-med-reminder/internal/alarm"
	"github.com/MKhiriev/go-med-reminder/internal/client"
	"github.com/MKhiriev/go-med-reminder/internal/config"
	"github.com/MKhiriev/go-med-reminder/internal/logger"
	"github.com/MKhiriev/go-med-reminder/internal/notification"
	"github.com/MKhiriev/go-med-reminder/internal/service"
	"github.com/MKhiriev/go-med-reminder/internal/store"
	"github.com/MKhiriev/go-med-reminder/internal/tui"
	"github.com/MKhiriev/go-med-reminder/internal/utils"
	"github.com/MKhiriev/go-med-reminder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("medreminder", cfg.Log.FilePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	notifier := notification.NewNotifier(utils.NewUUIDGenerator(), log)
	facility := alarm.NewTimerFacility(notifier, log, alarm.WithExactAlarmsDenied(cfg.App.ExactAlarmsDenied))
	defer facility.Close()

	services := service.NewClientServices(storages, facility, cfg, log)

	ui, err := tui.New(services, notifier, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
