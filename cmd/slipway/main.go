package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/slipway/internal/bootstrap"
	"github.com/MKhiriev/slipway/internal/config"
	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("slipway")
	cfg, err := config.GetDeployConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	deployment := cfg.Resolve()
	if err = deployment.ExportEnv(); err != nil {
		log.Fatal().Err(err).Msg("error exporting deployment environment")
	}

	log.Debug().Any("deployment", deployment).Msg("resolved deployment")

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ctx := log.WithContext(context.Background())

	switch deployment.Invoke {
	case config.InvokeEnv:
		err = bootstrap.RunFromEnv(ctx, build, deployment.AppPath, deployment.Hello)
	default:
		opts := bootstrap.FromDeployment(*deployment)
		opts.Build = build
		err = bootstrap.Run(ctx, deployment.AppPath, opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("launch failed")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
