package handler

import (
	"time"

	"github.com/MKhiriev/slipway/internal/logger"
	"github.com/MKhiriev/slipway/models"
)

type Handler struct {
	build      models.AppBuildInfo
	instanceID string
	appPath    string
	hello      bool
	startedAt  time.Time

	logger *logger.Logger
}

func NewHandler(build models.AppBuildInfo, instanceID, appPath string, hello bool, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		build:      build,
		instanceID: instanceID,
		appPath:    appPath,
		hello:      hello,
		startedAt:  time.Now(),
		logger:     logger,
	}
}
