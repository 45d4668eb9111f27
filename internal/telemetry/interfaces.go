// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package telemetry reports anonymous usage statistics for deployments that
// have explicitly opted in.
//
// The primary abstraction is [Reporter], which decouples the runtime from the
// delivery transport. The package ships an HTTP implementation ([NewReporter])
// that posts events to the configured statistics endpoint, and a no-op
// implementation ([Nop]) for the opted-out path.
//
// Delivery is fire and forget: [Heartbeat] logs failures at debug level and
// keeps going, so an unreachable statistics sink never affects the hosted
// application.
package telemetry

import (
	"context"

	"github.com/MKhiriev/slipway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/reporter_mock.go -package=mock

// Reporter delivers usage events to a statistics sink. Implementations are
// responsible for serialisation and for mapping transport-level failures to
// errors.
type Reporter interface {
	// Report delivers a single usage event. It returns an error if the event
	// could not be delivered; callers decide whether the failure is worth
	// acting on.
	Report(ctx context.Context, event models.UsageEvent) error
}
