// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pinpoint/internal/adapters/cas"
	_ "go.trai.ch/pinpoint/internal/adapters/config"
	_ "go.trai.ch/pinpoint/internal/adapters/fs"
	_ "go.trai.ch/pinpoint/internal/adapters/linear"
	_ "go.trai.ch/pinpoint/internal/adapters/logger"
	_ "go.trai.ch/pinpoint/internal/adapters/metrics"
	_ "go.trai.ch/pinpoint/internal/adapters/shell"
	_ "go.trai.ch/pinpoint/internal/adapters/sourcemap"
	_ "go.trai.ch/pinpoint/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/pinpoint/internal/app"
	_ "go.trai.ch/pinpoint/internal/engine/contentcache"
	_ "go.trai.ch/pinpoint/internal/engine/scheduler"
	_ "go.trai.ch/pinpoint/internal/engine/translator"
)
