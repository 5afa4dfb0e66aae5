// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/apkpin/internal/adapters/apkindex"
	_ "go.trai.ch/apkpin/internal/adapters/apko"
	_ "go.trai.ch/apkpin/internal/adapters/cas"
	_ "go.trai.ch/apkpin/internal/adapters/config"
	_ "go.trai.ch/apkpin/internal/adapters/fs"
	_ "go.trai.ch/apkpin/internal/adapters/logger"
	_ "go.trai.ch/apkpin/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/apkpin/internal/app"
	_ "go.trai.ch/apkpin/internal/engine/manager"
)
