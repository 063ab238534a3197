// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tapplan/internal/adapters/brew"
	_ "go.trai.ch/tapplan/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/tapplan/internal/app"
)
