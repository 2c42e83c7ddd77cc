package main

import (
	"log/slog"

	"github.com/gamesquad/desktop/pkg/logging"
	"github.com/gamesquad/desktop/ui"
)

func main() {
	if err := logging.SetupFromEnv(); err != nil {
		slog.Warn("logging config ignored", "err", err)
	}
	ui.NewApp().Run()
}
