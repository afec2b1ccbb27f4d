package main

import (
	"os"

	"github.com/TomTonic/numrand/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Logger.Error().Stack().Err(err).Msg("numrand failed")
		os.Exit(1)
	}
}
