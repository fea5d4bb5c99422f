package main

import (
	"io"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/pkg/logging"
)

func initLogger(cfg config.Log) (io.Closer, error) {
	return logging.Setup(cfg.File, cfg.Level)
}
