package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/service/homework_statuses"
	"github.com/ilyadubrovsky/homework-bot/internal/service/telegram"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, ".env")
	stop()

	os.Exit(code)
}

// run returns the process exit code. Missing credentials and a cancelled
// ctx are a normal shutdown.
func run(ctx context.Context, envFile string) int {
	cfg, err := config.NewConfig(envFile)
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Msgf("cant initialize config: %v\n%s", err, config.Description())
		return 1
	}

	logFile, err := initLogger(cfg.Log)
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Msgf("cant initialize logger: %v", err)
		return 1
	}
	defer logFile.Close()

	if err = cfg.MissingCredentials(); err != nil {
		log.WithLevel(zerolog.FatalLevel).Msg(err.Error())
		log.Info().Msg("bot stopped")
		return 0
	}

	telegramSvc, err := telegram.NewService(cfg.Telegram)
	if err != nil {
		log.WithLevel(zerolog.FatalLevel).Msgf("cant create telegram bot: %v", err)
		return 1
	}

	practicumClient := practicum.NewClient(
		cfg.Practicum.Endpoint,
		cfg.Practicum.Token,
		cfg.Practicum.RequestTimeout,
	)

	errorNotifications := ttlcache.New[string, struct{}](
		ttlcache.WithTTL[string, struct{}](cfg.Practicum.ErrorNotifyCooldown),
	)

	homeworkStatusesSvc := homework_statuses.NewService(
		telegramSvc,
		practicumClient,
		errorNotifications,
		cfg.Practicum,
	)

	log.Info().Msg("bot started")
	homeworkStatusesSvc.Start(ctx)

	log.Info().Msg("bot stopped")
	return 0
}
