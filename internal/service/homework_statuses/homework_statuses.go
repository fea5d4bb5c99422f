package homework_statuses

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ilyadubrovsky/homework-bot/internal/config"
	"github.com/ilyadubrovsky/homework-bot/internal/config/answers"
	"github.com/ilyadubrovsky/homework-bot/internal/domain"
	ierrors "github.com/ilyadubrovsky/homework-bot/internal/errors"
	"github.com/ilyadubrovsky/homework-bot/internal/homework"
	"github.com/ilyadubrovsky/homework-bot/internal/service"
	"github.com/ilyadubrovsky/homework-bot/pkg/practicum"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
)

const errorNotificationKey = "error_notification"

type svc struct {
	telegramSvc        service.Telegram
	practicumClient    practicum.Client
	errorNotifications *ttlcache.Cache[string, struct{}]
	state              *domain.PollState
	cfg                config.Practicum
}

// NewService prepares the poller. errorNotifications remembers that the
// operator was already told about a failure; an entry without TTL means
// the operator is told once per process.
func NewService(
	telegramSvc service.Telegram,
	practicumClient practicum.Client,
	errorNotifications *ttlcache.Cache[string, struct{}],
	cfg config.Practicum,
) *svc {
	return &svc{
		telegramSvc:        telegramSvc,
		practicumClient:    practicumClient,
		errorNotifications: errorNotifications,
		state: &domain.PollState{
			FromDate: time.Now().Add(-cfg.LookbackWindow).Unix(),
		},
		cfg: cfg,
	}
}

// Start polls until ctx is done. The first poll happens immediately.
func (s *svc) Start(ctx context.Context) {
	log.Info().
		Int64("from_date", s.state.FromDate).
		Dur("retry_period", s.cfg.RetryPeriod()).
		Msg("start homework statuses poller")

	for {
		s.poll(ctx)

		select {
		case <-time.After(s.cfg.RetryPeriod()):
		case <-ctx.Done():
			log.Info().Msg("homework statuses poller stopped")
			return
		}
	}
}

func (s *svc) poll(ctx context.Context) {
	err := s.checkStatus(ctx)
	if errors.Is(err, ierrors.ErrNoHomeworks) {
		log.Debug().Msg("no homework updates")
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			log.Debug().Msgf("poll interrupted: %v", err)
			return
		}

		log.Error().Msgf("checkStatus: %v", err.Error())
		s.notifyError(err)
	}
}

func (s *svc) checkStatus(ctx context.Context) error {
	document, err := s.practicumClient.HomeworkStatuses(ctx, s.state.FromDate)
	if err != nil {
		return fmt.Errorf("practicumClient.HomeworkStatuses: %w", err)
	}

	record, err := homework.CheckResponse(document)
	if err != nil {
		return fmt.Errorf("homework.CheckResponse: %w", err)
	}

	status := record.Status()
	if status != "" && status == s.state.LastKnownStatus {
		log.Debug().Str("status", string(status)).Msg("homework status has not changed")
		return nil
	}

	message, err := homework.ParseStatus(record)
	if err != nil {
		return fmt.Errorf("homework.ParseStatus: %w", err)
	}

	log.Info().
		Str("old_status", string(s.state.LastKnownStatus)).
		Str("new_status", string(status)).
		Msg("homework status changed")
	s.state.LastKnownStatus = status

	if sendErr := s.telegramSvc.SendMessage(message); sendErr != nil {
		// the status is already recorded, the change is lost for the operator
		log.Error().
			Str("status", string(status)).
			Msg("sending homework status change failed")
	}

	return nil
}

func (s *svc) notifyError(err error) {
	item := s.errorNotifications.Get(
		errorNotificationKey,
		ttlcache.WithDisableTouchOnHit[string, struct{}](),
	)
	if item != nil && !item.IsExpired() {
		log.Debug().Msg("error notification was already sent")
		return
	}

	if sendErr := s.telegramSvc.SendMessage(fmt.Sprintf(answers.BotError, err)); sendErr != nil {
		log.Error().Msg("sending error notification failed")
		return
	}

	s.errorNotifications.Set(errorNotificationKey, struct{}{}, ttlcache.DefaultTTL)
}
