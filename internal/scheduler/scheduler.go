package scheduler

import (
	"context"
	"tourbase/config"
	"tourbase/infras/otel"
	"tourbase/internal/domains/calendarsync/service"
	"tourbase/shared/constant"

	"github.com/robfig/cron/v3"

	"github.com/rs/zerolog/log"
)

// Scheduler runs the periodic reconciliation of every active calendar sync.
type Scheduler struct {
	cron         *cron.Cron
	calendarSync service.CalendarSync
	config       *config.Config
	otel         otel.Otel
}

func New(calendarSync service.CalendarSync, config *config.Config, otel otel.Otel) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		calendarSync: calendarSync,
		config:       config,
		otel:         otel,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.config.Sync.CronSpec, s.runSyncAll)
	if err != nil {
		log.Error().Err(err).Str("spec", s.config.Sync.CronSpec).Msg("failed to register calendar sync job")

		return err
	}

	s.cron.Start()

	log.Info().Str("spec", s.config.Sync.CronSpec).Msg("scheduler started")

	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()

	log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) runSyncAll() {
	ctx, scope := s.otel.NewScope(context.Background(), constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".SyncAll")
	defer scope.End()

	if err := s.calendarSync.SyncAll(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("scheduled calendar sync run failed")

		return
	}

	log.Info().Msg("scheduled calendar sync run completed")
}
