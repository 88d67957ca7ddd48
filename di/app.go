package di

import (
	"time"
	"tourbase/config"
	"tourbase/internal/domains/calendarsync/feed"
	"tourbase/internal/scheduler"
	"tourbase/transport/http"
)

// App bundles the long-running pieces of the service.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
}

func NewApp(http *http.HTTP, scheduler *scheduler.Scheduler) *App {
	return &App{
		HTTP:      http,
		Scheduler: scheduler,
	}
}

func ProvideFeedFetcher(cfg *config.Config) feed.Fetcher {
	return feed.NewFetcher(time.Duration(cfg.Sync.FeedTimeoutSeconds) * time.Second)
}
