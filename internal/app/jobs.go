package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// initJob starts the background schedule: the news feed is refreshed on a
// fixed interval, each pull an independent call; a failed pull keeps the
// previous items.
func (a *Application) initJob() {
	a.sched = cron.New()

	if a.newsService != nil {
		interval := a.appConfig.News.Interval
		if interval <= 0 {
			interval = 300
		}
		spec := fmt.Sprintf("@every %ds", interval)
		_, err := a.sched.AddFunc(spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := a.newsService.Refresh(ctx); err != nil {
				zap.L().Warn("news refresh failed", zap.Error(err))
			}
		})
		if err != nil {
			zap.L().Error("failed to schedule news refresh", zap.Error(err))
		}

		// warm the cache at boot without blocking startup
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := a.newsService.Refresh(ctx); err != nil {
				zap.L().Warn("initial news fetch failed", zap.Error(err))
			}
		}()
	}

	a.sched.Start()
}
