package jobs

import (
	"context"

	"github.com/developer-overheid-nl/don-intranet/pkg/intranet/services"
	"github.com/developer-overheid-nl/don-intranet/pkg/tools"
	"github.com/robfig/cron/v3"
)

// ScheduleDailySweep sets up a cron job that reports orphaned uploads in the
// content root every day.
func ScheduleDailySweep(ctx context.Context, svc *services.SweepService) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("@daily", func() {
		tools.Dispatch(context.Background(), "sweep_orphans", func(ctx context.Context) error {
			return svc.SweepOrphans(ctx)
		})
	})
	c.Start()

	go func() {
		<-ctx.Done()
		c.Stop()
	}()
	return c
}
