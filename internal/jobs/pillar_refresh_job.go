package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron"
)

// Refresher is anything whose cached state can be reloaded in one call.
type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type PillarRefreshJob struct {
	pillars Refresher
	timeout time.Duration
}

func NewPillarRefreshJob(pillars Refresher, timeout time.Duration) *PillarRefreshJob {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &PillarRefreshJob{pillars: pillars, timeout: timeout}
}

func (j *PillarRefreshJob) RefreshPillars() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.pillars.RefreshAll(ctx); err != nil {
		slog.Info("Unable to refresh content pillars", "error", err.Error())
		return
	}
	slog.Info("Content pillars refreshed")
}

// Schedule registers the job on c using a robfig/cron spec such as
// "@every 10m".
func (j *PillarRefreshJob) Schedule(c *cron.Cron, spec string) error {
	return c.AddFunc(spec, j.RefreshPillars)
}
