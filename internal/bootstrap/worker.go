package bootstrap

import (
	"context"

	"github.com/init-pkg/excel-import/internal/app/jobs"
	"go.uber.org/fx"
)

func startWorker(lc fx.Lifecycle, worker *jobs.Worker) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return worker.Start(context.Background())
		},
		OnStop: func(ctx context.Context) error {
			return worker.Stop()
		},
	})
}
