package jobs

import (
	"github.com/init-pkg/excel-import/domain/app"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		NewStore,
		func(s *Store) app.JobStore { return s },
		fx.Annotate(NewQueue, fx.As(new(app.JobQueue))),
		NewWorker,
	)
}
