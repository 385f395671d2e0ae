package history_module

import (
	"github.com/init-pkg/excel-import/domain/app"
	history_service "github.com/init-pkg/excel-import/internal/app/history/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(history_service.New, fx.As(new(app.RunHistory))),
	)
}
