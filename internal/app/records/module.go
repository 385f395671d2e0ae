package records_module

import (
	"github.com/init-pkg/excel-import/domain/app"
	records_service "github.com/init-pkg/excel-import/internal/app/records/service"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Provide(
		fx.Annotate(records_service.New, fx.As(new(app.RecordStore))),
	)
}
