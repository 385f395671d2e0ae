package importer_module

import (
	"github.com/init-pkg/excel-import/domain/app"
	importer_service "github.com/init-pkg/excel-import/internal/app/importer/service"
	import_http_handler "github.com/init-pkg/excel-import/internal/app/importer/transports/http"
	import_job_handler "github.com/init-pkg/excel-import/internal/app/importer/transports/queue"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(importer_service.New, fx.As(new(app.ImportService))),
			fx.Annotate(import_job_handler.New, fx.As(new(app.UploadJobHandler))),
			import_http_handler.New,
		),
		fx.Invoke(func(handler *import_http_handler.ImportHttpHandler, mainApp *fiber.App) {
			handler.Register(mainApp)
		}),
	)
}
