package notifier_module

import (
	"github.com/init-pkg/excel-import/domain/app"
	notifier_service "github.com/init-pkg/excel-import/internal/app/notifier/service"
	notifier_http_handler "github.com/init-pkg/excel-import/internal/app/notifier/transports/http"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			notifier_service.New,
			func(s *notifier_service.Service) app.UploadNotifier { return s },
			notifier_http_handler.New,
		),
		fx.Invoke(func(handler *notifier_http_handler.NotifierHttpHandler, mainApp *fiber.App) {
			handler.Register(mainApp)
		}),
	)
}
