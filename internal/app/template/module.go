package template_module

import (
	"github.com/init-pkg/excel-import/domain/app"
	template_service "github.com/init-pkg/excel-import/internal/app/template/service"
	template_http_handler "github.com/init-pkg/excel-import/internal/app/template/transports/http"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"
)

func Register() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(template_service.New, fx.As(new(app.TemplateService))),
			template_http_handler.New,
		),
		fx.Invoke(func(handler *template_http_handler.TemplateHttpHandler, mainApp *fiber.App) {
			handler.Register(mainApp)
		}),
	)
}
