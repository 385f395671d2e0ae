package bootstrap

import (
	history_module "github.com/init-pkg/excel-import/internal/app/history"
	importer_module "github.com/init-pkg/excel-import/internal/app/importer"
	"github.com/init-pkg/excel-import/internal/app/jobs"
	notifier_module "github.com/init-pkg/excel-import/internal/app/notifier"
	records_module "github.com/init-pkg/excel-import/internal/app/records"
	template_module "github.com/init-pkg/excel-import/internal/app/template"
	"go.uber.org/fx"
)

func appOptions() fx.Option {
	return fx.Options(
		records_module.Register(),
		notifier_module.Register(),
		history_module.Register(),
		jobs.Register(),
		template_module.Register(),
		importer_module.Register(),

		fx.Invoke(
			startServer,
			startWorker,
		),
	)
}
