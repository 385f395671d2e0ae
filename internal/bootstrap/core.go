package bootstrap

import (
	"log/slog"
	"os"

	"github.com/init-pkg/excel-import/internal/config"
	nova_config_loader "github.com/init-pkg/nova/tools/config-loader"
	"go.uber.org/fx"
)

func coreOptions() fx.Option {
	return fx.Provide(
		newConfig,
		newLogger,
		newFiberApp,
	)
}

func newConfig() *config.Config {
	var cfg = nova_config_loader.MustLoad[config.Config]()
	return &cfg
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
