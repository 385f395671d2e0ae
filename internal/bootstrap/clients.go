package bootstrap

import (
	opensearch_client "github.com/init-pkg/excel-import/internal/clients/opensearch"
	postgres_client "github.com/init-pkg/excel-import/internal/clients/postgres"
	rabbitmq_client "github.com/init-pkg/excel-import/internal/clients/rabbitmq"
	redis_client "github.com/init-pkg/excel-import/internal/clients/redis"
	"go.uber.org/fx"
)

func clientsOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			redis_client.New,
			rabbitmq_client.New,
			opensearch_client.New,
			postgres_client.New,
		),
	)
}
