package rabbitmq_client

import (
	"github.com/init-pkg/excel-import/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

func New(cfg *config.Config) *amqp.Connection {
	conn, err := amqp.Dial(cfg.Infrastructure.RabbitMQ.Url)
	if err != nil {
		panic(err)
	}

	return conn
}
