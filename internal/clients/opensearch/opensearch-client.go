package opensearch_client

import (
	"crypto/tls"
	"net/http"

	"github.com/init-pkg/excel-import/internal/config"
	"github.com/opensearch-project/opensearch-go/v4"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

func New(cfg *config.Config) *opensearchapi.Client {
	client, err := opensearchapi.NewClient(
		opensearchapi.Config{
			Client: opensearch.Config{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.Infrastructure.OpenSearch.Insecure},
				},
				Addresses: cfg.Infrastructure.OpenSearch.Addresses,
				Username:  cfg.Infrastructure.OpenSearch.Username,
				Password:  cfg.Infrastructure.OpenSearch.Password,
			},
		},
	)
	if err != nil {
		panic(err)
	}

	return client
}
