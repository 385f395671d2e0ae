package records_service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/opensearch-project/opensearch-go/v4/opensearchapi"
)

// Service is the document store for mapped records, one index per
// template. Index and schema management is external; the service only
// writes batches and reads pages.
type Service struct {
	client *opensearchapi.Client
	log    *slog.Logger
}

var _ app.RecordStore = &Service{}

func New(client *opensearchapi.Client, log *slog.Logger) *Service {
	return &Service{client, log}
}

func (s *Service) BulkInsert(ctx context.Context, index string, records []app.MappedRecord) error {
	if len(records) == 0 {
		return nil
	}

	var body bytes.Buffer
	for _, record := range records {
		meta := fmt.Sprintf(`{"index":{"_index":%q}}`, index)
		body.WriteString(meta)
		body.WriteByte('\n')

		doc, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("marshal record for %s: %w", index, err)
		}
		body.Write(doc)
		body.WriteByte('\n')
	}

	resp, err := s.client.Bulk(ctx, opensearchapi.BulkReq{Body: bytes.NewReader(body.Bytes())})
	if err != nil {
		return fmt.Errorf("bulk insert into %s: %w", index, err)
	}
	if resp.Errors {
		return errors.New("bulk insert into " + index + " reported item failures")
	}

	s.log.Info("records.bulk.inserted", "index", index, "count", len(records))
	return nil
}

func (s *Service) List(ctx context.Context, index string, page, limit int) ([]map[string]any, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := map[string]any{
		"from": (page - 1) * limit,
		"size": limit,
		"sort": []map[string]any{
			{"createdAt": map[string]any{"order": "desc"}},
		},
		"query": map[string]any{"match_all": map[string]any{}},
	}

	queryJSON, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal list query: %w", err)
	}

	resp, err := s.client.Search(ctx, &opensearchapi.SearchReq{
		Indices: []string{index},
		Body:    strings.NewReader(string(queryJSON)),
	})
	if err != nil {
		return nil, fmt.Errorf("search index %s: %w", index, err)
	}

	docs := make([]map[string]any, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc map[string]any
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
