package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
)

// EsExecutor sends a raw search body to Elasticsearch and reads back the hit
// IDs in score order. Documents are expected to be indexed under their UUID.
type EsExecutor struct {
	name   string
	client *elasticsearch.Client
	index  string
}

func NewEsExecutor(name string, addresses []string, index string) (*EsExecutor, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("create es client: %w", err)
	}

	return &EsExecutor{
		name:   name,
		client: client,
		index:  index,
	}, nil
}

func (e *EsExecutor) Execute(ctx context.Context, rawQuery string, _ []any) (*Execution, error) {
	start := time.Now()
	res, err := e.client.Search(
		e.client.Search.WithContext(ctx),
		e.client.Search.WithIndex(e.index),
		e.client.Search.WithBody(strings.NewReader(rawQuery)),
	)
	if err != nil {
		return nil, fmt.Errorf("es search: %w", err)
	}
	defer res.Body.Close()
	latency := time.Since(start)

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("es read response: %w", err)
	}

	if res.IsError() {
		return nil, fmt.Errorf("es status %s: %s", res.Status(), string(body))
	}

	var esResp esSearchResponse
	if err := json.Unmarshal(body, &esResp); err != nil {
		return nil, fmt.Errorf("es parse response: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		id, err := uuid.Parse(hit.ID)
		if err != nil {
			return nil, fmt.Errorf("es parse doc id %q: %w", hit.ID, err)
		}
		ids = append(ids, id)
	}

	return &Execution{
		RankedDocIDs: ids,
		TotalMatches: esResp.Hits.Total.Value,
		Latency:      latency,
	}, nil
}

func (e *EsExecutor) Name() string { return e.name }
func (e *EsExecutor) Close() error { return nil }

type esSearchResponse struct {
	Hits esHits `json:"hits"`
}

type esHits struct {
	Total esTotal `json:"total"`
	Hits  []esHit `json:"hits"`
}

type esTotal struct {
	Value int64 `json:"value"`
}

type esHit struct {
	ID string `json:"_id"`
}
