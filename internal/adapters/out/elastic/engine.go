package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// Shared low-level operations over the raw Elasticsearch API. Both index
// adapters funnel through these; they translate engine responses into
// plain errors and leave the typed sync errors to the adapters.

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID string `json:"_id"`
		} `json:"hits"`
	} `json:"hits"`
}

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []map[string]struct {
		ID     string          `json:"_id"`
		Status int             `json:"status"`
		Error  json.RawMessage `json:"error"`
	} `json:"items"`
}

type deleteByQueryResponse struct {
	Deleted int64 `json:"deleted"`
}

// responseDetail drains the response body for error reporting.
// Falls back to the status line when the body is empty.
func responseDetail(res *esapi.Response) string {
	data, _ := io.ReadAll(res.Body)
	detail := strings.TrimSpace(string(data))
	if detail == "" {
		return res.Status()
	}
	return detail
}

// ensureIndex creates the index when it does not exist yet.
func ensureIndex(ctx context.Context, es *elasticsearch.Client, name string) error {
	res, err := es.Indices.Exists([]string{name}, es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("check index %q: %w", name, err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("check index %q: %s", name, responseDetail(res))
	}

	createRes, err := es.Indices.Create(name, es.Indices.Create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create index %q: %w", name, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		return fmt.Errorf("create index %q: %s", name, responseDetail(createRes))
	}
	return nil
}

// indexDocument inserts or fully replaces a single document.
func indexDocument(ctx context.Context, es *elasticsearch.Client, index, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	res, err := es.Index(index, bytes.NewReader(body),
		es.Index.WithDocumentID(id),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index document %q: %s", id, responseDetail(res))
	}
	return nil
}

// bulkDoc pairs a document with its index key for a bulk request.
type bulkDoc struct {
	ID  string
	Doc any
}

// bulkUpsert sends one bulk request of update actions with doc_as_upsert,
// so each document is merged into an existing one or inserted when absent.
func bulkUpsert(ctx context.Context, es *elasticsearch.Client, index string, docs []bulkDoc) error {
	if len(docs) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, d := range docs {
		meta := map[string]map[string]string{
			"update": {"_index": index, "_id": d.ID},
		}
		if err := json.NewEncoder(&buf).Encode(meta); err != nil {
			return err
		}
		payload := map[string]any{
			"doc":           d.Doc,
			"doc_as_upsert": true,
		}
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			return err
		}
	}

	res, err := es.Bulk(bytes.NewReader(buf.Bytes()), es.Bulk.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk upsert: %s", responseDetail(res))
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("bulk upsert: decode response: %w", err)
	}
	if parsed.Errors {
		for _, item := range parsed.Items {
			for _, op := range item {
				if len(op.Error) > 0 {
					return fmt.Errorf("bulk upsert: document %q: %s", op.ID, op.Error)
				}
			}
		}
		return fmt.Errorf("bulk upsert: partial failure")
	}
	return nil
}

// deleteDocument removes a single document. A missing document is an error.
func deleteDocument(ctx context.Context, es *elasticsearch.Client, index, id string) error {
	res, err := es.Delete(index, id, es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("delete document %q: %s", id, responseDetail(res))
	}
	return nil
}

// deleteAll removes every document via a match_all delete-by-query and
// returns the number of deleted documents.
func deleteAll(ctx context.Context, es *elasticsearch.Client, index string) (int64, error) {
	body := strings.NewReader(`{"query":{"match_all":{}}}`)

	res, err := es.DeleteByQuery([]string{index}, body, es.DeleteByQuery.WithContext(ctx))
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return 0, fmt.Errorf("delete all documents: %s", responseDetail(res))
	}

	var parsed deleteByQueryResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("delete all documents: decode response: %w", err)
	}
	return parsed.Deleted, nil
}

// searchIDs runs the query and returns matching document IDs in the order
// the engine ranked them.
func searchIDs(ctx context.Context, es *elasticsearch.Client, index string, query map[string]any) ([]string, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search: %s", responseDetail(res))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("search: decode response: %w", err)
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		ids = append(ids, hit.ID)
	}
	return ids, nil
}
