package elastic_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "jobboard/internal/adapters/out/elastic"
	"jobboard/internal/core/ports"
)

// newTestClient spins up a fake engine endpoint and returns a client
// pointed at it. The product header is required by the client's own
// response validation.
func newTestClient(t *testing.T, handler http.HandlerFunc) *elasticsearch.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return es
}

func newJobseekerIndex(t *testing.T, handler http.HandlerFunc) *adapter.JobseekerIndex {
	t.Helper()

	idx, err := adapter.NewJobseekerIndex(newTestClient(t, handler))
	require.NoError(t, err)
	return idx
}

func decodeBody(t *testing.T, r io.Reader) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestNewJobseekerIndex(t *testing.T) {
	t.Run("should return error for nil client", func(t *testing.T) {
		idx, err := adapter.NewJobseekerIndex(nil)

		require.Error(t, err)
		assert.Nil(t, idx)
	})
}

func TestJobseekerIndex_Upsert(t *testing.T) {
	doc := ports.JobseekerDocument{
		ID:         "user-42",
		Profession: "Backend Developer",
		Education:  "BACHELOR",
		Location:   "Berlin",
		Experience: 5,
	}

	t.Run("should put document under its account ID", func(t *testing.T) {
		var gotMethod, gotPath string
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			gotBody = decodeBody(t, r.Body)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"result":"created"}`))
		})

		err := idx.Upsert(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPut, gotMethod)
		assert.Equal(t, "/jobseekers/_doc/user-42", gotPath)
		assert.Equal(t, "Backend Developer", gotBody["profession"])
		assert.Equal(t, "BACHELOR", gotBody["education"])
		assert.Equal(t, "Berlin", gotBody["location"])
		assert.InDelta(t, 5.0, gotBody["experience"], 0.0001)
		assert.Equal(t, "user-42", gotBody["id"])
	})

	t.Run("should surface engine failure as typed sync error", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"type":"engine_exception"}}`))
		})

		err := idx.Upsert(context.Background(), doc)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrIndexSyncFailed)

		var indexErr *ports.JobseekerIndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, "upsert", indexErr.Op)
		assert.Equal(t, "user-42", indexErr.DocID)
		assert.Contains(t, err.Error(), "engine_exception")
	})
}

func TestJobseekerIndex_UpsertBulk(t *testing.T) {
	docs := []ports.JobseekerDocument{
		{ID: "user-1", Profession: "Dev", Education: "NONE", Location: "Berlin", Experience: 1},
		{ID: "user-2", Profession: "QA", Education: "MASTER", Location: "Hamburg", Experience: 3},
	}

	t.Run("should send one bulk request of doc_as_upsert updates", func(t *testing.T) {
		var gotPath string
		var lines [][]byte

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			scanner := bufio.NewScanner(r.Body)
			for scanner.Scan() {
				lines = append(lines, bytes.Clone(scanner.Bytes()))
			}
			_, _ = w.Write([]byte(`{"errors":false,"items":[]}`))
		})

		err := idx.UpsertBulk(context.Background(), docs)

		require.NoError(t, err)
		assert.Equal(t, "/_bulk", gotPath)
		require.Len(t, lines, 4)

		var meta map[string]map[string]string
		require.NoError(t, json.Unmarshal(lines[0], &meta))
		assert.Equal(t, "jobseekers", meta["update"]["_index"])
		assert.Equal(t, "user-1", meta["update"]["_id"])

		var payload map[string]any
		require.NoError(t, json.Unmarshal(lines[1], &payload))
		assert.Equal(t, true, payload["doc_as_upsert"])
		docBody, ok := payload["doc"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Dev", docBody["profession"])

		require.NoError(t, json.Unmarshal(lines[2], &meta))
		assert.Equal(t, "user-2", meta["update"]["_id"])
	})

	t.Run("should report item-level failures", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"errors":true,"items":[` +
				`{"update":{"_id":"user-1","status":200}},` +
				`{"update":{"_id":"user-2","status":400,"error":{"type":"mapper_parsing_exception"}}}]}`))
		})

		err := idx.UpsertBulk(context.Background(), docs)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrIndexSyncFailed)
		assert.Contains(t, err.Error(), "user-2")
		assert.Contains(t, err.Error(), "mapper_parsing_exception")
	})

	t.Run("should skip the request for an empty batch", func(t *testing.T) {
		called := false
		idx := newJobseekerIndex(t, func(_ http.ResponseWriter, _ *http.Request) {
			called = true
		})

		err := idx.UpsertBulk(context.Background(), nil)

		require.NoError(t, err)
		assert.False(t, called)
	})
}

func TestJobseekerIndex_Delete(t *testing.T) {
	t.Run("should delete document by ID", func(t *testing.T) {
		var gotMethod, gotPath string

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"result":"deleted"}`))
		})

		err := idx.Delete(context.Background(), "user-42")

		require.NoError(t, err)
		assert.Equal(t, http.MethodDelete, gotMethod)
		assert.Equal(t, "/jobseekers/_doc/user-42", gotPath)
	})

	t.Run("should surface missing document as typed sync error", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"result":"not_found"}`))
		})

		err := idx.Delete(context.Background(), "user-42")

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrIndexSyncFailed)

		var indexErr *ports.JobseekerIndexError
		require.ErrorAs(t, err, &indexErr)
		assert.Equal(t, "delete", indexErr.Op)
	})
}

func TestJobseekerIndex_RemoveAll(t *testing.T) {
	t.Run("should delete by match_all query and return count", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(`{"deleted":7}`))
		})

		deleted, err := idx.RemoveAll(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
		assert.Equal(t, "/jobseekers/_delete_by_query", gotPath)

		query, ok := gotBody["query"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, query, "match_all")
	})

	t.Run("should surface engine failure", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		})

		deleted, err := idx.RemoveAll(context.Background())

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrIndexSyncFailed)
		assert.Zero(t, deleted)
	})
}

func TestJobseekerIndex_EnsureIndexExists(t *testing.T) {
	t.Run("should create index when missing", func(t *testing.T) {
		var requests []string

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.Method+" "+r.URL.Path)
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(`{"acknowledged":true}`))
		})

		err := idx.EnsureIndexExists(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"HEAD /jobseekers", "PUT /jobseekers"}, requests)
	})

	t.Run("should be a no-op when index exists", func(t *testing.T) {
		var requests []string

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r.Method+" "+r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})

		err := idx.EnsureIndexExists(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []string{"HEAD /jobseekers"}, requests)
	})
}

func TestJobseekerIndex_Search(t *testing.T) {
	hitsResponse := `{"hits":{"hits":[{"_id":"user-3"},{"_id":"user-1"},{"_id":"user-2"}]}}`

	t.Run("should return IDs in engine ranking order", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(hitsResponse))
		})

		ids, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{Profession: "developer"})

		require.NoError(t, err)
		assert.Equal(t, []string{"user-3", "user-1", "user-2"}, ids)
	})

	t.Run("should build fuzzy clauses and paginate with defaults", func(t *testing.T) {
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(hitsResponse))
		})

		_, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{
			Profession: "developer",
			Location:   "berlin",
		})

		require.NoError(t, err)
		assert.InDelta(t, 0.0, gotBody["from"], 0.0001)
		assert.InDelta(t, 10.0, gotBody["size"], 0.0001)

		must := mustClauses(t, gotBody)
		require.Len(t, must, 2)

		profession := must[0]["match"].(map[string]any)["profession"].(map[string]any)
		assert.Equal(t, "developer", profession["query"])
		assert.Equal(t, "auto", profession["fuzziness"])

		location := must[1]["match"].(map[string]any)["location"].(map[string]any)
		assert.Equal(t, "berlin", location["query"])
	})

	t.Run("should omit experience range at default bounds", func(t *testing.T) {
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(hitsResponse))
		})

		_, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{})

		require.NoError(t, err)
		assert.Empty(t, mustClauses(t, gotBody))
	})

	t.Run("should add experience range when narrowed", func(t *testing.T) {
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(hitsResponse))
		})

		_, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{
			ExperienceMin: 2,
			ExperienceMax: 10,
		})

		require.NoError(t, err)
		must := mustClauses(t, gotBody)
		require.Len(t, must, 1)

		experience := must[0]["range"].(map[string]any)["experience"].(map[string]any)
		assert.InDelta(t, 2.0, experience["gte"], 0.0001)
		assert.InDelta(t, 10.0, experience["lte"], 0.0001)
	})

	t.Run("should filter education by canonical upper-case keyword", func(t *testing.T) {
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(hitsResponse))
		})

		_, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{Education: "bachelor"})

		require.NoError(t, err)
		must := mustClauses(t, gotBody)
		require.Len(t, must, 1)

		term := must[0]["term"].(map[string]any)["education.keyword"].(map[string]any)
		assert.Equal(t, "BACHELOR", term["value"])
	})

	t.Run("should paginate beyond the first page", func(t *testing.T) {
		var gotBody map[string]any

		idx := newJobseekerIndex(t, func(w http.ResponseWriter, r *http.Request) {
			gotBody = decodeBody(t, r.Body)
			_, _ = w.Write([]byte(hitsResponse))
		})

		_, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{Page: 3, PageSize: 5})

		require.NoError(t, err)
		assert.InDelta(t, 10.0, gotBody["from"], 0.0001)
		assert.InDelta(t, 5.0, gotBody["size"], 0.0001)
	})

	t.Run("should surface engine failure with diagnostic", func(t *testing.T) {
		idx := newJobseekerIndex(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"type":"parsing_exception","reason":"unknown field"}}`))
		})

		ids, err := idx.Search(context.Background(), ports.JobseekerSearchQuery{})

		require.Error(t, err)
		assert.Nil(t, ids)
		require.ErrorIs(t, err, ports.ErrSearchFailed)

		var searchErr *ports.SearchFailedError
		require.ErrorAs(t, err, &searchErr)
		assert.Contains(t, err.Error(), "parsing_exception")
	})
}

// mustClauses extracts the bool/must clause list from a captured query body.
func mustClauses(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()

	query, ok := body["query"].(map[string]any)
	require.True(t, ok)
	boolQuery, ok := query["bool"].(map[string]any)
	require.True(t, ok)
	rawMust, ok := boolQuery["must"].([]any)
	require.True(t, ok)

	must := make([]map[string]any, 0, len(rawMust))
	for _, clause := range rawMust {
		m, ok := clause.(map[string]any)
		require.True(t, ok)
		must = append(must, m)
	}
	return must
}
