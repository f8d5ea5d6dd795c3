package elastic

import (
	"context"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

// DefaultJobseekerIndexName is the index holding jobseeker documents.
const DefaultJobseekerIndexName = "jobseekers"

var _ ports.JobseekerIndex = (*JobseekerIndex)(nil)

// JobseekerIndex adapts the jobseeker search contract to Elasticsearch.
type JobseekerIndex struct {
	es        *elasticsearch.Client
	indexName string
}

// NewJobseekerIndex creates a jobseeker index adapter over the given client.
func NewJobseekerIndex(es *elasticsearch.Client) (*JobseekerIndex, error) {
	if es == nil {
		return nil, errs.NewValueIsRequiredError("es")
	}

	return &JobseekerIndex{es: es, indexName: DefaultJobseekerIndexName}, nil
}

// EnsureIndexExists creates the jobseeker index when it is missing.
func (idx *JobseekerIndex) EnsureIndexExists(ctx context.Context) error {
	return ensureIndex(ctx, idx.es, idx.indexName)
}

// Upsert inserts or fully replaces one jobseeker document.
func (idx *JobseekerIndex) Upsert(ctx context.Context, doc ports.JobseekerDocument) error {
	if err := indexDocument(ctx, idx.es, idx.indexName, doc.ID, doc); err != nil {
		return ports.NewJobseekerIndexError("upsert", doc.ID, err)
	}
	return nil
}

// UpsertBulk writes all documents in one bulk request.
func (idx *JobseekerIndex) UpsertBulk(ctx context.Context, docs []ports.JobseekerDocument) error {
	bulk := make([]bulkDoc, 0, len(docs))
	for _, doc := range docs {
		bulk = append(bulk, bulkDoc{ID: doc.ID, Doc: doc})
	}

	if err := bulkUpsert(ctx, idx.es, idx.indexName, bulk); err != nil {
		return ports.NewJobseekerIndexError("bulk upsert", "*", err)
	}
	return nil
}

// Delete removes one jobseeker document.
func (idx *JobseekerIndex) Delete(ctx context.Context, id string) error {
	if err := deleteDocument(ctx, idx.es, idx.indexName, id); err != nil {
		return ports.NewJobseekerIndexError("delete", id, err)
	}
	return nil
}

// RemoveAll deletes every jobseeker document and returns the removed count.
func (idx *JobseekerIndex) RemoveAll(ctx context.Context) (int64, error) {
	deleted, err := deleteAll(ctx, idx.es, idx.indexName)
	if err != nil {
		return 0, ports.NewJobseekerIndexError("remove all", "*", err)
	}
	return deleted, nil
}

// Search runs the jobseeker query and returns ranked account IDs.
func (idx *JobseekerIndex) Search(ctx context.Context, query ports.JobseekerSearchQuery) ([]string, error) {
	query = query.Normalize()

	ids, err := searchIDs(ctx, idx.es, idx.indexName, buildJobseekerQuery(query))
	if err != nil {
		return nil, ports.NewSearchFailedError("jobseeker search", err)
	}
	return ids, nil
}

// buildJobseekerQuery assembles the engine query body.
//
// Profession and location match with automatic fuzziness. The experience
// range clause is added only when it narrows the default bounds, so an
// unfiltered search does not exclude documents missing the field. The
// education filter is a keyword-exact term on the canonical upper-case
// degree name.
func buildJobseekerQuery(q ports.JobseekerSearchQuery) map[string]any {
	must := make([]map[string]any, 0, 4)

	if strings.TrimSpace(q.Profession) != "" {
		must = append(must, map[string]any{
			"match": map[string]any{
				"profession": map[string]any{
					"query":     q.Profession,
					"fuzziness": "auto",
				},
			},
		})
	}

	if q.HasExperienceFilter() {
		must = append(must, map[string]any{
			"range": map[string]any{
				"experience": map[string]any{
					"gte": q.ExperienceMin,
					"lte": q.ExperienceMax,
				},
			},
		})
	}

	if strings.TrimSpace(q.Education) != "" {
		must = append(must, map[string]any{
			"term": map[string]any{
				"education.keyword": map[string]any{
					"value": strings.ToUpper(q.Education),
				},
			},
		})
	}

	if strings.TrimSpace(q.Location) != "" {
		must = append(must, map[string]any{
			"match": map[string]any{
				"location": map[string]any{
					"query":     q.Location,
					"fuzziness": "auto",
				},
			},
		})
	}

	return map[string]any{
		"from": q.From(),
		"size": q.PageSize,
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
			},
		},
	}
}
