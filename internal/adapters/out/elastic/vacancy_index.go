package elastic

import (
	"context"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"jobboard/internal/core/ports"
	"jobboard/internal/pkg/errs"
)

// DefaultVacancyIndexName is the index holding vacancy documents.
const DefaultVacancyIndexName = "vacancies"

var _ ports.VacancyIndex = (*VacancyIndex)(nil)

// VacancyIndex adapts the vacancy search contract to Elasticsearch.
type VacancyIndex struct {
	es        *elasticsearch.Client
	indexName string
}

// NewVacancyIndex creates a vacancy index adapter over the given client.
func NewVacancyIndex(es *elasticsearch.Client) (*VacancyIndex, error) {
	if es == nil {
		return nil, errs.NewValueIsRequiredError("es")
	}

	return &VacancyIndex{es: es, indexName: DefaultVacancyIndexName}, nil
}

// EnsureIndexExists creates the vacancy index when it is missing.
func (idx *VacancyIndex) EnsureIndexExists(ctx context.Context) error {
	return ensureIndex(ctx, idx.es, idx.indexName)
}

// Upsert inserts or fully replaces one vacancy document.
func (idx *VacancyIndex) Upsert(ctx context.Context, doc ports.VacancyDocument) error {
	if err := indexDocument(ctx, idx.es, idx.indexName, doc.ID, doc); err != nil {
		return ports.NewVacancyIndexError("upsert", doc.ID, err)
	}
	return nil
}

// UpsertBulk writes all documents in one bulk request.
func (idx *VacancyIndex) UpsertBulk(ctx context.Context, docs []ports.VacancyDocument) error {
	bulk := make([]bulkDoc, 0, len(docs))
	for _, doc := range docs {
		bulk = append(bulk, bulkDoc{ID: doc.ID, Doc: doc})
	}

	if err := bulkUpsert(ctx, idx.es, idx.indexName, bulk); err != nil {
		return ports.NewVacancyIndexError("bulk upsert", "*", err)
	}
	return nil
}

// Delete removes one vacancy document.
func (idx *VacancyIndex) Delete(ctx context.Context, id string) error {
	if err := deleteDocument(ctx, idx.es, idx.indexName, id); err != nil {
		return ports.NewVacancyIndexError("delete", id, err)
	}
	return nil
}

// RemoveAll deletes every vacancy document and returns the removed count.
func (idx *VacancyIndex) RemoveAll(ctx context.Context) (int64, error) {
	deleted, err := deleteAll(ctx, idx.es, idx.indexName)
	if err != nil {
		return 0, ports.NewVacancyIndexError("remove all", "*", err)
	}
	return deleted, nil
}

// Search runs the vacancy query and returns ranked vacancy IDs.
func (idx *VacancyIndex) Search(ctx context.Context, query ports.VacancySearchQuery) ([]string, error) {
	query = query.Normalize()

	ids, err := searchIDs(ctx, idx.es, idx.indexName, buildVacancyQuery(query))
	if err != nil {
		return nil, ports.NewSearchFailedError("vacancy search", err)
	}
	return ids, nil
}

// buildVacancyQuery assembles the engine query body.
//
// Position matches with automatic fuzziness. A general description is
// matched against title and description, with title hits boosted. Salary
// range clauses are always present on both salary fields, relying on the
// normalized defaults to keep an unfiltered search wide open. The work
// mode filter is keyword-exact and skipped for the NONE placeholder.
func buildVacancyQuery(q ports.VacancySearchQuery) map[string]any {
	must := make([]map[string]any, 0, 5)

	if strings.TrimSpace(q.Position) != "" {
		must = append(must, map[string]any{
			"match": map[string]any{
				"position": map[string]any{
					"query":     q.Position,
					"fuzziness": "auto",
				},
			},
		})
	}

	if strings.TrimSpace(q.GeneralDescription) != "" {
		must = append(must, map[string]any{
			"bool": map[string]any{
				"should": []map[string]any{
					{
						"match": map[string]any{
							"title": map[string]any{
								"query":     q.GeneralDescription,
								"fuzziness": "auto",
								"boost":     2.0,
							},
						},
					},
					{
						"match": map[string]any{
							"description": map[string]any{
								"query":     q.GeneralDescription,
								"fuzziness": "auto",
							},
						},
					},
				},
				"minimum_should_match": 1,
			},
		})
	}

	for _, field := range []string{"minSalary", "maxSalary"} {
		must = append(must, map[string]any{
			"range": map[string]any{
				field: map[string]any{
					"gte": q.SalaryMin,
					"lte": q.SalaryMax,
				},
			},
		})
	}

	workMode := strings.ToUpper(strings.TrimSpace(q.WorkMode))
	if workMode != "" && workMode != "NONE" {
		must = append(must, map[string]any{
			"term": map[string]any{
				"workMode.keyword": map[string]any{
					"value": workMode,
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
