// Package elastic implements the search index adapters on Elasticsearch.
//
// The index is a derived replica of the primary store. Writes are applied
// after the corresponding database commit; a failed index write leaves the
// committed data in place and surfaces as a typed sync error. Searches
// return ranked document IDs only, and the application layer hydrates them
// from the primary store.
package elastic

import (
	"github.com/elastic/go-elasticsearch/v8"

	"jobboard/internal/pkg/errs"
)

// Config holds the connection settings for the search cluster.
type Config struct {
	Addresses []string
	Username  string
	Password  string
}

// NewClient creates an Elasticsearch client from the given settings.
func NewClient(cfg Config) (*elasticsearch.Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, errs.NewValueIsRequiredError("addresses")
	}

	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
}
