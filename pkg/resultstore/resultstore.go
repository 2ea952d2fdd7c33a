// Package resultstore persists comparison reports for the HTTP API so a
// caller can fetch a result again by its ID. Two backends exist:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for deployments
//
// Stored records hold computed output only (scores, matches, labels,
// convergence metadata). The input graphs are never persisted.
package resultstore

import (
	"context"
	"errors"
	"time"

	"github.com/uspp-raketa/vertexsim/pkg/compare"
)

// ErrNotFound is returned by [Store.Get] when no report exists under the
// requested ID.
var ErrNotFound = errors.New("report not found")

// Record is one stored report with its storage timestamp.
type Record struct {
	Report   *compare.Report `json:"report" bson:"report"`
	StoredAt time.Time       `json:"stored_at" bson:"stored_at"`
}

// Store persists comparison reports keyed by report ID. Implementations
// are safe for concurrent use.
type Store interface {
	// Put stores a report under its ID, replacing any previous record.
	Put(ctx context.Context, rep *compare.Report) error

	// Get retrieves a stored report. Returns ErrNotFound for unknown IDs.
	Get(ctx context.Context, id string) (*Record, error)

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
