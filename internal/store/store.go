// Package store persists audits. Audits travel as single JSON documents;
// the drivers keep a thin indexed envelope around the blob for listing.
package store

import (
	"context"

	"github.com/curiata/coreiq/internal/model"
)

// AuditFilter specifies criteria for listing audits.
type AuditFilter struct {
	Client          string `json:"client,omitempty"`
	IncludeArchived bool   `json:"include_archived,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	Offset          int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for audits. SaveAudit is an
// upsert; conflict resolution beyond last-write-wins is not this layer's
// concern.
type Store interface {
	ListAudits(ctx context.Context, filter AuditFilter) ([]model.Audit, error)
	GetAudit(ctx context.Context, id string) (*model.Audit, error)
	SaveAudit(ctx context.Context, a *model.Audit) error

	Migrate(ctx context.Context) error
	Close() error
}
