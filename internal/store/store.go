package store

import (
	"context"
	"errors"

	"github.com/tallerguerrero/storefront/internal/domain"
)

// ErrNotFound is returned when the requested identifier does not exist.
var ErrNotFound = errors.New("record not found")

// ProductStore is the catalog persistence capability set. Both backends must
// behave identically from the caller's point of view: List returns products
// ordered by creation time, most recent first, and Get/Update/Delete report
// ErrNotFound for unknown identifiers.
//
// Identifier and timestamp assignment happen in the caller; the store only
// persists what it is given.
type ProductStore interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	// Update replaces the stored record with p, keyed by p.ID.
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// AppointmentStore persists service requests. Appointments are append-only:
// there is no update or delete. List returns most recent first.
type AppointmentStore interface {
	List(ctx context.Context) ([]domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
}
