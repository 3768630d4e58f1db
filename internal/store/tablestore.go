package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tallerguerrero/storefront/internal/domain"
)

// TableStore is the relational catalog backend, one row per product keyed by
// id. Only per-statement atomicity is provided, there are no multi-statement
// transactions.
type TableStore struct {
	db *gorm.DB
}

var _ ProductStore = (*TableStore)(nil)

func NewTableStore(db *gorm.DB) *TableStore {
	return &TableStore{db: db}
}

func (s *TableStore) List(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (s *TableStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}

func (s *TableStore) Create(ctx context.Context, p *domain.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return errors.Wrap(err, "create product")
	}
	return nil
}

func (s *TableStore) Update(ctx context.Context, p *domain.Product) error {
	res := s.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", p.ID).
		Select("*").Omit("id").
		Updates(p)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TableStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete product")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TableAppointmentStore persists appointments as rows in the same database.
type TableAppointmentStore struct {
	db *gorm.DB
}

var _ AppointmentStore = (*TableAppointmentStore)(nil)

func NewTableAppointmentStore(db *gorm.DB) *TableAppointmentStore {
	return &TableAppointmentStore{db: db}
}

func (s *TableAppointmentStore) List(ctx context.Context) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&appts).Error; err != nil {
		return nil, errors.Wrap(err, "list appointments")
	}
	return appts, nil
}

func (s *TableAppointmentStore) Create(ctx context.Context, a *domain.Appointment) error {
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		return errors.Wrap(err, "create appointment")
	}
	return nil
}
