package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tallerguerrero/storefront/internal/domain"
	"github.com/tallerguerrero/storefront/internal/store"
)

// Both backends must be indistinguishable to callers, so every implementation
// runs through the same contract.

type backend struct {
	name         string
	products     func(t *testing.T) store.ProductStore
	appointments func(t *testing.T) store.AppointmentStore
}

func backends() []backend {
	return []backend{
		{
			name: "file",
			products: func(t *testing.T) store.ProductStore {
				s, err := store.NewFileStore(t.TempDir())
				require.NoError(t, err)
				return s
			},
			appointments: func(t *testing.T) store.AppointmentStore {
				s, err := store.NewFileAppointmentStore(t.TempDir())
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "table",
			products: func(t *testing.T) store.ProductStore {
				return store.NewTableStore(testDB(t))
			},
			appointments: func(t *testing.T) store.AppointmentStore {
				return store.NewTableAppointmentStore(testDB(t))
			},
		},
	}
}

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrator().AutoMigrate(domain.Tables...))
	return db
}

func newProduct(name string, createdAt time.Time) *domain.Product {
	return &domain.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Category:  "Frenos",
		Stock:     3,
		Price:     149.50,
		CreatedAt: createdAt,
	}
}

func TestProductStoreContract(t *testing.T) {
	for _, b := range backends() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("EmptyList", func(t *testing.T) {
				s := b.products(t)
				products, err := s.List(ctx)
				require.NoError(t, err)
				require.Empty(t, products)
			})

			t.Run("CreateGetList", func(t *testing.T) {
				s := b.products(t)
				base := time.Now().Truncate(time.Second)
				older := newProduct("Balatas delanteras", base.Add(-time.Hour))
				newer := newProduct("Filtro de aceite", base)
				require.NoError(t, s.Create(ctx, older))
				require.NoError(t, s.Create(ctx, newer))

				got, err := s.Get(ctx, older.ID)
				require.NoError(t, err)
				require.Equal(t, older.Name, got.Name)
				require.Equal(t, older.Stock, got.Stock)
				require.Equal(t, older.Price, got.Price)

				products, err := s.List(ctx)
				require.NoError(t, err)
				require.Len(t, products, 2)
				// most recent first
				require.Equal(t, newer.ID, products[0].ID)
				require.Equal(t, older.ID, products[1].ID)
			})

			t.Run("GetUnknown", func(t *testing.T) {
				s := b.products(t)
				_, err := s.Get(ctx, "missing")
				require.ErrorIs(t, err, store.ErrNotFound)
			})

			t.Run("UpdateReplaces", func(t *testing.T) {
				s := b.products(t)
				p := newProduct("Bujías", time.Now())
				require.NoError(t, s.Create(ctx, p))

				p.Name = "Bujías de iridio"
				p.Stock = 0
				p.Price = 0
				require.NoError(t, s.Update(ctx, p))

				got, err := s.Get(ctx, p.ID)
				require.NoError(t, err)
				require.Equal(t, "Bujías de iridio", got.Name)
				require.Equal(t, 0, got.Stock)
				require.Equal(t, 0.0, got.Price)
			})

			t.Run("UpdateUnknown", func(t *testing.T) {
				s := b.products(t)
				err := s.Update(ctx, newProduct("fantasma", time.Now()))
				require.ErrorIs(t, err, store.ErrNotFound)
			})

			t.Run("DeleteRemoves", func(t *testing.T) {
				s := b.products(t)
				p := newProduct("Amortiguador", time.Now())
				require.NoError(t, s.Create(ctx, p))
				require.NoError(t, s.Delete(ctx, p.ID))

				_, err := s.Get(ctx, p.ID)
				require.ErrorIs(t, err, store.ErrNotFound)

				products, err := s.List(ctx)
				require.NoError(t, err)
				require.Empty(t, products)
			})

			t.Run("DeleteUnknownKeepsCount", func(t *testing.T) {
				s := b.products(t)
				p := newProduct("Radiador", time.Now())
				require.NoError(t, s.Create(ctx, p))

				err := s.Delete(ctx, "missing")
				require.ErrorIs(t, err, store.ErrNotFound)

				products, err := s.List(ctx)
				require.NoError(t, err)
				require.Len(t, products, 1)
			})
		})
	}
}

func TestAppointmentStoreContract(t *testing.T) {
	for _, b := range backends() {
		b := b
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.appointments(t)

			appts, err := s.List(ctx)
			require.NoError(t, err)
			require.Empty(t, appts)

			base := time.Now().Truncate(time.Second)
			first := &domain.Appointment{
				ID:          uuid.NewString(),
				Name:        "Ana Guerrero",
				Whatsapp:    "555-123-4567",
				CarModel:    "Tsuru 2004",
				Description: "Afinación",
				Date:        "2026-09-01",
				Time:        "10:00",
				CreatedAt:   base.Add(-time.Minute),
			}
			second := &domain.Appointment{
				ID:          uuid.NewString(),
				Name:        "Luis Pérez",
				Whatsapp:    "5512345678",
				CarModel:    "Aveo 2019",
				Description: "Frenos",
				Notes:       "rechina al frenar",
				Date:        "2026-09-01",
				Time:        "10:00", // double-booking is allowed on purpose
				CreatedAt:   base,
			}
			require.NoError(t, s.Create(ctx, first))
			require.NoError(t, s.Create(ctx, second))

			appts, err = s.List(ctx)
			require.NoError(t, err)
			require.Len(t, appts, 2)
			require.Equal(t, second.ID, appts[0].ID)
			require.Equal(t, first.ID, appts[1].ID)
			require.Equal(t, "rechina al frenar", appts[0].Notes)
		})
	}
}
