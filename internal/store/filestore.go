package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/tallerguerrero/storefront/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FileStore keeps the catalog as a pretty-printed JSON array in a single flat
// file. Every mutation is read-whole-file, mutate, rewrite-whole-file. The
// mutex keeps one process coherent; concurrent processes writing the same file
// race with last-write-wins, there is no cross-process locking.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ ProductStore = (*FileStore)(nil)

// NewFileStore creates dir if needed and initializes products.json with an
// empty array when absent.
func NewFileStore(dir string) (*FileStore, error) {
	path, err := initDataFile(dir, "products.json")
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) List(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := readFileJSON[domain.Product](s.path)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	return products, nil
}

func (s *FileStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := readFileJSON[domain.Product](s.path)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) Create(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := readFileJSON[domain.Product](s.path)
	if err != nil {
		return err
	}
	products = append(products, *p)
	return writeFileJSON(s.path, products)
}

func (s *FileStore) Update(ctx context.Context, p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := readFileJSON[domain.Product](s.path)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = *p
			return writeFileJSON(s.path, products)
		}
	}
	return ErrNotFound
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	products, err := readFileJSON[domain.Product](s.path)
	if err != nil {
		return err
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			return writeFileJSON(s.path, products)
		}
	}
	return ErrNotFound
}

// FileAppointmentStore is the appointment counterpart of FileStore, backed by
// appointments.json in the same data directory.
type FileAppointmentStore struct {
	mu   sync.Mutex
	path string
}

var _ AppointmentStore = (*FileAppointmentStore)(nil)

func NewFileAppointmentStore(dir string) (*FileAppointmentStore, error) {
	path, err := initDataFile(dir, "appointments.json")
	if err != nil {
		return nil, err
	}
	return &FileAppointmentStore{path: path}, nil
}

func (s *FileAppointmentStore) List(ctx context.Context) ([]domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	appts, err := readFileJSON[domain.Appointment](s.path)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(appts, func(i, j int) bool {
		return appts[i].CreatedAt.After(appts[j].CreatedAt)
	})
	return appts, nil
}

func (s *FileAppointmentStore) Create(ctx context.Context, a *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	appts, err := readFileJSON[domain.Appointment](s.path)
	if err != nil {
		return err
	}
	appts = append(appts, *a)
	return writeFileJSON(s.path, appts)
}

func initDataFile(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create data dir")
	}
	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			return "", errors.Wrapf(err, "init %s", name)
		}
	} else if err != nil {
		return "", errors.Wrapf(err, "stat %s", name)
	}
	return path, nil
}

func readFileJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", filepath.Base(path))
	}
	if len(data) == 0 {
		return nil, nil
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}
	return out, nil
}

func writeFileJSON[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", filepath.Base(path))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	return nil
}
