package store

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/RekhaKadam/sonna-s-cafe/models"
)

// KV is the narrow persistence port the store depends on. Implementations
// hold opaque blobs under well-known keys; the store never sees the
// storage technology behind it.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// GormKV persists records through a gorm-managed table.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps an open database handle.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(key string) ([]byte, bool, error) {
	var rec models.Record
	err := g.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (g *GormKV) Set(key string, value []byte) error {
	rec := models.Record{Key: key, Value: value}
	return g.db.Save(&rec).Error
}

// MemoryKV is an in-memory KV used by tests and as a fallback when no
// database is available.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}
