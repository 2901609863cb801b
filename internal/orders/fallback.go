package orders

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/magieskin/storefront-backend/pkg/db/models"
	"github.com/magieskin/storefront-backend/pkg/enums"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// slotKey names the single on-device slot holding the order list. The value
// is the whole list serialized as base64-of-JSON, mirroring the storefront's
// original browser-storage layout.
const slotKey = "magie_skin_data_secure"

type slotRecord struct {
	Key  string `gorm:"column:key;primaryKey"`
	Blob string `gorm:"column:blob;not null"`
}

func (slotRecord) TableName() string {
	return "fallback_slots"
}

// FallbackStore persists orders in a single-slot key/value table inside an
// embedded SQLite file. It is the on-device stand-in used when the hosted
// database is unreachable or unconfigured.
type FallbackStore struct {
	mu sync.Mutex
	db *gorm.DB
}

// NewFallbackStore opens (creating if needed) the local slot database.
func NewFallbackStore(path string) (*FallbackStore, error) {
	if path == "" {
		return nil, errors.New("fallback path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening fallback db: %w", err)
	}
	if err := conn.AutoMigrate(&slotRecord{}); err != nil {
		return nil, fmt.Errorf("migrating fallback slot: %w", err)
	}
	return &FallbackStore{db: conn}, nil
}

// Save prepends the order to the slot's list.
func (s *FallbackStore) Save(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.loadLocked(ctx)
	updated := append([]models.Order{*order}, existing...)
	return s.writeLocked(ctx, updated)
}

// List returns the slot's order list. A missing or corrupt blob yields an
// empty list, never an error.
func (s *FallbackStore) List(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx), nil
}

// UpdateStatus rewrites the slot with the matching order's status flipped.
// Unknown ids are a no-op.
func (s *FallbackStore) UpdateStatus(ctx context.Context, id string, status enums.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.loadLocked(ctx)
	changed := false
	for i := range existing {
		if existing[i].ID == id {
			existing[i].Status = status
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.writeLocked(ctx, existing)
}

// Close releases the underlying SQLite handle.
func (s *FallbackStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *FallbackStore) loadLocked(ctx context.Context) []models.Order {
	var rec slotRecord
	err := s.db.WithContext(ctx).
		Where("key = ?", slotKey).
		First(&rec).Error
	if err != nil {
		return nil
	}
	return decodeSlot(rec.Blob)
}

func (s *FallbackStore) writeLocked(ctx context.Context, list []models.Order) error {
	blob, err := encodeSlot(list)
	if err != nil {
		return err
	}
	rec := slotRecord{Key: slotKey, Blob: blob}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
}

func encodeSlot(list []models.Order) (string, error) {
	raw, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("encoding fallback slot: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decodeSlot(blob string) []models.Order {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil
	}
	var list []models.Order
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}
