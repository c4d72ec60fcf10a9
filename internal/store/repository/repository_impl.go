package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// NewRepository returns a Store backed by the kv_entries table. Values must be
// valid JSON.
func NewRepository(db *gorm.DB) storedomain.Store {
	return &repository{db: db}
}

// Migrate creates or updates the kv_entries table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("migrate kv_entries: %w", err)
	}
	return nil
}

func (r *repository) Get(ctx context.Context, key string) ([]byte, error) {
	var row Entry
	err := r.db.WithContext(ctx).
		Where("entry_key = ?", key).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, storedomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Value), nil
}

func (r *repository) Set(ctx context.Context, key string, value []byte) error {
	row := Entry{
		Key:       key,
		Value:     datatypes.JSON(value),
		UpdatedAt: time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entry_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}
