package store

import (
	"context"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"papi/internal/errors"
)

type blobRow struct {
	Key   string `gorm:"primaryKey;size:191"`
	Value []byte `gorm:"type:longblob"`
}

func (blobRow) TableName() string { return "blobs" }

// MySQL keeps blobs in a single key-value table so the store can live in a
// real database without changing any call sites.
type MySQL struct {
	db *gorm.DB
}

// NewMySQL connects via GORM and migrates the blob table.
func NewMySQL(dsn string) (*MySQL, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &MySQL{db: db}, nil
}

func (m *MySQL) Get(ctx context.Context, key string) ([]byte, error) {
	var row blobRow
	err := m.db.WithContext(ctx).Where("`key` = ?", key).First(&row).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: mysql get %s: %v", errors.ErrStorageFailure, key, err)
	}
	return row.Value, nil
}

func (m *MySQL) Set(ctx context.Context, key string, value []byte) error {
	row := blobRow{Key: key, Value: value}
	if err := m.db.WithContext(ctx).Save(&row).Error; err != nil {
		return fmt.Errorf("%w: mysql set %s: %v", errors.ErrStorageFailure, key, err)
	}
	return nil
}

func (m *MySQL) Delete(ctx context.Context, key string) error {
	if err := m.db.WithContext(ctx).Delete(&blobRow{}, "`key` = ?", key).Error; err != nil {
		return fmt.Errorf("%w: mysql del %s: %v", errors.ErrStorageFailure, key, err)
	}
	return nil
}
