package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// blobRecord is the single key/value table behind the local store.
type blobRecord struct {
	Key   string `gorm:"primaryKey;type:varchar(100)"`
	Value []byte
}

func (blobRecord) TableName() string {
	return "blobs"
}

// GormBlobStore persists blobs in a local SQLite database, one row per
// collection key. It is the default backend: durable, file-local and
// serverless.
type GormBlobStore struct {
	DB *gorm.DB
}

// NewGormBlobStore opens (or creates) the SQLite database at path and
// migrates the blobs table.
func NewGormBlobStore(path string) (*GormBlobStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.AutoMigrate(&blobRecord{}); err != nil {
		return nil, fmt.Errorf("migrate blobs table: %w", err)
	}

	return &GormBlobStore{DB: db}, nil
}

// Get decodes the row stored under key into dest.
func (s *GormBlobStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	var rec blobRecord
	err := s.DB.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(rec.Value, dest); err != nil {
		return true, fmt.Errorf("%w: key %s: %v", ErrCorruptBlob, key, err)
	}
	return true, nil
}

// Put stores value under key as JSON, replacing any prior row.
func (s *GormBlobStore) Put(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}

	rec := blobRecord{Key: key, Value: jsonValue}
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

// Delete removes the row under key.
func (s *GormBlobStore) Delete(ctx context.Context, key string) error {
	return s.DB.WithContext(ctx).Delete(&blobRecord{}, "key = ?", key).Error
}
