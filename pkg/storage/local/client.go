// Package local persists named state snapshots to a single-file SQLite
// database, the server-side stand-in for the storefront's browser storage.
package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sunlinkenergy/sunlink-backend/pkg/config"
	"github.com/sunlinkenergy/sunlink-backend/pkg/logger"
)

// Client wraps the snapshot database connection.
type Client struct {
	conn *gorm.DB
}

// Pinger exposes the health check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

type snapshotRecord struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// Open boots the snapshot store at the configured path and migrates its
// single table.
func Open(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*Client, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if err := conn.WithContext(ctx).AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("migrating snapshot table: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "snapshot storage opened")
	}

	return &Client{conn: conn}, nil
}

// Save upserts the snapshot stored under the given name.
func (c *Client) Save(ctx context.Context, name string, data []byte) error {
	record := snapshotRecord{Name: name, Data: data, UpdatedAt: time.Now().UTC()}
	result := c.conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&record)
	if result.Error != nil {
		return fmt.Errorf("saving snapshot %q: %w", name, result.Error)
	}
	return nil
}

// Load returns the snapshot stored under the given name, or nil when no
// snapshot has been saved yet.
func (c *Client) Load(ctx context.Context, name string) ([]byte, error) {
	var record snapshotRecord
	result := c.conn.WithContext(ctx).First(&record, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading snapshot %q: %w", name, result.Error)
	}
	return record.Data, nil
}

// Ping verifies the datasource is reachable.
func (c *Client) Ping(ctx context.Context) error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close shuts down the underlying connection.
func (c *Client) Close() error {
	sqlDB, err := c.conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
