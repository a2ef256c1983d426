package db

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"tracknest.io/asset-inventory-service/pkg/common"
	"tracknest.io/asset-inventory-service/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

// New opens the store and ensures the schema is current. The handle is
// constructed once at startup and passed down; there is no package-level
// instance.
func New(dialector gorm.Dialector) (*DB, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameInventoryCore,
		zap.String(common.LoggerFieldInvCategory, common.LoggerCategoryInvSchema),
	)

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	logger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

	d := &DB{Conn: conn}

	if err := d.ensureSchema(); err != nil {
		return nil, err
	}

	logger.Info("Database schema ready")

	if err := d.Conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("enable sqlite foreign key support: %w", err)
	}

	if err := d.Conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
		return nil, fmt.Errorf("set sqlite journal mode: %w", err)
	}

	return d, nil
}

// ensureSchema is idempotent. AutoMigrate covers fresh databases; the ALTER
// statements cover stores created before the map and probe columns existed,
// where only the "duplicate column name" failure is tolerated.
func (d *DB) ensureSchema() error {
	if err := d.Conn.AutoMigrate(&models.Location{}, &models.Asset{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	alters := []string{
		"ALTER TABLE locations ADD COLUMN area text",
		"ALTER TABLE assets ADD COLUMN coords text",
		"ALTER TABLE assets ADD COLUMN online_status varchar(10)",
		"ALTER TABLE assets ADD COLUMN last_probed_at datetime",
	}
	for _, stmt := range alters {
		if err := d.Conn.Exec(stmt).Error; err != nil && !isDuplicateColumn(err) {
			return fmt.Errorf("add legacy column: %w", err)
		}
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	return strings.Contains(err.Error(), "duplicate column name")
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyInvDBPath); !found {
		dbPath = "inventory.db"
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}
