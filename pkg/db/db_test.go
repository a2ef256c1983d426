package db

import (
	"testing"

	"tracknest.io/asset-inventory-service/pkg/common"
	_ "tracknest.io/asset-inventory-service/pkg/testing"

	"gorm.io/gorm"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func columnExists(db *gorm.DB, tableName, columnName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM pragma_table_info(?) WHERE name = ?`, tableName, columnName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance, err := New(UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("Expected store to open, got: %v", err)
	}

	for _, table := range []string{"assets", "locations"} {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}

	for _, column := range []string{"coords", "online_status", "last_probed_at", "parent_asset_id"} {
		if !columnExists(instance.Conn, "assets", column) {
			t.Errorf("Expected column %q on assets after migration", column)
		}
	}
	if !columnExists(instance.Conn, "locations", "area") {
		t.Errorf("Expected column \"area\" on locations after migration")
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	common.SetTestLoggerNop()

	// Opening twice runs every migration twice; the second pass hits the
	// duplicate-column failures and must swallow them.
	first, err := New(UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("first open failed: %v", err)
	}

	second, err := New(UseMemorySqliteDialector())
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}

	if first == second {
		t.Error("Expected distinct handles from two New calls")
	}
	if !tableExists(second.Conn, "assets") {
		t.Error("Expected assets table to survive a re-open")
	}
}
