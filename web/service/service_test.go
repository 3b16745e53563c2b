package service

import (
	"testing"

	"quote-hunt/database"
)

func setup(t *testing.T) {
	t.Helper()
	dbPath := t.TempDir() + "/test.db"
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init db: %v", err)
	}
	// Serialize sqlite access so concurrent test writers contend on the
	// constraint instead of on the file lock.
	sqlDB, err := database.GetDB().DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
}
