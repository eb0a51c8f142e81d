package store

import (
	"bytes"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "tally.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLoadMissingKey(t *testing.T) {
	db := openTestDB(t)

	blob, err := db.Load("records")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if blob != nil {
		t.Fatalf("Load() = %q, want nil for an unwritten key", blob)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	want := []byte(`{"records":[]}`)
	if err := db.Save("records", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := db.Load("records")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Load() = %q, want %q", got, want)
	}
}

func TestSaveReplaces(t *testing.T) {
	db := openTestDB(t)

	if err := db.Save("categories", []byte("v1")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Save("categories", []byte("v2")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := db.Load("categories")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "v2" {
		t.Fatalf("Load() = %q, want %q", got, "v2")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	db := openTestDB(t)

	if err := db.Save("records", []byte("recs")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := db.Save("categories", []byte("cats")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := db.Load("records")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != "recs" {
		t.Fatalf("Load(records) = %q, want %q", got, "recs")
	}
}
