package utils_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"daydo/models"
	"daydo/utils"
)

func newFileStore(t *testing.T) *utils.FileStore {
	t.Helper()
	store, err := utils.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	return store
}

func TestFileStoreLoadMissingUser(t *testing.T) {
	store := newFileStore(t)

	if _, err := store.Load("ghost"); !errors.Is(err, utils.ErrUserNotFound) {
		t.Errorf("Load() error = %v, want ErrUserNotFound", err)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	store := newFileStore(t)

	user := &models.User{
		Name:     "Alice",
		UserID:   "alice",
		Password: "hunter2",
		Gmail:    "alice@gmail.com",
		Tasks: map[string][]models.Task{
			"2026-09-01": {{ID: 1756700000000, Text: "buy milk", Date: "2026-09-01"}},
		},
	}
	if err := store.Save(user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "Alice" || got.Password != "hunter2" || got.Gmail != "alice@gmail.com" {
		t.Errorf("Load() = %+v, fields do not round-trip", got)
	}
	if len(got.Tasks["2026-09-01"]) != 1 || got.Tasks["2026-09-01"][0].Text != "buy milk" {
		t.Errorf("Load() tasks = %+v, want the saved bucket", got.Tasks)
	}
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := newFileStore(t)

	user := &models.User{UserID: "alice", Name: "Alice", Tasks: map[string][]models.Task{}}
	if err := store.Save(user); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	user.Name = "Alice B."
	if err := store.Save(user); err != nil {
		t.Fatalf("Save() second call error = %v", err)
	}

	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "Alice B." {
		t.Errorf("Load() name = %q, want the last write", got.Name)
	}
}

func TestFileStoreExists(t *testing.T) {
	store := newFileStore(t)

	exists, err := store.Exists("alice")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for an unregistered user")
	}

	if err := store.Save(&models.User{UserID: "alice", Tasks: map[string][]models.Task{}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	exists, err = store.Exists("alice")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for a saved user")
	}
}

func TestFileStoreWritesPrettyPrintedJSON(t *testing.T) {
	store := newFileStore(t)

	if err := store.Save(&models.User{UserID: "alice", Tasks: map[string][]models.Task{}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.Dir, "alice.json"))
	if err != nil {
		t.Fatalf("reading record file: %v", err)
	}
	if !strings.Contains(string(data), "\n  \"userId\": \"alice\"") {
		t.Errorf("record file is not pretty-printed:\n%s", data)
	}
}

func TestFileStoreLoadNormalizesNilTasks(t *testing.T) {
	store := newFileStore(t)

	path := filepath.Join(store.Dir, "alice.json")
	raw := `{"name":"Alice","userId":"alice","password":"x","gmail":"a@gmail.com"}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("seeding record file: %v", err)
	}

	got, err := store.Load("alice")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Tasks == nil {
		t.Error("Load() left Tasks nil for a record without a tasks map")
	}
}
