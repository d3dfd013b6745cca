package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUUIDint64Unique(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		id := UUIDint64()
		if id <= 0 {
			t.Fatalf("non-positive id %d", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
}

func TestSha256HashWithSalt(t *testing.T) {
	a := Sha256HashWithSalt("GreenBlue2024", "salt-a")
	if a != Sha256HashWithSalt("GreenBlue2024", "salt-a") {
		t.Fatal("hash is not deterministic")
	}
	if a == Sha256HashWithSalt("GreenBlue2024", "salt-b") {
		t.Fatal("salt does not change the hash")
	}
	if a == Sha256HashWithSalt("greenblue2024", "salt-a") {
		t.Fatal("input case does not change the hash")
	}
	if len(a) != 64 {
		t.Fatalf("expected hex sha256, got %d chars", len(a))
	}
}

func TestGetSecretSalt(t *testing.T) {
	t.Setenv("GBSTORE_SECRET_SALT", "")
	if GetSecretSalt() == "" {
		t.Fatal("fallback salt must not be empty")
	}
	t.Setenv("GBSTORE_SECRET_SALT", "operator-salt")
	if GetSecretSalt() != "operator-salt" {
		t.Fatal("environment salt not honored")
	}
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gbstore.yml")
	if FileExists(path) {
		t.Fatal("missing file reported as existing")
	}
	if err := os.WriteFile(path, []byte("system: {}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !FileExists(path) {
		t.Fatal("existing file reported as missing")
	}
}
