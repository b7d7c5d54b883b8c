package services

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

func TestSignatureStoreResolve(t *testing.T) {
	t.Parallel()

	defaultPNG := []byte("default-signature-bytes")
	path := filepath.Join(t.TempDir(), "sig.png")
	if err := os.WriteFile(path, defaultPNG, 0o644); err != nil {
		t.Fatalf("write default: %v", err)
	}

	store, err := NewSignatureStore(logger.NewNop(), path)
	if err != nil {
		t.Fatalf("NewSignatureStore: %v", err)
	}

	if got := store.Resolve(""); !bytes.Equal(got, defaultPNG) {
		t.Fatalf("empty input should yield default, got=%q", got)
	}

	custom := []byte("custom-signature")
	encoded := base64.StdEncoding.EncodeToString(custom)
	if got := store.Resolve(encoded); !bytes.Equal(got, custom) {
		t.Fatalf("plain base64 got=%q", got)
	}
	if got := store.Resolve("data:image/png;base64," + encoded); !bytes.Equal(got, custom) {
		t.Fatalf("data url got=%q", got)
	}

	if got := store.Resolve("%%%not-base64%%%"); !bytes.Equal(got, defaultPNG) {
		t.Fatalf("broken payload should yield default, got=%q", got)
	}
}

func TestSignatureStoreMissingDefault(t *testing.T) {
	t.Parallel()

	if _, err := NewSignatureStore(logger.NewNop(), filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}

	store, err := NewSignatureStore(logger.NewNop(), "")
	if err != nil {
		t.Fatalf("empty path should be fine: %v", err)
	}
	if got := store.Resolve(""); got != nil {
		t.Fatalf("no default configured, got=%q", got)
	}
}
