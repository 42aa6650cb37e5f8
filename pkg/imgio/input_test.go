package imgio

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveBuffer(t *testing.T) {
	data := []byte{0x89, 0x50, 0x4E, 0x47}

	got, err := FromBytes(data).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Resolve returned %v, want %v", got, data)
	}
}

func TestResolvePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.bin")
	data := []byte("encoded image bytes")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path).Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Resolve returned %q, want %q", got, data)
	}
}

func TestResolveMissingPathPropagatesIOError(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "missing")).Resolve()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected a not-exist error, got %v", err)
	}
}

func TestResolveZeroInput(t *testing.T) {
	_, err := Input{}.Resolve()

	var inputErr *InvalidInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if !strings.Contains(err.Error(), "must be a file path or byte buffer") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestInvalidInputErrorCarriesID(t *testing.T) {
	_, err := (Input{}).WithID("upload-7").Resolve()
	if !strings.Contains(err.Error(), "upload-7") {
		t.Errorf("message = %q, want it to name the input", err.Error())
	}
}

func TestWithIDDoesNotAffectResolution(t *testing.T) {
	data := []byte("abc")
	got, err := FromBytes(data).WithID("label").Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Resolve returned %q, want %q", got, data)
	}
}
