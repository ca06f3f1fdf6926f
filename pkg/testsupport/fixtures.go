package testsupport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgopenapi "github.com/goliatone/go-pagewire/pkg/openapi"
)

// LoadDocument reads a fixture and builds an openapi.Document using a file
// source, failing the test on error.
func LoadDocument(t *testing.T, path string) pkgopenapi.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (pkgopenapi.Document, error) {
	if path == "" {
		return pkgopenapi.Document{}, errors.New("testsupport: document path is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return pkgopenapi.Document{}, err
	}
	return pkgopenapi.NewDocument(pkgopenapi.SourceFromFile(abs), data)
}

// CompareGolden diffs a golden snapshot against actual output. An empty
// string means they match.
func CompareGolden(want, got string) string {
	return cmp.Diff(want, got)
}
