package openapi_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-pagewire/pkg/openapi"
	"github.com/goliatone/go-pagewire/pkg/testsupport"
)

func TestChecks_FromFileFixture(t *testing.T) {
	doc := testsupport.LoadDocument(t, filepath.Join("testdata", "membership.json"))
	if doc.Source().Kind() != openapi.SourceKindFile {
		t.Fatalf("source kind = %q", doc.Source().Kind())
	}

	checks, err := openapi.Checks(context.Background(), doc, "createMember")
	if err != nil {
		t.Fatalf("derive checks: %v", err)
	}
	if len(checks) != 4 {
		t.Fatalf("checks = %d, want 4", len(checks))
	}
}

func TestLoadDocumentFromPath_MissingFile(t *testing.T) {
	if _, err := testsupport.LoadDocumentFromPath(filepath.Join("testdata", "nope.json")); err == nil {
		t.Fatal("expected error for missing fixture")
	}
}
