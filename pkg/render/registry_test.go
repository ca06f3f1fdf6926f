package render_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/notices"
	"github.com/goliatone/go-pagewire/pkg/render"
	"github.com/goliatone/go-pagewire/pkg/testsupport"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, *dom.Document, render.RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(stubRenderer{name: "alpha"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("alpha")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "alpha" {
		t.Fatalf("renderer name = %q", renderer.Name())
	}
	if !registry.Has("alpha") {
		t.Fatal("expected Has to report alpha")
	}
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "alpha"})
	if err := registry.Register(stubRenderer{name: "alpha"}); err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}

func TestRegistry_GetUnknownFails(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for unknown renderer")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "zeta"})
	registry.MustRegister(stubRenderer{name: "alpha"})

	if diff := cmp.Diff([]string{"alpha", "zeta"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRenderer_MatchesGolden(t *testing.T) {
	doc := dom.NewDocument(
		dom.NewElement("email", dom.KindTextInput),
		dom.NewElement("email-error", dom.KindErrorDisplay),
	)
	notices.Post(doc, notices.Notice{ID: "saved", Level: notices.LevelSuccess, Text: "Profile saved."})
	doc.SetValue("email", "bob")
	form.ValidateField(doc, "email", func(v string) bool { return strings.Contains(v, "@") }, "Invalid email")

	output, err := render.NewTextRenderer().Render(context.Background(), doc, render.RenderOptions{Title: "Profile"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	goldenPath := filepath.Join("testdata", "profile.golden.txt")
	testsupport.WriteGolden(t, goldenPath, string(output))

	want := testsupport.MustReadGoldenString(t, goldenPath)
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("text output mismatch (-want +got):\n%s", diff)
	}
}
