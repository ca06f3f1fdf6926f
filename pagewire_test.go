package pagewire_test

import (
	"context"
	"strings"
	"testing"

	pagewire "github.com/goliatone/go-pagewire"
	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/notices"
	"github.com/goliatone/go-pagewire/pkg/testsupport"
)

const loginPage = `
title: Login
notices:
  - id: goodbye
    level: success
    text: You have been logged out successfully
fields:
  - id: email
    kind: text
    value: bob
`

func TestWire_FullPageLifecycle(t *testing.T) {
	page, err := pagewire.LoadPage([]byte(loginPage), "login.yaml")
	if err != nil {
		t.Fatalf("load page: %v", err)
	}
	doc, bindings, err := page.Build()
	if err != nil {
		t.Fatalf("build page: %v", err)
	}

	clock := testsupport.NewManualClock()
	pagewire.Wire(doc, pagewire.WithClock(clock), pagewire.WithBindings(bindings))
	doc.Ready()

	hasAt := func(v string) bool { return strings.Contains(v, "@") }

	// Scenario one: "bob" fails, the field is flagged, the display carries
	// the message.
	if pagewire.ValidateField(doc, "email", hasAt, "Invalid email") {
		t.Fatal("expected bob to be invalid")
	}
	field, _ := doc.ByID("email")
	if !field.HasClass(form.ErrorClass) {
		t.Fatal("error class missing")
	}
	display, _ := doc.ByID("email-error")
	if display.Text != "Invalid email" {
		t.Fatalf("error text = %q", display.Text)
	}

	// Scenario two: typing clears the stale presentation before any
	// re-validation happens.
	doc.SetValue("email", "bob@")
	field, _ = doc.ByID("email")
	if field.HasClass(form.ErrorClass) {
		t.Fatal("typing did not clear the error class")
	}
	display, _ = doc.ByID("email-error")
	if display.Text != "" {
		t.Fatalf("typing left error text %q", display.Text)
	}

	// Scenario three: the corrected value validates clean.
	doc.SetValue("email", "bob@x.com")
	if !pagewire.ValidateField(doc, "email", hasAt, "Invalid email") {
		t.Fatal("expected bob@x.com to be valid")
	}

	// Meanwhile the banner runs its independent dismiss timeline.
	clock.Advance(notices.FadeDelay)
	banner, ok := doc.ByID("goodbye")
	if !ok || banner.Opacity != 0 {
		t.Fatalf("banner not faded: ok=%v opacity=%v", ok, banner.Opacity)
	}
	clock.Advance(notices.RemoveDelay)
	if doc.Contains("goodbye") {
		t.Fatal("banner still attached")
	}

	// And the final state renders.
	html, err := pagewire.RenderHTML(context.Background(), doc, pagewire.RenderOptions{Title: "Login"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(html), `value="bob@x.com"`) {
		t.Fatalf("rendered page missing final value:\n%s", html)
	}
	if strings.Contains(string(html), "goodbye") {
		t.Fatalf("rendered page still shows dismissed banner:\n%s", html)
	}
}

func TestWire_BehaviorsAreIndependent(t *testing.T) {
	// A document with no banners still gets working input wiring, and a
	// document with no controls still dismisses banners.
	clock := testsupport.NewManualClock()

	controls := dom.NewDocument(
		dom.NewElement("email", dom.KindTextInput),
		dom.NewElement("email-error", dom.KindErrorDisplay),
	)
	pagewire.Wire(controls, pagewire.WithClock(clock))
	controls.Ready()
	controls.AddClass("email", form.ErrorClass)
	controls.SetValue("email", "x")
	field, _ := controls.ByID("email")
	if field.HasClass(form.ErrorClass) {
		t.Fatal("input wiring inactive without banners")
	}

	banners := dom.NewDocument(dom.NewElement("only-banner", dom.KindMessage))
	pagewire.Wire(banners, pagewire.WithClock(clock))
	banners.Ready()
	clock.Advance(notices.FadeDelay + notices.RemoveDelay)
	if banners.Contains("only-banner") {
		t.Fatal("dismiss inactive without controls")
	}
}
