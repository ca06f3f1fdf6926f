package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
)

// scriptedDriver replays canned answers and records the messages shown.
type scriptedDriver struct {
	answers []string
	next    int
	infos   []string
}

func (d *scriptedDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if d.next >= len(d.answers) {
		return "", ErrAborted
	}
	answer := d.answers[d.next]
	d.next++
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	return 0, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func sessionDoc() *dom.Document {
	email := dom.NewElement("email", dom.KindTextInput)
	email.Value = "bob"
	doc := dom.NewDocument(
		email,
		dom.NewElement("email-error", dom.KindErrorDisplay),
	)
	form.ClearOnInput(doc)
	doc.Ready()
	return doc
}

func emailCheck() form.Check {
	return form.Check{
		FieldID:   "email",
		Predicate: func(v string) bool { return strings.Contains(v, "@") },
		Message:   "Invalid email",
	}
}

func TestSession_RepromptsUntilValid(t *testing.T) {
	doc := sessionDoc()
	driver := &scriptedDriver{answers: []string{"still-bob", "bob@x.com"}}

	if err := NewSession(driver, nil).Run(context.Background(), doc, []form.Check{emailCheck()}); err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff([]string{"Invalid email"}, driver.infos); diff != "" {
		t.Fatalf("info messages mismatch (-want +got):\n%s", diff)
	}

	field, _ := doc.ByID("email")
	if field.Value != "bob@x.com" {
		t.Fatalf("value = %q", field.Value)
	}
	if field.HasClass(form.ErrorClass) {
		t.Fatal("error class left behind")
	}
}

func TestSession_SkipsMissingFields(t *testing.T) {
	doc := sessionDoc()
	driver := &scriptedDriver{}

	check := form.Check{FieldID: "phone", Predicate: func(string) bool { return false }, Message: "unreachable"}
	if err := NewSession(driver, nil).Run(context.Background(), doc, []form.Check{check}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if driver.next != 0 {
		t.Fatal("prompted for a missing field")
	}
}

func TestSession_PropagatesAbort(t *testing.T) {
	doc := sessionDoc()
	driver := &scriptedDriver{answers: nil}

	err := NewSession(driver, nil).Run(context.Background(), doc, []form.Check{emailCheck()})
	if err != ErrAborted {
		t.Fatalf("err = %v, want ErrAborted", err)
	}
}
