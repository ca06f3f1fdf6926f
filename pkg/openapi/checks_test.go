package openapi

import (
	"context"
	"testing"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
)

const membershipSpec = `{
  "openapi": "3.0.3",
  "info": {"title": "club membership", "version": "1.0.0"},
  "paths": {
    "/members": {
      "post": {
        "operationId": "createMember",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["name", "email"],
                "properties": {
                  "name": {"type": "string", "minLength": 2},
                  "email": {"type": "string", "format": "email"},
                  "website": {"type": "string", "format": "uri"},
                  "category": {"type": "string", "enum": ["tech", "arts", "cultural"]}
                }
              }
            }
          }
        },
        "responses": {"201": {"description": "created"}}
      }
    }
  }
}`

func loadChecks(t *testing.T) []form.Check {
	t.Helper()
	doc := MustNewDocument(SourceFromFS("membership.json"), []byte(membershipSpec))
	checks, err := Checks(context.Background(), doc, "createMember")
	if err != nil {
		t.Fatalf("derive checks: %v", err)
	}
	return checks
}

func TestChecks_OnePerPropertyInSortedOrder(t *testing.T) {
	checks := loadChecks(t)

	want := []string{"category", "email", "name", "website"}
	if len(checks) != len(want) {
		t.Fatalf("checks = %d, want %d", len(checks), len(want))
	}
	for idx, check := range checks {
		if check.FieldID != want[idx] {
			t.Fatalf("check %d = %q, want %q", idx, check.FieldID, want[idx])
		}
	}
}

func TestChecks_DrivesValidationAgainstADocument(t *testing.T) {
	checks := loadChecks(t)

	name := dom.NewElement("name", dom.KindTextInput)
	name.Value = "Priya"
	email := dom.NewElement("email", dom.KindTextInput)
	email.Value = "bob"
	doc := dom.NewDocument(
		name, email,
		dom.NewElement("email-error", dom.KindErrorDisplay),
		dom.NewElement("name-error", dom.KindErrorDisplay),
	)

	aggregate := form.NewForm(form.NewValidator(), checks...)
	if aggregate.Validate(doc) {
		t.Fatal("expected invalid email to fail the form")
	}

	display, _ := doc.ByID("email-error")
	if display.Text != "Invalid email" {
		t.Fatalf("email error = %q", display.Text)
	}
	nameDisplay, _ := doc.ByID("name-error")
	if nameDisplay.Text != "" {
		t.Fatalf("name error = %q, want empty", nameDisplay.Text)
	}

	doc.SetValue("email", "bob@x.com")
	if !aggregate.Validate(doc) {
		t.Fatal("expected corrected form to pass")
	}
}

func TestChecks_OptionalConstraintsSkipEmptyValues(t *testing.T) {
	checks := loadChecks(t)

	var website form.Check
	for _, check := range checks {
		if check.FieldID == "website" {
			website = check
		}
	}
	if website.Predicate == nil {
		t.Fatal("website check missing")
	}

	if !website.Predicate("") {
		t.Fatal("empty optional value should pass")
	}
	if website.Predicate("not a url") {
		t.Fatal("malformed optional value should fail")
	}
	if !website.Predicate("https://clubs.example.edu") {
		t.Fatal("well-formed value should pass")
	}
}

func TestChecks_UnknownOperationFails(t *testing.T) {
	doc := MustNewDocument(SourceFromFS("membership.json"), []byte(membershipSpec))
	if _, err := Checks(context.Background(), doc, "deleteMember"); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}

func TestChecks_RequiredFieldMessage(t *testing.T) {
	checks := loadChecks(t)

	for _, check := range checks {
		if check.FieldID != "name" {
			continue
		}
		if check.Predicate("") {
			t.Fatal("required field accepted empty value")
		}
		if check.Message != "Must be at least 2 characters" {
			t.Fatalf("name message = %q", check.Message)
		}
		return
	}
	t.Fatal("name check missing")
}
