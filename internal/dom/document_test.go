package dom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestInsert_RejectsEmptyAndDuplicateIDs(t *testing.T) {
	doc := NewDocument()

	if doc.Insert(NewElement("   ", KindGeneric)) {
		t.Fatal("expected empty id to be rejected")
	}
	if !doc.Insert(NewElement("banner", KindMessage)) {
		t.Fatal("expected first insert to succeed")
	}
	if doc.Insert(NewElement("banner", KindMessage)) {
		t.Fatal("expected duplicate id to be rejected")
	}
}

func TestRemove_MissingElementIsNoOp(t *testing.T) {
	doc := NewDocument(NewElement("banner", KindMessage))

	doc.Remove("banner")
	doc.Remove("banner")

	if doc.Contains("banner") {
		t.Fatal("expected banner to be gone")
	}
}

func TestOfKind_PreservesInsertionOrder(t *testing.T) {
	doc := NewDocument(
		NewElement("first", KindMessage),
		NewElement("email", KindTextInput),
		NewElement("second", KindMessage),
	)

	var got []string
	for _, element := range doc.OfKind(KindMessage) {
		got = append(got, element.ID)
	}
	want := []string{"first", "second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("message order mismatch (-want +got):\n%s", diff)
	}
}

func TestEditable_CoversTheThreeControlKinds(t *testing.T) {
	doc := NewDocument(
		NewElement("email", KindTextInput),
		NewElement("club", KindSelect),
		NewElement("bio", KindTextArea),
		NewElement("banner", KindMessage),
		NewElement("email-error", KindErrorDisplay),
	)

	var got []string
	for _, element := range doc.Editable() {
		got = append(got, element.ID)
	}
	want := []string{"email", "club", "bio"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("editable mismatch (-want +got):\n%s", diff)
	}
}

func TestByID_ReturnsCopies(t *testing.T) {
	doc := NewDocument(NewElement("email", KindTextInput))
	doc.AddClass("email", "error")

	element, ok := doc.ByID("email")
	if !ok {
		t.Fatal("expected element")
	}
	element.RemoveClass("error")

	stored, _ := doc.ByID("email")
	if !stored.HasClass("error") {
		t.Fatal("mutating the copy leaked into the document")
	}
}

func TestClassOperations_AreAdditiveAndIdempotent(t *testing.T) {
	doc := NewDocument(NewElement("email", KindTextInput))
	doc.AddClass("email", "form-control")
	doc.AddClass("email", "error")
	doc.AddClass("email", "error")

	element, _ := doc.ByID("email")
	if diff := cmp.Diff([]string{"form-control", "error"}, element.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	doc.RemoveClass("email", "error")
	doc.RemoveClass("email", "error")

	element, _ = doc.ByID("email")
	if diff := cmp.Diff([]string{"form-control"}, element.Classes); diff != "" {
		t.Fatalf("classes after removal mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValue_DispatchesListenersInOrder(t *testing.T) {
	doc := NewDocument(NewElement("email", KindTextInput))

	var calls []string
	doc.OnInput("email", func(value string) {
		calls = append(calls, "first:"+value)
	})
	doc.OnInput("email", func(value string) {
		calls = append(calls, "second:"+value)
	})

	doc.SetValue("email", "bob")

	want := []string{"first:bob", "second:bob"}
	if diff := cmp.Diff(want, calls); diff != "" {
		t.Fatalf("listener calls mismatch (-want +got):\n%s", diff)
	}

	element, _ := doc.ByID("email")
	if element.Value != "bob" {
		t.Fatalf("value = %q, want %q", element.Value, "bob")
	}
}

func TestSetValue_ListenerMayMutateDocument(t *testing.T) {
	doc := NewDocument(
		NewElement("email", KindTextInput),
		NewElement("email-error", KindErrorDisplay),
	)
	doc.SetText("email-error", "Invalid email")

	doc.OnInput("email", func(string) {
		doc.SetText("email-error", "")
		doc.RemoveClass("email", "error")
	})

	doc.SetValue("email", "b")

	display, _ := doc.ByID("email-error")
	if display.Text != "" {
		t.Fatalf("error text = %q, want empty", display.Text)
	}
}

func TestSetValue_MissingElementIsNoOp(t *testing.T) {
	doc := NewDocument()
	doc.SetValue("missing", "anything")
}

func TestReady_FiresHooksOnceInOrder(t *testing.T) {
	doc := NewDocument()

	var calls []string
	doc.OnReady(func() { calls = append(calls, "first") })
	doc.OnReady(func() { calls = append(calls, "second") })

	doc.Ready()
	doc.Ready()

	if diff := cmp.Diff([]string{"first", "second"}, calls); diff != "" {
		t.Fatalf("ready hooks mismatch (-want +got):\n%s", diff)
	}
}

func TestOnReady_AfterReadyRunsImmediately(t *testing.T) {
	doc := NewDocument()
	doc.Ready()

	fired := false
	doc.OnReady(func() { fired = true })

	if !fired {
		t.Fatal("expected late hook to run immediately")
	}
	if !doc.IsReady() {
		t.Fatal("expected document to report ready")
	}
}
