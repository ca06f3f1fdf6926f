package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/form/rules"
)

// Checks derives one form check per request-body property of the named
// operation. Each field gets a single combined predicate so a later
// constraint can never clear the error a failed earlier one just set.
func Checks(ctx context.Context, doc Document, operationID string) ([]form.Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(doc.Raw())
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}

	operation := findOperation(spec, operationID)
	if operation == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	schema := requestSchema(operation)
	if schema == nil || len(schema.Properties) == 0 {
		return nil, nil
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make([]form.Check, 0, len(names))
	for _, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		_, isRequired := required[name]
		predicate, message := fieldConstraint(ref.Value, isRequired)
		if predicate == nil {
			continue
		}
		checks = append(checks, form.Check{
			FieldID:   name,
			Predicate: predicate,
			Message:   message,
		})
	}
	return checks, nil
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec == nil || spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation != nil && operation.OperationID == operationID {
				return operation
			}
		}
	}
	return nil
}

func requestSchema(operation *openapi3.Operation) *openapi3.Schema {
	if operation.RequestBody == nil || operation.RequestBody.Value == nil {
		return nil
	}
	content := operation.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

// fieldConstraint folds a property schema into one predicate and the message
// shown on failure. The message favours the most specific constraint so a
// filled-but-malformed value reads better than a generic "required" hint.
func fieldConstraint(schema *openapi3.Schema, required bool) (form.Predicate, string) {
	var predicates []form.Predicate
	message := ""

	if required {
		predicates = append(predicates, rules.Required())
		message = "This field is required"
	}

	if schema.Pattern != "" {
		predicates = append(predicates, optional(rules.Pattern(schema.Pattern)))
		message = "Invalid format"
	}

	if schema.MinLength > 0 {
		predicates = append(predicates, optional(rules.MinLength(int(schema.MinLength))))
		message = fmt.Sprintf("Must be at least %d characters", schema.MinLength)
	}
	if schema.MaxLength != nil {
		predicates = append(predicates, rules.MaxLength(int(*schema.MaxLength)))
		message = fmt.Sprintf("Must be at most %d characters", *schema.MaxLength)
	}

	if len(schema.Enum) > 0 {
		options := make([]string, 0, len(schema.Enum))
		for _, option := range schema.Enum {
			options = append(options, fmt.Sprint(option))
		}
		predicates = append(predicates, optional(rules.OneOf(options...)))
		message = "Select a valid choice"
	}

	switch strings.ToLower(strings.TrimSpace(schema.Format)) {
	case "email":
		predicates = append(predicates, optional(rules.Email()))
		message = "Invalid email"
	case "uri", "url":
		predicates = append(predicates, optional(rules.URL()))
		message = "Enter a valid URL"
	case "uuid":
		predicates = append(predicates, optional(rules.UUID()))
		message = "Enter a valid identifier"
	}

	if len(predicates) == 0 {
		return nil, ""
	}
	return rules.All(predicates...), message
}

// optional relaxes a content constraint so it only applies to non-empty
// values. Presence is the Required constraint's concern.
func optional(predicate form.Predicate) form.Predicate {
	return func(value string) bool {
		if strings.TrimSpace(value) == "" {
			return true
		}
		return predicate(value)
	}
}
