package pagespec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-pagewire/pkg/dom"
	"github.com/goliatone/go-pagewire/pkg/form"
	"github.com/goliatone/go-pagewire/pkg/notices"
)

// Load parses a JSON or YAML page definition. JSON is attempted first so
// strict payloads keep their error messages; YAML covers the rest.
func Load(data []byte, source string) (Page, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Page{}, fmt.Errorf("pagespec: %s is empty", source)
	}

	var file PageFile
	if err := json.Unmarshal(data, &file); err != nil {
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Page{}, fmt.Errorf("pagespec: parse %s: %w", source, err)
		}
	}

	page := Page{
		Title:   strings.TrimSpace(file.Title),
		Notices: file.Notices,
		Fields:  file.Fields,
	}
	if err := page.validate(source); err != nil {
		return Page{}, err
	}
	return page, nil
}

// LoadFS reads and parses a page definition from a filesystem.
func LoadFS(fsys fs.FS, name string) (Page, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Page{}, fmt.Errorf("pagespec: read %s: %w", name, err)
	}
	return Load(data, name)
}

func (p Page) validate(source string) error {
	seen := make(map[string]struct{})
	claim := func(id string) error {
		if _, exists := seen[id]; exists {
			return fmt.Errorf("pagespec: %s reuses element id %q", source, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for idx, notice := range p.Notices {
		if strings.TrimSpace(notice.Text) == "" {
			return fmt.Errorf("pagespec: %s notice %d has no text", source, idx)
		}
		if id := strings.TrimSpace(notice.ID); id != "" {
			if err := claim(id); err != nil {
				return err
			}
		}
	}

	for idx, field := range p.Fields {
		id := strings.TrimSpace(field.ID)
		if id == "" {
			return fmt.Errorf("pagespec: %s field %d has no id", source, idx)
		}
		if _, err := controlKind(field.Kind); err != nil {
			return fmt.Errorf("pagespec: %s field %q: %w", source, id, err)
		}
		if err := claim(id); err != nil {
			return err
		}
	}
	return nil
}

// Build materialises the page into a document plus the explicit bindings its
// fields declare. The document is not yet ready; callers attach wiring first
// and then fire doc.Ready.
func (p Page) Build() (*dom.Document, *form.Bindings, error) {
	doc := dom.NewDocument()
	bindings := form.NewBindings()

	for _, cfg := range p.Notices {
		notice := notices.New(notices.ParseLevel(cfg.Level), cfg.Text)
		notice.ID = strings.TrimSpace(cfg.ID)
		if notices.Post(doc, notice) == "" {
			return nil, nil, fmt.Errorf("pagespec: notice %q could not be inserted", cfg.ID)
		}
	}

	for _, cfg := range p.Fields {
		id := strings.TrimSpace(cfg.ID)
		kind, err := controlKind(cfg.Kind)
		if err != nil {
			return nil, nil, fmt.Errorf("pagespec: field %q: %w", id, err)
		}

		element := dom.NewElement(id, kind)
		element.Value = cfg.Value
		if label := strings.TrimSpace(cfg.Label); label != "" {
			element.Attrs = map[string]string{"label": label}
		}
		if !doc.Insert(element) {
			return nil, nil, fmt.Errorf("pagespec: field %q could not be inserted", id)
		}

		displayID := strings.TrimSpace(cfg.ErrorDisplay)
		if displayID != "" {
			bindings.Bind(id, displayID)
		} else {
			displayID = id + form.ErrorDisplaySuffix
		}
		if !cfg.OmitDisplay {
			doc.Insert(dom.NewElement(displayID, dom.KindErrorDisplay))
		}

		if message := strings.TrimSpace(cfg.ErrorMessage); message != "" {
			doc.AddClass(id, form.ErrorClass)
			doc.SetText(displayID, message)
		}
	}

	return doc, bindings, nil
}

func controlKind(raw string) (dom.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "text", "input", "text-input":
		return dom.KindTextInput, nil
	case "select":
		return dom.KindSelect, nil
	case "textarea":
		return dom.KindTextArea, nil
	default:
		return "", fmt.Errorf("unknown control kind %q", raw)
	}
}
