package pagespec

// PageFile is the on-disk shape of a page definition. Field and notice order
// in the file is the insertion order of the resulting document.
type PageFile struct {
	Title   string         `json:"title" yaml:"title"`
	Notices []NoticeConfig `json:"notices" yaml:"notices"`
	Fields  []FieldConfig  `json:"fields" yaml:"fields"`
}

// NoticeConfig describes a banner present when the page loads.
type NoticeConfig struct {
	ID    string `json:"id" yaml:"id"`
	Level string `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
}

// FieldConfig describes an editable control plus its error display. Severity
// of the on-disk format is deliberate: unknown kinds fail the load instead of
// silently producing an element no wiring recognises.
type FieldConfig struct {
	ID    string `json:"id" yaml:"id"`
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`

	// ErrorDisplay overrides the "<id>-error" convention for this field.
	ErrorDisplay string `json:"errorDisplay" yaml:"errorDisplay"`

	// OmitDisplay skips creating the error-display element entirely, for
	// pages exercising the graceful-absence path.
	OmitDisplay bool `json:"omitDisplay" yaml:"omitDisplay"`

	// ErrorMessage presets stale error state: the field starts flagged and
	// its display starts with this text.
	ErrorMessage string `json:"errorMessage" yaml:"errorMessage"`
}

// Page is a loaded definition ready to be materialised into a document.
type Page struct {
	Title   string
	Notices []NoticeConfig
	Fields  []FieldConfig
}
