package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-pagewire/pkg/form"
)

// RenderOptions carries per-render overrides: the page title, an optional
// go-theme renderer configuration, explicit field bindings, and extra
// context merged into the template payload.
type RenderOptions struct {
	Title    string
	Theme    *theme.RendererConfig
	Bindings *form.Bindings
	Extra    map[string]any
}

// buildThemeContext flattens the theme selection into the map shape the
// page template reads.
func buildThemeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":           cfg.Theme,
		"variant":        cfg.Variant,
		"css_vars_style": cssVarsStyle(cfg.CSSVars),
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
