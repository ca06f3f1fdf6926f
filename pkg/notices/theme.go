package notices

import (
	"strings"

	theme "github.com/goliatone/go-theme"
)

// LevelClasses resolves the CSS class for each level from a go-theme renderer
// configuration, falling back to the built-in classes when the theme carries
// no token for a level. A nil config yields the defaults.
func LevelClasses(cfg *theme.RendererConfig) map[Level]string {
	levels := []Level{LevelDebug, LevelInfo, LevelSuccess, LevelWarning, LevelError}
	out := make(map[Level]string, len(levels))
	for _, level := range levels {
		out[level] = level.DefaultClass()
	}
	if cfg == nil || len(cfg.Tokens) == 0 {
		return out
	}
	for _, level := range levels {
		if class := strings.TrimSpace(cfg.Tokens[level.ClassToken()]); class != "" {
			out[level] = class
		}
	}
	return out
}
