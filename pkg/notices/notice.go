package notices

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-pagewire/pkg/dom"
)

// Level mirrors the upstream message framework's tags.
type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// ParseLevel normalises a level tag, falling back to info for anything
// unrecognised so malformed fixtures never break a page.
func ParseLevel(raw string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(raw))) {
	case LevelDebug:
		return LevelDebug
	case LevelSuccess:
		return LevelSuccess
	case LevelWarning:
		return LevelWarning
	case LevelError:
		return LevelError
	default:
		return LevelInfo
	}
}

// ClassToken returns the theme token key used to resolve the level's CSS
// class, e.g. "notice.success".
func (l Level) ClassToken() string {
	return "notice." + string(l)
}

// DefaultClass returns the built-in CSS class applied when no theme override
// is configured.
func (l Level) DefaultClass() string {
	return "message-" + string(l)
}

// Notice is a one-time message destined for a banner element. Text is treated
// as plain text by renderers; Markup, when present, is sanitised HTML.
type Notice struct {
	ID     string
	Level  Level
	Text   string
	Markup string
}

// New builds a plain-text notice.
func New(level Level, text string) Notice {
	return Notice{Level: level, Text: strings.TrimSpace(text)}
}

// WithMarkup attaches sanitised inline markup to the notice. Anything the
// policy strips falls back to the plain text.
func (n Notice) WithMarkup(raw string) Notice {
	n.Markup = sanitizeMarkup(raw)
	return n
}

var noticeSeq atomic.Int64

// Post inserts the notice into the document as a message element carrying the
// base "message" class plus the level class. When the notice has no ID one is
// generated. The inserted element's id is returned.
func Post(doc *dom.Document, notice Notice) string {
	if doc == nil {
		return ""
	}
	id := strings.TrimSpace(notice.ID)
	if id == "" {
		id = fmt.Sprintf("notice-%d", noticeSeq.Add(1))
	}

	element := dom.NewElement(id, dom.KindMessage)
	element.Text = notice.Text
	element.AddClass("message")
	element.AddClass(notice.Level.DefaultClass())
	if notice.Markup != "" {
		element.Attrs = map[string]string{"markup": notice.Markup}
	}

	if !doc.Insert(element) {
		return ""
	}
	return id
}

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

func sanitizeMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := strings.TrimSpace(markupSanitizer().Sanitize(trimmed))
	if cleaned == "" {
		return ""
	}
	return cleaned
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("a", "b", "strong", "i", "em", "span", "br", "code")
		policy.AllowAttrs("href", "title").OnElements("a")
		policy.AllowAttrs("class").OnElements("span")
		policy.RequireNoFollowOnLinks(true)
		markupPolicy = policy
	})
	return markupPolicy
}
