package rules

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-pagewire/pkg/form"
)

var (
	backendOnce sync.Once
	backend     *validator.Validate
)

func validate() *validator.Validate {
	backendOnce.Do(func() {
		backend = validator.New(validator.WithRequiredStructEnabled())
	})
	return backend
}

func tagPredicate(tag string) form.Predicate {
	return func(value string) bool {
		return validate().Var(value, tag) == nil
	}
}

// Required accepts values with at least one non-whitespace character.
func Required() form.Predicate {
	return func(value string) bool {
		return validate().Var(strings.TrimSpace(value), "required") == nil
	}
}

// Email accepts syntactically valid email addresses.
func Email() form.Predicate {
	return tagPredicate("email")
}

// URL accepts absolute URLs.
func URL() form.Predicate {
	return tagPredicate("url")
}

// UUID accepts canonical UUID strings.
func UUID() form.Predicate {
	return tagPredicate("uuid")
}

// MinLength accepts values of at least n characters.
func MinLength(n int) form.Predicate {
	return tagPredicate(fmt.Sprintf("min=%d", n))
}

// MaxLength accepts values of at most n characters.
func MaxLength(n int) form.Predicate {
	return tagPredicate(fmt.Sprintf("max=%d", n))
}

// Pattern accepts values fully matching the expression. The expression is
// wrapped in a non-capturing group before anchoring so top-level alternations
// stay bound to the whole match. An expression that does not compile yields a
// predicate that accepts everything, keeping the library's absence-is-valid
// posture instead of failing at call time.
func Pattern(expression string) form.Predicate {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return func(string) bool { return true }
	}
	re, err := regexp.Compile("^(?:" + expression + ")$")
	if err != nil {
		return func(string) bool { return true }
	}
	return re.MatchString
}

// OneOf accepts values equal to one of the options. Option values may
// contain spaces, which rules out the backend's oneof tag grammar.
func OneOf(options ...string) form.Predicate {
	allowed := make(map[string]struct{}, len(options))
	for _, option := range options {
		allowed[option] = struct{}{}
	}
	return func(value string) bool {
		_, ok := allowed[value]
		return ok
	}
}

// All combines predicates conjunctively; the result accepts a value only
// when every predicate does. Nil predicates are skipped.
func All(predicates ...form.Predicate) form.Predicate {
	return func(value string) bool {
		for _, predicate := range predicates {
			if predicate == nil {
				continue
			}
			if !predicate(value) {
				return false
			}
		}
		return true
	}
}
