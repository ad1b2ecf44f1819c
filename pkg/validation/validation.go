// Package validation provides the pure field-validation primitives shared by
// the auth forms. Rules never perform I/O; they map a draft value to an
// optional human-readable message. Rule evaluation does not short-circuit, so
// every violated rule in a pass is reported together.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Errors maps field names to user-facing messages. An empty map means the
// draft is valid. Callers regenerate the whole map on each validation pass
// and clear individual entries as the user edits a field.
type Errors map[string]string

// Valid reports whether the pass produced no violations.
func (e Errors) Valid() bool { return len(e) == 0 }

// Clear removes the entry for a single field, if present. Used when the user
// edits a field so its stale message disappears immediately.
func (e Errors) Clear(field string) {
	delete(e, field)
}

// Merge copies entries from other without overwriting existing messages, so
// locally detected violations win over later server-side ones for the same
// field.
func (e Errors) Merge(other map[string]string) {
	for field, message := range other {
		if _, exists := e[field]; exists {
			continue
		}
		e[field] = message
	}
}

// Rule checks one field value and returns a message when violated, or "".
type Rule func(value string) string

// Ruleset associates a field name with the rules applied to its value.
type Ruleset map[string][]Rule

// Apply runs every rule against the corresponding value in draft. All fields
// are evaluated independently; the first violated rule per field supplies the
// message (rules within one field are ordered most-fundamental first).
func (rs Ruleset) Apply(draft map[string]string) Errors {
	errs := make(Errors)
	for field, rules := range rs {
		value := draft[field]
		for _, rule := range rules {
			if message := rule(value); message != "" {
				errs[field] = message
				break
			}
		}
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required rejects values that are empty after trimming.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Email rejects values that do not match a local@domain.tld shape. Blank
// values pass so Required owns the presence message.
func Email(message string) Rule {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return ""
		}
		if !emailPattern.MatchString(trimmed) {
			return message
		}
		return ""
	}
}

// DigitsExactly rejects values that are not exactly n digits.
func DigitsExactly(n int, message string) Rule {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return ""
		}
		if len(trimmed) != n {
			return message
		}
		for _, r := range trimmed {
			if !unicode.IsDigit(r) {
				return message
			}
		}
		return ""
	}
}

// MinLength rejects values shorter than n. The value is not trimmed: leading
// and trailing characters count, which matters for passwords.
func MinLength(n int, message string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if len([]rune(value)) < n {
			return message
		}
		return ""
	}
}

// EqualTo rejects values that differ from the referenced value. Comparison is
// exact, with no trimming on either side.
func EqualTo(other func() string, message string) Rule {
	return func(value string) string {
		if value == "" {
			return ""
		}
		if value != other() {
			return message
		}
		return ""
	}
}

// MinLengthMessage builds the canonical too-short message for a field label.
func MinLengthMessage(label string, n int) string {
	return fmt.Sprintf("%s must be at least %d characters", label, n)
}
