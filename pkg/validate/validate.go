// Package validate holds the field-level error map shared by the service
// use cases and the admin editors.
package validate

import (
	"net/mail"
	"regexp"
	"sort"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates (start/end of a job).
const DateLayout = "2006-01-02"

var reSlug = regexp.MustCompile(`^[a-z0-9-]+$`)

// Errors maps a field name to a human readable message.
// A nil or empty map means the value is valid.
type Errors map[string]string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Merge copies every entry of other into e, overwriting existing keys.
func (e Errors) Merge(other Errors) {
	for k, v := range other {
		e[k] = v
	}
}

// Err returns e as an error, or nil when it holds no entries.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Required adds msg when value is blank.
func (e Errors) Required(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msg)
	}
}

func IsSlug(s string) bool { return reSlug.MatchString(s) }

func IsEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " \t") {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s[strings.LastIndex(s, "@"):], ".")
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
