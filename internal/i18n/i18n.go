// Package i18n stores per-language overrides of an entity's localizable fields.
//
// A blob is a JSON object keyed by language code; each value is a partial
// override of the entity's base fields. A missing language means "use the base
// fields". Merging replaces whole language entries and never touches languages
// absent from the update.
package i18n

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Fields is the override of one language.
type Fields map[string]any

// Map is a decoded i18n blob.
type Map map[string]Fields

// Decode parses a stored blob. An absent, empty or "null" blob decodes to an
// empty map; anything else that is not a JSON object is an error.
func Decode(stored string) (Map, error) {
	s := strings.TrimSpace(stored)
	if s == "" || s == "null" {
		return Map{}, nil
	}
	var m Map
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, fmt.Errorf("decode i18n blob: %w", err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// Encode serializes m. Keys come out sorted so equal maps encode identically.
func (m Map) Encode() (string, error) {
	if m == nil {
		m = Map{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode i18n blob: %w", err)
	}
	return string(b), nil
}

// With returns a copy of m where every language present in update replaces
// the stored entry of that language.
func (m Map) With(update Map) Map {
	out := make(Map, len(m)+len(update))
	for lang, fields := range m {
		out[lang] = fields
	}
	for lang, fields := range update {
		out[lang] = fields
	}
	return out
}

// Merge applies update to a stored blob and returns the new serialized blob.
// A malformed stored blob is returned as an error rather than overwritten.
func Merge(stored string, update Map) (string, error) {
	current, err := Decode(stored)
	if err != nil {
		return "", err
	}
	return current.With(update).Encode()
}

// Scan implements sql.Scanner for TEXT columns holding a blob.
func (m *Map) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*m = Map{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("i18n: cannot scan %T", src)
	}
	decoded, err := Decode(raw)
	if err != nil {
		return err
	}
	*m = decoded
	return nil
}

// Value implements driver.Valuer. Empty maps are stored as NULL.
func (m Map) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return m.Encode()
}
