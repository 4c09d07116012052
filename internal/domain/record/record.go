// Package record provides coercion helpers for loosely-shaped records.
//
// Entities are persisted as JSON arrays and have gone through several
// historical shapes. Every canonical field is pulled from an ordered list of
// aliases: the first key present in the raw record wins, even when its value
// is empty. Coercion never fails — unusable values degrade to the zero value
// so that migration and import never drop records.
package record

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Raw is a loosely-shaped record as decoded from stored JSON.
type Raw map[string]any

// String returns the value of the first alias present in the record,
// coerced to a string. A present-but-empty value is NOT skipped.
func (r Raw) String(aliases ...string) string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		return toString(v)
	}
	return ""
}

// Number returns the value of the first alias present in the record,
// coerced to a number. Non-numeric or missing input yields 0.
func (r Raw) Number(aliases ...string) float64 {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		return toNumber(v)
	}
	return 0
}

// StringList returns the value of the first alias present in the record as a
// list of strings. A JSON array is used as-is; a single comma-separated
// string is split, trimmed, and emptied of blank entries.
func (r Raw) StringList(aliases ...string) []string {
	for _, key := range aliases {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		switch list := v.(type) {
		case []any:
			out := make([]string, 0, len(list))
			for _, item := range list {
				out = append(out, toString(item))
			}
			return out
		case []string:
			return list
		default:
			return SplitList(toString(v))
		}
	}
	return []string{}
}

// ID returns the record's existing id when present and non-empty, otherwise a
// freshly generated identifier.
func (r Raw) ID() string {
	if id := r.String("id"); id != "" {
		return id
	}
	return NewID()
}

// NewID generates a unique identifier. It falls back to a random hex string
// when UUID generation is unavailable.
func NewID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		b := make([]byte, 8)
		if _, err := rand.Read(b); err != nil {
			return "id-" + strconv.FormatInt(int64(len(b)), 16)
		}
		return "id-" + hex.EncodeToString(b)
	}
	return id.String()
}

// SplitList splits a comma-separated string into trimmed, non-blank entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
