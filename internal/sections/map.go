package sections

import (
	"sort"
	"strings"
)

// Map holds the content block of each recognized section.
// A Map returned by Parse is not mutated afterwards and may be shared
// between goroutines.
type Map map[Key]string

// Get returns the content of key, or "" when absent.
func (m Map) Get(key Key) string {
	return m[key]
}

// Has reports whether key is present with non-blank content.
func (m Map) Has(key Key) bool {
	return strings.TrimSpace(m[key]) != ""
}

// Keys returns the present keys in template order.
func (m Map) Keys() []Key {
	out := make([]Key, 0, len(m))
	for k := range m {
		if k.Valid() {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy of m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// IsPlaceholder reports whether key holds the synthesized placeholder.
func (m Map) IsPlaceholder(key Key) bool {
	return m[key] == Placeholder(key)
}

// Placeholders lists the keys holding synthesized placeholder content.
func (m Map) Placeholders() []Key {
	var out []Key
	for _, k := range m.Keys() {
		if m.IsPlaceholder(k) {
			out = append(out, k)
		}
	}
	return out
}

// Markdown serializes m in the canonical template: one "# TITLE" header per
// present section, in template order, separated by blank lines.
// Parsing the output yields a map equal to m.
func (m Map) Markdown() string {
	var sb strings.Builder
	for i, k := range m.Keys() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("# ")
		sb.WriteString(k.Title())
		sb.WriteString("\n")
		if body := m[k]; body != "" {
			sb.WriteString(body)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
