// Package sections implements the résumé section grammar: a closed set of
// canonical section keys and a line-oriented parser that maps loosely
// structured markdown or plain text onto them.
package sections

import "strings"

// Key identifies a canonical résumé section.
type Key int

// Section keys in template order. The order of these constants is the order
// sections are rendered in, regardless of their order in the input.
const (
	Name Key = iota
	Contact
	Summary
	Skills
	Experience
	Education
	Certifications
	Projects
	Awards
	Publications
	HobbiesInterests

	numKeys
)

// keyInfo holds the identifier and display header of a key.
type keyInfo struct {
	id    string
	title string
}

var keys = [numKeys]keyInfo{
	Name:             {"name", "NAME"},
	Contact:          {"contact", "CONTACT"},
	Summary:          {"summary", "PROFESSIONAL SUMMARY"},
	Skills:           {"skills", "SKILLS"},
	Experience:       {"experience", "PROFESSIONAL EXPERIENCE"},
	Education:        {"education", "EDUCATION"},
	Certifications:   {"certifications", "CERTIFICATIONS"},
	Projects:         {"projects", "PROJECTS"},
	Awards:           {"awards", "AWARDS"},
	Publications:     {"publications", "PUBLICATIONS"},
	HobbiesInterests: {"hobbies_interests", "HOBBIES & INTERESTS"},
}

// required lists the sections every parsed map must contain.
var required = []Key{Name, Contact, Summary, Skills, Experience, Education}

// String returns the canonical identifier, e.g. "hobbies_interests".
func (k Key) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return keys[k].id
}

// Title returns the display header used when rendering the section.
func (k Key) Title() string {
	if !k.Valid() {
		return ""
	}
	return keys[k].title
}

// Valid reports whether k is one of the canonical keys.
func (k Key) Valid() bool {
	return k >= 0 && k < numKeys
}

// IsRequired reports whether k must be present after parsing.
func (k Key) IsRequired() bool {
	for _, r := range required {
		if r == k {
			return true
		}
	}
	return false
}

// Required returns the required keys in template order.
func Required() []Key {
	out := make([]Key, len(required))
	copy(out, required)
	return out
}

// TemplateOrder returns all keys in rendering order.
func TemplateOrder() []Key {
	out := make([]Key, 0, numKeys)
	for k := Key(0); k < numKeys; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKey resolves a canonical identifier (case-insensitive) to a Key.
func ParseKey(s string) (Key, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k := Key(0); k < numKeys; k++ {
		if keys[k].id == s {
			return k, true
		}
	}
	return 0, false
}
