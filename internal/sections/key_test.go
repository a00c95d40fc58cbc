package sections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alnah/go-resumedoc/internal/sections"
)

func TestKey_StringAndTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hobbies_interests", sections.HobbiesInterests.String())
	assert.Equal(t, "HOBBIES & INTERESTS", sections.HobbiesInterests.Title())
	assert.Equal(t, "PROFESSIONAL SUMMARY", sections.Summary.Title())
	assert.Equal(t, "unknown", sections.Key(99).String())
	assert.Empty(t, sections.Key(-1).Title())
}

func TestKey_IsRequired(t *testing.T) {
	t.Parallel()

	for _, k := range sections.Required() {
		assert.True(t, k.IsRequired(), k.String())
	}
	assert.False(t, sections.Projects.IsRequired())
	assert.False(t, sections.HobbiesInterests.IsRequired())
}

func TestTemplateOrder(t *testing.T) {
	t.Parallel()

	order := sections.TemplateOrder()

	assert.Len(t, order, 11)
	assert.Equal(t, sections.Name, order[0])
	assert.Equal(t, sections.HobbiesInterests, order[len(order)-1])
	for _, k := range order {
		got, ok := sections.ParseKey(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
}

func TestParseKey_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := sections.ParseKey("objective")
	assert.False(t, ok)
}

func TestRequired_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := sections.Required()
	r[0] = sections.Awards

	assert.Equal(t, sections.Name, sections.Required()[0])
}
