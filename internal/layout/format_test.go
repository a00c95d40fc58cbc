package layout_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/alnah/go-resumedoc/internal/layout"
	"github.com/alnah/go-resumedoc/internal/sections"
)

func kinds(blocks []layout.Block) []layout.Kind {
	out := make([]layout.Kind, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Kind)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestFormat - Per-section formatting rules
// ---------------------------------------------------------------------------

func TestFormat_Name(t *testing.T) {
	t.Parallel()

	blocks, err := layout.Format(sections.Name, "Jane Doe\nignored", layout.Options{NameAlign: layout.AlignCenter})

	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, layout.KindTitle, blocks[0].Kind)
	assert.Equal(t, layout.SizeTitle, blocks[0].Size)
	assert.Equal(t, layout.AlignCenter, blocks[0].Align)
	assert.Equal(t, []layout.Run{{Text: "JANE DOE", Bold: true}}, blocks[0].Runs)
}

func TestFormat_Contact(t *testing.T) {
	t.Parallel()

	blocks, err := layout.Format(sections.Contact, "jane@example.com\n\n+1 555 0100\n  \nBerlin", layout.Options{})

	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "CONTACT", blocks[0].Text())
	assert.Equal(t, "jane@example.com | +1 555 0100 | Berlin", blocks[1].Text())
}

func TestFormat_Skills(t *testing.T) {
	t.Parallel()

	blocks, err := layout.Format(sections.Skills, "- Languages: Go, SQL\n- Docker\n\n• **Cloud:** AWS", layout.Options{})

	require.NoError(t, err)
	assert.Equal(t, []layout.Kind{layout.KindHeading, layout.KindBullet, layout.KindBullet, layout.KindBullet}, kinds(blocks))
	assert.Equal(t, []layout.Run{{Text: "Languages:", Bold: true}, {Text: " Go, SQL"}}, blocks[1].Runs)
	assert.Equal(t, []layout.Run{{Text: "Docker"}}, blocks[2].Runs)
	assert.Equal(t, []layout.Run{{Text: "Cloud:", Bold: true}, {Text: " AWS"}}, blocks[3].Runs)
}

func TestFormat_SkillsLabels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want []layout.Run
	}{
		{"no space after colon", "Languages:Go,SQL", []layout.Run{{Text: "Languages:", Bold: true}, {Text: "Go,SQL"}}},
		{"trailing colon", "Tools:", []layout.Run{{Text: "Tools:", Bold: true}}},
		{"url", "https://github.com/jane", []layout.Run{{Text: "https://github.com/jane"}}},
		{"time", "Available 9:30-17:00", []layout.Run{{Text: "Available 9:30-17:00"}}},
		{"url after label", "Profile: https://jane.dev", []layout.Run{{Text: "Profile:", Bold: true}, {Text: " https://jane.dev"}}},
		{"leading colon", ": stray", []layout.Run{{Text: ": stray"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks, err := layout.Format(sections.Skills, tt.line, layout.Options{})

			require.NoError(t, err)
			require.Len(t, blocks, 2)
			assert.Equal(t, tt.want, blocks[1].Runs)
		})
	}
}

func TestFormat_ExperienceEndToEnd(t *testing.T) {
	t.Parallel()

	content := `## Software Engineer, ABC Corp (2020-Present)
- Developed and deployed 10+ microservices
- Led a team of 5 engineers

## Junior Developer, XYZ Inc (2018-2020)
- Built a customer-facing web application
- Automated testing processes`

	blocks, err := layout.Format(sections.Experience, content, layout.Options{})

	require.NoError(t, err)
	assert.Equal(t, []layout.Kind{
		layout.KindHeading,
		layout.KindEntryTitle, layout.KindEntrySubtitle, layout.KindBullet, layout.KindBullet,
		layout.KindSpacer,
		layout.KindEntryTitle, layout.KindEntrySubtitle, layout.KindBullet, layout.KindBullet,
	}, kinds(blocks))

	assert.Equal(t, "PROFESSIONAL EXPERIENCE", blocks[0].Text())
	for _, i := range []int{1, 6} {
		for _, r := range blocks[i].Runs {
			assert.True(t, r.Bold, "entry title must be bold")
		}
	}
	for _, i := range []int{2, 7} {
		for _, r := range blocks[i].Runs {
			assert.True(t, r.Italic, "entry date must be italic")
		}
	}
	assert.Equal(t, "Software Engineer, ABC Corp", blocks[1].Text())
	assert.Equal(t, "2020-Present", blocks[2].Text())
	assert.Equal(t, "Developed and deployed 10+ microservices", blocks[3].Text())
	assert.Equal(t, "Automated testing processes", blocks[9].Text())
}

func TestFormat_Education(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"marked details", "BSc CS, MIT\n2014-2018\n- GPA 3.9\n- Dean's list"},
		{"unmarked details", "BSc CS, MIT\n2014-2018\nGPA 3.9\n• Dean's list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			blocks, err := layout.Format(sections.Education, tt.content, layout.Options{})

			require.NoError(t, err)
			assert.Equal(t, []layout.Kind{
				layout.KindHeading, layout.KindEntryTitle, layout.KindEntrySubtitle, layout.KindBullet, layout.KindBullet,
			}, kinds(blocks))
			assert.Equal(t, "GPA 3.9", blocks[3].Text())
			assert.Equal(t, "Dean's list", blocks[4].Text())
		})
	}
}

func TestFormat_Summary(t *testing.T) {
	t.Parallel()

	blocks, err := layout.Format(sections.Summary, "Backend engineer\nwith 8 years.\n\nLoves Go.", layout.Options{})

	require.NoError(t, err)
	assert.Equal(t, []layout.Kind{layout.KindHeading, layout.KindParagraph, layout.KindSpacer, layout.KindParagraph}, kinds(blocks))
	assert.Equal(t, "Backend engineer with 8 years.", blocks[1].Text())
}

func TestFormat_Generic(t *testing.T) {
	t.Parallel()

	content := "### Open source\n- resumedoc\nA paragraph line\n\n* another"

	for _, key := range []sections.Key{
		sections.Certifications, sections.Projects, sections.Awards, sections.Publications, sections.HobbiesInterests,
	} {
		blocks, err := layout.Format(key, content, layout.Options{})
		require.NoError(t, err)
		assert.Equal(t, key.Title(), blocks[0].Text())
		assert.Equal(t, []layout.Kind{
			layout.KindHeading, layout.KindEntryTitle, layout.KindBullet, layout.KindParagraph, layout.KindBullet,
		}, kinds(blocks), key.String())
	}
}

func TestFormat_UnknownKey(t *testing.T) {
	t.Parallel()

	_, err := layout.Format(sections.Key(42), "x", layout.Options{})

	assert.True(t, errors.Is(err, layout.ErrUnknownSection))
}

func TestFormat_EveryKeyIsHandled(t *testing.T) {
	t.Parallel()

	for _, key := range sections.TemplateOrder() {
		_, err := layout.Format(key, "content", layout.Options{})
		assert.NoError(t, err, key.String())
	}
}

func TestFormat_TransliteratesBeforeBulletDetection(t *testing.T) {
	t.Parallel()

	content := "Engineer\n• Improved efficiency – saved 10% • team spirit…"

	blocks, err := layout.Format(sections.Experience, content, layout.Options{Charset: charmap.ISO8859_1})

	require.NoError(t, err)
	last := blocks[len(blocks)-1]
	assert.Equal(t, layout.KindBullet, last.Kind)
	assert.Equal(t, "Improved efficiency - saved 10% * team spirit...", last.Text())
	for _, b := range blocks {
		assert.True(t, layout.Representable(b.Text(), charmap.ISO8859_1))
	}
}

func TestFormat_PlaceholderRendersVerbatim(t *testing.T) {
	t.Parallel()

	blocks, err := layout.Format(sections.Summary, sections.Placeholder(sections.Summary), layout.Options{})

	require.NoError(t, err)
	assert.True(t, strings.Contains(blocks[1].Text(), "[Missing Summary Section]"))
}
