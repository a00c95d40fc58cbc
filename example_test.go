package resumedoc_test

import (
	"context"
	"fmt"
	"sync"

	resumedoc "github.com/alnah/go-resumedoc"
)

const exampleResume = `NAME
Jane Doe

CONTACT
jane@example.com

SUMMARY
Backend engineer.

SKILLS
- Go

EXPERIENCE
Software Engineer, ABC Corp (2020-Present)
- Built services

EDUCATION
BSc Computer Science
`

// Example demonstrates converting résumé text to PDF and DOCX.
func Example() {
	r, err := resumedoc.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	result, err := r.Convert(context.Background(), resumedoc.Input{
		Text:    exampleResume,
		Formats: []resumedoc.Format{resumedoc.FormatPDF, resumedoc.FormatDOCX},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, doc := range result.Documents {
		fmt.Println(doc.Format, doc.Tier)
	}
	// Output:
	// pdf structured
	// docx structured
}

// Example_missingSections shows the structural fallback for incomplete text.
func Example_missingSections() {
	r, err := resumedoc.NewRenderer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer r.Close()

	result, err := r.Convert(context.Background(), resumedoc.Input{
		Text:    "NAME\nJane Doe\n\nSKILLS\n- Go",
		Formats: []resumedoc.Format{resumedoc.FormatHTML},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	doc := result.Documents[0]
	fmt.Println(doc.Tier, doc.Degraded(), len(result.Warnings))
	// Output: structural true 4
}

// Example_pool demonstrates batch conversion with a renderer pool.
func Example_pool() {
	pool := resumedoc.NewRendererPool(2)
	defer pool.Close()

	var wg sync.WaitGroup
	tiers := make([]resumedoc.Tier, 3)
	for i := range tiers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := pool.Acquire()
			if err != nil {
				return
			}
			defer pool.Release(r)
			res, err := r.Convert(context.Background(), resumedoc.Input{
				Text:    exampleResume,
				Formats: []resumedoc.Format{resumedoc.FormatHTML},
			})
			if err == nil {
				tiers[i] = res.Documents[0].Tier
			}
		}()
	}
	wg.Wait()

	fmt.Println(tiers)
	// Output: [structured structured structured]
}
