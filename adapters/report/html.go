package report

import (
	"fmt"
	"io"
	"strings"

	"calsdt/domain/run"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

const htmlTitle = "Phone number analysis"

// markdownReport renders the run as a markdown document
func markdownReport(r *run.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", htmlTitle)
	fmt.Fprintf(&b, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Source: `%s`\n", r.Source)
	fmt.Fprintf(&b, "- Mode: %s, menh: %s\n", r.Mode, r.Menh)
	fmt.Fprintf(&b, "- Accepted %d of %d in %s\n", r.Accepted, r.Total, r.Elapsed)
	fmt.Fprintf(&b, "- Config: `%s`\n\n", r.Fingerprint.ConfigHash.Short())

	if r.Stats.Count > 0 {
		s := r.Stats
		b.WriteString("## Scores\n\n")
		b.WriteString("| min | q25 | median | q75 | max | mean | std dev |\n")
		b.WriteString("| ---: | ---: | ---: | ---: | ---: | ---: | ---: |\n")
		fmt.Fprintf(&b, "| %.2f | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n\n",
			s.Min, s.Q25, s.Median, s.Q75, s.Max, s.Mean, s.StdDev)
	}

	b.WriteString("## Results\n\n")
	b.WriteString(resultsTable(r).RenderMarkdown())
	b.WriteString("\n\n")

	if len(r.Rejections) > 0 {
		b.WriteString("## Rejections\n\n")
		b.WriteString(rejectionsTable(r).RenderMarkdown())
		b.WriteString("\n")
	}
	return b.String()
}

func writeHTML(w io.Writer, r *run.Report) error {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(markdownReport(r)))

	renderer := html.NewRenderer(html.RendererOptions{
		Title: htmlTitle,
		Flags: html.CommonFlags | html.CompletePage,
	})
	_, err := w.Write(markdown.Render(doc, renderer))
	return err
}
