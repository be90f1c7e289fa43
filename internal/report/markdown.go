package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/joelkehle/patent-search/internal/patents"
)

// BuildMarkdown renders one search result page as a markdown report with a
// summary header, a results table, and per-record abstracts.
func BuildMarkdown(query string, res patents.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Patent Search Report\n\n")
	fmt.Fprintf(&b, "- Query: %s\n", safe(query))
	fmt.Fprintf(&b, "- Page: %d (size %d)\n", res.Page, res.Size)
	fmt.Fprintf(&b, "- Total results: %d\n", res.Total)
	fmt.Fprintf(&b, "- Date: %s\n\n", time.Now().Format(time.RFC3339))

	if len(res.Items) == 0 {
		fmt.Fprintf(&b, "No results on this page.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "## Results\n\n")
	fmt.Fprintf(&b, "| # | Publication | Date | Title | Applicants |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|\n")
	offset := (res.Page - 1) * res.Size
	for i, rec := range res.Items {
		title := rec.TitleOriginal
		if rec.TitleTranslated != "" {
			title = fmt.Sprintf("%s / %s", rec.TitleOriginal, rec.TitleTranslated)
		}
		fmt.Fprintf(&b, "| %d | [%s](%s) | %s | %s | %s |\n",
			offset+i+1,
			cell(rec.PublicationNumber),
			rec.LinkToViewer,
			cell(safe(rec.PublicationDate)),
			cell(title),
			cell(safe(strings.Join(rec.Applicants, "; "))),
		)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## Abstracts\n\n")
	for _, rec := range res.Items {
		if rec.AbstractOriginal == "" {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", rec.PublicationNumber)
		fmt.Fprintf(&b, "%s\n\n", rec.AbstractOriginal)
		if rec.AbstractTranslated != "" {
			fmt.Fprintf(&b, "> %s\n\n", rec.AbstractTranslated)
		}
	}
	return b.String()
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}

// cell keeps markdown table rows intact when a field contains a pipe.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
