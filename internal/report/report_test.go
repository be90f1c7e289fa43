package report

import (
	"strings"
	"testing"

	"github.com/joelkehle/patent-search/internal/patents"
)

func twoItemResult() patents.SearchResult {
	next := 2
	return patents.SearchResult{
		Total:    25,
		Page:     1,
		Size:     2,
		NextPage: &next,
		Items: []patents.PatentRecord{
			{
				PublicationNumber:  "US12421136B1",
				PublicationDate:    "2022-01-10",
				TitleOriginal:      "Solar desalination system",
				TitleTranslated:    "Солнечная опреснительная установка",
				AbstractOriginal:   "A system for solar-driven desalination.",
				AbstractTranslated: "Система солнечного опреснения.",
				Applicants:         []string{"ACME WATER INC"},
				LinkToViewer:       patents.ViewerLink("US12421136B1"),
			},
			{
				PublicationNumber: "WO2025167351A1",
				TitleOriginal:     "Solar desalination | purification apparatus",
				LinkToViewer:      patents.ViewerLink("WO2025167351A1"),
			},
		},
	}
}

func TestBuildMarkdownOneRowPerItem(t *testing.T) {
	md := BuildMarkdown("solar", twoItemResult())
	for _, want := range []string{
		"# Patent Search Report",
		"- Query: solar",
		"- Total results: 25",
		"| 1 | [US12421136B1](",
		"| 2 | [WO2025167351A1](",
		"Солнечная опреснительная установка",
		"### US12421136B1",
		"> Система солнечного опреснения.",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestBuildMarkdownEscapesTableCells(t *testing.T) {
	md := BuildMarkdown("solar", twoItemResult())
	if !strings.Contains(md, `Solar desalination \| purification apparatus`) {
		t.Fatalf("pipe not escaped in table cell:\n%s", md)
	}
}

func TestBuildMarkdownEmptyPage(t *testing.T) {
	md := BuildMarkdown("", patents.SearchResult{Total: 25, Page: 99, Size: 10, Items: nil})
	if !strings.Contains(md, "No results on this page.") {
		t.Fatalf("missing empty-page notice:\n%s", md)
	}
	if !strings.Contains(md, "- Query: —") {
		t.Fatalf("missing query placeholder:\n%s", md)
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := NewRenderer().HTML("solar", twoItemResult())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!doctype html>",
		"<h1",
		"<table>",
		"US12421136B1",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("html missing %q", want)
		}
	}
}
