package ops

import (
	"encoding/xml"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joelkehle/patent-search/internal/patents"
)

// xmlNode is a schema-free view of the OPS response. The upstream document
// is namespaced and its shape drifts between backfiles, so fields are
// located by local element name.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return strings.TrimSpace(a.Value)
		}
	}
	return ""
}

func (n *xmlNode) children(name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			out = append(out, &n.Nodes[i])
		}
	}
	return out
}

// descend walks a slash-free path of child element names, first match at
// each level.
func (n *xmlNode) descend(path ...string) *xmlNode {
	cur := n
	for _, name := range path {
		next := cur.children(name)
		if len(next) == 0 {
			return nil
		}
		cur = next[0]
	}
	return cur
}

// collect gathers every descendant with the given local name, in document
// order.
func collect(n *xmlNode, name string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Nodes {
		child := &n.Nodes[i]
		if child.XMLName.Local == name {
			out = append(out, child)
		}
		out = append(out, collect(child, name)...)
	}
	return out
}

func (n *xmlNode) text() string {
	return strings.TrimSpace(n.Text)
}

// docFields is the extraction table for per-document scalar fields: each
// field maps to an ordered list of candidate locations, first non-empty
// match wins. "@name" reads an attribute of the document node itself;
// anything else is a path of child elements.
var docFields = map[string][]string{
	"country":    {"@country", "bibliographic-data/publication-reference/document-id/country"},
	"doc-number": {"@doc-number", "bibliographic-data/publication-reference/document-id/doc-number"},
	"kind":       {"@kind", "bibliographic-data/publication-reference/document-id/kind"},
	"date":       {"bibliographic-data/publication-reference/document-id/date", "@date-publ"},
}

func extractField(doc *xmlNode, field string) string {
	for _, cand := range docFields[field] {
		if strings.HasPrefix(cand, "@") {
			if v := doc.attr(strings.TrimPrefix(cand, "@")); v != "" {
				return v
			}
			continue
		}
		if n := doc.descend(strings.Split(cand, "/")...); n != nil && n.text() != "" {
			return n.text()
		}
	}
	return ""
}

// ParseSearchResponse converts one OPS published-data search document into
// normalized records plus the upstream total. It never fails: a completely
// unparseable document yields an empty list and a zero total, which the
// caller treats as an upstream failure. Records come back sorted newest
// first regardless of upstream order.
func ParseSearchResponse(blob []byte, abstractLimit int) ([]patents.PatentRecord, int) {
	var root xmlNode
	if err := xml.Unmarshal(blob, &root); err != nil {
		return nil, 0
	}

	type dated struct {
		rec patents.PatentRecord
		key time.Time
	}
	var recs []dated
	for _, doc := range collect(&root, "exchange-document") {
		rec, key, ok := parseDocument(doc, abstractLimit)
		if !ok {
			continue
		}
		recs = append(recs, dated{rec: rec, key: key})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].key.After(recs[j].key) })

	out := make([]patents.PatentRecord, 0, len(recs))
	for _, d := range recs {
		out = append(out, d.rec)
	}
	return out, parseTotal(&root, len(out))
}

// parseTotal prefers the top-level total-result-count attribute, then a
// nested count element, then the number of records actually parsed.
func parseTotal(root *xmlNode, parsed int) int {
	if v, ok := numericAttr(root, "total-result-count"); ok {
		return v
	}
	for _, name := range []string{"biblio-search", "search-result"} {
		for _, n := range collect(root, name) {
			if v, ok := numericAttr(n, "total-result-count"); ok {
				return v
			}
		}
	}
	for _, n := range collect(root, "total-result-count") {
		if v, err := strconv.Atoi(n.text()); err == nil && v >= 0 {
			return v
		}
	}
	return parsed
}

func numericAttr(n *xmlNode, name string) (int, bool) {
	raw := n.attr(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

func parseDocument(doc *xmlNode, abstractLimit int) (patents.PatentRecord, time.Time, bool) {
	country := extractField(doc, "country")
	number := extractField(doc, "doc-number")
	kind := extractField(doc, "kind")

	pub := strings.TrimSpace(country + number + kind)
	if pub == "" {
		// Not even minimally identifiable; skip rather than abort the parse.
		return patents.PatentRecord{}, time.Time{}, false
	}

	key, canonical := patents.NormalizeDate(extractField(doc, "date"))

	rec := patents.PatentRecord{
		PublicationNumber: pub,
		KindCode:          kind,
		Country:           country,
		PublicationDate:   canonical,
		TitleOriginal:     pickTitle(doc),
		AbstractOriginal:  patents.Clip(pickAbstract(doc), abstractLimit),
		Applicants:        partyNames(doc, "applicant", "applicant-name"),
		Inventors:         partyNames(doc, "inventor", "inventor-name"),
		IPCCodes:          ipcCodes(doc),
		CPCCodes:          cpcCodes(doc),
		LinkToViewer:      patents.ViewerLink(pub),
	}
	return rec, key, true
}

// pickTitle prefers the English-tagged variant, then the first title seen,
// then the placeholder.
func pickTitle(doc *xmlNode) string {
	titles := collect(doc, "invention-title")
	first := ""
	for _, n := range titles {
		text := strings.Join(strings.Fields(n.Text), " ")
		if text == "" {
			continue
		}
		if n.attr("lang") == "en" {
			return text
		}
		if first == "" {
			first = text
		}
	}
	if first == "" {
		return patents.TitlePlaceholder
	}
	return first
}

// pickAbstract applies the same language preference as pickTitle, but each
// abstract is first assembled from its paragraph fragments.
func pickAbstract(doc *xmlNode) string {
	first := ""
	for _, n := range collect(doc, "abstract") {
		text := assembleParagraphs(n)
		if text == "" {
			continue
		}
		if n.attr("lang") == "en" {
			return text
		}
		if first == "" {
			first = text
		}
	}
	return first
}

func assembleParagraphs(abstract *xmlNode) string {
	paragraphs := abstract.children("p")
	if len(paragraphs) == 0 {
		return strings.Join(strings.Fields(abstract.Text), " ")
	}
	parts := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if t := strings.Join(strings.Fields(p.Text), " "); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

func partyNames(doc *xmlNode, party, nameWrapper string) []string {
	var out []string
	for _, n := range collect(doc, party) {
		name := n.descend(nameWrapper, "name")
		if name == nil {
			name = n.descend("name")
		}
		if name == nil {
			continue
		}
		if t := strings.Join(strings.Fields(name.Text), " "); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func ipcCodes(doc *xmlNode) []string {
	var out []string
	for _, n := range collect(doc, "classification-ipcr") {
		code := ""
		if t := n.descend("text"); t != nil {
			code = strings.Join(strings.Fields(t.Text), " ")
		}
		if code == "" {
			code = strings.Join(strings.Fields(n.Text), " ")
		}
		if code != "" {
			out = append(out, code)
		}
	}
	return out
}

// cpcCodes reassembles symbols from the component elements of each
// patent-classification node.
func cpcCodes(doc *xmlNode) []string {
	var out []string
	for _, n := range collect(doc, "patent-classification") {
		var sb strings.Builder
		for _, part := range []string{"section", "class", "subclass", "main-group"} {
			if p := n.descend(part); p != nil {
				sb.WriteString(p.text())
			}
		}
		if p := n.descend("subgroup"); p != nil && p.text() != "" {
			sb.WriteString("/")
			sb.WriteString(p.text())
		}
		if sb.Len() > 0 {
			out = append(out, sb.String())
		}
	}
	return out
}
