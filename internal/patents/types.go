package patents

const (
	// MaxPageSize bounds a single search response window; requested sizes
	// are clamped, never rejected.
	MaxPageSize = 25

	// AbstractClipFull applies to abstracts parsed from a live upstream
	// document; AbstractClipDemo applies to the demo pool. The limit is
	// consistent within a single request.
	AbstractClipFull = 1200
	AbstractClipDemo = 500

	// TitlePlaceholder substitutes for a document with no title at all.
	TitlePlaceholder = "—"

	// DemoPoolSize is the size of the synthesized fallback result set.
	DemoPoolSize = 25
)

// PatentRecord is one normalized search result. publicationNumber and
// titleOriginal are always non-empty; every other field is best-effort.
type PatentRecord struct {
	PublicationNumber  string   `json:"publicationNumber"`
	KindCode           string   `json:"kindCode,omitempty"`
	Country            string   `json:"country,omitempty"`
	PublicationDate    string   `json:"publicationDate,omitempty"`
	TitleOriginal      string   `json:"titleOriginal"`
	TitleTranslated    string   `json:"titleTranslated,omitempty"`
	AbstractOriginal   string   `json:"abstractOriginal,omitempty"`
	AbstractTranslated string   `json:"abstractTranslated,omitempty"`
	Applicants         []string `json:"applicants,omitempty"`
	Inventors          []string `json:"inventors,omitempty"`
	IPCCodes           []string `json:"ipcCodes,omitempty"`
	CPCCodes           []string `json:"cpcCodes,omitempty"`
	LinkToViewer       string   `json:"linkToViewer"`
	LinkToPdf          string   `json:"linkToPdf,omitempty"`
}

// SearchResult is one response page. NextPage is set iff records remain
// beyond this page.
type SearchResult struct {
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	Size     int            `json:"size"`
	NextPage *int           `json:"nextPage,omitempty"`
	Items    []PatentRecord `json:"items"`
}
