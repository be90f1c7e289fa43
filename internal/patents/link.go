package patents

import "net/url"

const espacenetSearchBase = "https://worldwide.espacenet.com/patent/search?q="

// ViewerLink builds the canonical Espacenet viewer URL for a publication
// number.
func ViewerLink(publicationNumber string) string {
	return espacenetSearchBase + url.QueryEscape("pn="+publicationNumber)
}
