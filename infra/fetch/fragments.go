package fetch

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/harukisawai/godchecker/core/dateparse"
)

// Fragments extracts the whitespace-normalized text of every node matching
// selector. Official sites restructure their markup often, so selectors stay
// broad and the collectors filter heuristically afterwards. Malformed markup
// yields zero fragments rather than an error.
func Fragments(html, selector string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	var out []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		text := dateparse.CleanSpace(sel.Text())
		if text != "" {
			out = append(out, text)
		}
	})
	return out
}
