package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mediavision/centrepage/internal/property"
)

// Field heuristics. Each one is independently best-effort: a heuristic
// that finds nothing leaves its field absent rather than failing the
// extraction.

var (
	addressRe = regexp.MustCompile(`\b\d+\s+[A-Za-z0-9.'\- ]+?\s(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Place|Pl|Plaza|Square|Sq|Court|Ct)\b\.?`)
	zipRe     = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
	// "Austin, TX 78701" style locality lines.
	cityStateRe = regexp.MustCompile(`([A-Z][A-Za-z.\- ]+),\s*([A-Z]{2})\s+(\d{5})`)
	phoneRe     = regexp.MustCompile(`(?:\+?1[\-. ]?)?\(?\d{3}\)?[\-. ]?\d{3}[\-. ]?\d{4}`)
	emailRe     = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

	amenityHeadingRe = regexp.MustCompile(`(?i)amenit|feature|highlight|include`)
)

// Extract applies the field heuristics to a page and returns the
// best-effort record, always tagged with its source URL. The error is
// non-nil only when the body is not parseable as HTML at all.
func Extract(html, sourceURL string) (property.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	rec := property.Record{}
	rec.Set(property.FieldSourceURL, sourceURL)

	extractName(doc, rec)

	// Text-based heuristics work on the visible page text.
	doc.Find("script, style, noscript").Remove()
	text := doc.Find("body").Text()

	extractAddress(doc, text, rec)
	extractContact(text, rec)
	extractAmenities(doc, rec)
	extractDescription(doc, rec)

	return rec, nil
}

// extractName prefers the og:title meta tag, then the first h1, then
// the page title.
func extractName(doc *goquery.Document, rec property.Record) {
	if og, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok {
		rec.Set(property.FieldName, cleanTitle(og))
		return
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		rec.Set(property.FieldName, cleanTitle(h1))
		return
	}
	rec.Set(property.FieldName, cleanTitle(doc.Find("title").First().Text()))
}

// cleanTitle strips the site-name suffix from a page title.
func cleanTitle(s string) string {
	s = strings.TrimSpace(s)
	for _, sep := range []string{" | ", " – ", " - "} {
		if i := strings.Index(s, sep); i > 0 {
			s = s[:i]
			break
		}
	}
	return strings.TrimSpace(s)
}

// extractAddress looks for a street-address pattern and locality line
// in labeled elements first, then anywhere in the page text.
func extractAddress(doc *goquery.Document, text string, rec property.Record) {
	// address-like elements get first shot
	candidates := []string{}
	doc.Find(`address, [class*="address"], [itemprop="address"]`).Each(func(_ int, s *goquery.Selection) {
		candidates = append(candidates, s.Text())
	})
	candidates = append(candidates, text)

	for _, c := range candidates {
		if !rec.Has(property.FieldAddress) {
			if m := addressRe.FindString(c); m != "" {
				rec.Set(property.FieldAddress, strings.TrimRight(strings.Join(strings.Fields(m), " "), "."))
			}
		}
		if !rec.Has(property.FieldCity) {
			if m := cityStateRe.FindStringSubmatch(c); m != nil {
				rec.Set(property.FieldCity, strings.TrimSpace(m[1]))
				rec.Set(property.FieldState, m[2])
				rec.Set(property.FieldZip, m[3])
			}
		}
		if !rec.Has(property.FieldZip) {
			if m := zipRe.FindString(c); m != "" {
				rec.Set(property.FieldZip, m)
			}
		}
	}
}

// extractContact finds phone and email anywhere in the page text.
func extractContact(text string, rec property.Record) {
	var parts []string
	if m := phoneRe.FindString(text); m != "" {
		parts = append(parts, strings.TrimSpace(m))
	}
	if m := emailRe.FindString(text); m != "" {
		parts = append(parts, m)
	}
	if len(parts) > 0 {
		rec.Set(property.FieldContact, strings.Join(parts, ", "))
	}
}

// extractAmenities aggregates list items under amenity-like headings
// into a comma-joined features string.
func extractAmenities(doc *goquery.Document, rec property.Record) {
	var items []string
	seen := map[string]bool{}

	doc.Find("h2, h3, h4").Each(func(_ int, heading *goquery.Selection) {
		if !amenityHeadingRe.MatchString(heading.Text()) {
			return
		}
		heading.NextAllFiltered("ul, ol").First().Find("li").Each(func(_ int, li *goquery.Selection) {
			item := strings.Join(strings.Fields(li.Text()), " ")
			if item != "" && !seen[item] {
				seen[item] = true
				items = append(items, item)
			}
		})
	})

	if len(items) > 0 {
		rec.Set(property.FieldKeyFeatures, strings.Join(items, ", "))
	}
}

// extractDescription takes the meta description, or the first
// substantial paragraph.
func extractDescription(doc *goquery.Document, rec property.Record) {
	if meta, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok && strings.TrimSpace(meta) != "" {
		rec.Set(property.FieldDescription, strings.TrimSpace(meta))
		return
	}
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := strings.Join(strings.Fields(p.Text()), " ")
		if len(text) >= 80 {
			rec.Set(property.FieldDescription, text)
			return false
		}
		return true
	})
}
