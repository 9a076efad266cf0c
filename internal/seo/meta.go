package seo

import (
	"fmt"
	"strings"

	"github.com/mediavision/centrepage/internal/property"
)

// maxMetaLength is the search-snippet budget for meta descriptions.
const maxMetaLength = 160

// featureKeyword maps a content marker to the amenity phrase slotted
// into the meta description. Order matters: earlier matches win the two
// available slots.
type featureKeyword struct {
	marker string
	phrase string
}

var featureKeywords = []featureKeyword{
	{"meeting", "meeting rooms"},
	{"parking", "parking"},
	{"24/7", "24/7 access"},
	{"security", "secure access"},
	{"wifi", "high-speed internet"},
	{"furnished", "furnished offices"},
	{"flexible", "flexible terms"},
}

// MetaDescription builds a search-friendly summary of at most 160
// characters from the record and its generated copy. The template shape
// depends on which location fields are present.
func MetaDescription(rec property.Record, text string) string {
	name := rec.GetOr(property.FieldName, "Office Space")
	city := rec.Get(property.FieldCity)
	neighborhood := rec.Get(property.FieldNeighborhood)

	lower := strings.ToLower(text)
	var features []string
	for _, fk := range featureKeywords {
		if len(features) == 2 {
			break
		}
		if strings.Contains(lower, fk.marker) {
			features = append(features, fk.phrase)
		}
	}
	featuresText := "premium amenities"
	if len(features) > 0 {
		featuresText = strings.Join(features, ", ")
	}

	var meta string
	switch {
	case neighborhood != "" && city != "":
		meta = fmt.Sprintf("%s in %s, %s. Professional office space with %s. Schedule your tour today.",
			name, neighborhood, city, featuresText)
	case city != "":
		meta = fmt.Sprintf("%s in %s. Executive office space featuring %s. Contact us for availability.",
			name, city, featuresText)
	default:
		meta = fmt.Sprintf("%s - Premium office space with %s. Book your viewing today.",
			name, featuresText)
	}

	if runes := []rune(meta); len(runes) > maxMetaLength {
		meta = string(runes[:maxMetaLength-3]) + "..."
	}
	return meta
}
