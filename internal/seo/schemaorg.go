package seo

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mediavision/centrepage/internal/property"
)

// Schema.org JSON-LD shapes for local-SEO structured data.

type postalAddress struct {
	Type           string `json:"@type"`
	StreetAddress  string `json:"streetAddress"`
	Locality       string `json:"addressLocality"`
	PostalCode     string `json:"postalCode"`
	Region         string `json:"addressRegion"`
	AddressCountry string `json:"addressCountry"`
}

type geoCoordinates struct {
	Type      string `json:"@type"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type amenityFeature struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type officeSpace struct {
	Context     string           `json:"@context"`
	Type        string           `json:"@type"`
	Name        string           `json:"name"`
	Address     postalAddress    `json:"address"`
	Description string           `json:"description"`
	Geo         *geoCoordinates  `json:"geo,omitempty"`
	Amenities   []amenityFeature `json:"amenityFeature"`
}

// SchemaMarkup serializes the record as a Schema.org OfficeSpace
// JSON-LD document for embedding in a page's metadata.
func SchemaMarkup(rec property.Record) (string, error) {
	doc := officeSpace{
		Context: "https://schema.org",
		Type:    "OfficeSpace",
		Name:    rec.Get(property.FieldName),
		Address: postalAddress{
			Type:           "PostalAddress",
			StreetAddress:  rec.Get(property.FieldAddress),
			Locality:       rec.Get(property.FieldCity),
			PostalCode:     rec.Get(property.FieldZip),
			Region:         rec.Get(property.FieldState),
			AddressCountry: "US",
		},
		Description: rec.Get(property.FieldDescription),
		Amenities:   []amenityFeature{},
	}

	if rec.Has(property.FieldLatitude) && rec.Has(property.FieldLongitude) {
		doc.Geo = &geoCoordinates{
			Type:      "GeoCoordinates",
			Latitude:  rec.Get(property.FieldLatitude),
			Longitude: rec.Get(property.FieldLongitude),
		}
	}

	for _, amenity := range strings.Split(rec.Get(property.FieldKeyFeatures), ",") {
		if amenity = strings.TrimSpace(amenity); amenity != "" {
			doc.Amenities = append(doc.Amenities, amenityFeature{
				Type: "LocationFeatureSpecification",
				Name: amenity,
			})
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema markup: %w", err)
	}
	return string(data), nil
}
