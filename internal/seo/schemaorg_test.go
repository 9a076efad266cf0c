package seo

import (
	"encoding/json"
	"testing"

	"github.com/mediavision/centrepage/internal/property"
)

func TestSchemaMarkup(t *testing.T) {
	rec := property.Record{
		property.FieldName:        "Gateway Tower",
		property.FieldAddress:     "500 Congress Ave",
		property.FieldCity:        "Austin",
		property.FieldState:       "TX",
		property.FieldZip:         "78701",
		property.FieldDescription: "Class A offices downtown.",
		property.FieldKeyFeatures: "Meeting rooms, Parking , 24/7 access",
		property.FieldLatitude:    "30.2672",
		property.FieldLongitude:   "-97.7431",
	}

	out, err := SchemaMarkup(rec)
	if err != nil {
		t.Fatalf("SchemaMarkup() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc["@context"] != "https://schema.org" || doc["@type"] != "OfficeSpace" {
		t.Errorf("wrong JSON-LD envelope: context=%v type=%v", doc["@context"], doc["@type"])
	}

	addr, ok := doc["address"].(map[string]any)
	if !ok {
		t.Fatal("address missing")
	}
	if addr["streetAddress"] != "500 Congress Ave" || addr["addressLocality"] != "Austin" ||
		addr["addressRegion"] != "TX" || addr["postalCode"] != "78701" || addr["addressCountry"] != "US" {
		t.Errorf("wrong address: %v", addr)
	}

	geo, ok := doc["geo"].(map[string]any)
	if !ok {
		t.Fatal("geo missing despite coordinates")
	}
	if geo["latitude"] != "30.2672" || geo["longitude"] != "-97.7431" {
		t.Errorf("wrong geo: %v", geo)
	}

	amenities, ok := doc["amenityFeature"].([]any)
	if !ok || len(amenities) != 3 {
		t.Fatalf("want 3 amenities, got %v", doc["amenityFeature"])
	}
	second := amenities[1].(map[string]any)
	if second["name"] != "Parking" {
		t.Errorf("amenity names should be trimmed, got %v", second["name"])
	}
	if second["@type"] != "LocationFeatureSpecification" {
		t.Errorf("wrong amenity type: %v", second["@type"])
	}
}

func TestSchemaMarkup_MinimalRecord(t *testing.T) {
	out, err := SchemaMarkup(property.Record{property.FieldName: "Bare Building"})
	if err != nil {
		t.Fatalf("SchemaMarkup() error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if _, ok := doc["geo"]; ok {
		t.Error("geo should be omitted without coordinates")
	}
	if amenities, ok := doc["amenityFeature"].([]any); !ok || len(amenities) != 0 {
		t.Errorf("amenityFeature should be an empty array, got %v", doc["amenityFeature"])
	}
}
