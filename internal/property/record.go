// Package property defines the office-space listing record and its
// tabular ingest/export formats.
package property

import "strings"

// Recognized field names. Column headers are matched against these
// case-sensitively; unrecognized columns are carried through untouched.
const (
	FieldName             = "Property Name"
	FieldAddress          = "Address"
	FieldCity             = "City"
	FieldState            = "State"
	FieldZip              = "Zip Code"
	FieldNeighborhood     = "Neighborhood"
	FieldType             = "Property Type"
	FieldSizeRange        = "Size Range"
	FieldDescription      = "Building Description"
	FieldKeyFeatures      = "Key Features"
	FieldNearbyBusinesses = "Nearby Businesses"
	FieldTransport        = "Transport Access"
	FieldTechnology       = "Technology Features"
	FieldMeetingRooms     = "Meeting Rooms"
	FieldCommonAreas      = "Common Areas"
	FieldBusinessServices = "Business Services"
	FieldSecurity         = "Security Features"
	FieldWellness         = "Wellness Amenities"
	FieldConfigurations   = "Office Configurations"
	FieldLeaseOptions     = "Lease Options"
	FieldContact          = "Contact Information"
	FieldLatitude         = "Latitude"
	FieldLongitude        = "Longitude"
	FieldSourceURL        = "Source URL"
	FieldContent          = "Generated Content"
)

// RecognizedFields lists every field the generation logic understands,
// in display order.
var RecognizedFields = []string{
	FieldName,
	FieldAddress,
	FieldCity,
	FieldState,
	FieldZip,
	FieldNeighborhood,
	FieldType,
	FieldSizeRange,
	FieldDescription,
	FieldKeyFeatures,
	FieldNearbyBusinesses,
	FieldTransport,
	FieldTechnology,
	FieldMeetingRooms,
	FieldCommonAreas,
	FieldBusinessServices,
	FieldSecurity,
	FieldWellness,
	FieldConfigurations,
	FieldLeaseOptions,
	FieldContact,
	FieldLatitude,
	FieldLongitude,
	FieldSourceURL,
}

// Record is one listing's field data. Field presence is never guaranteed;
// consumers must substitute a default when a field is absent or blank.
type Record map[string]string

// Get returns the trimmed value for a field, or "" when absent.
func (r Record) Get(field string) string {
	return strings.TrimSpace(r[field])
}

// GetOr returns the field value, or fallback when the field is absent
// or blank.
func (r Record) GetOr(field, fallback string) string {
	if v := r.Get(field); v != "" {
		return v
	}
	return fallback
}

// Has reports whether the field is present and non-blank.
func (r Record) Has(field string) bool {
	return r.Get(field) != ""
}

// Set stores a field value, dropping the key entirely for blank values.
func (r Record) Set(field, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		delete(r, field)
		return
	}
	r[field] = value
}

// DisplayName returns the property name, or fallback when unnamed.
func (r Record) DisplayName(fallback string) string {
	return r.GetOr(FieldName, fallback)
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
