package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/mediavision/centrepage/internal/property"
)

// TemplateProvider renders a fixed multi-section document from the
// record's fields. No network access, no randomness. Used when no
// credentials are supplied or test mode is explicitly selected.
type TemplateProvider struct {
	cfg Config
}

// NewTemplateProvider creates the deterministic template backend.
func NewTemplateProvider(cfg Config) (*TemplateProvider, error) {
	return &TemplateProvider{cfg: cfg}, nil
}

// Generate formats the record into summary, location, amenity, and
// call-to-action sections.
func (p *TemplateProvider) Generate(_ context.Context, req Request) (Response, error) {
	started := time.Now()
	rec := req.Record

	name := rec.GetOr(property.FieldName, "Premium Office Space")
	city := rec.GetOr(property.FieldCity, "Major City")
	neighborhood := rec.GetOr(property.FieldNeighborhood, "Business District")
	address := rec.GetOr(property.FieldAddress, "123 Main Street")
	propertyType := rec.GetOr(property.FieldType, "Executive Office Space")
	keyFeatures := rec.GetOr(property.FieldKeyFeatures, "Modern amenities")

	text := fmt.Sprintf(`# %s - Office Space in %s

Located at %s in the heart of %s, %s offers premium %s for businesses seeking a prestigious %s location. This professional workspace combines convenience with sophisticated amenities.

Our %s office space features %s, including private offices, modern meeting rooms, and flexible workspace solutions. With high-speed connectivity and professional support services, your business will thrive in this dynamic environment.

Key benefits of this %s office space include convenient parking, 24/7 secure access, and proximity to major transportation routes. The building offers stunning views and natural light throughout.

Schedule your tour of %s today and discover why leading businesses choose our %s location. Contact us now to explore available office space options.`,
		name, city,
		address, neighborhood, name, propertyType, city,
		neighborhood, keyFeatures,
		city,
		name, neighborhood)

	out := Response{
		Text:     text,
		Model:    "template",
		Duration: time.Since(started),
	}
	p.cfg.notify(CallEvent{
		Provider:    p.Name(),
		Model:       "template",
		PromptChars: len(req.Prompt),
		Response:    &out,
		Duration:    out.Duration,
		StartedAt:   started,
	})
	return out, nil
}

// Name returns the provider identifier.
func (p *TemplateProvider) Name() string {
	return "template"
}

// Remote reports that no calls leave the process, so the batch
// pipeline never throttles this backend.
func (p *TemplateProvider) Remote() bool {
	return false
}
