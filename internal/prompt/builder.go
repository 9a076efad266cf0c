// Package prompt renders a property record plus style constraints into
// the natural-language instruction sent to a content backend.
package prompt

import (
	"fmt"
	"strings"

	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/style"
)

// SystemPrompt is the fixed system instruction for remote backends.
const SystemPrompt = "You are an SEO content specialist writing optimized commercial real estate descriptions that rank well on Google."

// Placeholder substitutes for absent record fields. Fields are never
// omitted from the prompt so its structure stays stable across records.
const Placeholder = "N/A"

// promptFields lists the record fields substituted into the instruction
// template, in template order.
var promptFields = []string{
	property.FieldName,
	property.FieldAddress,
	property.FieldCity,
	property.FieldZip,
	property.FieldNeighborhood,
	property.FieldType,
	property.FieldSizeRange,
	property.FieldDescription,
	property.FieldKeyFeatures,
	property.FieldNearbyBusinesses,
	property.FieldTransport,
	property.FieldTechnology,
	property.FieldMeetingRooms,
	property.FieldCommonAreas,
	property.FieldBusinessServices,
	property.FieldSecurity,
	property.FieldWellness,
	property.FieldConfigurations,
	property.FieldLeaseOptions,
	property.FieldContact,
}

// Build renders the instruction for one record. It always succeeds,
// degrading to placeholders on missing data. Formatting constraints are
// literal instruction text; enforcement is the backend's job and is
// revalidated by the SEO analyzer.
func Build(rec property.Record, cfg style.Config) string {
	var b strings.Builder

	b.WriteString("You are an SEO content specialist writing for a luxury office space provider.\n")
	b.WriteString("Create a Google-optimized office space description that will rank well in search results.\n\n")

	b.WriteString("Property Details:\n")
	for _, field := range promptFields {
		fmt.Fprintf(&b, "%s: %s\n", field, rec.GetOr(field, Placeholder))
	}

	keywords := strings.Join(cfg.TargetKeywords, ", ")
	if keywords == "" {
		keywords = "office space, executive office"
	}
	fmt.Fprintf(&b, "\nTarget Keywords: %s\n", keywords)

	b.WriteString(`
SEO Requirements:
1. Start with a compelling H1 title that includes the property name, "Office Space" and location
2. Include the full address naturally in the first paragraph
3. Use location-based keywords (city, neighborhood) 2-3 times naturally throughout
4. Include "office space" or "executive office" variations 2-3 times
5. Mention specific amenities and features using semantic keywords
6. Keep content between 150-300 words for optimal engagement
7. Use short paragraphs (2-3 sentences max) for readability
8. Include a clear call-to-action in the final paragraph
9. Write in active voice and present tense
10. Focus on benefits rather than just features
11. Include local landmarks or nearby businesses if relevant

Content Structure:
- H1 Title using # (include property name + "Office Space" + location)
- Opening paragraph with address and main value proposition
- 2-3 short paragraphs highlighting key features and benefits
- Closing paragraph with clear CTA (Schedule tour, Contact us, etc.)

Write naturally for humans first, search engines second. Avoid:
- Keyword stuffing or unnatural repetition
- Generic phrases like "state-of-the-art" or "premier location"
- Long, complex sentences
- Passive voice
- Overly promotional language
- More than 4 bullet points if using a list
`)

	if len(cfg.ExcludedTerms) > 0 {
		b.WriteString("\nIMPORTANT: Do NOT use the following terms or phrases in your content:\n")
		for i, term := range cfg.ExcludedTerms {
			fmt.Fprintf(&b, "%d. %q\n", i+1, term)
		}
	}

	if len(cfg.ExampleCopies) > 0 {
		b.WriteString("\nHere are examples of good copy that you should emulate in style and tone:\n\n")
		for i, example := range cfg.ExampleCopies {
			fmt.Fprintf(&b, "EXAMPLE %d:\n%s\n\n", i+1, example)
		}
	}

	b.WriteString("\nWrite the SEO-optimized content now:")
	return b.String()
}
