// Package seo computes quality metrics and derived artifacts from
// generated copy against its source property record.
//
// The heuristics are deliberately coarse: period-split sentence
// segmentation, a fixed call-to-action lexicon, and a two-bucket
// readability label. The scoring rubric depends on this exact behavior;
// do not make it linguistically correct.
package seo

import (
	"math"
	"strings"

	"github.com/mediavision/centrepage/internal/property"
)

// ctaLexicon is the fixed set of call-to-action markers.
var ctaLexicon = []string{"contact", "schedule", "book", "visit", "tour", "call"}

// KeywordStat is one keyword's occurrence data.
type KeywordStat struct {
	Count   int     `json:"count" yaml:"count"`
	Density float64 `json:"density" yaml:"density"` // occurrences / word count * 100
}

// Analysis holds the derived quality metrics for one piece of copy.
type Analysis struct {
	WordCount         int                    `json:"word_count" yaml:"word_count"`
	HasAddress        bool                   `json:"has_address" yaml:"has_address"`
	LocationMentions  int                    `json:"location_mentions" yaml:"location_mentions"`
	KeywordDensity    map[string]KeywordStat `json:"keyword_density" yaml:"keyword_density"`
	HasCTA            bool                   `json:"has_cta" yaml:"has_cta"`
	ParagraphCount    int                    `json:"paragraph_count" yaml:"paragraph_count"`
	HasHeading        bool                   `json:"has_heading" yaml:"has_heading"`
	AvgSentenceLength float64                `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	Readability       string                 `json:"readability" yaml:"readability"` // "Good" or "Complex"
	Score             int                    `json:"seo_score" yaml:"seo_score"`     // 0..100
}

// Analyze computes the metrics for text against its source record.
// targetKeywords come from the style configuration; the record's city
// and neighborhood plus two fixed terms are always included.
func Analyze(text string, rec property.Record, targetKeywords []string) Analysis {
	if text == "" {
		return Analysis{KeywordDensity: map[string]KeywordStat{}}
	}

	lower := strings.ToLower(text)
	words := strings.Fields(text)
	address := rec.Get(property.FieldAddress)
	city := rec.Get(property.FieldCity)

	a := Analysis{
		WordCount:      len(words),
		KeywordDensity: make(map[string]KeywordStat),
		HasHeading:     strings.HasPrefix(strings.TrimSpace(text), "#"),
	}

	// Address containment is case-sensitive by design: the address must
	// appear verbatim for search engines to pick it up.
	if address != "" {
		a.HasAddress = strings.Contains(text, address)
	}
	if city != "" {
		a.LocationMentions = strings.Count(lower, strings.ToLower(city))
	}

	keywords := make([]string, 0, len(targetKeywords)+4)
	keywords = append(keywords, targetKeywords...)
	keywords = append(keywords, "meeting room", "business", city, rec.Get(property.FieldNeighborhood))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		count := strings.Count(lower, strings.ToLower(kw))
		density := 0.0
		if a.WordCount > 0 {
			density = float64(count) / float64(a.WordCount) * 100
		}
		a.KeywordDensity[kw] = KeywordStat{Count: count, Density: density}
	}

	for _, cta := range ctaLexicon {
		if strings.Contains(lower, cta) {
			a.HasCTA = true
			break
		}
	}

	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			a.ParagraphCount++
		}
	}

	var sentenceCount, sentenceWords int
	for _, s := range strings.Split(text, ".") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		sentenceCount++
		sentenceWords += len(strings.Fields(s))
	}
	if sentenceCount > 0 {
		avg := float64(sentenceWords) / float64(sentenceCount)
		a.AvgSentenceLength = math.Round(avg*10) / 10
	}
	if a.AvgSentenceLength < 20 {
		a.Readability = "Good"
	} else {
		a.Readability = "Complex"
	}

	a.Score = a.score()
	return a
}

// score sums the fixed-weight rubric contributions. The weights total
// exactly 100.
func (a Analysis) score() int {
	score := 0
	if a.WordCount >= 150 && a.WordCount <= 300 {
		score += 20
	}
	if a.HasAddress {
		score += 20
	}
	if a.LocationMentions >= 2 {
		score += 20
	}
	if a.HasCTA {
		score += 20
	}
	if a.HasHeading {
		score += 10
	}
	if a.Readability == "Good" {
		score += 10
	}
	return score
}
