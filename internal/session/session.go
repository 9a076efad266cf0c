// Package session owns all per-session state: the loaded records,
// generated content, style configuration, and debugging aids. The
// session is passed explicitly to every component that needs it; there
// is no ambient process-wide state.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/mediavision/centrepage/internal/generator"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/style"
)

// debugLogLimit bounds the rolling debug log.
const debugLogLimit = 20

// Session is one user session's state. Content is keyed by record
// index; regeneration replaces an entry, never appends.
type Session struct {
	mu sync.Mutex

	Table *property.Table
	Style style.Config

	content          map[int]string
	metaDescriptions map[int]string
	debug            []string
	lastResponse     *generator.Response
}

// New creates a session with default style configuration.
func New() *Session {
	return &Session{
		Style:            style.Default(),
		content:          make(map[int]string),
		metaDescriptions: make(map[int]string),
	}
}

// Debugf appends a timestamped entry to the rolling debug log,
// retaining only the most recent entries.
func (s *Session) Debugf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := fmt.Sprintf("[%s] %s", time.Now().Format("15:04:05"), fmt.Sprintf(format, args...))
	s.debug = append(s.debug, entry)
	if len(s.debug) > debugLogLimit {
		s.debug = s.debug[len(s.debug)-debugLogLimit:]
	}
}

// DebugLog returns a copy of the rolling debug log.
func (s *Session) DebugLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.debug...)
}

// ClearDebugLog empties the rolling debug log.
func (s *Session) ClearDebugLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = nil
}

// OnGenerate implements generator.Observer: every backend call is
// logged, and the last raw remote response is snapshotted for
// inspection.
func (s *Session) OnGenerate(event generator.CallEvent) {
	if event.Err != nil {
		s.Debugf("%s call failed after %s: %v", event.Provider, event.Duration.Round(time.Millisecond), event.Err)
		return
	}
	s.Debugf("%s generated %d characters with model %s", event.Provider, len(event.Response.Text), event.Model)
	if event.Response.Raw != "" {
		s.mu.Lock()
		resp := *event.Response
		s.lastResponse = &resp
		s.mu.Unlock()
	}
}

// LastResponse returns the most recent raw remote response, or nil.
func (s *Session) LastResponse() *generator.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastResponse
}

// Content returns the result mapping. The pipeline reads and writes it
// directly; safe because each session has one logical thread of control.
func (s *Session) Content() map[int]string {
	return s.content
}

// ContentFor returns the generated content for a record index.
func (s *Session) ContentFor(idx int) (string, bool) {
	text, ok := s.content[idx]
	return text, ok
}

// SetContent stores content for a record index, replacing any previous
// entry, and refreshes the derived meta description. The record's
// Generated Content column is kept in sync.
func (s *Session) SetContent(idx int, text string, meta string) {
	s.content[idx] = text
	s.metaDescriptions[idx] = meta
	if s.Table != nil && idx >= 0 && idx < len(s.Table.Records) {
		s.Table.Records[idx].Set(property.FieldContent, text)
	}
}

// DropContent removes one record's content and meta description so the
// next pipeline run regenerates it.
func (s *Session) DropContent(idx int) {
	delete(s.content, idx)
	delete(s.metaDescriptions, idx)
	if s.Table != nil && idx >= 0 && idx < len(s.Table.Records) {
		s.Table.Records[idx].Set(property.FieldContent, "")
	}
}

// MetaDescriptionFor returns the stored meta description for an index.
func (s *Session) MetaDescriptionFor(idx int) (string, bool) {
	meta, ok := s.metaDescriptions[idx]
	return meta, ok
}

// ClearContent drops all generated content and meta descriptions.
func (s *Session) ClearContent() {
	s.content = make(map[int]string)
	s.metaDescriptions = make(map[int]string)
}

// LoadTable replaces the record collection. Any previously generated
// content belongs to the old data set and is cleared.
func (s *Session) LoadTable(t *property.Table) {
	s.Table = t
	s.ClearContent()
}
