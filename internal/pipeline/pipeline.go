// Package pipeline drives batched content generation across a record
// collection: sequential, delay-throttled, and resumable.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/mediavision/centrepage/internal/content"
	"github.com/mediavision/centrepage/internal/generator"
	"github.com/mediavision/centrepage/internal/logger"
	"github.com/mediavision/centrepage/internal/prompt"
	"github.com/mediavision/centrepage/internal/property"
	"github.com/mediavision/centrepage/internal/seo"
	"github.com/mediavision/centrepage/internal/session"
)

// Progress reports completion after each record. completed is
// monotonically non-decreasing and reaches total only after the last
// record of the last batch.
type Progress func(completed, total int)

// Notice is a per-record failure. The batch continues past it; a
// transient failure on record N is permanent for that run.
type Notice struct {
	Index int
	Name  string
	Err   error
}

func (n Notice) String() string {
	return fmt.Sprintf("record %d (%s): %v", n.Index, n.Name, n.Err)
}

// Runner executes batch generation against one backend.
type Runner struct {
	backend generator.Provider

	// sleep is swapped out in tests to observe throttling.
	sleep func(time.Duration)
}

// New creates a runner for the given backend.
func New(backend generator.Provider) *Runner {
	return &Runner{
		backend: backend,
		sleep:   time.Sleep,
	}
}

// Run generates content for every record that does not already have an
// entry in the session's result mapping. Records are visited in strictly
// ascending index order, partitioned into contiguous batches of the
// session's batch size. Between batches, when more remain and the
// backend is remote, the runner pauses for the configured delay.
//
// Re-running without clearing results issues zero backend calls for
// indices already present.
//
// ctx is checked between records; cancellation stops the run and
// returns ctx.Err() alongside the notices collected so far.
func (r *Runner) Run(ctx context.Context, sess *session.Session, onProgress Progress) ([]Notice, error) {
	if sess.Table == nil || len(sess.Table.Records) == 0 {
		return nil, fmt.Errorf("no records loaded")
	}

	records := sess.Table.Records
	total := len(records)
	batchSize := sess.Style.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}
	delay := sess.Style.Delay

	sess.Debugf("starting batch generation for %d properties", total)
	logger.Info("batch generation starting",
		"records", total,
		"batch_size", batchSize,
		"delay", delay,
		"backend", r.backend.Name())

	var notices []Notice
	results := sess.Content()

	for batchStart := 0; batchStart < total; batchStart += batchSize {
		batchEnd := min(batchStart+batchSize, total)

		for i := batchStart; i < batchEnd; i++ {
			if err := ctx.Err(); err != nil {
				sess.Debugf("batch generation cancelled at record %d", i)
				return notices, err
			}

			rec := records[i]
			if _, done := results[i]; done {
				if onProgress != nil {
					onProgress(i+1, total)
				}
				continue
			}

			if err := r.generateOne(ctx, sess, i, rec); err != nil {
				name := rec.DisplayName(fmt.Sprintf("Property #%d", i))
				notices = append(notices, Notice{Index: i, Name: name, Err: err})
				sess.Debugf("error generating content for %s: %v", name, err)
				logger.Warn("record generation failed", "index", i, "property", name, "error", err)
			}

			if onProgress != nil {
				onProgress(i+1, total)
			}
		}

		// Fixed, non-adaptive backpressure between batches of remote
		// calls. Never after the final batch.
		if batchEnd < total && delay > 0 && r.backend.Remote() {
			sess.Debugf("pausing for %s between batches", delay)
			r.sleep(delay)
		}
	}

	sess.Debugf("completed batch generation of %d properties", total)
	logger.Info("batch generation complete", "records", total, "failures", len(notices))
	return notices, nil
}

// GenerateOne (re)generates a single record, replacing any existing
// content and meta description.
func (r *Runner) GenerateOne(ctx context.Context, sess *session.Session, idx int) error {
	if sess.Table == nil || idx < 0 || idx >= len(sess.Table.Records) {
		return fmt.Errorf("record index %d out of range", idx)
	}
	return r.generateOne(ctx, sess, idx, sess.Table.Records[idx])
}

func (r *Runner) generateOne(ctx context.Context, sess *session.Session, idx int, rec property.Record) error {
	p := prompt.Build(rec, sess.Style)
	sess.Debugf("built prompt with %d characters for %s", len(p), rec.DisplayName(fmt.Sprintf("Property #%d", idx)))

	resp, err := r.backend.Generate(ctx, generator.Request{
		Record: rec,
		System: prompt.SystemPrompt,
		Prompt: p,
	})
	if err != nil {
		return err
	}

	text := content.Normalize(resp.Text)
	sess.SetContent(idx, text, seo.MetaDescription(rec, text))
	return nil
}
