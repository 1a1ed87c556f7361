// Package pipeline reconciles scraped race and horse records into the
// relational store: reference entities are created lazily, tracks are
// auto-provisioned, races and entries are upserted with a status audit
// trail, and horse profiles are merged field-by-field.
package pipeline

import (
	"context"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Transcriber generates phonetic transcriptions for display names and
// track names. The track form also reports an inferred country.
type Transcriber interface {
	Name(text string) string
	Track(name string) (ipa, country string)
}

// Pipeline runs all reconciliation operations against one database. It is
// safe for concurrent use: every operation owns its transaction and all
// inserts are conflict-safe, so the database arbitrates racing writers.
type Pipeline struct {
	db  *bun.DB
	tr  Transcriber
	now func() time.Time
}

// New creates a Pipeline using the given store and transcription
// collaborator.
func New(db *bun.DB, tr Transcriber) *Pipeline {
	return &Pipeline{db: db, tr: tr, now: time.Now}
}

// EntryError is a participant-level failure collected during a race merge.
// The race itself still commits.
type EntryError struct {
	RaceID string `json:"raceID"`
	Horse  string `json:"horse"`
	Reason string `json:"reason"`
}

// BatchResult summarizes a batch of race merges.
type BatchResult struct {
	Merged int          `json:"merged"`
	Failed int          `json:"failed"`
	Errors []EntryError `json:"errors,omitempty"`
}

// MergeRaces merges a batch of scraped races sequentially. A race-level
// failure is logged and counted; it never aborts the rest of the batch.
func (p *Pipeline) MergeRaces(ctx context.Context, races []ScrapedRace) BatchResult {
	var res BatchResult
	for _, r := range races {
		entryErrs, err := p.MergeRace(ctx, r)
		res.Errors = append(res.Errors, entryErrs...)
		if err != nil {
			res.Failed++
			zap.L().Error("race merge failed",
				zap.String("title", r.Title),
				zap.Error(err))
			continue
		}
		res.Merged++
	}
	return res
}
