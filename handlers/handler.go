package handlers

import (
	"time"

	"github.com/uptrace/bun"

	"caballosapi/pipeline"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db      *bun.DB
	pipe    *pipeline.Pipeline
	JWTKey  []byte
	refresh time.Duration
}

// New creates a Handler. refreshDays is the age past which a horse profile
// counts as stale.
func New(db *bun.DB, pipe *pipeline.Pipeline, jwtKey []byte, refreshDays int) *Handler {
	return &Handler{
		db:      db,
		pipe:    pipe,
		JWTKey:  jwtKey,
		refresh: time.Duration(refreshDays) * 24 * time.Hour,
	}
}
