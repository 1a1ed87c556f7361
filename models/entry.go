package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Entry status values.
const (
	StatusActive    = "active"
	StatusScratched = "scratched"
)

// RaceEntry is one horse running in one race. StatusHistory is an
// append-only, newline-separated log of status transitions; a line is added
// only when the observed status differs from the last persisted one.
type RaceEntry struct {
	bun.BaseModel `bun:"table:race_entries,alias:re"`

	RaceID          string     `bun:"race_id,pk" json:"raceID"`
	HorseID         string     `bun:"horse_id,pk" json:"horseID"`
	HorseName       string     `bun:"horse_name,notnull" json:"horseName"`
	Trainer         *string    `bun:"trainer" json:"trainer,omitempty"`
	Jockey          *string    `bun:"jockey" json:"jockey,omitempty"`
	Sire            *string    `bun:"sire" json:"sire,omitempty"`
	PostPosition    *int       `bun:"post_position" json:"postPosition,omitempty"`
	Status          string     `bun:"status,notnull,default:'active'" json:"status"`
	StatusHistory   *string    `bun:"status_history" json:"statusHistory,omitempty"`
	StatusChangedAt *time.Time `bun:"status_changed_at" json:"statusChangedAt,omitempty"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt       *time.Time `bun:"updated_at" json:"updatedAt,omitempty"`
}
