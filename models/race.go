package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Race is one scraped race card. The id is derived from track code, date,
// race number and type, so re-scraping the same race hits the same row and
// every descriptive field is simply overwritten.
type Race struct {
	bun.BaseModel `bun:"table:races,alias:rc"`

	RaceID         string     `bun:"race_id,pk" json:"raceID"`
	Name           *string    `bun:"name" json:"name,omitempty"`
	Date           string     `bun:"date,notnull,type:date" json:"date"`
	TrackName      string     `bun:"track_name,notnull" json:"trackName"`
	TrackIPA       *string    `bun:"track_ipa" json:"trackIpa,omitempty"`
	TrackCode      string     `bun:"track_code,notnull" json:"trackCode"`
	Number         *int       `bun:"number" json:"number,omitempty"`
	Type           *string    `bun:"type" json:"type,omitempty"`
	Distance       *string    `bun:"distance" json:"distance,omitempty"`
	Surface        *string    `bun:"surface" json:"surface,omitempty"`
	Conditions     *string    `bun:"conditions" json:"conditions,omitempty"`
	AgeRestriction *string    `bun:"age_restriction" json:"ageRestriction,omitempty"`
	Purse          *string    `bun:"purse" json:"purse,omitempty"`
	URL            *string    `bun:"url" json:"url,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      *time.Time `bun:"updated_at" json:"updatedAt,omitempty"`
}
