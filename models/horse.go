package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Horse is a horse profile. The id is the stable slug taken from the source
// profile URL when known, otherwise derived from the display name.
// UpdatedAt moves only when a tracked profile field actually changed;
// LastScrapedAt moves on every scrape.
type Horse struct {
	bun.BaseModel `bun:"table:horses,alias:h"`

	HorseID        string     `bun:"horse_id,pk" json:"horseID"`
	Name           string     `bun:"name,notnull" json:"name"`
	NameIPA        *string    `bun:"name_ipa" json:"nameIpa,omitempty"`
	Owner          *string    `bun:"owner" json:"owner,omitempty"`
	OwnerIPA       *string    `bun:"owner_ipa" json:"ownerIpa,omitempty"`
	Trainer        *string    `bun:"trainer" json:"trainer,omitempty"`
	TrainerIPA     *string    `bun:"trainer_ipa" json:"trainerIpa,omitempty"`
	Breeder        *string    `bun:"breeder" json:"breeder,omitempty"`
	BreederIPA     *string    `bun:"breeder_ipa" json:"breederIpa,omitempty"`
	CountryOfBirth *string    `bun:"country_of_birth" json:"countryOfBirth,omitempty"`
	Age            *int       `bun:"age" json:"age,omitempty"`
	Sex            *string    `bun:"sex" json:"sex,omitempty"`
	Color          *string    `bun:"color" json:"color,omitempty"`
	Status         *string    `bun:"status" json:"status,omitempty"`
	ProfileURL     *string    `bun:"profile_url" json:"profileURL,omitempty"`
	LastScrapedAt  *time.Time `bun:"last_scraped_at" json:"lastScrapedAt,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt      *time.Time `bun:"updated_at" json:"updatedAt,omitempty"`
}
