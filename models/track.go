package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Track is a racecourse resolved from a short code. Rows are either seeded
// from the curated slug mapping or auto-provisioned on first sight of an
// unknown code.
type Track struct {
	bun.BaseModel `bun:"table:tracks,alias:tk"`

	Code      string     `bun:"code,pk" json:"code"`
	Name      string     `bun:"name,notnull" json:"name"`
	NameIPA   *string    `bun:"name_ipa" json:"nameIpa,omitempty"`
	Country   *string    `bun:"country" json:"country,omitempty"`
	Active    bool       `bun:"active,notnull,default:true" json:"active"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt *time.Time `bun:"updated_at" json:"updatedAt,omitempty"`
}
