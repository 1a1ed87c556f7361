package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Trainer is a name-keyed reference row, created lazily on first sight.
type Trainer struct {
	bun.BaseModel `bun:"table:trainers,alias:t"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	NameIPA   *string   `bun:"name_ipa" json:"nameIpa,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
