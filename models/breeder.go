package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Breeder is a name-keyed reference row, created lazily on first sight.
type Breeder struct {
	bun.BaseModel `bun:"table:breeders,alias:b"`

	ID        string    `bun:"id,pk" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`
	NameIPA   *string   `bun:"name_ipa" json:"nameIpa,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
}
