package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PedigreeSlots lists the 14 ancestor slot column names in canonical order:
// sire/dam, the four grandparents, then the eight great-grandparents.
var PedigreeSlots = []string{
	"sire_id",
	"dam_id",
	"paternal_grandsire_id",
	"paternal_granddam_id",
	"maternal_grandsire_id",
	"maternal_granddam_id",
	"paternal_gg_sire_id",
	"paternal_gg_dam_id",
	"paternal_gd_sire_id",
	"paternal_gd_dam_id",
	"maternal_gg_sire_id",
	"maternal_gg_dam_id",
	"maternal_gd_sire_id",
	"maternal_gd_dam_id",
}

// Pedigree holds the ancestor tree for one horse, one horse identity (or
// null) per slot. Owned by the horse row and removed with it.
type Pedigree struct {
	bun.BaseModel `bun:"table:pedigrees,alias:pd"`

	HorseID             string     `bun:"horse_id,pk" json:"horseID"`
	SireID              *string    `bun:"sire_id" json:"sireID,omitempty"`
	DamID               *string    `bun:"dam_id" json:"damID,omitempty"`
	PaternalGrandsireID *string    `bun:"paternal_grandsire_id" json:"paternalGrandsireID,omitempty"`
	PaternalGranddamID  *string    `bun:"paternal_granddam_id" json:"paternalGranddamID,omitempty"`
	MaternalGrandsireID *string    `bun:"maternal_grandsire_id" json:"maternalGrandsireID,omitempty"`
	MaternalGranddamID  *string    `bun:"maternal_granddam_id" json:"maternalGranddamID,omitempty"`
	PaternalGgSireID    *string    `bun:"paternal_gg_sire_id" json:"paternalGgSireID,omitempty"`
	PaternalGgDamID     *string    `bun:"paternal_gg_dam_id" json:"paternalGgDamID,omitempty"`
	PaternalGdSireID    *string    `bun:"paternal_gd_sire_id" json:"paternalGdSireID,omitempty"`
	PaternalGdDamID     *string    `bun:"paternal_gd_dam_id" json:"paternalGdDamID,omitempty"`
	MaternalGgSireID    *string    `bun:"maternal_gg_sire_id" json:"maternalGgSireID,omitempty"`
	MaternalGgDamID     *string    `bun:"maternal_gg_dam_id" json:"maternalGgDamID,omitempty"`
	MaternalGdSireID    *string    `bun:"maternal_gd_sire_id" json:"maternalGdSireID,omitempty"`
	MaternalGdDamID     *string    `bun:"maternal_gd_dam_id" json:"maternalGdDamID,omitempty"`
	CreatedAt           time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	UpdatedAt           *time.Time `bun:"updated_at" json:"updatedAt,omitempty"`
}

// Slot returns a pointer to the field backing the named slot, or nil for an
// unknown slot name.
func (p *Pedigree) Slot(name string) **string {
	switch name {
	case "sire_id":
		return &p.SireID
	case "dam_id":
		return &p.DamID
	case "paternal_grandsire_id":
		return &p.PaternalGrandsireID
	case "paternal_granddam_id":
		return &p.PaternalGranddamID
	case "maternal_grandsire_id":
		return &p.MaternalGrandsireID
	case "maternal_granddam_id":
		return &p.MaternalGranddamID
	case "paternal_gg_sire_id":
		return &p.PaternalGgSireID
	case "paternal_gg_dam_id":
		return &p.PaternalGgDamID
	case "paternal_gd_sire_id":
		return &p.PaternalGdSireID
	case "paternal_gd_dam_id":
		return &p.PaternalGdDamID
	case "maternal_gg_sire_id":
		return &p.MaternalGgSireID
	case "maternal_gg_dam_id":
		return &p.MaternalGgDamID
	case "maternal_gd_sire_id":
		return &p.MaternalGdSireID
	case "maternal_gd_dam_id":
		return &p.MaternalGdDamID
	}
	return nil
}
