package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"caballosapi/identity"
	"caballosapi/models"
)

// EntityKind selects which reference table Resolve works against.
type EntityKind string

const (
	KindTrainer EntityKind = "trainer"
	KindJockey  EntityKind = "jockey"
	KindOwner   EntityKind = "owner"
	KindBreeder EntityKind = "breeder"
	KindSire    EntityKind = "sire"
)

var refTables = map[EntityKind]string{
	KindTrainer: "trainers",
	KindJockey:  "jockeys",
	KindOwner:   "owners",
	KindBreeder: "breeders",
}

// Source markers that mean "no value". Matched case-insensitively.
var sentinels = map[string]struct{}{
	"unknown": {},
	"n/a":     {},
	"none":    {},
}

// refName trims a raw reference name and rejects sentinel values.
func refName(raw string) (string, bool) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", false
	}
	if _, bad := sentinels[strings.ToLower(name)]; bad {
		return "", false
	}
	return name, true
}

// refDisplay is the cleaned display form stored on race entries, nil for
// sentinel input.
func refDisplay(raw string) *string {
	name, ok := refName(raw)
	if !ok {
		return nil
	}
	return &name
}

// Resolve finds or creates the reference row for name and returns its key.
// Sentinel names ("", "Unknown", "N/A", "None") resolve to "" with no side
// effect. Existing rows are never modified; a name is transcribed once, at
// creation.
func (p *Pipeline) Resolve(ctx context.Context, kind EntityKind, name string) (string, error) {
	return p.resolve(ctx, p.db, kind, name)
}

func (p *Pipeline) resolve(ctx context.Context, idb bun.IDB, kind EntityKind, raw string) (string, error) {
	name, ok := refName(raw)
	if !ok {
		return "", nil
	}
	key := identity.NameKey(name)

	// Sires live in the horses table so pedigree slots can point at them.
	if kind == KindSire {
		if err := p.ensureHorse(ctx, idb, key, name, "sire"); err != nil {
			return "", err
		}
		return key, nil
	}

	table, known := refTables[kind]
	if !known {
		return "", fmt.Errorf("unknown entity kind %q", kind)
	}

	exists, err := idb.NewSelect().Table(table).Where("id = ?", key).Exists(ctx)
	if err != nil {
		return "", err
	}
	if exists {
		return key, nil
	}

	ipa := nullable(p.tr.Name(name))
	var model any
	switch kind {
	case KindTrainer:
		model = &models.Trainer{ID: key, Name: name, NameIPA: ipa}
	case KindJockey:
		model = &models.Jockey{ID: key, Name: name, NameIPA: ipa}
	case KindOwner:
		model = &models.Owner{ID: key, Name: name, NameIPA: ipa}
	case KindBreeder:
		model = &models.Breeder{ID: key, Name: name, NameIPA: ipa}
	}

	if _, err := idb.NewInsert().Model(model).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx); err != nil {
		return "", fmt.Errorf("create %s %q: %w", kind, name, err)
	}
	zap.L().Info("reference created",
		zap.String("kind", string(kind)),
		zap.String("id", key))
	return key, nil
}

// ensureHorse inserts a minimal horses row if the id is unseen. Status is
// only applied to brand new rows; "" means leave it null.
func (p *Pipeline) ensureHorse(ctx context.Context, idb bun.IDB, horseID, name, status string) error {
	exists, err := idb.NewSelect().Model((*models.Horse)(nil)).
		Where("horse_id = ?", horseID).
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	h := &models.Horse{
		HorseID: horseID,
		Name:    name,
		NameIPA: nullable(p.tr.Name(name)),
		Status:  nullable(status),
	}
	if _, err := idb.NewInsert().Model(h).
		On("CONFLICT (horse_id) DO NOTHING").
		Exec(ctx); err != nil {
		return fmt.Errorf("create horse %q: %w", horseID, err)
	}
	return nil
}
