package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"caballosapi/models"
)

// MergeHorseProfile merges one scraped horse profile into the store.
// Only fields the profile carries AND whose values differ from the stored
// row are written; updated_at moves only when at least one such field
// changed, while last_scraped_at is refreshed unconditionally. A profile
// for an unseen id creates the row first.
func (p *Pipeline) MergeHorseProfile(ctx context.Context, horseID string, prof HorseProfile) error {
	if horseID == "" {
		return errors.New("horse id required")
	}

	prof.Sex = cleanField(prof.Sex)
	prof.Color = cleanField(prof.Color)
	prof.Status = cleanField(prof.Status)
	prof.CountryOfBirth = cleanField(prof.CountryOfBirth)
	prof.ProfileURL = cleanField(prof.ProfileURL)
	prof.Owner = cleanField(prof.Owner)
	prof.Trainer = cleanField(prof.Trainer)
	prof.Breeder = cleanField(prof.Breeder)

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	cur := new(models.Horse)
	err = tx.NewSelect().Model(cur).
		Where("horse_id = ?", horseID).
		Scan(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		name := strings.ReplaceAll(horseID, "_", " ")
		if err := p.ensureHorse(ctx, tx, horseID, name, ""); err != nil {
			return err
		}
		cur = &models.Horse{HorseID: horseID, Name: name}
		zap.L().Info("horse created from profile scrape", zap.String("horse_id", horseID))
	case err != nil:
		return err
	}

	changes := map[string]any{}
	diffStr := func(col string, have *string, want *string) {
		if want != nil && deref(have) != *want {
			changes[col] = *want
		}
	}

	diffStr("sex", cur.Sex, prof.Sex)
	diffStr("color", cur.Color, prof.Color)
	diffStr("status", cur.Status, prof.Status)
	diffStr("country_of_birth", cur.CountryOfBirth, prof.CountryOfBirth)
	diffStr("profile_url", cur.ProfileURL, prof.ProfileURL)
	if prof.Age != nil && (cur.Age == nil || *cur.Age != *prof.Age) {
		changes["age"] = *prof.Age
	}

	// Name-bearing fields refresh their transcription together.
	diffStr("owner", cur.Owner, prof.Owner)
	if _, ok := changes["owner"]; ok {
		changes["owner_ipa"] = p.tr.Name(*prof.Owner)
	}
	diffStr("trainer", cur.Trainer, prof.Trainer)
	if _, ok := changes["trainer"]; ok {
		changes["trainer_ipa"] = p.tr.Name(*prof.Trainer)
	}
	diffStr("breeder", cur.Breeder, prof.Breeder)
	if _, ok := changes["breeder"]; ok {
		changes["breeder_ipa"] = p.tr.Name(*prof.Breeder)
	}
	if cur.NameIPA == nil && cur.Name != "" {
		changes["name_ipa"] = p.tr.Name(cur.Name)
	}

	if _, err := p.resolve(ctx, tx, KindOwner, deref(prof.Owner)); err != nil {
		return err
	}
	if _, err := p.resolve(ctx, tx, KindTrainer, deref(prof.Trainer)); err != nil {
		return err
	}
	if _, err := p.resolve(ctx, tx, KindBreeder, deref(prof.Breeder)); err != nil {
		return err
	}

	now := p.now()
	q := tx.NewUpdate().Model((*models.Horse)(nil)).
		Where("horse_id = ?", horseID).
		Set("last_scraped_at = ?", now)
	if len(changes) > 0 {
		q = q.Set("updated_at = ?", now)
		for col, v := range changes {
			q = q.Set(col+" = ?", v)
		}
	}
	if _, err := q.Exec(ctx); err != nil {
		return fmt.Errorf("update horse %q: %w", horseID, err)
	}

	if err := p.mergePedigree(ctx, tx, horseID, prof.Pedigree, now); err != nil {
		return fmt.Errorf("merge pedigree for %q: %w", horseID, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true

	zap.L().Info("horse profile merged",
		zap.String("horse_id", horseID),
		zap.Int("changed_fields", len(changes)))
	return nil
}

// mergePedigree applies the same diff discipline to the pedigree row: a
// slot is written only when the profile names an ancestor and it differs
// from the stored one. Profiles never blank out a known ancestor.
func (p *Pipeline) mergePedigree(ctx context.Context, tx bun.Tx, horseID string, slots map[string]string, now time.Time) error {
	if len(slots) == 0 {
		return nil
	}

	probe := new(models.Pedigree)
	for name := range slots {
		if probe.Slot(name) == nil {
			zap.L().Warn("ignoring unknown pedigree slot",
				zap.String("horse_id", horseID),
				zap.String("slot", name))
		}
	}

	cur := new(models.Pedigree)
	err := tx.NewSelect().Model(cur).
		Where("horse_id = ?", horseID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		row := &models.Pedigree{HorseID: horseID}
		for _, name := range models.PedigreeSlots {
			if id := strings.TrimSpace(slots[name]); id != "" {
				v := id
				*row.Slot(name) = &v
			}
		}
		_, err := tx.NewInsert().Model(row).
			On("CONFLICT (horse_id) DO NOTHING").
			Exec(ctx)
		return err
	}
	if err != nil {
		return err
	}

	changes := map[string]any{}
	for _, name := range models.PedigreeSlots {
		id := strings.TrimSpace(slots[name])
		if id == "" {
			continue
		}
		if deref(*cur.Slot(name)) != id {
			changes[name] = id
		}
	}
	if len(changes) == 0 {
		return nil
	}

	q := tx.NewUpdate().Model((*models.Pedigree)(nil)).
		Where("horse_id = ?", horseID).
		Set("updated_at = ?", now)
	for col, v := range changes {
		q = q.Set(col+" = ?", v)
	}
	_, err = q.Exec(ctx)
	return err
}

// Horses lists horse rows, optionally only those never profiled or not
// profiled since cutoff. Ordered by name.
func (p *Pipeline) Horses(ctx context.Context, staleBefore *time.Time) ([]models.Horse, error) {
	var horses []models.Horse
	q := p.db.NewSelect().Model(&horses).OrderExpr("name ASC")
	if staleBefore != nil {
		q = q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("last_scraped_at IS NULL").
				WhereOr("last_scraped_at < ?", *staleBefore)
		})
	}
	err := q.Scan(ctx)
	return horses, err
}

// Horse fetches one profile with its pedigree, sql.ErrNoRows when absent.
func (p *Pipeline) Horse(ctx context.Context, horseID string) (*models.Horse, *models.Pedigree, error) {
	h := new(models.Horse)
	if err := p.db.NewSelect().Model(h).
		Where("horse_id = ?", horseID).
		Scan(ctx); err != nil {
		return nil, nil, err
	}

	pd := new(models.Pedigree)
	err := p.db.NewSelect().Model(pd).
		Where("horse_id = ?", horseID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return h, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return h, pd, nil
}
