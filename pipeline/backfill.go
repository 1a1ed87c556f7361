package pipeline

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"caballosapi/models"
)

// BackfillPedigreeHorses scans every pedigree slot and creates placeholder
// horse rows, status "incomplete", for ancestors that have no profile yet.
// Returns how many rows were created.
func (p *Pipeline) BackfillPedigreeHorses(ctx context.Context) (int, error) {
	var peds []models.Pedigree
	if err := p.db.NewSelect().Model(&peds).Scan(ctx); err != nil {
		return 0, err
	}

	seen := map[string]struct{}{}
	for i := range peds {
		for _, slot := range models.PedigreeSlots {
			if id := deref(*peds[i].Slot(slot)); id != "" {
				seen[id] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var existing []string
	if err := p.db.NewSelect().Model((*models.Horse)(nil)).
		Column("horse_id").
		Where("horse_id IN (?)", bun.In(ids)).
		Scan(ctx, &existing); err != nil {
		return 0, err
	}
	have := map[string]struct{}{}
	for _, id := range existing {
		have[id] = struct{}{}
	}

	added := 0
	status := "incomplete"
	for _, id := range ids {
		if _, ok := have[id]; ok {
			continue
		}
		h := &models.Horse{
			HorseID: id,
			Name:    strings.ReplaceAll(id, "_", " "),
			Status:  &status,
		}
		res, err := p.db.NewInsert().Model(h).
			On("CONFLICT (horse_id) DO NOTHING").
			Exec(ctx)
		if err != nil {
			zap.L().Error("pedigree backfill insert failed",
				zap.String("horse_id", id),
				zap.Error(err))
			continue
		}
		if n, _ := res.RowsAffected(); n > 0 {
			added++
		}
	}

	zap.L().Info("pedigree backfill complete",
		zap.Int("ancestors", len(ids)),
		zap.Int("added", added))
	return added, nil
}

// StaleHorses returns horses never profile-scraped or last scraped before
// cutoff, the worklist for a refresh pass.
func (p *Pipeline) StaleHorses(ctx context.Context, cutoff time.Time) ([]models.Horse, error) {
	return p.Horses(ctx, &cutoff)
}
