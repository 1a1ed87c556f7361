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

	"caballosapi/identity"
	"caballosapi/models"
	"caballosapi/parse"
)

const historyTimeLayout = "2006-01-02 15:04:05"

// MergeRace upserts one race and all its entries in a single transaction.
// A participant that fails to merge is rolled back to a savepoint and
// reported in the returned slice; the race and the remaining participants
// still commit. A non-nil error means nothing was persisted.
func (p *Pipeline) MergeRace(ctx context.Context, r ScrapedRace) ([]EntryError, error) {
	if r.RaceDate == "" {
		return nil, errors.New("race date missing")
	}

	raceID := r.RaceIDHint
	if raceID == "" {
		raceID = identity.RaceID(r.TrackCode, r.raceDate(), r.RaceNumber, r.RaceType)
	}
	if raceID == "" {
		raceID = identity.PlaceholderRaceID(r.RaceNumber)
		zap.L().Warn("race id underivable, using placeholder",
			zap.String("race_id", raceID),
			zap.String("title", r.Title))
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	code := shortTrackCode(raceID)
	track, err := p.resolveTrack(ctx, tx, code)
	if err != nil {
		return nil, fmt.Errorf("resolve track %q: %w", code, err)
	}

	if err := p.upsertRace(ctx, tx, raceID, track, r); err != nil {
		return nil, fmt.Errorf("upsert race %q: %w", raceID, err)
	}

	now := p.now()
	var entryErrs []EntryError
	for _, pt := range r.Participants {
		if err := p.mergeEntry(ctx, tx, raceID, now, pt); err != nil {
			zap.L().Error("entry merge failed",
				zap.String("race_id", raceID),
				zap.String("horse", pt.HorseName),
				zap.Error(err))
			entryErrs = append(entryErrs, EntryError{RaceID: raceID, Horse: pt.HorseName, Reason: err.Error()})
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	committed = true

	zap.L().Info("race merged",
		zap.String("race_id", raceID),
		zap.Int("participants", len(r.Participants)),
		zap.Int("entry_errors", len(entryErrs)))
	return entryErrs, nil
}

func (p *Pipeline) upsertRace(ctx context.Context, idb bun.IDB, raceID string, track TrackInfo, r ScrapedRace) error {
	age := r.AgeRestriction
	if age == "" || age == "N/A" {
		age = parse.AgeFromConditions(r.Conditions)
	}
	var conditions *string
	if c := nullable(r.Conditions); c != nil {
		conditions = nullable(parse.StripAgeFromConditions(*c))
	}

	now := p.now()
	race := &models.Race{
		RaceID:         raceID,
		Name:           nullable(r.Title),
		Date:           r.RaceDate,
		TrackName:      track.DisplayName(),
		TrackIPA:       nullable(track.IPA),
		TrackCode:      track.Code,
		Number:         atoiPtr(r.RaceNumber),
		Type:           nullable(parse.CleanRaceType(r.RaceType)),
		Distance:       nullable(r.Distance),
		Surface:        nullable(r.Surface),
		Conditions:     conditions,
		AgeRestriction: nullable(age),
		Purse:          nullable(r.Purse),
		URL:            nullable(r.URL),
		UpdatedAt:      &now,
	}
	_, err := idb.NewInsert().Model(race).
		On("CONFLICT (race_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("date = EXCLUDED.date").
		Set("track_name = EXCLUDED.track_name").
		Set("track_ipa = EXCLUDED.track_ipa").
		Set("track_code = EXCLUDED.track_code").
		Set("number = EXCLUDED.number").
		Set("type = EXCLUDED.type").
		Set("distance = EXCLUDED.distance").
		Set("surface = EXCLUDED.surface").
		Set("conditions = EXCLUDED.conditions").
		Set("age_restriction = EXCLUDED.age_restriction").
		Set("purse = EXCLUDED.purse").
		Set("url = EXCLUDED.url").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// mergeEntry wraps one participant merge in a savepoint so its failure
// cannot poison the enclosing race transaction.
func (p *Pipeline) mergeEntry(ctx context.Context, tx bun.Tx, raceID string, now time.Time, pt ScrapedParticipant) error {
	if _, err := tx.ExecContext(ctx, "SAVEPOINT entry_merge"); err != nil {
		return err
	}
	if err := p.doMergeEntry(ctx, tx, raceID, now, pt); err != nil {
		tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT entry_merge")
		return err
	}
	_, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT entry_merge")
	return err
}

func (p *Pipeline) doMergeEntry(ctx context.Context, tx bun.Tx, raceID string, now time.Time, pt ScrapedParticipant) error {
	name := parse.CleanText(pt.HorseName)
	if name == "" || name == "N/A" {
		return errors.New("participant has no horse name")
	}

	horseID := pt.HorseID
	if horseID == "" || horseID == "N/A" {
		horseID = raceID + "_" + identity.NameKey(name)
	}

	status := models.StatusActive
	if strings.EqualFold(strings.TrimSpace(pt.Status), models.StatusScratched) {
		status = models.StatusScratched
	}

	prev := new(models.RaceEntry)
	err := tx.NewSelect().Model(prev).
		Where("race_id = ?", raceID).
		Where("horse_id = ?", horseID).
		Scan(ctx)

	var history *string
	var changedAt *time.Time
	switch {
	case errors.Is(err, sql.ErrNoRows):
		line := seedHistoryLine(now, status)
		history = &line
		changedAt = &now
	case err != nil:
		return err
	case prev.Status != status:
		line := now.Format(historyTimeLayout) + ": " + prev.Status + " → " + status
		joined := line
		if h := deref(prev.StatusHistory); h != "" {
			joined = h + "\n" + line
		}
		history = &joined
		changedAt = &now
		zap.L().Info("entry status changed",
			zap.String("race_id", raceID),
			zap.String("horse_id", horseID),
			zap.String("from", prev.Status),
			zap.String("to", status))
	default:
		history = prev.StatusHistory
		changedAt = prev.StatusChangedAt
	}

	if _, err := p.resolve(ctx, tx, KindTrainer, pt.Trainer); err != nil {
		return err
	}
	if _, err := p.resolve(ctx, tx, KindJockey, pt.Jockey); err != nil {
		return err
	}
	if _, err := p.resolve(ctx, tx, KindSire, pt.Sire); err != nil {
		return err
	}
	if err := p.ensureHorse(ctx, tx, horseID, name, ""); err != nil {
		return err
	}

	entry := &models.RaceEntry{
		RaceID:          raceID,
		HorseID:         horseID,
		HorseName:       name,
		Trainer:         refDisplay(pt.Trainer),
		Jockey:          refDisplay(pt.Jockey),
		Sire:            refDisplay(pt.Sire),
		PostPosition:    atoiPtr(pt.PostPosition),
		Status:          status,
		StatusHistory:   history,
		StatusChangedAt: changedAt,
		UpdatedAt:       &now,
	}
	_, err = tx.NewInsert().Model(entry).
		On("CONFLICT (race_id, horse_id) DO UPDATE").
		Set("horse_name = EXCLUDED.horse_name").
		Set("trainer = EXCLUDED.trainer").
		Set("jockey = EXCLUDED.jockey").
		Set("sire = EXCLUDED.sire").
		Set("post_position = EXCLUDED.post_position").
		Set("status = EXCLUDED.status").
		Set("status_history = EXCLUDED.status_history").
		Set("status_changed_at = EXCLUDED.status_changed_at").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return err
}

// seedHistoryLine records how an entry entered the table: normally as
// initial → active, or straight to scratched when first seen that way.
func seedHistoryLine(now time.Time, status string) string {
	if status == models.StatusScratched {
		return now.Format(historyTimeLayout) + ": active → scratched (initial)"
	}
	return now.Format(historyTimeLayout) + ": initial → active"
}

// Races lists the cards for a date, defaulting to the most recent date on
// record. Entries are not expanded here.
func (p *Pipeline) Races(ctx context.Context, date string) ([]models.Race, error) {
	if date == "" {
		var latest sql.NullString
		err := p.db.NewSelect().Model((*models.Race)(nil)).
			ColumnExpr("MAX(date)").
			Scan(ctx, &latest)
		if err != nil {
			return nil, err
		}
		date = latest.String
	}

	var races []models.Race
	err := p.db.NewSelect().Model(&races).
		Where("date = ?", date).
		OrderExpr("track_code ASC").
		OrderExpr("number ASC").
		Scan(ctx)
	return races, err
}

// RaceEntries returns the field for one race, active runners before
// scratches, in post position order.
func (p *Pipeline) RaceEntries(ctx context.Context, raceID string) ([]models.RaceEntry, error) {
	exists, err := p.db.NewSelect().Model((*models.Race)(nil)).
		Where("race_id = ?", raceID).
		Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, sql.ErrNoRows
	}

	var entries []models.RaceEntry
	err = p.db.NewSelect().Model(&entries).
		Where("race_id = ?", raceID).
		OrderExpr("status ASC").
		OrderExpr("post_position ASC").
		Scan(ctx)
	return entries, err
}
