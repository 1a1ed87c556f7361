package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"caballosapi/identity"
	"caballosapi/models"
)

// TrackInfo is the resolved metadata for one track code.
type TrackInfo struct {
	Code    string
	Name    string
	IPA     string
	Country string
}

// DisplayName is the track name annotated with its country once known.
func (ti TrackInfo) DisplayName() string {
	if ti.Country != "" && ti.Country != "Unknown" {
		return ti.Name + " (" + ti.Country + ")"
	}
	return ti.Name
}

// Codes whose slugs are missing from the curated mapping but whose real
// names are known anyway.
var trackNameFallback = map[string]string{
	"THISTLEDOW": "Thistledown",
	"Tdn":        "Thistledown",
}

// ResolveTrack returns the track metadata for a code, auto-provisioning a
// registry row on first sight. Resolution order: active registry row,
// curated slug mapping, manual fallback, then name synthesis from the code
// itself.
func (p *Pipeline) ResolveTrack(ctx context.Context, code string) (TrackInfo, error) {
	return p.resolveTrack(ctx, p.db, code)
}

func (p *Pipeline) resolveTrack(ctx context.Context, idb bun.IDB, code string) (TrackInfo, error) {
	tk := new(models.Track)
	err := idb.NewSelect().Model(tk).
		Where("code = ?", code).
		Where("active").
		Scan(ctx)
	if err == nil {
		return TrackInfo{Code: code, Name: tk.Name, IPA: deref(tk.NameIPA), Country: deref(tk.Country)}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return TrackInfo{}, err
	}

	name := ""
	if slug := identity.SlugForTrackCode(code); slug != "" {
		name = titleWords(strings.ReplaceAll(slug, "-", " "))
	}
	if name == "" {
		name = trackNameFallback[code]
	}
	if name == "" {
		name = synthesizeTrackName(code)
		zap.L().Warn("new track detected, synthesizing name",
			zap.String("code", code),
			zap.String("name", name))
	}

	ipa, country := p.tr.Track(name)
	now := p.now()
	row := &models.Track{
		Code:      code,
		Name:      name,
		NameIPA:   nullable(ipa),
		Country:   nullable(country),
		Active:    true,
		UpdatedAt: &now,
	}
	if _, err := idb.NewInsert().Model(row).
		On("CONFLICT (code) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("name_ipa = EXCLUDED.name_ipa").
		Set("country = EXCLUDED.country").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return TrackInfo{}, fmt.Errorf("provision track %q: %w", code, err)
	}
	zap.L().Info("track provisioned",
		zap.String("code", code),
		zap.String("name", name),
		zap.String("country", country))
	return TrackInfo{Code: code, Name: name, IPA: ipa, Country: country}, nil
}

// Tracks lists registry rows, active ones first, then by name.
func (p *Pipeline) Tracks(ctx context.Context) ([]models.Track, error) {
	var tracks []models.Track
	err := p.db.NewSelect().Model(&tracks).
		OrderExpr("active DESC").
		OrderExpr("name ASC").
		Scan(ctx)
	return tracks, err
}

// synthesizeTrackName guesses a readable name for an unmapped code. Short
// codes stay as-is; longer ones are humanized with the common racing
// abbreviations expanded.
func synthesizeTrackName(code string) string {
	if len(code) <= 3 {
		return strings.ToUpper(code)
	}
	name := strings.NewReplacer("-", " ", "_", " ").Replace(code)
	name = titleWords(name)
	name = strings.ReplaceAll(name, "Pk", "Park")
	name = strings.ReplaceAll(name, "Rc", "Racecourse")
	return name
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
