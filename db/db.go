package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"caballosapi/config"
	"caballosapi/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates all tables in dependency order. Natural primary
// keys make every upsert conflict target explicit, so no extra constraints
// are needed.
func CreateTables(ctx context.Context, db *bun.DB) error {
	tables := []interface{}{
		(*models.User)(nil),
		(*models.Track)(nil),
		(*models.Trainer)(nil),
		(*models.Jockey)(nil),
		(*models.Owner)(nil),
		(*models.Breeder)(nil),
		(*models.Horse)(nil),
		(*models.Race)(nil),
		(*models.RaceEntry)(nil),
		(*models.Pedigree)(nil),
	}

	for _, model := range tables {
		q := db.NewCreateTable().Model(model).IfNotExists()
		switch model.(type) {
		case *models.RaceEntry:
			q = q.ForeignKey(`("race_id") REFERENCES "races" ("race_id") ON DELETE CASCADE`)
		case *models.Pedigree:
			q = q.ForeignKey(`("horse_id") REFERENCES "horses" ("horse_id") ON DELETE CASCADE`)
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	return nil
}
