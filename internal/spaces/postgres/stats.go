package postgres

import (
	"github.com/frahmantamala/facility-management/internal/spaces"
	"github.com/jmoiron/sqlx"
)

var statsTables = map[spaces.Kind]string{
	spaces.KindExhibition: "spaces_exhebition",
	spaces.KindParking:    "spaces_parking",
	spaces.KindRent:       "spaces_rent",
}

// StatsRepository issues plain COUNT queries against the pooled connection.
// The aggregator fans these out concurrently, so it bypasses gorm and reads
// straight from the pool.
type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) spaces.StatsRepositoryAPI {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Count(kind spaces.Kind) (int64, error) {
	table, ok := statsTables[kind]
	if !ok {
		return 0, spaces.ErrUnknownKind
	}

	var count int64
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM "+table); err != nil {
		return 0, err
	}
	return count, nil
}
