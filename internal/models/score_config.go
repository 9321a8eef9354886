package models

import "time"

// ScoreConfig is the single row of the score_config table.
type ScoreConfig struct {
	Base          int       `db:"base"`
	TrxWeight     int       `db:"trx_weight"`
	SavingWeight  int       `db:"saving_weight"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
