package dto

import "github.com/SscSPs/lifefin_backend/internal/core/domain"

// UpdateScoreConfigRequest replaces the score configuration. Range checks happen in the domain
// so that a bad value surfaces as a configuration error rather than a binding error.
type UpdateScoreConfigRequest struct {
	Base         *int `json:"base" binding:"required"`
	TrxWeight    *int `json:"trxWeight" binding:"required"`
	SavingWeight *int `json:"savingWeight" binding:"required"`
}

// ToScoreConfig converts the request to a domain.ScoreConfig.
func (r UpdateScoreConfigRequest) ToScoreConfig() domain.ScoreConfig {
	cfg := domain.ScoreConfig{}
	if r.Base != nil {
		cfg.Base = *r.Base
	}
	if r.TrxWeight != nil {
		cfg.TrxWeight = *r.TrxWeight
	}
	if r.SavingWeight != nil {
		cfg.SavingWeight = *r.SavingWeight
	}
	return cfg
}
