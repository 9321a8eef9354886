package mapping

import (
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/models"
)

// ToDomainScoreConfig drops the audit columns of the stored row.
func ToDomainScoreConfig(m models.ScoreConfig) domain.ScoreConfig {
	return domain.ScoreConfig{
		Base:         m.Base,
		TrxWeight:    m.TrxWeight,
		SavingWeight: m.SavingWeight,
	}
}
