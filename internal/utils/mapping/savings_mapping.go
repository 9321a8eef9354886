package mapping

import (
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/models"
)

func ToModelSavingsGoal(d domain.SavingsGoal) models.SavingsGoal {
	return models.SavingsGoal{
		GoalID:      d.GoalID,
		UserID:      d.UserID,
		Name:        d.Name,
		Target:      d.Target,
		Current:     d.Current,
		Deadline:    d.Deadline,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSavingsGoal(m models.SavingsGoal) domain.SavingsGoal {
	return domain.SavingsGoal{
		GoalID:      m.GoalID,
		UserID:      m.UserID,
		Name:        m.Name,
		Target:      m.Target,
		Current:     m.Current,
		Deadline:    m.Deadline,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainSavingsGoalSlice(ms []models.SavingsGoal) []domain.SavingsGoal {
	ds := make([]domain.SavingsGoal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSavingsGoal(m)
	}
	return ds
}
