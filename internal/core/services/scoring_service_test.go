package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScoringServiceTestSuite struct {
	suite.Suite
	txnRepo     *MockTransactionRepository
	savingsRepo *MockSavingsRepository
	configRepo  *MockScoreConfigRepository
	service     portssvc.ScoringSvc
}

func (suite *ScoringServiceTestSuite) SetupTest() {
	suite.txnRepo = new(MockTransactionRepository)
	suite.savingsRepo = new(MockSavingsRepository)
	suite.configRepo = new(MockScoreConfigRepository)
	configSvc := services.NewScoreConfigService(suite.configRepo, domain.DefaultScoreConfig())
	suite.service = services.NewScoringService(suite.txnRepo, suite.savingsRepo, configSvc)
}

func (suite *ScoringServiceTestSuite) twoGoals() []domain.SavingsGoal {
	return []domain.SavingsGoal{
		{GoalID: "g1", Name: "Etalase", Target: decimal.NewFromInt(2_000_000)},
		{GoalID: "g2", Name: "Motor", Target: decimal.NewFromInt(15_000_000)},
	}
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_FromFullHistory() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return([]domain.Transaction{
		incomeOn("2024-03-01", 1_200_000),
		expenseOn("2024-03-01", 200_000),
	}, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(suite.twoGoals(), nil).Once()

	report, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.Require().NoError(err)
	suite.Equal(512, report.Score)
	suite.True(decimal.NewFromInt(10_000_000).Equal(report.LoanCeiling))
	suite.True(decimal.NewFromInt(1_000_000).Equal(report.Profit))
	suite.Equal(2, report.SavingsGoals)
	suite.Equal(12, report.VolumePoints)
	suite.Equal(100, report.ProfitPoints)
	suite.Equal(100, report.SavingsPoints)
	suite.Equal(domain.DefaultScoreConfig(), report.Config)
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_RereadsHistoryEveryCall() {
	// Each request reads both tables afresh, so a goal saved after the first request counts on the next.
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(nil, apperrors.ErrNotFound).Twice()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").
		Return([]domain.Transaction{incomeOn("2024-03-01", 500_000)}, nil).Twice()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(nil, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(suite.twoGoals()[:1], nil).Once()

	first, err := suite.service.GetScoreReport(context.Background(), "user-1")
	suite.Require().NoError(err)
	second, err := suite.service.GetScoreReport(context.Background(), "user-1")
	suite.Require().NoError(err)

	suite.Equal(405, first.Score)
	suite.Equal(455, second.Score)
	suite.txnRepo.AssertNumberOfCalls(suite.T(), "ListAllTransactionsByUser", 2)
	suite.savingsRepo.AssertNumberOfCalls(suite.T(), "ListGoalsByUser", 2)
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_EmptyHistoryIsBase() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(&domain.ScoreConfig{Base: 420, TrxWeight: 1, SavingWeight: 50}, nil).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return(nil, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(nil, nil).Once()

	report, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.Require().NoError(err)
	suite.Equal(420, report.Score)
	suite.True(decimal.NewFromInt(2_000_000).Equal(report.LoanCeiling))
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_StoredConfigApplies() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(&domain.ScoreConfig{Base: 200, TrxWeight: 3, SavingWeight: 20}, nil).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return([]domain.Transaction{incomeOn("2024-03-01", 500_000)}, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(suite.twoGoals(), nil).Once()

	report, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.Require().NoError(err)
	suite.Equal(200+15+100+40, report.Score)
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_MalformedHistory() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return([]domain.Transaction{
		{TransactionID: "bad", Type: "refund", Amount: decimal.NewFromInt(1000)},
	}, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(nil, nil).Once()

	_, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_InvalidStoredConfig() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(&domain.ScoreConfig{Base: 0, TrxWeight: 1, SavingWeight: 50}, nil).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return(nil, nil).Once()
	suite.savingsRepo.On("ListGoalsByUser", mock.Anything, "user-1").Return(nil, nil).Once()

	_, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.ErrorIs(err, apperrors.ErrConfiguration)
}

func (suite *ScoringServiceTestSuite) TestGetScoreReport_RepoError() {
	suite.configRepo.On("GetScoreConfig", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()
	suite.txnRepo.On("ListAllTransactionsByUser", mock.Anything, "user-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.GetScoreReport(context.Background(), "user-1")

	suite.ErrorIs(err, assert.AnError)
	suite.savingsRepo.AssertNotCalled(suite.T(), "ListGoalsByUser", mock.Anything, mock.Anything)
}

func TestScoringService(t *testing.T) {
	suite.Run(t, new(ScoringServiceTestSuite))
}
