package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/core/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScoreConfigServiceTestSuite struct {
	suite.Suite
	mockRepo *MockScoreConfigRepository
	defaults domain.ScoreConfig
	service  portssvc.ScoreConfigSvcFacade
}

func (suite *ScoreConfigServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockScoreConfigRepository)
	suite.defaults = domain.ScoreConfig{Base: 320, TrxWeight: 1, SavingWeight: 50}
	suite.service = services.NewScoreConfigService(suite.mockRepo, suite.defaults)
}

func (suite *ScoreConfigServiceTestSuite) TestGetScoreConfig_FallsBackToDefaults() {
	ctx := context.Background()
	suite.mockRepo.On("GetScoreConfig", ctx).Return(nil, apperrors.ErrNotFound).Once()

	cfg, err := suite.service.GetScoreConfig(ctx)

	suite.Require().NoError(err)
	suite.Equal(suite.defaults, cfg)
}

func (suite *ScoreConfigServiceTestSuite) TestGetScoreConfig_Stored() {
	ctx := context.Background()
	stored := &domain.ScoreConfig{Base: 250, TrxWeight: 2, SavingWeight: 40}
	suite.mockRepo.On("GetScoreConfig", ctx).Return(stored, nil).Once()

	cfg, err := suite.service.GetScoreConfig(ctx)

	suite.Require().NoError(err)
	suite.Equal(*stored, cfg)
}

func (suite *ScoreConfigServiceTestSuite) TestGetScoreConfig_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("GetScoreConfig", ctx).Return(nil, assert.AnError).Once()

	_, err := suite.service.GetScoreConfig(ctx)

	suite.ErrorIs(err, assert.AnError)
}

func (suite *ScoreConfigServiceTestSuite) TestUpdateScoreConfig_Valid() {
	ctx := context.Background()
	base, trx, saving := 280, 3, 25
	want := domain.ScoreConfig{Base: base, TrxWeight: trx, SavingWeight: saving}
	suite.mockRepo.On("SaveScoreConfig", ctx, want, "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	cfg, err := suite.service.UpdateScoreConfig(ctx, dto.UpdateScoreConfigRequest{Base: &base, TrxWeight: &trx, SavingWeight: &saving}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(want, cfg)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScoreConfigServiceTestSuite) TestUpdateScoreConfig_RejectsOutOfRange() {
	ctx := context.Background()
	tests := []struct {
		name                string
		base, trxW, savingW int
		field               string
	}{
		{name: "zero base", base: 0, trxW: 1, savingW: 50, field: "base"},
		{name: "negative trx weight", base: 300, trxW: -1, savingW: 50, field: "trxWeight"},
		{name: "zero saving weight", base: 300, trxW: 1, savingW: 0, field: "savingWeight"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.UpdateScoreConfig(ctx, dto.UpdateScoreConfigRequest{Base: &tt.base, TrxWeight: &tt.trxW, SavingWeight: &tt.savingW}, "admin-1")

			suite.ErrorIs(err, apperrors.ErrConfiguration)
			var cfgErr *apperrors.ConfigurationError
			suite.Require().ErrorAs(err, &cfgErr)
			suite.Equal(tt.field, cfgErr.Field)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScoreConfig", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestScoreConfigService(t *testing.T) {
	suite.Run(t, new(ScoreConfigServiceTestSuite))
}
