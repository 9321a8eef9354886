package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/core/scoring"
	"github.com/SscSPs/lifefin_backend/internal/core/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type InvestmentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvestmentRepository
	luck     float64
	service  portssvc.InvestmentSvcFacade
}

func (suite *InvestmentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvestmentRepository)
	suite.luck = 0.5
	sim, err := scoring.NewSimulator(domain.DefaultSimulationConfig(), func() float64 { return suite.luck })
	suite.Require().NoError(err)
	suite.service = services.NewInvestmentService(suite.mockRepo, sim)
}

func (suite *InvestmentServiceTestSuite) position(userID string) *domain.Investment {
	return &domain.Investment{
		InvestmentID: "inv-1",
		UserID:       userID,
		ProductID:    "3",
		Name:         "Saham Blue Chip",
		Amount:       decimal.NewFromInt(5_000_000),
		ReturnRate:   decimal.NewFromInt(12),
		Risk:         domain.RiskHigh,
	}
}

func (suite *InvestmentServiceTestSuite) TestListProducts() {
	all := suite.service.ListProducts(context.Background(), dto.ListProductsParams{})
	suite.Len(all, 3)

	high := suite.service.ListProducts(context.Background(), dto.ListProductsParams{Risk: "Tinggi"})
	suite.Require().Len(high, 1)
	suite.Equal("Saham Blue Chip", high[0].Name)
}

func (suite *InvestmentServiceTestSuite) TestBuyInvestment_BooksPurchase() {
	suite.mockRepo.On("OpenPosition", mock.Anything,
		mock.MatchedBy(func(inv domain.Investment) bool {
			return inv.ProductID == "2" && inv.Risk == domain.RiskMedium && inv.ReturnRate.Equal(decimal.NewFromInt(8))
		}),
		mock.MatchedBy(func(t domain.Transaction) bool {
			return t.Type == domain.Expense &&
				t.Category == domain.CategoryInvestmentPurchase &&
				t.Note == "Beli Obligasi UMKM" &&
				t.Amount.Equal(decimal.NewFromInt(1_500_000))
		})).Return(nil).Once()

	inv, err := suite.service.BuyInvestment(context.Background(), "user-1", dto.BuyInvestmentRequest{ProductID: "2", Amount: decimal.NewFromInt(1_500_000)})

	suite.Require().NoError(err)
	suite.Equal("Obligasi UMKM", inv.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestBuyInvestment_RejectsBadRequests() {
	tests := []struct {
		name string
		req  dto.BuyInvestmentRequest
	}{
		{name: "unknown product", req: dto.BuyInvestmentRequest{ProductID: "99", Amount: decimal.NewFromInt(10_000_000)}},
		{name: "below minimum", req: dto.BuyInvestmentRequest{ProductID: "3", Amount: decimal.NewFromInt(4_999_999)}},
		{name: "fractional", req: dto.BuyInvestmentRequest{ProductID: "1", Amount: decimal.RequireFromString("150000.5")}},
		{name: "above position cap", req: dto.BuyInvestmentRequest{ProductID: "3", Amount: domain.MaxInvestmentAmount.Add(decimal.NewFromInt(1))}},
		{name: "wider than the amount column", req: dto.BuyInvestmentRequest{ProductID: "3", Amount: decimal.New(1, 20)}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.BuyInvestment(context.Background(), "user-1", tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "OpenPosition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestWithdrawInvestment_MarketCrash() {
	suite.luck = 0.1
	suite.mockRepo.On("FindInvestmentByID", mock.Anything, "inv-1").Return(suite.position("user-1"), nil).Once()
	suite.mockRepo.On("ClosePosition", mock.Anything, "inv-1", mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Income &&
			t.Category == domain.CategoryInvestmentWithdrawal &&
			t.Amount.Equal(decimal.NewFromInt(4_500_000))
	})).Return(nil).Once()

	w, err := suite.service.WithdrawInvestment(context.Background(), "user-1", "inv-1")

	suite.Require().NoError(err)
	suite.Equal(scoring.NarrativeMarketCrash, w.Outcome.Narrative)
	suite.True(decimal.NewFromInt(-10).Equal(w.Outcome.ActualReturnRate))
	suite.True(decimal.NewFromInt(-500_000).Equal(w.Outcome.Profit))
	suite.Equal("inv-1", w.Investment.InvestmentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestWithdrawInvestment_BullishMarket() {
	suite.luck = 0.9
	suite.mockRepo.On("FindInvestmentByID", mock.Anything, "inv-1").Return(suite.position("user-1"), nil).Once()
	suite.mockRepo.On("ClosePosition", mock.Anything, "inv-1", mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(decimal.NewFromInt(5_900_000))
	})).Return(nil).Once()

	w, err := suite.service.WithdrawInvestment(context.Background(), "user-1", "inv-1")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(18).Equal(w.Outcome.ActualReturnRate))
	suite.Equal(scoring.NarrativeBullishMarket, w.Outcome.Narrative)
}

func (suite *InvestmentServiceTestSuite) TestWithdrawInvestment_CreditRoundedToWholeRupiah() {
	position := &domain.Investment{
		InvestmentID: "inv-2",
		UserID:       "user-1",
		ProductID:    "1",
		Name:         "Reksadana Pasar Uang",
		Amount:       decimal.NewFromInt(100_001),
		ReturnRate:   decimal.NewFromInt(5),
		Risk:         domain.RiskLow,
	}
	var posted domain.Transaction
	suite.mockRepo.On("FindInvestmentByID", mock.Anything, "inv-2").Return(position, nil).Once()
	suite.mockRepo.On("ClosePosition", mock.Anything, "inv-2", mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) { posted = args.Get(2).(domain.Transaction) }).
		Return(nil).Once()

	w, err := suite.service.WithdrawInvestment(context.Background(), "user-1", "inv-2")

	suite.Require().NoError(err)
	// 5% of 100,001 is 5,000.05; the simulated payoff keeps the fraction.
	suite.True(decimal.RequireFromString("105001.05").Equal(w.Outcome.TotalReturn), w.Outcome.TotalReturn.String())
	suite.True(decimal.NewFromInt(105_001).Equal(posted.Amount), posted.Amount.String())
	suite.True(posted.Amount.Equal(w.Transaction.Amount))
	suite.NoError(posted.Validate())

	// The posted credit must not break later scoring of the merchant's book.
	_, err = scoring.ComputeScore([]domain.Transaction{posted}, nil, domain.DefaultScoreConfig())
	suite.NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvestmentServiceTestSuite) TestWithdrawInvestment_ForeignPosition() {
	suite.mockRepo.On("FindInvestmentByID", mock.Anything, "inv-1").Return(suite.position("other"), nil).Once()

	_, err := suite.service.WithdrawInvestment(context.Background(), "user-1", "inv-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "ClosePosition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvestmentServiceTestSuite) TestWithdrawInvestment_AlreadyClosed() {
	suite.mockRepo.On("FindInvestmentByID", mock.Anything, "inv-1").Return(suite.position("user-1"), nil).Once()
	suite.mockRepo.On("ClosePosition", mock.Anything, "inv-1", mock.Anything).Return(apperrors.ErrNotFound).Once()

	_, err := suite.service.WithdrawInvestment(context.Background(), "user-1", "inv-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvestmentService(t *testing.T) {
	suite.Run(t, new(InvestmentServiceTestSuite))
}
