package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	"github.com/SscSPs/lifefin_backend/internal/core/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LoanServiceTestSuite struct {
	suite.Suite
	loanRepo    *MockLoanRepository
	userRepo    *MockUserRepository
	scoringMock *MockScoringService
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.loanRepo = new(MockLoanRepository)
	suite.userRepo = new(MockUserRepository)
	suite.scoringMock = new(MockScoringService)
}

func (suite *LoanServiceTestSuite) expectApplicant(score int) {
	suite.userRepo.On("FindUserByID", mock.Anything, "user-1").Return(&domain.User{UserID: "user-1", Name: "Bu Sri"}, nil).Once()
	suite.scoringMock.On("GetScoreReport", mock.Anything, "user-1").Return(&domain.ScoreReport{
		Score:       score,
		LoanCeiling: decimal.NewFromInt(10_000_000),
	}, nil).Once()
}

func (suite *LoanServiceTestSuite) loan(status domain.LoanStatus) *domain.Loan {
	return &domain.Loan{LoanID: "loan-1", UserID: "user-1", UserName: "Bu Sri", Amount: decimal.NewFromInt(5_000_000), Reason: "Gerobak", Status: status, UserScore: 512}
}

func (suite *LoanServiceTestSuite) TestApplyForLoan_SnapshotsScore() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.expectApplicant(512)
	suite.loanRepo.On("SaveLoan", mock.Anything, mock.MatchedBy(func(l domain.Loan) bool {
		return l.Status == domain.LoanPending && l.UserScore == 512 && l.UserName == "Bu Sri" && l.UserID == "user-1"
	})).Return(nil).Once()

	loan, err := svc.ApplyForLoan(context.Background(), "user-1", dto.ApplyLoanRequest{Amount: decimal.NewFromInt(10_000_000), Reason: "Gerobak baru"})

	suite.Require().NoError(err)
	suite.Equal(domain.LoanPending, loan.Status)
	suite.Equal(512, loan.UserScore)
	suite.loanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestApplyForLoan_AboveCeiling() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.expectApplicant(512)

	loan, err := svc.ApplyForLoan(context.Background(), "user-1", dto.ApplyLoanRequest{Amount: decimal.NewFromInt(20_000_000), Reason: "Ruko"})

	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrLimitExceeded)
	suite.Contains(err.Error(), "Rp 20.000.000")
	suite.Contains(err.Error(), "Rp 10.000.000")
	suite.loanRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestApplyForLoan_CeilingNotEnforced() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock, services.WithLoanCeilingEnforcement(false))
	suite.expectApplicant(512)
	suite.loanRepo.On("SaveLoan", mock.Anything, mock.AnythingOfType("domain.Loan")).Return(nil).Once()

	loan, err := svc.ApplyForLoan(context.Background(), "user-1", dto.ApplyLoanRequest{Amount: decimal.NewFromInt(20_000_000), Reason: "Ruko"})

	suite.Require().NoError(err)
	suite.Equal(domain.LoanPending, loan.Status)
}

func (suite *LoanServiceTestSuite) TestApplyForLoan_RejectsMalformedInput() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)

	_, err := svc.ApplyForLoan(context.Background(), "user-1", dto.ApplyLoanRequest{Amount: decimal.NewFromInt(0), Reason: "Ruko"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = svc.ApplyForLoan(context.Background(), "user-1", dto.ApplyLoanRequest{Amount: decimal.NewFromInt(1000), Reason: "   "})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.scoringMock.AssertNotCalled(suite.T(), "GetScoreReport", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestApproveAndReject_OnlyFromPending() {
	tests := []struct {
		name    string
		from    domain.LoanStatus
		approve bool
		wantErr bool
	}{
		{name: "approve pending", from: domain.LoanPending, approve: true},
		{name: "reject pending", from: domain.LoanPending},
		{name: "approve rejected", from: domain.LoanRejected, approve: true, wantErr: true},
		{name: "reject approved", from: domain.LoanApproved, wantErr: true},
		{name: "approve disbursed", from: domain.LoanDisbursed, approve: true, wantErr: true},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
			suite.loanRepo.On("FindLoanByID", mock.Anything, "loan-1").Return(suite.loan(tt.from), nil).Once()

			next := domain.LoanRejected
			decide := svc.RejectLoan
			if tt.approve {
				next = domain.LoanApproved
				decide = svc.ApproveLoan
			}
			if !tt.wantErr {
				suite.loanRepo.On("UpdateLoanStatus", mock.Anything, "loan-1", tt.from, next, "admin-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
			}

			loan, err := decide(context.Background(), "loan-1", "admin-1")

			if tt.wantErr {
				suite.ErrorIs(err, apperrors.ErrInvalidTransition)
				suite.loanRepo.AssertNotCalled(suite.T(), "UpdateLoanStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(next, loan.Status)
			suite.Equal("admin-1", loan.LastUpdatedBy)
			suite.Equal(512, loan.UserScore)
		})
	}
}

func (suite *LoanServiceTestSuite) TestApproveLoan_LostRace() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.loanRepo.On("FindLoanByID", mock.Anything, "loan-1").Return(suite.loan(domain.LoanPending), nil).Once()
	suite.loanRepo.On("UpdateLoanStatus", mock.Anything, "loan-1", domain.LoanPending, domain.LoanApproved, "admin-1", mock.Anything).Return(apperrors.ErrInvalidTransition).Once()

	_, err := svc.ApproveLoan(context.Background(), "loan-1", "admin-1")

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *LoanServiceTestSuite) TestDisburseLoan_PostsIncome() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.loanRepo.On("FindLoanByID", mock.Anything, "loan-1").Return(suite.loan(domain.LoanApproved), nil).Once()
	suite.loanRepo.On("DisburseLoan", mock.Anything, "loan-1", mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Type == domain.Income &&
			t.Category == domain.CategoryLoanDisbursement &&
			t.Amount.Equal(decimal.NewFromInt(5_000_000)) &&
			t.UserID == "user-1"
	}), "user-1", mock.AnythingOfType("time.Time")).Return(nil).Once()

	loan, err := svc.DisburseLoan(context.Background(), "user-1", "loan-1")

	suite.Require().NoError(err)
	suite.Equal(domain.LoanDisbursed, loan.Status)
	suite.loanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestDisburseLoan_RequiresApproval() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.loanRepo.On("FindLoanByID", mock.Anything, "loan-1").Return(suite.loan(domain.LoanPending), nil).Once()

	_, err := svc.DisburseLoan(context.Background(), "user-1", "loan-1")

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.loanRepo.AssertNotCalled(suite.T(), "DisburseLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestDisburseLoan_ForeignLoanIsNotFound() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	suite.loanRepo.On("FindLoanByID", mock.Anything, "loan-1").Return(suite.loan(domain.LoanApproved), nil).Once()

	_, err := svc.DisburseLoan(context.Background(), "intruder", "loan-1")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestListLoans_StatusFilter() {
	svc := services.NewLoanService(suite.loanRepo, suite.userRepo, suite.scoringMock)
	pending := domain.LoanPending
	suite.loanRepo.On("ListLoans", mock.Anything, &pending).Return([]domain.Loan{*suite.loan(domain.LoanPending)}, nil).Once()

	loans, err := svc.ListLoans(context.Background(), dto.ListLoansParams{Status: "Pending"})

	suite.Require().NoError(err)
	suite.Len(loans, 1)

	suite.loanRepo.On("ListLoans", mock.Anything, (*domain.LoanStatus)(nil)).Return(nil, nil).Once()
	loans, err = svc.ListLoans(context.Background(), dto.ListLoansParams{})
	suite.Require().NoError(err)
	suite.NotNil(loans)
}

func TestLoanService(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
