package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/lifefin_backend/internal/apperrors"
	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/lifefin_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/utils"
	"github.com/google/uuid"
)

type loanService struct {
	BaseService
	loanRepo       portsrepo.LoanRepositoryFacade
	userRepo       portsrepo.UserReader
	scoring        portssvc.ScoringSvc
	enforceCeiling bool
}

// LoanServiceOption is a functional option for configuring the loan service
type LoanServiceOption func(*loanService)

// WithLoanCeilingEnforcement toggles the server-side check of amount against the score's loan ceiling.
func WithLoanCeilingEnforcement(enabled bool) LoanServiceOption {
	return func(s *loanService) {
		s.enforceCeiling = enabled
	}
}

// NewLoanService creates the loan lifecycle service. The ceiling is enforced unless disabled by option.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, userRepo portsrepo.UserReader, scoringSvc portssvc.ScoringSvc, options ...LoanServiceOption) portssvc.LoanSvcFacade {
	svc := &loanService{
		loanRepo:       loanRepo,
		userRepo:       userRepo,
		scoring:        scoringSvc,
		enforceCeiling: true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) ListMyLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoansByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list loans", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list loans in service: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error) {
	var status *domain.LoanStatus
	if params.Status != "" {
		st := domain.LoanStatus(params.Status)
		if !st.IsValid() {
			return nil, apperrors.NewValidationError("status", "unknown loan status")
		}
		status = &st
	}

	loans, err := s.loanRepo.ListLoans(ctx, status)
	if err != nil {
		s.LogError(ctx, err, "Failed to list all loans")
		return nil, fmt.Errorf("failed to list loans in service: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) ApplyForLoan(ctx context.Context, userID string, req dto.ApplyLoanRequest) (*domain.Loan, error) {
	now := time.Now()
	loan := domain.Loan{
		LoanID:      uuid.NewString(),
		UserID:      userID,
		Amount:      req.Amount,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      domain.LoanPending,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := loan.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find applicant", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load applicant: %w", err)
	}
	loan.UserName = user.Name

	report, err := s.scoring.GetScoreReport(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to score applicant: %w", err)
	}
	loan.UserScore = report.Score

	if s.enforceCeiling && loan.Amount.GreaterThan(report.LoanCeiling) {
		s.LogWarn(ctx, "Loan application above ceiling",
			slog.String("user_id", userID),
			slog.String("amount", loan.Amount.String()),
			slog.String("ceiling", report.LoanCeiling.String()),
			slog.Int("score", report.Score))
		return nil, fmt.Errorf("%w: %s requested, ceiling for score %d is %s",
			apperrors.ErrLimitExceeded, utils.FormatRupiah(loan.Amount), report.Score, utils.FormatRupiah(report.LoanCeiling))
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create loan in service: %w", err)
	}

	s.LogInfo(ctx, "Loan application submitted",
		slog.String("loan_id", loan.LoanID),
		slog.Int("user_score", loan.UserScore))
	return &loan, nil
}

func (s *loanService) ApproveLoan(ctx context.Context, loanID string, adminID string) (*domain.Loan, error) {
	return s.decide(ctx, loanID, adminID, domain.LoanApproved)
}

func (s *loanService) RejectLoan(ctx context.Context, loanID string, adminID string) (*domain.Loan, error) {
	return s.decide(ctx, loanID, adminID, domain.LoanRejected)
}

func (s *loanService) decide(ctx context.Context, loanID string, adminID string, next domain.LoanStatus) (*domain.Loan, error) {
	loan, err := s.findLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if err := loan.CheckTransition(next); err != nil {
		s.LogWarn(ctx, "Rejected loan transition", slog.String("loan_id", loanID), slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now()
	if err := s.loanRepo.UpdateLoanStatus(ctx, loanID, loan.Status, next, adminID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to update loan status", slog.String("loan_id", loanID))
		}
		return nil, fmt.Errorf("failed to update loan status: %w", err)
	}

	loan.Status = next
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = adminID
	s.LogInfo(ctx, "Loan status updated",
		slog.String("loan_id", loanID),
		slog.String("status", string(next)),
		slog.String("admin_id", adminID))
	return loan, nil
}

func (s *loanService) DisburseLoan(ctx context.Context, userID string, loanID string) (*domain.Loan, error) {
	loan, err := s.findLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.UserID != userID {
		s.LogWarn(ctx, "Attempt to disburse another merchant's loan",
			slog.String("loan_id", loanID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("loan %s: %w", loanID, apperrors.ErrNotFound)
	}
	if err := loan.CheckTransition(domain.LoanDisbursed); err != nil {
		return nil, err
	}

	now := time.Now()
	credit := bookEntry(userID, domain.Income, domain.CategoryLoanDisbursement, loan.Amount, "Pencairan pinjaman: "+loan.Reason, now)
	if err := s.loanRepo.DisburseLoan(ctx, loanID, credit, userID, now); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidTransition) {
			s.LogError(ctx, err, "Failed to disburse loan", slog.String("loan_id", loanID))
		}
		return nil, fmt.Errorf("failed to disburse loan: %w", err)
	}

	loan.Status = domain.LoanDisbursed
	loan.LastUpdatedAt = now
	loan.LastUpdatedBy = userID
	s.LogInfo(ctx, "Loan disbursed",
		slog.String("loan_id", loanID),
		slog.String("transaction_id", credit.TransactionID))
	return loan, nil
}

func (s *loanService) findLoan(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find loan", slog.String("loan_id", loanID))
		}
		return nil, err
	}
	return loan, nil
}
