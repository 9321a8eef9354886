package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/lifefin_backend/internal/core/domain"
	portssvc "github.com/SscSPs/lifefin_backend/internal/core/ports/services"
	"github.com/SscSPs/lifefin_backend/internal/dto"
	"github.com/SscSPs/lifefin_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// loanHandler handles the loan lifecycle for merchants and admins.
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

// RegisterLoanRoutes registers the merchant loan routes. Applications are rate-limited per user.
func RegisterLoanRoutes(rg *gin.RouterGroup, loanService portssvc.LoanSvcFacade, applyLimiter *limiter.Limiter) {
	h := &loanHandler{loanService: loanService}

	loans := rg.Group("/loans")
	{
		loans.POST("", middleware.RateLimit(applyLimiter), h.applyForLoan)
		loans.GET("", h.listMyLoans)
		loans.POST("/:id/disburse", h.disburseLoan)
	}
}

// RegisterAdminLoanRoutes registers the loan review routes on an admin-only group.
func RegisterAdminLoanRoutes(admin *gin.RouterGroup, loanService portssvc.LoanSvcFacade) {
	h := &loanHandler{loanService: loanService}

	loans := admin.Group("/loans")
	{
		loans.GET("", h.listLoans)
		loans.POST("/:id/approve", h.approveLoan)
		loans.POST("/:id/reject", h.rejectLoan)
	}
}

// applyForLoan godoc
// @Summary Apply for a loan
// @Description Creates a Pending loan carrying the caller's current score. Amounts above the score's loan ceiling are refused.
// @Tags loans
// @Accept json
// @Produce json
// @Param loan body dto.ApplyLoanRequest true "Loan request"
// @Success 201 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Amount exceeds the loan ceiling"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [post]
func (h *loanHandler) applyForLoan(c *gin.Context) {
	var req dto.ApplyLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.ApplyForLoan(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to apply for loan")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan application received",
		slog.String("loan_id", loan.LoanID),
		slog.Int("user_score", loan.UserScore))
	c.JSON(http.StatusCreated, dto.ToLoanResponse(loan))
}

// listMyLoans godoc
// @Summary List my loans
// @Tags loans
// @Produce json
// @Success 200 {array} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans [get]
func (h *loanHandler) listMyLoans(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	loans, err := h.loanService.ListMyLoans(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// disburseLoan godoc
// @Summary Disburse an approved loan
// @Description Moves the caller's Approved loan to Disbursed and books the money as income
// @Tags loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is not Approved"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /loans/{id}/disburse [post]
func (h *loanHandler) disburseLoan(c *gin.Context) {
	loanID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := callerID(c)
	if !ok {
		return
	}

	loan, err := h.loanService.DisburseLoan(c.Request.Context(), userID, loanID)
	if err != nil {
		respondWithError(c, err, "Failed to disburse loan")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}

// listLoans godoc
// @Summary List all loans
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status" Enums(Pending, Approved, Rejected, Disbursed)
// @Success 200 {array} dto.LoanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/loans [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, err, "Failed to list loans")
		return
	}
	c.JSON(http.StatusOK, dto.ToLoanResponses(loans))
}

// approveLoan godoc
// @Summary Approve a pending loan
// @Tags admin
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is not Pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/loans/{id}/approve [post]
func (h *loanHandler) approveLoan(c *gin.Context) {
	h.decide(c, domain.LoanApproved)
}

// rejectLoan godoc
// @Summary Reject a pending loan
// @Tags admin
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} dto.LoanResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Loan is not Pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/loans/{id}/reject [post]
func (h *loanHandler) rejectLoan(c *gin.Context) {
	h.decide(c, domain.LoanRejected)
}

func (h *loanHandler) decide(c *gin.Context, to domain.LoanStatus) {
	loanID, ok := pathID(c, "id")
	if !ok {
		return
	}
	adminID, ok := callerID(c)
	if !ok {
		return
	}

	var (
		loan *domain.Loan
		err  error
	)
	if to == domain.LoanApproved {
		loan, err = h.loanService.ApproveLoan(c.Request.Context(), loanID, adminID)
	} else {
		loan, err = h.loanService.RejectLoan(c.Request.Context(), loanID, adminID)
	}
	if err != nil {
		respondWithError(c, err, "Failed to update loan")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Loan decided",
		slog.String("loan_id", loan.LoanID),
		slog.String("status", string(loan.Status)))
	c.JSON(http.StatusOK, dto.ToLoanResponse(loan))
}
