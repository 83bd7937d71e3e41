package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nurpe/gigledger/internal/http/middleware"
	"github.com/nurpe/gigledger/internal/model"
	"github.com/nurpe/gigledger/internal/service"
)

type Handler struct {
	ledger  *service.LedgerService
	reports *service.ReportService
	log     zerolog.Logger
}

func NewHandler(ledger *service.LedgerService, reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{ledger: ledger, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.GET("/profiles/me", h.getOwnProfile)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts", h.listContracts)
	protected.GET("/jobs/unpaid", h.listUnpaidJobs)
	protected.POST("/jobs/:job_id/pay", h.payJob)
	protected.POST("/balances/deposit/:user_id", h.deposit)

	admin := protected.Group("/admin")
	admin.GET("/best-profession", h.bestProfession)
	admin.GET("/best-clients", h.bestClients)
	admin.GET("/best-clients/export", h.exportBestClients)
	admin.GET("/earnings/export", h.exportEarnings)
}

type contractResponse struct {
	ID           uuid.UUID `json:"id"`
	ClientID     uuid.UUID `json:"client_id"`
	ContractorID uuid.UUID `json:"contractor_id"`
	Terms        string    `json:"terms"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type jobResponse struct {
	ID          uuid.UUID       `json:"id"`
	ContractID  uuid.UUID       `json:"contract_id"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Paid        bool            `json:"paid"`
	PaymentDate *time.Time      `json:"payment_date"`
}

type profileResponse struct {
	ID         uuid.UUID       `json:"id"`
	Role       string          `json:"role"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Profession string          `json:"profession,omitempty"`
	Balance    decimal.Decimal `json:"balance"`
}

func (h *Handler) getOwnProfile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	profile, err := h.ledger.GetOwnProfile(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		ID:         profile.ID,
		Role:       string(profile.Role),
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Profession: profile.Profession,
		Balance:    profile.Balance,
	})
}

func (h *Handler) getContract(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contractID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract id"})
		return
	}

	contract, err := h.ledger.GetContract(c.Request.Context(), principal, contractID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toContractResponse(*contract))
}

func (h *Handler) listContracts(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	contracts, err := h.ledger.ListContracts(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]contractResponse, 0, len(contracts))
	for _, contract := range contracts {
		out = append(out, toContractResponse(contract))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) listUnpaidJobs(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	jobs, err := h.ledger.ListUnpaidJobs(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, toJobResponse(job))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) payJob(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	if err := h.ledger.PayJob(c.Request.Context(), principal, jobID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

func (h *Handler) deposit(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	targetID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.ledger.Deposit(c.Request.Context(), principal, targetID, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) bestProfession(c *gin.Context) {
	principal, start, end, ok := h.reportParams(c)
	if !ok {
		return
	}

	best, err := h.reports.BestProfession(c.Request.Context(), principal, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{"profession": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profession":   best.Profession,
		"total_earned": best.TotalEarned,
	})
}

type clientSpendResponse struct {
	ID       uuid.UUID       `json:"id"`
	FullName string          `json:"fullName"`
	Paid     decimal.Decimal `json:"paid"`
}

func (h *Handler) bestClients(c *gin.Context) {
	principal, start, end, ok := h.reportParams(c)
	if !ok {
		return
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	clients, err := h.reports.BestClients(c.Request.Context(), principal, start, end, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	out := make([]clientSpendResponse, 0, len(clients))
	for _, client := range clients {
		out = append(out, clientSpendResponse{
			ID:       client.ClientID,
			FullName: client.FullName,
			Paid:     client.TotalPaid,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) exportBestClients(c *gin.Context) {
	principal, start, end, ok := h.reportParams(c)
	if !ok {
		return
	}

	limit, err := parseLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}

	result, err := h.reports.ExportBestClients(c.Request.Context(), principal, start, end, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentType, result.Content)
}

func (h *Handler) exportEarnings(c *gin.Context) {
	principal, start, end, ok := h.reportParams(c)
	if !ok {
		return
	}

	result, err := h.reports.ExportEarnings(c.Request.Context(), principal, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}

// reportParams pulls the principal and the inclusive date window shared
// by all report endpoints. The end date widens to the last instant of
// its day so a plain date covers the whole day.
func (h *Handler) reportParams(c *gin.Context) (model.Principal, time.Time, time.Time, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return model.Principal{}, time.Time{}, time.Time{}, false
	}

	start, err := parseDate(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start"})
		return model.Principal{}, time.Time{}, time.Time{}, false
	}

	end, err := parseDate(c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end"})
		return model.Principal{}, time.Time{}, time.Time{}, false
	}
	if dateOnly(end) {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return principal, start, end, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrIntegrity):
		h.log.Error().Err(err).Msg("ledger integrity violation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	default:
		h.log.Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func toContractResponse(contract model.Contract) contractResponse {
	return contractResponse{
		ID:           contract.ID,
		ClientID:     contract.ClientID,
		ContractorID: contract.ContractorID,
		Terms:        contract.Terms,
		Status:       string(contract.Status),
		CreatedAt:    contract.CreatedAt,
	}
}

func toJobResponse(job model.Job) jobResponse {
	return jobResponse{
		ID:          job.ID,
		ContractID:  job.ContractID,
		Description: job.Description,
		Price:       job.Price,
		Paid:        job.Paid,
		PaymentDate: job.PaymentDate,
	}
}

func parseLimit(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, service.ErrInvalidInput
	}
	return limit, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02T15:04:05",
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func dateOnly(t time.Time) bool {
	hour, minute, sec := t.Clock()
	return hour == 0 && minute == 0 && sec == 0 && t.Nanosecond() == 0
}
