package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/accountbook_service/internal/core/chart"
	portssvc "github.com/SscSPs/accountbook_service/internal/core/ports/services"
	"github.com/SscSPs/accountbook_service/internal/dto"
	"github.com/SscSPs/accountbook_service/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountBookHandler handles a company's accounts and the reports built from them.
type accountBookHandler struct {
	chartService       portssvc.ChartSeederSvc
	accountBookService portssvc.AccountBookSvcFacade
}

func newAccountBookHandler(cs portssvc.ChartSeederSvc, abs portssvc.AccountBookSvcFacade) *accountBookHandler {
	return &accountBookHandler{
		chartService:       cs,
		accountBookService: abs,
	}
}

// RegisterAccountBookRoutes registers account and report routes under a
// /companies/:company_id group.
func RegisterAccountBookRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSeederSvc, accountBookService portssvc.AccountBookSvcFacade) {
	h := newAccountBookHandler(chartService, accountBookService)

	rg.POST("/chart/seed", h.seedCompany)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:account_id", h.getAccount)
	}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/ledger", h.getLedger)
	}
}

// seedCompany godoc
// @Summary Seed a company's account book
// @Description Creates the company's accounts from the standard chart of an accounting system
// @Tags accounts
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param seed body dto.SeedChartRequest true "Accounting system and traversal strategy"
// @Success 201 {object} dto.SeedCompanyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown accounting system"
// @Failure 409 {object} map[string]string "Company already has accounts"
// @Failure 500 {object} map[string]string "Failed to seed accounts"
// @Security BearerAuth
// @Router /companies/{company_id}/chart/seed [post]
func (h *accountBookHandler) seedCompany(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.SeedChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err, "Invalid request format")
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	logger = logger.With(slog.String("company_id", companyID), slog.String("user_id", userID))
	logger.Info("Received request to seed company accounts", slog.String("system", req.System), slog.String("strategy", req.Strategy))

	nodes, err := h.chartService.SeedCompany(c.Request.Context(), companyID, req.System, chart.Strategy(req.Strategy))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to seed accounts")
		return
	}

	logger.Info("Company accounts seeded", slog.Int("count", len(nodes)))
	c.JSON(http.StatusCreated, dto.SeedCompanyResponse{
		CompanyID: companyID,
		Count:     len(nodes),
		Accounts:  dto.ToAccountResponses(nodes),
	})
}

// listAccounts godoc
// @Summary List a company's accounts
// @Description Lists the company's accounts in code order
// @Tags accounts
// @Produce json
// @Param company_id path string true "Company ID"
// @Param type query string false "Account type filter"
// @Param forUser query bool false "Only accounts users may post to"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts [get]
func (h *accountBookHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "Invalid query parameters")
		return
	}

	nodes, err := h.accountBookService.ListAccounts(c.Request.Context(), companyID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	logger.Info("Accounts listed successfully", slog.String("company_id", companyID), slog.Int("count", len(nodes)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponses(nodes)})
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param company_id path string true "Company ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /companies/{company_id}/accounts/{account_id} [get]
func (h *accountBookHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	accountID := c.Param("account_id")

	node, err := h.accountBookService.FindAccount(c.Request.Context(), companyID, accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(node))
}

// getTrialBalance godoc
// @Summary Trial balance
// @Description Beginning, midterm and ending debit/credit sums per account for an inclusive date window
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid date window"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate trial balance"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/trial-balance [get]
func (h *accountBookHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var params dto.ReportWindowParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "Invalid query parameters")
		return
	}

	resp, err := h.accountBookService.TrialBalance(c.Request.Context(), companyID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getLedger godoc
// @Summary General ledger
// @Description Chronological postings per account with running balances, paginated
// @Tags reports
// @Produce json
// @Param company_id path string true "Company ID"
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param endDate query string true "End date (YYYY-MM-DD)"
// @Param accountId query string false "Restrict to one account"
// @Param limit query int false "Rows per page" default(100)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to generate ledger"
// @Security BearerAuth
// @Router /companies/{company_id}/reports/ledger [get]
func (h *accountBookHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var params dto.LedgerParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err, "Invalid query parameters")
		return
	}

	resp, err := h.accountBookService.Ledger(c.Request.Context(), companyID, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate ledger")
		return
	}
	c.JSON(http.StatusOK, resp)
}
