package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// accountHandler handles chart-of-accounts requests within a company.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)
	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}
}

// createAccount godoc
// @Summary Create a ledger account
// @Tags accounts
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param account body dto.CreateAccountRequest true "Account data"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /companies/{companyID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List the company's accounts
// @Tags accounts
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum accounts to return"
// @Success 200 {object} dto.ListAccountsResponse
// @Router /companies/{companyID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), companyID, limit, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get one account
// @Tags accounts
// @Produce json
// @Param companyID path int true "Company ID"
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse
// @Router /companies/{companyID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	accountID, err := strconv.ParseInt(c.Param("accountID"), 10, 64)
	if err != nil || accountID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid account ID", Code: "INVALID_PAYLOAD"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), companyID, accountID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}
