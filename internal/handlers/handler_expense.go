package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// expenseHandler handles expense requests within a company.
type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(expenseService portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: expenseService}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}
}

// createExpense godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param expense body dto.CreateExpenseRequest true "Expense data"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Vendor not found in this company"
// @Router /companies/{companyID}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List the company's expenses
// @Tags expenses
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum expenses to return"
// @Success 200 {object} dto.ListExpensesResponse
// @Router /companies/{companyID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), companyID, limit, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpensesResponse(expenses))
}
