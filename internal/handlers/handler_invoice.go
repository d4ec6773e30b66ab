package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// invoiceHandler handles invoice requests within a company.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)
	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
	}
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Line amounts and the invoice total are computed server-side from quantity and unit price.
// @Tags invoices
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Customer not found in this company"
// @Failure 409 {object} ErrorResponse
// @Router /companies/{companyID}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List the company's invoices
// @Tags invoices
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum invoices to return"
// @Param includeLines query bool false "Populate lines for each invoice"
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /companies/{companyID}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), companyID, params, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(invoices))
}

// getInvoice godoc
// @Summary Get one invoice with its lines
// @Tags invoices
// @Produce json
// @Param companyID path int true "Company ID"
// @Param invoiceID path int true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /companies/{companyID}/invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	invoiceID, err := strconv.ParseInt(c.Param("invoiceID"), 10, 64)
	if err != nil || invoiceID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid invoice ID", Code: "INVALID_PAYLOAD"})
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), companyID, invoiceID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
