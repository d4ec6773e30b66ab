package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// customerHandler and vendorHandler are near-twins; both manage simple
// company-scoped party records.
type customerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func registerCustomerRoutes(rg *gin.RouterGroup, customerService portssvc.CustomerSvcFacade) {
	h := &customerHandler{customerService: customerService}
	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
	}
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := &vendorHandler{vendorService: vendorService}
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.createVendor)
		vendors.GET("", h.listVendors)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param customer body dto.CreatePartyRequest true "Customer data"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /companies/{companyID}/customers [post]
func (h *customerHandler) createCustomer(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// listCustomers godoc
// @Summary List the company's customers
// @Tags customers
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum customers to return"
// @Success 200 {object} dto.ListCustomersResponse
// @Router /companies/{companyID}/customers [get]
func (h *customerHandler) listCustomers(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	customers, err := h.customerService.ListCustomers(c.Request.Context(), companyID, limit, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCustomersResponse(customers))
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param vendor body dto.CreatePartyRequest true "Vendor data"
// @Success 201 {object} dto.VendorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /companies/{companyID}/vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// listVendors godoc
// @Summary List the company's vendors
// @Tags vendors
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum vendors to return"
// @Success 200 {object} dto.ListVendorsResponse
// @Router /companies/{companyID}/vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), companyID, limit, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}
