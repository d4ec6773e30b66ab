package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
)

// companyHandler handles company (tenant) management and membership.
type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(companyService portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: companyService}
}

// registerCompanyRoutes wires company management. Creation and listing need
// only authentication; select and members take the company from the path and
// the service enforces membership/role itself.
func registerCompanyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newCompanyHandler(services.Company)

	companies := rg.Group("/companies")
	{
		companies.POST("", h.createCompany)
		companies.GET("", h.listCompanies)
		companies.POST("/:companyID/select", h.selectCompany)
		companies.POST("/:companyID/members", h.addMember)
	}
}

func companyIDParam(c *gin.Context) (int64, bool) {
	companyID, err := strconv.ParseInt(c.Param("companyID"), 10, 64)
	if err != nil || companyID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid company ID", Code: "INVALID_PAYLOAD"})
		return 0, false
	}
	return companyID, true
}

// createCompany godoc
// @Summary Create a company
// @Description Creates a company and makes the caller its ADMIN member.
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company data"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req.Name, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// listCompanies godoc
// @Summary List the caller's companies
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}

	companies, err := h.companyService.ListUserCompanies(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// selectCompany godoc
// @Summary Select the active company for subsequent requests
// @Tags companies
// @Produce json
// @Param companyID path int true "Company ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Router /companies/{companyID}/select [post]
func (h *companyHandler) selectCompany(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}

	if err := h.companyService.SelectCompany(c.Request.Context(), userID, companyID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addMember godoc
// @Summary Add a user to the company
// @Description Adds a membership with a role. Caller must be a company ADMIN.
// @Tags companies
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param member body dto.AddMemberRequest true "Membership data"
// @Success 201 {object} dto.MembershipResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /companies/{companyID}/members [post]
func (h *companyHandler) addMember(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := companyIDParam(c)
	if !ok {
		return
	}

	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	if err := h.companyService.AddMember(c.Request.Context(), userID, req.UserID, companyID, req.Role); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MembershipResponse{
		UserID:    req.UserID,
		CompanyID: companyID,
		Role:      req.Role,
	})
}
