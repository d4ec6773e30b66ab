package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbookshq/openbooks/internal/core/ports/services"
	"github.com/openbookshq/openbooks/internal/dto"
	"github.com/openbookshq/openbooks/internal/middleware"
)

// journalHandler handles journal entry requests within a company. Entries are
// append-only: create and read, never update or delete.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)
	entries := rg.Group("/journal-entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
	}
}

// createEntry godoc
// @Summary Record a journal entry
// @Description Validates and atomically commits a balanced journal entry with its lines.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param companyID path int true "Company ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry data"
// @Success 201 {object} dto.JournalEntryResponse
// @Failure 400 {object} UnbalancedEntryResponse "Validation failure, including unbalanced totals"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /companies/{companyID}/journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind journal entry payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), companyID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List the company's journal entries
// @Tags journal-entries
// @Produce json
// @Param companyID path int true "Company ID"
// @Param limit query int false "Maximum entries to return"
// @Param includeLines query bool false "Populate lines for each entry"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Router /companies/{companyID}/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error(), Code: "INVALID_PAYLOAD"})
		return
	}

	entries, err := h.journalService.ListEntries(c.Request.Context(), companyID, params, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries))
}

// getEntry godoc
// @Summary Get one journal entry with its lines
// @Tags journal-entries
// @Produce json
// @Param companyID path int true "Company ID"
// @Param entryID path int true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} ErrorResponse
// @Router /companies/{companyID}/journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	userID, ok := requestUserID(c)
	if !ok {
		return
	}
	companyID, ok := requestCompanyID(c)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil || entryID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid entry ID", Code: "INVALID_PAYLOAD"})
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), companyID, entryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}
