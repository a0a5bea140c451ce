package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/usecase/commands"
	"campus-reserve/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentHandler struct {
	queries  queries.EquipmentQueries
	commands commands.EquipmentCommands
}

func NewEquipmentHandler(q queries.EquipmentQueries, cmd commands.EquipmentCommands) *EquipmentHandler {
	return &EquipmentHandler{queries: q, commands: cmd}
}

// @Summary List equipment
// @Description List equipment with optional category and status filters
// @Tags equipment
// @Produce json
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	var category, status *string
	if v := c.Query("category"); v != "" {
		category = &v
	}
	if v := c.Query("status"); v != "" {
		status = &v
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.queries.List(c.Request.Context(), category, status, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
}

// @Summary Get equipment by ID
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary List equipment categories
// @Tags equipment
// @Produce json
// @Success 200 {array} string
// @Router /equipment/categories [get]
func (h *EquipmentHandler) Categories(c *gin.Context) {
	categories, err := h.queries.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// @Summary Check equipment availability
// @Description Remaining quantity and conflicting slots for a time window
// @Tags equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Param end query string true "End time (HH:MM)"
// @Param exclude query string false "Reservation ID excluded from the overlap check"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 422 {object} map[string]string
// @Router /equipment/{id}/availability [get]
func (h *EquipmentHandler) Availability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}
	start, err := time.Parse("15:04", c.Query("start"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid start time, expected HH:MM"})
		return
	}
	end, err := time.Parse("15:04", c.Query("end"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid end time, expected HH:MM"})
		return
	}

	var exclude *uuid.UUID
	if raw := c.Query("exclude"); raw != "" {
		excludeID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid exclude, expected UUID"})
			return
		}
		exclude = &excludeID
	}

	view, err := h.queries.Availability(c.Request.Context(), id, date, start, end, exclude)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Create equipment
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateEquipmentRequest true "Equipment"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 409 {object} map[string]string
// @Router /equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEquipmentView(view))
}

// @Summary Update equipment
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Equipment"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id} [put]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Change equipment status
// @Tags equipment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentStatusRequest true "Status"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} map[string]string
// @Router /equipment/{id}/status [patch]
func (h *EquipmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateEquipmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.commands.ChangeStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEquipmentView(view))
}

// @Summary Delete equipment
// @Description Removes equipment from the catalog; history is retained
// @Tags equipment
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
