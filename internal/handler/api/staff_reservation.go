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
)

type StaffReservationHandler struct {
	workflow commands.WorkflowCommands
	queries  queries.ReservationQueries
	stats    queries.StatisticsQueries
}

func NewStaffReservationHandler(workflow commands.WorkflowCommands, q queries.ReservationQueries, stats queries.StatisticsQueries) *StaffReservationHandler {
	return &StaffReservationHandler{workflow: workflow, queries: q, stats: stats}
}

// @Summary List all reservations
// @Description Staff view of every reservation, filterable by status and date
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} resdto.ReservationListResponse
// @Router /staff/reservations [get]
func (h *StaffReservationHandler) ListAll(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}
	var date *time.Time
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		date = &parsed
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	views, err := h.queries.ListAll(c.Request.Context(), status, date, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationListItems(views))
}

// @Summary Approve reservation
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Router /staff/reservations/{id}/approve [post]
func (h *StaffReservationHandler) Approve(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.workflow.Approve(c.Request.Context(), id, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reject reservation
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest false "Rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Router /staff/reservations/{id}/reject [post]
func (h *StaffReservationHandler) Reject(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.RejectReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.workflow.Reject(c.Request.Context(), id, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Issue items
// @Description Hand equipment over at the counter; omit item_ids to issue everything
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.IssueItemsRequest false "Item selection"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Router /staff/reservations/{id}/issue [post]
func (h *StaffReservationHandler) Issue(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.IssueItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.workflow.Issue(c.Request.Context(), id, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Return items
// @Description Take equipment back at the counter; omit item_ids to return everything
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ReturnItemsRequest false "Item selection"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Router /staff/reservations/{id}/return [post]
func (h *StaffReservationHandler) Return(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.ReturnItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.workflow.Return(c.Request.Context(), id, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Mark item condition
// @Description Record a returned item as damaged or lost
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.MarkItemConditionRequest true "Condition"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /staff/reservations/{id}/items/{itemId}/condition [patch]
func (h *StaffReservationHandler) MarkItemCondition(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.MarkItemConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.workflow.MarkItemCondition(c.Request.Context(), id, itemID, staffID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reservation statistics
// @Description Aggregate counts for the staff dashboard, cached briefly
// @Tags staff
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.StatisticsResponse
// @Router /statistics [get]
func (h *StaffReservationHandler) Statistics(c *gin.Context) {
	view, err := h.stats.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatisticsView(view))
}
