package api

import (
	"net/http"

	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cart commands.CartCommands
}

func NewCartHandler(cart commands.CartCommands) *CartHandler {
	return &CartHandler{cart: cart}
}

// @Summary Get cart
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	lines, err := h.cart.Get(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLines(lines))
}

// @Summary Add cart item
// @Description Adds equipment to the cart, accumulating quantity onto an existing line
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Item"
// @Success 200 {object} resdto.CartResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines, err := h.cart.AddItem(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLines(lines))
}

// @Summary Update cart item quantity
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param equipmentId path string true "Equipment ID"
// @Param request body reqdto.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items/{equipmentId} [patch]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	equipmentID, ok := parseIDParam(c, "equipmentId")
	if !ok {
		return
	}

	var req reqdto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	lines, err := h.cart.UpdateItem(c.Request.Context(), equipmentID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLines(lines))
}

// @Summary Remove cart item
// @Tags cart
// @Security BearerAuth
// @Produce json
// @Param equipmentId path string true "Equipment ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{equipmentId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	equipmentID, ok := parseIDParam(c, "equipmentId")
	if !ok {
		return
	}

	lines, err := h.cart.RemoveItem(c.Request.Context(), equipmentID, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCartLines(lines))
}

// @Summary Clear cart
// @Tags cart
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Checkout cart
// @Description Turns the cart into a reservation for the given time slot
// @Tags cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutCartRequest true "Time slot and purpose"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.CheckoutCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, err := h.cart.Checkout(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}
