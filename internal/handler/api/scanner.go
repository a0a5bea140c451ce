package api

import (
	"net/http"

	reqdto "campus-reserve/internal/handler/dto/request"
	resdto "campus-reserve/internal/handler/dto/response"
	"campus-reserve/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ScannerHandler struct {
	scan commands.ScanCommands
}

func NewScannerHandler(scan commands.ScanCommands) *ScannerHandler {
	return &ScannerHandler{scan: scan}
}

// @Summary Scan reservation QR code
// @Description Advances the reservation one step based on its current status
// @Tags staff
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ScanRequest true "QR payload"
// @Success 200 {object} resdto.ScanResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff/scanner/scan [post]
func (h *ScannerHandler) Scan(c *gin.Context) {
	staffID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.scan.Scan(c.Request.Context(), req, staffID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScanResult(result))
}
