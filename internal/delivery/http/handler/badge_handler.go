package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
)

type BadgeHandler struct {
	badgeUseCase *badge.BadgeUseCase
}

func NewBadgeHandler(badgeUseCase *badge.BadgeUseCase) *BadgeHandler {
	return &BadgeHandler{badgeUseCase: badgeUseCase}
}

// ListCatalog handles GET /badges
// @Summary List badges
// @Tags badges
// @Produce json
// @Success 200 {array} domain.Badge
// @Router /badges [get]
func (h *BadgeHandler) ListCatalog(c *gin.Context) {
	badges, err := h.badgeUseCase.ListCatalog(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list badges"})
		return
	}
	c.JSON(http.StatusOK, badges)
}

// ListMine handles GET /badges/me
func (h *BadgeHandler) ListMine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	earned, err := h.badgeUseCase.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list badges"})
		return
	}
	c.JSON(http.StatusOK, earned)
}

// MyStats handles GET /badges/me/stats
func (h *BadgeHandler) MyStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.badgeUseCase.MyStats(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// SetDisplayed handles PATCH /badges/me/:badge_id/display
// @Summary Show or hide an earned badge
// @Tags badges
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param badge_id path string true "Badge ID"
// @Param request body badge.SetDisplayRequest true "Display flag"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /badges/me/{badge_id}/display [patch]
func (h *BadgeHandler) SetDisplayed(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	badgeID, ok := uuidParam(c, "badge_id")
	if !ok {
		return
	}

	var req badge.SetDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.badgeUseCase.SetDisplayed(c.Request.Context(), userID, badgeID, &req); err != nil {
		if errors.Is(err, domain.ErrUserBadgeNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "badge not earned"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update badge"})
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "badge updated"})
}

// Check handles POST /badges/check
func (h *BadgeHandler) Check(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"new_badges": h.badgeUseCase.Check(c.Request.Context(), userID),
	})
}
