package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/usecase/interaction"
)

type InteractionHandler struct {
	interactionUseCase *interaction.InteractionUseCase
}

func NewInteractionHandler(interactionUseCase *interaction.InteractionUseCase) *InteractionHandler {
	return &InteractionHandler{interactionUseCase: interactionUseCase}
}

type targetURI struct {
	TargetType string `uri:"target_type" binding:"required,target_type"`
	TargetID   string `uri:"target_id" binding:"required,uuid"`
}

// Like handles POST /interactions/like/:target_type/:target_id
// @Summary Toggle like
// @Tags interactions
// @Security BearerAuth
// @Produce json
// @Param target_type path string true "idea, project or comment"
// @Param target_id path string true "Target ID"
// @Success 200 {object} domain.InteractionResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /interactions/like/{target_type}/{target_id} [post]
func (h *InteractionHandler) Like(c *gin.Context) {
	h.toggle(c, h.interactionUseCase.ToggleLike)
}

// Save handles POST /interactions/save/:target_type/:target_id
func (h *InteractionHandler) Save(c *gin.Context) {
	h.toggle(c, h.interactionUseCase.ToggleSave)
}

type toggleFunc func(ctx context.Context, userID uuid.UUID, targetType domain.TargetType, targetID uuid.UUID) (*domain.InteractionResult, error)

func (h *InteractionHandler) toggle(c *gin.Context, apply toggleFunc) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var uri targetURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid target"})
		return
	}
	targetID := uuid.MustParse(uri.TargetID)

	result, err := apply(c.Request.Context(), userID, domain.TargetType(uri.TargetType), targetID)
	if err != nil {
		writeInteractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Vote handles POST /interactions/vote/:idea_id
func (h *InteractionHandler) Vote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	ideaID, ok := uuidParam(c, "idea_id")
	if !ok {
		return
	}

	var req interaction.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "value must be -1, 0 or 1"})
		return
	}

	result, err := h.interactionUseCase.Vote(c.Request.Context(), userID, ideaID, &req)
	if err != nil {
		writeInteractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func writeInteractionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidTargetType), errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrTargetNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("interaction failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "interaction failed"})
	}
}
