package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/usecase/collaboration"
	"github.com/peve-dev/peve-backend/internal/usecase/compatibility"
)

type CollaborationHandler struct {
	compatibilityUseCase *compatibility.CompatibilityUseCase
	collaborationUseCase *collaboration.CollaborationUseCase
}

func NewCollaborationHandler(
	compatibilityUseCase *compatibility.CompatibilityUseCase,
	collaborationUseCase *collaboration.CollaborationUseCase,
) *CollaborationHandler {
	return &CollaborationHandler{
		compatibilityUseCase: compatibilityUseCase,
		collaborationUseCase: collaborationUseCase,
	}
}

// CheckCompatibility handles POST /collaboration/compatibility/check
// @Summary Check compatibility
// @Description Score how well the current user fits with another user
// @Tags collaboration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body compatibility.CheckRequest true "Target user"
// @Success 200 {object} domain.CompatibilityResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /collaboration/compatibility/check [post]
func (h *CollaborationHandler) CheckCompatibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req compatibility.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.compatibilityUseCase.Check(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cannot check compatibility with yourself"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to check compatibility"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateRequest handles POST /collaboration/requests
// @Summary Send collaboration request
// @Tags collaboration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body collaboration.CreateRequestInput true "Request data"
// @Success 201 {object} domain.CollaborationRequest
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /collaboration/requests [post]
func (h *CollaborationHandler) CreateRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input collaboration.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	req, err := h.collaborationUseCase.CreateRequest(c.Request.Context(), userID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCannotCollaborateWithSelf):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		case errors.Is(err, domain.ErrCollaborationRequestExists):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("create collaboration request: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create collaboration request"})
		}
		return
	}

	c.JSON(http.StatusCreated, req)
}

// ListIncoming handles GET /collaboration/requests
func (h *CollaborationHandler) ListIncoming(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	requests, err := h.collaborationUseCase.ListIncoming(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list collaboration requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// Respond handles PATCH /collaboration/requests/:id
// @Summary Accept or decline a collaboration request
// @Tags collaboration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body collaboration.RespondInput true "accepted or declined"
// @Success 200 {object} collaboration.RespondResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /collaboration/requests/{id} [patch]
func (h *CollaborationHandler) Respond(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	requestID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var input collaboration.RespondInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be accepted or declined"})
		return
	}

	result, err := h.collaborationUseCase.Respond(c.Request.Context(), userID, requestID, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be accepted or declined"})
		case errors.Is(err, domain.ErrCollaborationRequestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrNotRequestReceiver):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, domain.ErrRequestAlreadyAnswered):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("answer collaboration request %s: %v", requestID, err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to answer collaboration request"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
