package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/usecase/leaderboard"
)

type LeaderboardHandler struct {
	leaderboardUseCase *leaderboard.LeaderboardUseCase
}

func NewLeaderboardHandler(leaderboardUseCase *leaderboard.LeaderboardUseCase) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardUseCase: leaderboardUseCase}
}

// Top handles GET /leaderboard?limit=
// @Summary Leaderboard
// @Description Users ranked by ideas*10 + projects*50 + collaborations*30
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Max entries (default from config, max 100)"
// @Success 200 {array} domain.LeaderboardEntry
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	entries, err := h.leaderboardUseCase.Top(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load leaderboard"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// MyRank handles GET /leaderboard/me
func (h *LeaderboardHandler) MyRank(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	rank, err := h.leaderboardUseCase.MyRank(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user is not ranked"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load rank"})
		return
	}
	c.JSON(http.StatusOK, rank)
}
