package http

import (
	"github.com/gin-gonic/gin"
	"github.com/peve-dev/peve-backend/internal/delivery/http/handler"
	"github.com/peve-dev/peve-backend/internal/delivery/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	profileHandler       *handler.ProfileHandler
	badgeHandler         *handler.BadgeHandler
	leaderboardHandler   *handler.LeaderboardHandler
	interactionHandler   *handler.InteractionHandler
	collaborationHandler *handler.CollaborationHandler
	notificationHandler  *handler.NotificationHandler
	authMiddleware       *middleware.AuthMiddleware
}

func NewRouter(
	profileHandler *handler.ProfileHandler,
	badgeHandler *handler.BadgeHandler,
	leaderboardHandler *handler.LeaderboardHandler,
	interactionHandler *handler.InteractionHandler,
	collaborationHandler *handler.CollaborationHandler,
	notificationHandler *handler.NotificationHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		profileHandler:       profileHandler,
		badgeHandler:         badgeHandler,
		leaderboardHandler:   leaderboardHandler,
		interactionHandler:   interactionHandler,
		collaborationHandler: collaborationHandler,
		notificationHandler:  notificationHandler,
		authMiddleware:       authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/badges", r.badgeHandler.ListCatalog)
		v1.GET("/leaderboard", r.leaderboardHandler.Top)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.POST("/generate-bio", r.profileHandler.GenerateBio)
				profile.GET("/:user_id", r.profileHandler.GetProfileByUserID)
			}

			badges := protected.Group("/badges")
			{
				badges.GET("/me", r.badgeHandler.ListMine)
				badges.GET("/me/stats", r.badgeHandler.MyStats)
				badges.PATCH("/me/:badge_id/display", r.badgeHandler.SetDisplayed)
				badges.POST("/check", r.badgeHandler.Check)
			}

			protected.GET("/leaderboard/me", r.leaderboardHandler.MyRank)

			interactions := protected.Group("/interactions")
			{
				interactions.POST("/like/:target_type/:target_id", r.interactionHandler.Like)
				interactions.POST("/save/:target_type/:target_id", r.interactionHandler.Save)
				interactions.POST("/vote/:idea_id", r.interactionHandler.Vote)
			}

			collab := protected.Group("/collaboration")
			{
				collab.POST("/compatibility/check", r.collaborationHandler.CheckCompatibility)
				collab.POST("/requests", r.collaborationHandler.CreateRequest)
				collab.GET("/requests", r.collaborationHandler.ListIncoming)
				collab.PATCH("/requests/:id", r.collaborationHandler.Respond)
			}

			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notificationHandler.List)
				notifications.POST("/:id/read", r.notificationHandler.MarkRead)
			}
		}
	}

	return router
}
