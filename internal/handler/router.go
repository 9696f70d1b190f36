package handler

import (
	"net/http"

	"arriddle/backend/internal/middleware"
	"arriddle/backend/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewRouter builds the gin engine with all API routes wired to
// repositories backed by db.
func NewRouter(db *gorm.DB, log *zap.Logger, policy repository.ReplayPolicy) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	games := repository.NewGameRepository(db)
	keypoints := repository.NewKeypointRepository(db)
	users := repository.NewUserRepository(db)
	solves := repository.NewSolveRepository(db)

	gameHandler := NewGameHandler(games)
	keypointHandler := NewKeypointHandler(keypoints)
	userHandler := NewUserHandler(users)
	solveHandler := NewSolveHandler(solves, users, keypoints, policy)

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", gameHandler.List)
			gameRoutes.POST("", gameHandler.Create)
			gameRoutes.GET("/:id", gameHandler.Get)
			gameRoutes.PUT("/:id", gameHandler.Update)
			gameRoutes.DELETE("/:id", gameHandler.Delete)

			keypointRoutes := gameRoutes.Group("/:id/keypoints")
			{
				keypointRoutes.GET("", keypointHandler.List)
				keypointRoutes.POST("", keypointHandler.Create)
				keypointRoutes.GET("/:keypointID", keypointHandler.Get)
				keypointRoutes.PUT("/:keypointID", keypointHandler.Update)
				keypointRoutes.DELETE("/:keypointID", keypointHandler.Delete)
				keypointRoutes.GET("/:keypointID/solvers", solveHandler.ListSolvers)
			}

			userRoutes := gameRoutes.Group("/:id/users")
			{
				userRoutes.GET("", userHandler.List)
				userRoutes.POST("", userHandler.Create)
				userRoutes.GET("/:userID", userHandler.Get)
				userRoutes.PUT("/:userID", userHandler.Update)
				userRoutes.DELETE("/:userID", userHandler.Delete)
				userRoutes.POST("/:userID/solves", solveHandler.Record)
				userRoutes.GET("/:userID/solves", solveHandler.ListByUser)
			}
		}
	}

	return router
}
