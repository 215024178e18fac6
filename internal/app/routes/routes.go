package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/controllers"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
	dbPing func(ctx context.Context) error,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public content routes ---
	blogs := v1.Group("/blogs")
	{
		blogs.GET("", ctrls.BlogController.ListBlogs)
		blogs.GET("/:id", ctrls.BlogController.GetBlog)
	}

	v1.GET("/gallery", ctrls.GalleryController.GetSections)

	stories := v1.Group("/stories")
	{
		stories.GET("", ctrls.StoryController.ListStories)
		stories.GET("/:id", ctrls.StoryController.GetStory)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrls.AuthController.Register)
		auth.POST("/login", ctrls.AuthController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", ctrls.AuthController.GetProfile)

		// The application form workflow
		authenticated.GET("/applications/me", ctrls.ApplicationController.GetMyApplication)
		authenticated.POST("/applications/me", ctrls.ApplicationController.SaveMyApplication)

		// Fee payment
		authenticated.POST("/payments/order", ctrls.PaymentController.CreateOrder)
		authenticated.POST("/payments/verify", ctrls.PaymentController.VerifyPayment)

		// Admit card
		authenticated.GET("/admit-card", ctrls.ExamController.GetMyAdmitCard)
		authenticated.GET("/admit-card/download", ctrls.ExamController.DownloadMyAdmitCard)

		// File uploads (application documents, CMS assets)
		authenticated.POST("/uploads", ctrls.UploadController.Upload)

		// Blog engagement requires an account
		authenticated.POST("/blogs/:id/comments", ctrls.BlogController.AddComment)
		authenticated.POST("/blogs/:id/reactions", ctrls.BlogController.React)

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(enums.RoleAdmin))
		{
			admin.GET("/applications", ctrls.ApplicationController.ListApplications)
			admin.GET("/applications/:id", ctrls.ApplicationController.GetApplication)
			admin.PUT("/applications/:id/status", ctrls.ApplicationController.UpdateStatus)
			admin.POST("/admit-cards", ctrls.ExamController.GenerateAdmitCard)

			admin.POST("/blogs", ctrls.BlogController.CreateBlog)
			admin.PUT("/blogs/:id", ctrls.BlogController.UpdateBlog)
			admin.DELETE("/blogs/:id", ctrls.BlogController.DeleteBlog)

			admin.POST("/gallery", ctrls.GalleryController.CreateSection)
			admin.DELETE("/gallery/:id", ctrls.GalleryController.DeleteSection)
			admin.POST("/gallery/:id/images", ctrls.GalleryController.AddImage)
			admin.DELETE("/gallery/images/:imageId", ctrls.GalleryController.DeleteImage)

			admin.POST("/stories", ctrls.StoryController.CreateStory)
			admin.PUT("/stories/:id", ctrls.StoryController.UpdateStory)
			admin.DELETE("/stories/:id", ctrls.StoryController.DeleteStory)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", healthHandler(dbPing))
}

// healthHandler reports readiness: healthy only while the database
// answers a ping.
func healthHandler(dbPing func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := dbPing(ctx); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unreachable")
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
			return
		}

		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      gin.H{"status": "ok"},
			Timestamp: time.Now(),
		})
	}
}
