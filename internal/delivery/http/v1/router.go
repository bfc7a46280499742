package v1

import (
	"net/http"

	"go-detailing-backend/config"
	"go-detailing-backend/internal/delivery/http/middleware"
	"go-detailing-backend/internal/delivery/http/response"
	"go-detailing-backend/internal/domain"
	"go-detailing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC  domain.ContactUsecase
	BookingUC  domain.BookingUsecase
	WarrantyUC domain.WarrantyUsecase
	Config     *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		response.Error(c, http.StatusInternalServerError, middleware.GenericErrorMessage, nil)
		c.Abort()
	}))
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational")
	})

	// Form submission routes (public, no auth)
	NewContactHandler(api, deps.ContactUC)
	NewBookingHandler(api, deps.BookingUC)
	NewWarrantyHandler(api, deps.WarrantyUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
