package http

import (
	"net/http"

	"github.com/sparegold/sparegold_catalog_service/internal/config"
	"github.com/sparegold/sparegold_catalog_service/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	authHandler *AuthHandler,
	companyHandler *CompanyHandler,
	carModelHandler *CarModelHandler,
	variantHandler *VariantHandler,
	sparePartHandler *SparePartHandler,
	bookingHandler *BookingHandler,
	uploadHandler *UploadHandler,
	profileHandler *ProfileHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/sign-in", authHandler.SignIn)
		auth.POST("/sign-up", authHandler.SignUp)
		auth.POST("/sign-out", AuthMiddleware(tokenService), authHandler.SignOut)
	}

	// Companies routes
	companies := router.Group("/companies")
	companies.Use(AuthMiddleware(tokenService))
	{
		companies.GET("", companyHandler.ListCompanies)
		companies.POST("", companyHandler.CreateCompany)
		companies.PUT("/:id", companyHandler.UpdateCompany)
		companies.DELETE("/:id", companyHandler.DeleteCompany)
	}

	// Car model routes
	models := router.Group("/models")
	models.Use(AuthMiddleware(tokenService))
	{
		models.GET("", carModelHandler.ListCarModels)
		models.POST("", carModelHandler.CreateCarModel)
		models.PUT("/:id", carModelHandler.UpdateCarModel)
		models.DELETE("/:id", carModelHandler.DeleteCarModel)
	}

	// Variant routes
	variants := router.Group("/variants")
	variants.Use(AuthMiddleware(tokenService))
	{
		variants.GET("", variantHandler.ListVariants)
		variants.POST("", variantHandler.CreateVariant)
		variants.PUT("/:id", variantHandler.UpdateVariant)
		variants.DELETE("/:id", variantHandler.DeleteVariant)
	}

	// Spare part routes
	spareParts := router.Group("/spareparts")
	spareParts.Use(AuthMiddleware(tokenService))
	{
		spareParts.GET("", sparePartHandler.ListSpareParts)
		spareParts.POST("", sparePartHandler.CreateSparePart)
		spareParts.PUT("/:id", sparePartHandler.UpdateSparePart)
		spareParts.DELETE("/:id", sparePartHandler.DeleteSparePart)
		spareParts.POST("/:id/bookings", sparePartHandler.BookSparePart)
	}

	// Booking routes
	bookings := router.Group("/bookings")
	bookings.Use(AuthMiddleware(tokenService))
	{
		bookings.GET("", bookingHandler.ListBookings)
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.DELETE("/:id", bookingHandler.DeleteBooking)
		bookings.GET("/:id/receipt", bookingHandler.GetReceipt)
	}

	// Upload routes
	uploads := router.Group("/uploads")
	uploads.Use(AuthMiddleware(tokenService))
	{
		uploads.POST("", uploadHandler.UploadImage)
	}

	// Profile routes
	profile := router.Group("/profile")
	profile.Use(AuthMiddleware(tokenService))
	{
		profile.GET("", profileHandler.GetProfile)
		profile.GET("/preferences", profileHandler.GetPreferences)
		profile.PUT("/preferences", profileHandler.UpdatePreferences)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
