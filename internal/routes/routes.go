package routes

import (
	"dartview/internal/config"
	"dartview/internal/controllers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter initializes the controller with its default dependencies
// and wires all API routes
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return SetupRouterFor(controllers.NewReportController(db, cfg))
}

// SetupRouterFor wires routes for a pre-built controller (tests inject
// their own client factory)
func SetupRouterFor(rc *controllers.ReportController) *gin.Engine {
	router := gin.Default()

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})

	api := router.Group("/api/v1")
	{
		companies := api.Group("/companies")
		{
			// GET /api/v1/companies, recent directory mirror rows
			companies.GET("", rc.GetCompanies)
			// GET /api/v1/companies/search?query=삼성전자
			companies.GET("/search", rc.SearchCompanies)
		}

		// GET /api/v1/reports/:kind?corp_code=00126380&year_from=2021&year_to=2025
		api.GET("/reports/:kind", rc.RunReport)
	}

	return router
}
