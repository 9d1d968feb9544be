package router

import (
	"github.com/labstack/echo/v4"

	"github.com/jwicker/garden-bed-planner/internal/handler"
	"github.com/jwicker/garden-bed-planner/internal/middleware"
)

// RegisterGrower registers grower-scoped endpoints under /v1.  All routes
// require a valid JWT and the GROWER role.  cacheMW is the optional
// response-cache middleware applied to the read-heavy upcoming-successions
// endpoint; pass nil to disable caching.
func RegisterGrower(e *echo.Echo, h *handler.GrowerHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("GROWER"),
	)

	// ---- Beds ----
	g.POST("/beds", h.CreateBed)
	g.GET("/beds", h.ListBeds)
	g.GET("/beds/:id", h.GetBed)
	g.DELETE("/beds/:id", h.DeleteBed)
	g.GET("/beds/:id/plantings", h.ListPlantings)

	// ---- Plant catalog ----
	g.POST("/plants", h.CreatePlant)
	g.GET("/plants", h.ListPlants)
	g.GET("/plants/:id", h.GetPlant)
	g.DELETE("/plants/:id", h.DeletePlant)

	// ---- Plantings ----
	g.POST("/plantings", h.CreatePlanting)
	g.GET("/plantings/:id", h.GetPlanting)
	g.DELETE("/plantings/:id", h.DeletePlanting)
	g.POST("/plantings/:id/successions", h.CreateSuccession)

	// ---- Succession schedule ----
	if cacheMW != nil {
		g.GET("/successions/upcoming", h.UpcomingSuccessions, cacheMW)
	} else {
		g.GET("/successions/upcoming", h.UpcomingSuccessions)
	}
}
