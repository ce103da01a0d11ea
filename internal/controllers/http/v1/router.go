package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/Wilyam390/Pyrenees-forecast/internal/catalog"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/mylist"
	"github.com/Wilyam390/Pyrenees-forecast/internal/services/weather"
	"github.com/Wilyam390/Pyrenees-forecast/pkg/logger"
)

type routes struct {
	weather *weather.Service
	mylist  *mylist.Service
	catalog *catalog.Catalog
	l       *logger.Logger
}

func NewRouter(
	app *fiber.App,
	weatherService *weather.Service,
	mylistService *mylist.Service,
	cat *catalog.Catalog,
	l *logger.Logger,
) {
	r := &routes{
		weather: weatherService,
		mylist:  mylistService,
		catalog: cat,
		l:       l,
	}

	// Swagger documentation
	app.Get("/swagger/doc.json", func(c *fiber.Ctx) error {
		swaggerData, err := os.ReadFile("docs/swagger.json")
		if err != nil {
			return c.Status(fiber.ErrInternalServerError.Code).JSON(fiber.Map{"error": "Failed to read Swagger documentation"})
		}

		c.Set("Content-Type", "application/json")
		return c.Send(swaggerData)
	})

	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	// API routes
	app.Get("/api/weather/:mountainId", r.handleWeather)

	app.Get("/api/catalog/areas", r.handleListAreas)
	app.Get("/api/catalog/massifs", r.handleListMassifs)
	app.Get("/api/catalog/peaks", r.handleListPeaks)
	app.Get("/api/catalog/peaks_all", r.handleListPeaksAll)
	app.Get("/api/catalog/peaks/:peakId", r.handlePeakDetails)

	app.Get("/api/my/mountains", r.handleListMyMountains)
	app.Post("/api/my/mountains/:peakId", r.handleAddMyMountain)
	app.Delete("/api/my/mountains/:peakId", r.handleRemoveMyMountain)
	app.Put("/api/my/mountains/order", r.handleReorderMyMountains)
}
