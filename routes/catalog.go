package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/madoxlx/egtravel-api/controllers/catalog"
	"github.com/madoxlx/egtravel-api/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public browse endpoints and the
// admin-gated writes for every catalog entity.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Public reads
	{
		api.GET("/packages", catalogControllers.GetPackages(db))
		api.GET("/packages/featured", catalogControllers.GetFeaturedPackages(db))
		api.GET("/packages/slug/:slug", catalogControllers.GetPackageBySlug(db))
		api.GET("/packages/:id", catalogControllers.GetPackageByID(db))

		api.GET("/tours", catalogControllers.GetTours(db))
		api.GET("/tours/:id", catalogControllers.GetTourByID(db))

		api.GET("/hotels", catalogControllers.GetHotels(db))
		api.GET("/hotels/:id", catalogControllers.GetHotelByID(db))
		api.GET("/hotels/:id/rooms", catalogControllers.GetRoomsForHotel(db))
		api.GET("/rooms/:id", catalogControllers.GetRoomByID(db))

		api.GET("/transportations", catalogControllers.GetTransportations(db))
		api.GET("/transportations/:id", catalogControllers.GetTransportationByID(db))

		api.GET("/visas", catalogControllers.GetVisas(db))
		api.GET("/visas/:id", catalogControllers.GetVisaByID(db))

		api.GET("/countries", catalogControllers.GetCountries(db))
		api.GET("/cities", catalogControllers.GetCities(db))
		api.GET("/airports", catalogControllers.GetAirports(db))

		api.GET("/destinations", catalogControllers.GetDestinations(db))
		api.GET("/destinations/:id", catalogControllers.GetDestinationByID(db))
		api.GET("/destinations/:id/hotels", catalogControllers.GetHotelsForDestination(db))

		api.GET("/translations", catalogControllers.GetTranslations(db))
		api.GET("/dictionary", catalogControllers.GetDictionaryEntries(db))
		api.GET("/menus", catalogControllers.GetMenus(db))
	}

	// Admin-gated writes, same /api paths
	writes := api.Group("")
	writes.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		writes.POST("/packages", catalogControllers.CreatePackage(db))
		writes.PUT("/packages/:id", catalogControllers.UpdatePackage(db))
		writes.DELETE("/packages/:id", catalogControllers.DeletePackage(db))

		writes.POST("/tours", catalogControllers.CreateTour(db))
		writes.PUT("/tours/:id", catalogControllers.UpdateTour(db))
		writes.DELETE("/tours/:id", catalogControllers.DeleteTour(db))

		writes.POST("/hotels", catalogControllers.CreateHotel(db))
		writes.PUT("/hotels/:id", catalogControllers.UpdateHotel(db))
		writes.DELETE("/hotels/:id", catalogControllers.DeleteHotel(db))

		writes.POST("/rooms", catalogControllers.CreateRoom(db))
		writes.PUT("/rooms/:id", catalogControllers.UpdateRoom(db))
		writes.DELETE("/rooms/:id", catalogControllers.DeleteRoom(db))

		writes.POST("/room-combinations", catalogControllers.CreateRoomCombination(db))
		writes.DELETE("/room-combinations/:id", catalogControllers.DeleteRoomCombination(db))

		writes.POST("/transportations", catalogControllers.CreateTransportation(db))
		writes.PUT("/transportations/:id", catalogControllers.UpdateTransportation(db))
		writes.DELETE("/transportations/:id", catalogControllers.DeleteTransportation(db))

		writes.POST("/visas", catalogControllers.CreateVisa(db))
		writes.PUT("/visas/:id", catalogControllers.UpdateVisa(db))
		writes.DELETE("/visas/:id", catalogControllers.DeleteVisa(db))

		writes.POST("/countries", catalogControllers.CreateCountry(db))
		writes.PUT("/countries/:id", catalogControllers.UpdateCountry(db))
		writes.DELETE("/countries/:id", catalogControllers.DeleteCountry(db))

		writes.POST("/cities", catalogControllers.CreateCity(db))
		writes.PUT("/cities/:id", catalogControllers.UpdateCity(db))
		writes.DELETE("/cities/:id", catalogControllers.DeleteCity(db))

		writes.POST("/airports", catalogControllers.CreateAirport(db))
		writes.DELETE("/airports/:id", catalogControllers.DeleteAirport(db))

		writes.POST("/destinations", catalogControllers.CreateDestination(db))
		writes.PUT("/destinations/:id", catalogControllers.UpdateDestination(db))
		writes.DELETE("/destinations/:id", catalogControllers.DeleteDestination(db))

		writes.POST("/translations", catalogControllers.UpsertTranslation(db))
		writes.DELETE("/translations/:id", catalogControllers.DeleteTranslation(db))

		writes.POST("/dictionary", catalogControllers.CreateDictionaryEntry(db))
		writes.DELETE("/dictionary/:id", catalogControllers.DeleteDictionaryEntry(db))

		writes.POST("/menus", catalogControllers.CreateMenu(db))
		writes.DELETE("/menus/:id", catalogControllers.DeleteMenu(db))
		writes.POST("/menu-items", catalogControllers.CreateMenuItem(db))
		writes.DELETE("/menu-items/:id", catalogControllers.DeleteMenuItem(db))
	}
}
