package catalogControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

type HotelInput struct {
	Name          string `json:"name" binding:"required"`
	NameAr        string `json:"name_ar"`
	Description   string `json:"description"`
	Stars         int    `json:"stars" binding:"omitempty,min=1,max=5"`
	DestinationID *uint  `json:"destination_id"`
	Featured      bool   `json:"featured"`
	ImageURL      string `json:"image_url"`
}

type RoomInput struct {
	HotelID         uint     `json:"hotel_id" binding:"required"`
	Name            string   `json:"name" binding:"required"`
	NameAr          string   `json:"name_ar"`
	Price           float64  `json:"price" binding:"required"`
	DiscountedPrice *float64 `json:"discounted_price"`
	MaxAdults       int      `json:"max_adults"`
	MaxChildren     int      `json:"max_children"`
	MaxInfants      int      `json:"max_infants"`
}

type RoomCombinationInput struct {
	RoomID   uint    `json:"room_id" binding:"required"`
	Adults   int     `json:"adults"`
	Children int     `json:"children"`
	Infants  int     `json:"infants"`
	Price    float64 `json:"price" binding:"required"`
}

// GET /api/hotels
func GetHotels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Hotel{})

		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if dest := c.Query("destination_id"); dest != "" {
			query = query.Where("destination_id = ?", dest)
		}
		if stars := c.Query("stars"); stars != "" {
			query = query.Where("stars = ?", stars)
		}

		var hotels []models.Hotel
		if err := query.Preload("Rooms").Order("created_at DESC").Find(&hotels).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch hotels", err))
			return
		}
		c.JSON(http.StatusOK, hotels)
	}
}

// GET /api/hotels/:id
func GetHotelByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.Preload("Rooms.Combinations").Preload("Rooms").First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Hotel not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch hotel", err))
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

// GET /api/destinations/:id/hotels
func GetHotelsForDestination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotels []models.Hotel
		if err := db.Where("destination_id = ?", c.Param("id")).Preload("Rooms").Find(&hotels).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch hotels", err))
			return
		}
		c.JSON(http.StatusOK, hotels)
	}
}

// POST /api/hotels (admin)
func CreateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input HotelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		hotel := models.Hotel{
			Name:          input.Name,
			NameAr:        input.NameAr,
			Description:   input.Description,
			Stars:         input.Stars,
			DestinationID: input.DestinationID,
			Featured:      input.Featured,
			ImageURL:      input.ImageURL,
		}
		if err := db.Create(&hotel).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create hotel", err))
			return
		}
		c.JSON(http.StatusCreated, hotel)
	}
}

// PUT /api/hotels/:id (admin)
func UpdateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var hotel models.Hotel
		if err := db.First(&hotel, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Hotel not found"))
			return
		}

		var input HotelInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		hotel.Name = input.Name
		hotel.NameAr = input.NameAr
		hotel.Description = input.Description
		hotel.Stars = input.Stars
		hotel.DestinationID = input.DestinationID
		hotel.Featured = input.Featured
		hotel.ImageURL = input.ImageURL

		if err := db.Save(&hotel).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update hotel", err))
			return
		}
		c.JSON(http.StatusOK, hotel)
	}
}

// DELETE /api/hotels/:id (admin)
func DeleteHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Hotel{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete hotel", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Hotel not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted"})
	}
}

// GET /api/hotels/:id/rooms
func GetRoomsForHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rooms []models.Room
		if err := db.Where("hotel_id = ?", c.Param("id")).Preload("Combinations").Find(&rooms).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch rooms", err))
			return
		}
		c.JSON(http.StatusOK, rooms)
	}
}

// GET /api/rooms/:id
func GetRoomByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var room models.Room
		if err := db.Preload("Combinations").First(&room, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Room not found"))
				return
			}
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch room", err))
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// POST /api/rooms (admin)
func CreateRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RoomInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		room := models.Room{
			HotelID:         input.HotelID,
			Name:            input.Name,
			NameAr:          input.NameAr,
			Price:           input.Price,
			DiscountedPrice: input.DiscountedPrice,
			MaxAdults:       input.MaxAdults,
			MaxChildren:     input.MaxChildren,
			MaxInfants:      input.MaxInfants,
		}
		if err := db.Create(&room).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create room", err))
			return
		}
		c.JSON(http.StatusCreated, room)
	}
}

// PUT /api/rooms/:id (admin)
func UpdateRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var room models.Room
		if err := db.First(&room, "id = ?", c.Param("id")).Error; err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Room not found"))
			return
		}

		var input RoomInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		room.HotelID = input.HotelID
		room.Name = input.Name
		room.NameAr = input.NameAr
		room.Price = input.Price
		room.DiscountedPrice = input.DiscountedPrice
		room.MaxAdults = input.MaxAdults
		room.MaxChildren = input.MaxChildren
		room.MaxInfants = input.MaxInfants

		if err := db.Save(&room).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to update room", err))
			return
		}
		c.JSON(http.StatusOK, room)
	}
}

// DELETE /api/rooms/:id (admin)
func DeleteRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.Room{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete room", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Room not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
	}
}

// POST /api/room-combinations (admin)
func CreateRoomCombination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RoomCombinationInput
		if err := c.ShouldBindJSON(&input); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Invalid input: "+err.Error()))
			return
		}

		combo := models.RoomCombination{
			RoomID:   input.RoomID,
			Adults:   input.Adults,
			Children: input.Children,
			Infants:  input.Infants,
			Price:    input.Price,
		}
		if err := db.Create(&combo).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create room combination", err))
			return
		}
		c.JSON(http.StatusCreated, combo)
	}
}

// DELETE /api/room-combinations/:id (admin)
func DeleteRoomCombination(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.RoomCombination{}, "id = ?", c.Param("id"))
		if result.Error != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to delete room combination", result.Error))
			return
		}
		if result.RowsAffected == 0 {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Room combination not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Room combination deleted"})
	}
}
