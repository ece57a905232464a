package catalog

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Package{},
		&models.Tour{},
		&models.Hotel{},
		&models.Room{},
		&models.Visa{},
		&models.Transportation{},
	))
	return db
}

func TestResolveKnownTypes(t *testing.T) {
	db := openTestDB(t)

	pkg := models.Package{Slug: "alexandria-break", Title: "Alexandria Break", Price: 3000}
	require.NoError(t, db.Create(&pkg).Error)
	visa := models.Visa{Title: "Egypt Tourist Visa", Price: 25}
	require.NoError(t, db.Create(&visa).Error)

	resolved, err := Resolve(db, models.ItemTypePackage, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alexandria Break", resolved.Name)
	assert.NotNil(t, resolved.Details)

	resolved, err = Resolve(db, models.ItemTypeVisa, visa.ID)
	require.NoError(t, err)
	assert.Equal(t, "Egypt Tourist Visa", resolved.Name)
}

func TestResolveMissingRowFallsBack(t *testing.T) {
	db := openTestDB(t)

	resolved, err := Resolve(db, models.ItemTypeHotel, 77)
	require.NoError(t, err)
	assert.Equal(t, "hotel #77", resolved.Name)
	assert.Nil(t, resolved.Details)
}

func TestResolveUnknownTypeFallsBack(t *testing.T) {
	db := openTestDB(t)

	resolved, err := Resolve(db, models.ItemType("cruise"), 5)
	require.NoError(t, err)
	assert.Equal(t, "cruise #5", resolved.Name)
}
