package catalogControllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
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

	// One connection keeps the in-memory database alive and shared.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Package{}, &models.Favorite{}))
	return db
}

func favoritesRouter(db *gorm.DB, ctxValues map[string]any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if ctxValues != nil {
		r.Use(func(c *gin.Context) {
			for k, v := range ctxValues {
				c.Set(k, v)
			}
		})
	}
	r.GET("/api/favorites", GetFavorites(db))
	r.POST("/api/favorites", AddFavorite(db))
	r.DELETE("/api/favorites/:packageID", RemoveFavorite(db))
	return r
}

func TestFavoritesRejectTokenWithoutUserID(t *testing.T) {
	db := openTestDB(t)

	// A structurally valid token whose claims carry no user_id leaves a
	// nil in the context; the handlers must answer 401, not panic.
	for _, ctx := range []map[string]any{nil, {"user_id": nil}, {"user_id": "abc"}} {
		r := favoritesRouter(db, ctx)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/favorites", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"package_id": 1}`)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestFavoritesAddListRemove(t *testing.T) {
	db := openTestDB(t)
	pkg := models.Package{Slug: "luxor-escape", Title: "Luxor Escape", Price: 8000}
	require.NoError(t, db.Create(&pkg).Error)

	r := favoritesRouter(db, map[string]any{"user_id": uint(5)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"package_id": 1}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	// Re-adding is not an error.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"package_id": 1}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Where("user_id = ?", 5).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
