package adminController

import (
	"bytes"
	"encoding/json"
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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Country{},
		&models.Package{},
	))
	return db
}

func newTransferRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/export/:table", ExportTable(db))
	r.POST("/api/admin/import/:table", ImportTable(db))
	return r
}

func TestImportTableMixedRows(t *testing.T) {
	db := openTestDB(t)
	r := newTransferRouter(db)

	body := `[
		{"slug": "red-sea-escape", "title": "Red Sea Escape", "price": 4500},
		{"slug": "broken-row", "price": 4500}
	]`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/import/packages", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var summary ImportSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Imported)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Contains(t, summary.Errors[0], "title")

	var count int64
	require.NoError(t, db.Model(&models.Package{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestImportTableRejectsNonArray(t *testing.T) {
	db := openTestDB(t)
	r := newTransferRouter(db)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import/packages", strings.NewReader(`{"slug":"x"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportUnknownTable(t *testing.T) {
	db := openTestDB(t)
	r := newTransferRouter(db)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/import/widgets", strings.NewReader(`[]`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportTable(t *testing.T) {
	db := openTestDB(t)
	r := newTransferRouter(db)

	require.NoError(t, db.Create(&models.Country{Name: "Egypt", Code: "EG"}).Error)
	require.NoError(t, db.Create(&models.Country{Name: "Jordan", Code: "JO"}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/countries", &bytes.Buffer{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	disposition := w.Header().Get("Content-Disposition")
	assert.True(t, strings.HasPrefix(disposition, "attachment; filename=countries-"))

	var rows []models.Country
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestImportRoundTrip(t *testing.T) {
	db := openTestDB(t)
	r := newTransferRouter(db)

	require.NoError(t, db.Create(&models.Package{Slug: "giza-day", Title: "Giza Day Trip", Price: 1500}).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/export/packages", &bytes.Buffer{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// Re-import into a fresh database.
	db2 := openTestDB(t)
	r2 := newTransferRouter(db2)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/import/packages", bytes.NewReader(w.Body.Bytes()))
	w2 := httptest.NewRecorder()
	r2.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)

	var summary ImportSummary
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Imported)
	assert.Zero(t, summary.Failed)

	var pkg models.Package
	require.NoError(t, db2.First(&pkg, "slug = ?", "giza-day").Error)
	assert.Equal(t, "Giza Day Trip", pkg.Title)
}
