package adminController

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"gorm.io/gorm"
)

// tableSpec describes one importable/exportable table.
type tableSpec struct {
	// JSON fields a row must carry to be accepted on import.
	required []string
	newRow   func() interface{}
	newSlice func() interface{}
}

var tables = map[string]tableSpec{
	"countries": {
		required: []string{"name", "code"},
		newRow:   func() interface{} { return &models.Country{} },
		newSlice: func() interface{} { return &[]models.Country{} },
	},
	"cities": {
		required: []string{"name", "country_id"},
		newRow:   func() interface{} { return &models.City{} },
		newSlice: func() interface{} { return &[]models.City{} },
	},
	"airports": {
		required: []string{"name", "city_id"},
		newRow:   func() interface{} { return &models.Airport{} },
		newSlice: func() interface{} { return &[]models.Airport{} },
	},
	"destinations": {
		required: []string{"name"},
		newRow:   func() interface{} { return &models.Destination{} },
		newSlice: func() interface{} { return &[]models.Destination{} },
	},
	"packages": {
		required: []string{"slug", "title", "price"},
		newRow:   func() interface{} { return &models.Package{} },
		newSlice: func() interface{} { return &[]models.Package{} },
	},
	"tours": {
		required: []string{"name", "price"},
		newRow:   func() interface{} { return &models.Tour{} },
		newSlice: func() interface{} { return &[]models.Tour{} },
	},
	"hotels": {
		required: []string{"name"},
		newRow:   func() interface{} { return &models.Hotel{} },
		newSlice: func() interface{} { return &[]models.Hotel{} },
	},
	"rooms": {
		required: []string{"name", "hotel_id", "price"},
		newRow:   func() interface{} { return &models.Room{} },
		newSlice: func() interface{} { return &[]models.Room{} },
	},
	"transportations": {
		required: []string{"name", "price"},
		newRow:   func() interface{} { return &models.Transportation{} },
		newSlice: func() interface{} { return &[]models.Transportation{} },
	},
	"visas": {
		required: []string{"title", "price"},
		newRow:   func() interface{} { return &models.Visa{} },
		newSlice: func() interface{} { return &[]models.Visa{} },
	},
	"translations": {
		required: []string{"key", "language", "value"},
		newRow:   func() interface{} { return &models.Translation{} },
		newSlice: func() interface{} { return &[]models.Translation{} },
	},
	"menus": {
		required: []string{"name"},
		newRow:   func() interface{} { return &models.Menu{} },
		newSlice: func() interface{} { return &[]models.Menu{} },
	},
}

type ImportSummary struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors"`
}

// GET /api/admin/export/:table
// Dumps all rows of one table as a timestamped JSON attachment.
func ExportTable(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := c.Param("table")
		spec, ok := tables[table]
		if !ok {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Unknown table: "+table))
			return
		}

		rows := spec.newSlice()
		if err := db.Find(rows).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to export "+table, err))
			return
		}

		filename := fmt.Sprintf("%s-%s.json", table, time.Now().Format("2006-01-02_15-04-05"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.JSON(http.StatusOK, rows)
	}
}

// POST /api/admin/import/:table
// Body is a JSON array. Rows missing a required field or rejected by the
// database are skipped; the import continues and reports a summary.
func ImportTable(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		table := c.Param("table")
		spec, ok := tables[table]
		if !ok {
			apierrors.Respond(c, apierrors.E(apierrors.NotFound, "Unknown table: "+table))
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to read request body", err))
			return
		}

		var rawRows []json.RawMessage
		if err := json.Unmarshal(body, &rawRows); err != nil {
			apierrors.Respond(c, apierrors.E(apierrors.ValidationFailed, "Body must be a JSON array"))
			return
		}

		summary := ImportSummary{Errors: []string{}}
		for i, raw := range rawRows {
			if err := importRow(db, spec, raw); err != nil {
				summary.Failed++
				msg := fmt.Sprintf("row %d: %v", i, err)
				summary.Errors = append(summary.Errors, msg)
				log.Printf("import %s: %s", table, msg)
				continue
			}
			summary.Imported++
		}

		c.JSON(http.StatusOK, summary)
	}
}

func importRow(db *gorm.DB, spec tableSpec, raw json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("not a JSON object: %w", err)
	}
	for _, name := range spec.required {
		value, ok := fields[name]
		if !ok || string(value) == "null" || string(value) == `""` {
			return fmt.Errorf("missing required field %q", name)
		}
	}

	row := spec.newRow()
	if err := json.Unmarshal(raw, row); err != nil {
		return fmt.Errorf("invalid row shape: %w", err)
	}
	if err := db.Create(row).Error; err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	return nil
}
