package adminController

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/madoxlx/egtravel-api/apierrors"
	"github.com/madoxlx/egtravel-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/admin/packages/export-excel
func ExportPackagesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var packages []models.Package
		if err := db.Find(&packages).Error; err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to fetch packages", err))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Packages")
		if err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to create Excel sheet", err))
			return
		}

		headers := []string{
			"ID", "Slug", "Title", "TitleAr", "Price", "DiscountedPrice",
			"DurationDays", "DestinationID", "Featured", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range packages {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Slug)
			row.AddCell().SetValue(p.Title)
			row.AddCell().SetValue(p.TitleAr)
			row.AddCell().SetValue(p.Price)
			if p.DiscountedPrice != nil {
				row.AddCell().SetValue(*p.DiscountedPrice)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.DurationDays)
			if p.DestinationID != nil {
				row.AddCell().SetValue(*p.DestinationID)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(strconv.FormatBool(p.Featured))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=packages.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			apierrors.Respond(c, apierrors.Wrap(apierrors.Internal, "Failed to write Excel file", err))
			return
		}
	}
}
