package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmihaylov96/sportzone-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/admin/products/export-excel
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "NameEn", "Price", "DiscountedPrice",
			"CategoryID", "Stock", "Rating", "ReviewCount", "Brand", "Featured",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.NameEn)
			row.AddCell().SetValue(p.Price.StringFixed(2))
			if p.DiscountedPrice.Valid {
				row.AddCell().SetValue(p.DiscountedPrice.Decimal.StringFixed(2))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.ReviewCount)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Featured)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to write Excel file"})
			return
		}
	}
}
