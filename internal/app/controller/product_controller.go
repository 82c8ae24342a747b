package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/service"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
	"github.com/xuri/excelize/v2"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// List returns every product
// GET /api/data/gets
func (ctrl *ProductController) List(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to list products", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "list products")
		return
	}

	log.Debug("Products listed", map[string]interface{}{
		"count": len(products),
	})

	c.JSON(http.StatusOK, gin.H{
		"data": products,
	})
}

// Get returns one product
// GET /api/data/get/:id
func (ctrl *ProductController) Get(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, err := ctrl.productService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to get product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "get product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// Upload creates a product from the admin product form
// POST /api/data/upload
func (ctrl *ProductController) Upload(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid product upload payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Product payload is invalid")
		return
	}

	product, fields, err := ctrl.productService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrProductValidation) {
			apperrors.RespondWithValidationError(c, fields)
			return
		}
		log.Error("Failed to create product", err, map[string]interface{}{
			"name": input.Name,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "create product")
		return
	}

	log.Info("Product uploaded", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// Update replaces a product with a new form submission
// PUT /api/data/update/:id
func (ctrl *ProductController) Update(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid product update payload", map[string]interface{}{
			"product_id": id,
			"error":      err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Product payload is invalid")
		return
	}

	product, fields, err := ctrl.productService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		if errors.Is(err, service.ErrProductValidation) {
			apperrors.RespondWithValidationError(c, fields)
			return
		}
		log.Error("Failed to update product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// Delete removes a product
// DELETE /api/data/delete/:id
func (ctrl *ProductController) Delete(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseIDParam(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	if err := ctrl.productService.Delete(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		log.Error("Failed to delete product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "delete product")
		return
	}

	log.Info("Product deleted", map[string]interface{}{
		"product_id": id,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}

// Export streams the catalog as an xlsx download
// GET /api/data/export
func (ctrl *ProductController) Export(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	products, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to fetch products for export", err, nil)
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "export products")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Products"
	index, err := f.NewSheet(sheet)
	if err != nil {
		log.Error("Failed to create export sheet", err, nil)
		apperrors.InternalError(c, "Failed to build export file")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{
		"ID", "Name", "Description", "Brand", "Category", "ProductType",
		"StyleType", "Gender", "Tags", "Price", "DiscountPrice", "Stock",
		"SizeUnit", "SizeValues", "Rating", "CreatedAt",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for rowIdx, p := range products {
		discount := ""
		if p.DiscountPrice != nil {
			discount = strconv.FormatFloat(*p.DiscountPrice, 'f', 2, 64)
		}
		values := []interface{}{
			p.ID, p.Name, p.Description, p.Brand, string(p.Category), p.ProductType,
			p.StyleType, string(p.Gender), strings.Join(p.Tags, ","), p.Price, discount,
			string(p.Stock), string(p.Size.Unit), strings.Join(p.Size.Values, ","),
			p.Rating, p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		log.Error("Failed to write export file", err, nil)
		return
	}

	log.Info("Products exported", map[string]interface{}{
		"count": len(products),
	})
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
