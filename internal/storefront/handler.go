package storefront

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/catalog"
	apperrors "github.com/trendybazarr/trendybazarr-backend/internal/errors"
	"github.com/trendybazarr/trendybazarr-backend/internal/middleware"
)

// Handler serves the derived catalog views from the snapshot.
type Handler struct {
	snapshot *Snapshot
}

func NewHandler(snapshot *Snapshot) *Handler {
	return &Handler{snapshot: snapshot}
}

// Routes mounts the storefront endpoints.
func (h *Handler) Routes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "healthy",
		})
	})
	router.GET("/catalog/:category", h.Catalog)
	router.GET("/products/:id", h.ProductDetail)
}

// productView is the storefront rendering of a product. Sizes carry the
// converted display form ("28 in (71.12 cm)").
type productView struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand,omitempty"`
	Category      string   `json:"category"`
	ProductType   string   `json:"product_type"`
	StyleType     string   `json:"style_type"`
	Gender        string   `json:"gender"`
	Tags          []string `json:"tags"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price,omitempty"`
	Stock         string   `json:"stock"`
	Rating        float64  `json:"rating"`
	Sizes         []string `json:"sizes"`
	ImageURL      string   `json:"image_url,omitempty"`
	Colors        []string `json:"colors,omitempty"`
}

func newProductView(p model.Product) productView {
	view := productView{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Brand:         p.Brand,
		Category:      string(p.Category),
		ProductType:   p.ProductType,
		StyleType:     p.StyleType,
		Gender:        string(p.Gender),
		Tags:          p.Tags,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Stock:         string(p.Stock),
		Rating:        p.Rating,
		Sizes:         p.Size.DisplayValues(),
	}
	if img := p.DefaultImage(); img != nil {
		view.ImageURL = img.ImageURL
	}
	for _, img := range p.Images {
		if img.Color != "" {
			view.Colors = append(view.Colors, img.Color)
		}
	}
	return view
}

// Catalog renders one page of a category
// GET /catalog/:category?sort=featured&page=1
func (h *Handler) Catalog(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	if !h.snapshot.Loaded() {
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.StorefrontUnavailable,
			"The catalog is temporarily unavailable. Please try again")
		return
	}

	token := c.Param("category")

	sortKey := catalog.SortKey(c.DefaultQuery("sort", string(catalog.SortFeatured)))
	if !catalog.IsValidSortKey(sortKey) {
		apperrors.BadRequest(c, apperrors.StorefrontInvalidSort, "Unknown sort option")
		return
	}

	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			apperrors.BadRequest(c, apperrors.StorefrontInvalidPage, "Page must be a number")
			return
		}
		page = parsed
	}

	result, ok := h.snapshot.Browse(token, sortKey, page)
	if !ok {
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.StorefrontUnavailable,
			"The catalog is temporarily unavailable. Please try again")
		return
	}

	views := make([]productView, 0, len(result.Products))
	for _, p := range result.Products {
		views = append(views, newProductView(p))
	}

	log.Debug("Catalog page served", map[string]interface{}{
		"category": token,
		"sort":     string(sortKey),
		"page":     result.PageNumber,
		"items":    len(views),
	})

	c.JSON(http.StatusOK, gin.H{
		"products":    views,
		"page":        result.PageNumber,
		"total_pages": result.TotalPages,
		"total_items": result.TotalItems,
	})
}

// ProductDetail renders one product
// GET /products/:id
func (h *Handler) ProductDetail(c *gin.Context) {
	if !h.snapshot.Loaded() {
		apperrors.RespondWithError(c, http.StatusBadGateway, apperrors.StorefrontUnavailable,
			"The catalog is temporarily unavailable. Please try again")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid product ID")
		return
	}

	product, ok := h.snapshot.Product(uint(id))
	if !ok {
		apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": newProductView(*product),
	})
}
