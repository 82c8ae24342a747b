package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductValidation = errors.New("product input is invalid")
)

// ProductImageInput is one image attached to a product form submission.
type ProductImageInput struct {
	ImageURL string `json:"image_url"`
	Color    string `json:"color"`
}

// ProductInput is the raw product form as submitted by the admin panel.
// Nothing is trusted; AssembleProduct validates every field before a
// model.Product is built from it.
type ProductInput struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Brand         string              `json:"brand"`
	Material      string              `json:"material"`
	Category      string              `json:"category"`
	ProductType   string              `json:"product_type"`
	StyleType     string              `json:"style_type"`
	Gender        string              `json:"gender"`
	Tags          []string            `json:"tags"`
	Price         float64             `json:"price"`
	DiscountPrice *float64            `json:"discount_price"`
	Stock         string              `json:"stock"`
	Dimensions    model.Dimensions    `json:"dimensions"`
	Weight        float64             `json:"weight"`
	SizeUnit      string              `json:"size_unit"`
	SizeValues    []string            `json:"size_values"`
	Rating        float64             `json:"rating"`
	Images        []ProductImageInput `json:"images"`
}

// ValidateProductInput checks every form field and returns a map of field
// name to message. An empty map means the input is acceptable. The discount
// price is deliberately not compared against the price; the storefront
// renders whatever discount the admin entered.
func ValidateProductInput(input ProductInput) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "Description is required"
	}
	if !model.IsValidCategory(model.ProductCategory(input.Category)) {
		fields["category"] = "Category must be one of: fashion, accessories, phones, electronics, home-living"
	}
	if strings.TrimSpace(input.ProductType) == "" {
		fields["product_type"] = "Product type is required"
	}
	if strings.TrimSpace(input.StyleType) == "" {
		fields["style_type"] = "Style type is required"
	}
	if !model.IsValidGender(model.Gender(input.Gender)) {
		fields["gender"] = "Gender must be one of: male, female, unisex"
	}
	if len(input.Tags) == 0 {
		fields["tags"] = "At least one tag is required"
	} else {
		for _, tag := range input.Tags {
			if strings.TrimSpace(tag) == "" {
				fields["tags"] = "Tags must not be empty"
				break
			}
		}
	}
	if input.Price <= 0 {
		fields["price"] = "Price must be greater than zero"
	}
	if !model.IsValidStockStatus(model.StockStatus(input.Stock)) {
		fields["stock"] = "Stock must be in_stock or out_of_stock"
	}
	if input.Dimensions.Height < 0 || input.Dimensions.Width < 0 || input.Dimensions.Depth < 0 {
		fields["dimensions"] = "Dimensions must not be negative"
	}
	if input.Weight < 0 {
		fields["weight"] = "Weight must not be negative"
	}
	if input.Rating <= 0 || input.Rating > 5 {
		fields["rating"] = "Rating must be greater than zero and at most 5"
	}

	validateSizeInput(input, fields)
	validateImageInput(input.Images, fields)

	return fields
}

func validateSizeInput(input ProductInput, fields map[string]string) {
	switch model.SizeUnit(input.SizeUnit) {
	case model.SizeUnitInch, model.SizeUnitCm:
		if len(input.SizeValues) == 0 {
			fields["size_values"] = "At least one size value is required"
			return
		}
		for _, label := range input.SizeValues {
			v, err := strconv.ParseFloat(label, 64)
			if err != nil || v <= 0 {
				fields["size_values"] = "Numeric sizes must be positive numbers"
				return
			}
		}
	case model.SizeUnitLetter:
		if len(input.SizeValues) == 0 {
			fields["size_values"] = "At least one size value is required"
			return
		}
		for _, label := range input.SizeValues {
			if !model.IsValidLetterSize(model.LetterSize(label)) {
				fields["size_values"] = "Letter sizes must be one of XS, S, M, L, XL, XXL, XXXL"
				return
			}
		}
	default:
		fields["size_unit"] = "Size unit must be inch, cm or letter"
	}
}

func validateImageInput(images []ProductImageInput, fields map[string]string) {
	if len(images) == 0 {
		fields["images"] = "At least one image is required"
		return
	}
	for _, img := range images {
		if strings.TrimSpace(img.ImageURL) == "" {
			fields["images"] = "Image URLs must not be empty"
			return
		}
	}
}

// AssembleProduct builds a model.Product from a validated form input.
// Callers must run ValidateProductInput first; assembly assumes the
// field map came back empty.
func AssembleProduct(input ProductInput) *model.Product {
	images := make([]model.ProductImage, 0, len(input.Images))
	for i, img := range input.Images {
		images = append(images, model.ProductImage{
			ImageURL: img.ImageURL,
			Color:    img.Color,
			Position: i,
		})
	}

	return &model.Product{
		Name:          strings.TrimSpace(input.Name),
		Description:   input.Description,
		Brand:         input.Brand,
		Material:      input.Material,
		Category:      model.ProductCategory(input.Category),
		ProductType:   input.ProductType,
		StyleType:     input.StyleType,
		Gender:        model.Gender(input.Gender),
		Tags:          input.Tags,
		Price:         input.Price,
		DiscountPrice: input.DiscountPrice,
		Stock:         model.StockStatus(input.Stock),
		Dimensions:    input.Dimensions,
		Weight:        input.Weight,
		Size: model.Size{
			Unit:   model.SizeUnit(input.SizeUnit),
			Values: input.SizeValues,
		},
		Rating: input.Rating,
		Images: images,
	}
}

type ProductService interface {
	List() ([]model.Product, error)
	GetByID(id uint) (*model.Product, error)
	Create(input ProductInput) (*model.Product, map[string]string, error)
	Update(id uint, input ProductInput) (*model.Product, map[string]string, error)
	Delete(id uint) error
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List() ([]model.Product, error) {
	logger.Debug("Listing products", nil)
	return s.productRepo.FindAll()
}

func (s *productService) GetByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Product not found", map[string]interface{}{
				"product_id": id,
			})
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(input ProductInput) (*model.Product, map[string]string, error) {
	logger.Info("Creating product", map[string]interface{}{
		"name":     input.Name,
		"category": input.Category,
	})

	if fields := ValidateProductInput(input); len(fields) > 0 {
		logger.Warn("Product creation rejected by validation", map[string]interface{}{
			"name":   input.Name,
			"fields": len(fields),
		})
		return nil, fields, ErrProductValidation
	}

	product := AssembleProduct(input)
	if err := s.productRepo.Create(product); err != nil {
		return nil, nil, err
	}

	logger.Info("Product created", map[string]interface{}{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return product, nil, nil
}

func (s *productService) Update(id uint, input ProductInput) (*model.Product, map[string]string, error) {
	logger.Info("Updating product", map[string]interface{}{
		"product_id": id,
	})

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProductNotFound
		}
		return nil, nil, err
	}

	if fields := ValidateProductInput(input); len(fields) > 0 {
		logger.Warn("Product update rejected by validation", map[string]interface{}{
			"product_id": id,
			"fields":     len(fields),
		})
		return nil, fields, ErrProductValidation
	}

	updated := AssembleProduct(input)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	// Replace images wholesale: the form always carries the full set
	for i := range updated.Images {
		updated.Images[i].ProductID = existing.ID
	}

	if err := s.productRepo.Update(updated); err != nil {
		return nil, nil, err
	}

	logger.Info("Product updated", map[string]interface{}{
		"product_id": updated.ID,
		"name":       updated.Name,
	})
	return updated, nil, nil
}

func (s *productService) Delete(id uint) error {
	logger.Info("Deleting product", map[string]interface{}{
		"product_id": id,
	})

	if _, err := s.productRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return s.productRepo.Delete(id)
}
