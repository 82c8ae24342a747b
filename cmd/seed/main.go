package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/trendybazarr/trendybazarr-backend/config"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/model"
	"github.com/trendybazarr/trendybazarr-backend/internal/app/repository"
	"github.com/trendybazarr/trendybazarr-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// Column layout of the import sheet.
const (
	colName = iota
	colDescription
	colBrand
	colCategory
	colProductType
	colStyleType
	colGender
	colTags
	colPrice
	colDiscountPrice
	colStock
	colSizeUnit
	colSizeValues
	colRating
	colImageURL
	colImageColor
	columnCount
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	products, skipped, err := readProductsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total products to import: %d (skipped %d rows)\n", len(products), skipped)

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	batchSize := 100
	if err := productRepo.BulkCreate(products, batchSize); err != nil {
		log.Fatal("Failed to bulk create products:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total products imported: %d\n", len(products))
}

func readProductsFromXLSX(filePath string) ([]model.Product, int, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, 0, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("no data found in XLSX file")
	}

	var products []model.Product
	skipped := 0

	for i, row := range rows {
		if i == 0 {
			// Header row
			fmt.Printf("Headers: %v\n", row)
			continue
		}
		if len(row) < columnCount {
			skipped++
			continue
		}

		product, err := rowToProduct(row)
		if err != nil {
			fmt.Printf("Skipping row %d: %v\n", i+1, err)
			skipped++
			continue
		}

		products = append(products, product)
	}

	return products, skipped, nil
}

func rowToProduct(row []string) (model.Product, error) {
	name := strings.TrimSpace(row[colName])
	if name == "" {
		return model.Product{}, fmt.Errorf("name is empty")
	}

	category := model.ProductCategory(strings.TrimSpace(row[colCategory]))
	if !model.IsValidCategory(category) {
		return model.Product{}, fmt.Errorf("unknown category %q", row[colCategory])
	}

	gender := model.Gender(strings.TrimSpace(row[colGender]))
	if !model.IsValidGender(gender) {
		return model.Product{}, fmt.Errorf("unknown gender %q", row[colGender])
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(row[colPrice]), 64)
	if err != nil || price <= 0 {
		return model.Product{}, fmt.Errorf("invalid price %q", row[colPrice])
	}

	var discountPrice *float64
	if raw := strings.TrimSpace(row[colDiscountPrice]); raw != "" {
		discount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Product{}, fmt.Errorf("invalid discount price %q", raw)
		}
		discountPrice = &discount
	}

	stock := model.StockStatus(strings.TrimSpace(row[colStock]))
	if !model.IsValidStockStatus(stock) {
		return model.Product{}, fmt.Errorf("unknown stock status %q", row[colStock])
	}

	size, err := parseSize(row[colSizeUnit], row[colSizeValues])
	if err != nil {
		return model.Product{}, err
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(row[colRating]), 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("invalid rating %q", row[colRating])
	}

	product := model.Product{
		Name:          name,
		Description:   strings.TrimSpace(row[colDescription]),
		Brand:         strings.TrimSpace(row[colBrand]),
		Category:      category,
		ProductType:   strings.TrimSpace(row[colProductType]),
		StyleType:     strings.TrimSpace(row[colStyleType]),
		Gender:        gender,
		Tags:          splitList(row[colTags]),
		Price:         price,
		DiscountPrice: discountPrice,
		Stock:         stock,
		Size:          size,
		Rating:        rating,
	}

	if imageURL := strings.TrimSpace(row[colImageURL]); imageURL != "" {
		product.Images = []model.ProductImage{
			{
				ImageURL: imageURL,
				Color:    strings.TrimSpace(row[colImageColor]),
				Position: 0,
			},
		}
	}

	return product, nil
}

func parseSize(rawUnit, rawValues string) (model.Size, error) {
	unit := model.SizeUnit(strings.TrimSpace(rawUnit))
	labels := splitList(rawValues)

	switch unit {
	case model.SizeUnitInch, model.SizeUnitCm:
		values := make([]float64, 0, len(labels))
		for _, label := range labels {
			v, err := strconv.ParseFloat(label, 64)
			if err != nil {
				return model.Size{}, fmt.Errorf("invalid %s size %q", unit, label)
			}
			values = append(values, v)
		}
		return model.NewNumericSize(unit, values)
	case model.SizeUnitLetter:
		letters := make([]model.LetterSize, 0, len(labels))
		for _, label := range labels {
			letters = append(letters, model.LetterSize(label))
		}
		return model.NewLetterSize(letters)
	default:
		return model.Size{}, fmt.Errorf("unknown size unit %q", rawUnit)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
