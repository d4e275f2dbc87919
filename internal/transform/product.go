package transform

import (
	"encoding/json"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// Product defaults.
const (
	DefaultProductStatus = "publish"
	DefaultProductType   = "simple"
	DefaultProductUnit   = "1"
)

// Product converts an upstream product. Liquor attributes pass through
// only when the upstream sent them.
func Product(p celler.Product) storefront.Product {
	var typeID *int64
	if p.Type != nil {
		typeID = &p.Type.ID
	}

	salePrice := p.Price
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		salePrice = *p.DiscountPrice
	}

	quantity := 0
	if p.Quantity != nil {
		quantity = *p.Quantity
	}

	gallery := p.Gallery
	if gallery == nil {
		gallery = []json.RawMessage{}
	}

	var category *storefront.ProductCategory
	if p.Category != nil {
		c := productCategory(*p.Category)
		category = &c
	}

	return storefront.Product{
		ID:                 p.ID,
		Name:               p.Name,
		Slug:               p.Slug,
		Description:        p.Description,
		TypeID:             typeID,
		Price:              p.Price,
		SalePrice:          salePrice,
		SKU:                p.SKU,
		Quantity:           quantity,
		InStock:            boolOr(p.InStock, true),
		IsTaxable:          boolOr(p.IsTaxable, true),
		Status:             stringOr(&p.Status, DefaultProductStatus),
		ProductType:        stringOr(&p.ProductType, DefaultProductType),
		Unit:               stringOr(&p.Unit, DefaultProductUnit),
		Height:             p.Height,
		Width:              p.Width,
		Length:             p.Length,
		Image:              rawOrNull(p.Image),
		Gallery:            gallery,
		Categories:         Map(p.Categories, productCategory),
		Category:           category,
		AlcoholContent:     p.AlcoholContent,
		Volume:             p.Volume,
		Origin:             p.Origin,
		Vintage:            p.Vintage,
		TastingNotes:       p.TastingNotes,
		FoodPairings:       p.FoodPairings,
		ServingTemperature: p.ServingTemperature,
		AgeRestricted:      p.AgeRestricted,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func productCategory(c celler.ProductCategory) storefront.ProductCategory {
	return storefront.ProductCategory{ID: c.ID, Name: c.Name, Slug: c.Slug}
}
