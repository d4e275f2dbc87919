package transform

import (
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// DefaultCategoryIcon is used when the upstream category has no icon.
const DefaultCategoryIcon = "Beverage"

// Category converts an upstream category and its children.
func Category(c celler.Category) storefront.Category {
	var image *string
	if c.Image != nil && *c.Image != "" {
		v := c.Image.String()
		image = &v
	}

	var parent *int64
	if c.ParentID != nil && *c.ParentID != 0 {
		parent = c.ParentID
	}

	return storefront.Category{
		ID:       c.ID,
		Name:     c.Name,
		Slug:     c.Slug,
		Parent:   parent,
		Children: Map(c.Children, Category),
		Details:  stringOr(c.Details, ""),
		Image: storefront.Attachment{
			ID:        image,
			Original:  image,
			Thumbnail: image,
		},
		Icon:        stringOr(c.Icon, DefaultCategoryIcon),
		LiquorType:  c.LiquorType,
		Description: stringOr(c.Description, ""),
		Language:    c.Language,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// CategoryInput converts a storefront category write. The image object
// collapses back to the single reference the upstream stores.
func CategoryInput(in storefront.CategoryInput) celler.CategoryInput {
	out := celler.CategoryInput{
		Name:        in.Name,
		Slug:        in.Slug,
		ParentID:    in.Parent,
		Details:     in.Details,
		Icon:        in.Icon,
		LiquorType:  in.LiquorType,
		Description: in.Description,
		Language:    in.Language,
		TypeID:      in.TypeID,
	}
	if in.Image != nil {
		for _, ref := range []*string{in.Image.Original, in.Image.Thumbnail, in.Image.ID} {
			if ref != nil && *ref != "" {
				out.Image = *ref
				break
			}
		}
	}
	return out
}

// CategoryStats converts category statistics.
func CategoryStats(s celler.CategoryStats) storefront.CategoryStats {
	return storefront.CategoryStats{
		TotalProducts:      s.TotalProducts,
		ActiveProducts:     s.ActiveProducts,
		AveragePrice:       s.AveragePrice,
		PriceRange:         storefront.PriceRange{Min: s.PriceRange.Min, Max: s.PriceRange.Max},
		SubcategoriesCount: s.SubcategoriesCount,
	}
}
