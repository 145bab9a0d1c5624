// Package catalog translates storefront filter forms into document store
// queries and applies in-memory result ordering.
package catalog

import (
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/techzen-dev/techzen/internal/models"
)

// defaultValue marks a form field the frontend left at its placeholder.
const defaultValue = "default"

// Price range buckets accepted from the filter form.
const (
	PriceBelow5K  = "below5k"
	Price5KTo20K  = "5kTo20k"
	PriceAbove20K = "above20k"
)

// Sort orders accepted from the filter form.
const (
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortNewestFirst = "newest-first"
)

// FormQuery is the filter form posted by the storefront. Every field is
// optional; an empty value or "default" means no constraint. Unrecognized
// priceRange and sortBy values are ignored, not rejected.
type FormQuery struct {
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	PriceRange string `json:"priceRange"`
	SortBy     string `json:"sortBy"`
}

// BuildFilter translates a filter form into a products query document.
func BuildFilter(q FormQuery) bson.M {
	filter := bson.M{}

	if q.Category != "" && q.Category != defaultValue {
		filter["category"] = q.Category
	}
	if q.Brand != "" && q.Brand != defaultValue {
		filter["brand"] = q.Brand
	}

	switch q.PriceRange {
	case PriceBelow5K:
		filter["price"] = bson.M{"$lt": 5000}
	case Price5KTo20K:
		filter["price"] = bson.M{"$gte": 5000, "$lte": 20000}
	case PriceAbove20K:
		filter["price"] = bson.M{"$gt": 20000}
	}

	return filter
}

// SortProducts orders the fetched result in place. Unrecognized sortBy values
// leave the store's natural order untouched.
func SortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewestFirst:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].AddedOn.After(products[j].AddedOn)
		})
	}
}
