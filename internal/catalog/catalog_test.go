package catalog

import (
	"reflect"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/techzen-dev/techzen/internal/models"
)

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name  string
		query FormQuery
		want  bson.M
	}{
		{
			name:  "empty form",
			query: FormQuery{},
			want:  bson.M{},
		},
		{
			name:  "all defaults",
			query: FormQuery{Category: "default", Brand: "default", PriceRange: "default", SortBy: "default"},
			want:  bson.M{},
		},
		{
			name:  "category only",
			query: FormQuery{Category: "laptop"},
			want:  bson.M{"category": "laptop"},
		},
		{
			name:  "brand only",
			query: FormQuery{Brand: "Apple"},
			want:  bson.M{"brand": "Apple"},
		},
		{
			name:  "below 5k bucket",
			query: FormQuery{PriceRange: "below5k"},
			want:  bson.M{"price": bson.M{"$lt": 5000}},
		},
		{
			name:  "5k to 20k bucket",
			query: FormQuery{PriceRange: "5kTo20k"},
			want:  bson.M{"price": bson.M{"$gte": 5000, "$lte": 20000}},
		},
		{
			name:  "above 20k bucket",
			query: FormQuery{PriceRange: "above20k"},
			want:  bson.M{"price": bson.M{"$gt": 20000}},
		},
		{
			name:  "unrecognized price range is ignored",
			query: FormQuery{PriceRange: "cheap"},
			want:  bson.M{},
		},
		{
			name:  "combined filters",
			query: FormQuery{Category: "phone", Brand: "Samsung", PriceRange: "above20k"},
			want:  bson.M{"category": "phone", "brand": "Samsung", "price": bson.M{"$gt": 20000}},
		},
		{
			name:  "sortBy never filters",
			query: FormQuery{SortBy: "price-asc"},
			want:  bson.M{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildFilter(tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortProducts(t *testing.T) {
	day := func(n int) time.Time {
		return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
	}

	fixture := func() []models.Product {
		return []models.Product{
			{Name: "B", Price: 6000, AddedOn: day(2)},
			{Name: "C", Price: 21000, AddedOn: day(3)},
			{Name: "A", Price: 4000, AddedOn: day(1)},
		}
	}

	tests := []struct {
		name      string
		sortBy    string
		wantOrder []string
	}{
		{
			name:      "price ascending",
			sortBy:    "price-asc",
			wantOrder: []string{"A", "B", "C"},
		},
		{
			name:      "price descending",
			sortBy:    "price-desc",
			wantOrder: []string{"C", "B", "A"},
		},
		{
			name:      "newest first",
			sortBy:    "newest-first",
			wantOrder: []string{"C", "B", "A"},
		},
		{
			name:      "unrecognized sort keeps store order",
			sortBy:    "alphabetical",
			wantOrder: []string{"B", "C", "A"},
		},
		{
			name:      "default keeps store order",
			sortBy:    "default",
			wantOrder: []string{"B", "C", "A"},
		},
		{
			name:      "empty keeps store order",
			sortBy:    "",
			wantOrder: []string{"B", "C", "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := fixture()
			SortProducts(products, tt.sortBy)

			var got []string
			for _, p := range products {
				got = append(got, p.Name)
			}
			if !reflect.DeepEqual(got, tt.wantOrder) {
				t.Errorf("SortProducts(%q) order = %v, want %v", tt.sortBy, got, tt.wantOrder)
			}
		})
	}
}

func TestSortProductsMonotonic(t *testing.T) {
	products := []models.Product{
		{Name: "x", Price: 900},
		{Name: "y", Price: 120},
		{Name: "z", Price: 47000},
		{Name: "w", Price: 120},
		{Name: "v", Price: 5300},
	}

	SortProducts(products, SortPriceAsc)
	for i := 1; i < len(products); i++ {
		if products[i].Price < products[i-1].Price {
			t.Fatalf("price-asc not non-decreasing at %d: %v", i, products)
		}
	}

	SortProducts(products, SortPriceDesc)
	for i := 1; i < len(products); i++ {
		if products[i].Price > products[i-1].Price {
			t.Fatalf("price-desc not non-increasing at %d: %v", i, products)
		}
	}
}
