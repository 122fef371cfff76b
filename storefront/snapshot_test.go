package storefront

import (
	"fmt"
	"testing"

	"restaurant-catalog-api/models"
)

func testMeals(n int, categoryID uint) []models.Meal {
	meals := make([]models.Meal, 0, n)
	for i := 0; i < n; i++ {
		meals = append(meals, models.Meal{
			ID:         uint(i + 1),
			Name:       fmt.Sprintf("Meal %d", i+1),
			CategoryID: categoryID,
			Active:     true,
			Order:      i,
			Price:      10,
		})
	}
	return meals
}

func TestActiveCategories_SortedAndFiltered(t *testing.T) {
	s := NewSnapshot()
	s.Replace([]models.Category{
		{ID: 1, Name: "Last", Active: true, Order: 5},
		{ID: 2, Name: "Hidden", Active: false, Order: 0},
		{ID: 3, Name: "First", Active: true, Order: 1},
	}, nil)

	got := s.ActiveCategories()
	if len(got) != 2 {
		t.Fatalf("got %d categories, want 2", len(got))
	}
	if got[0].Name != "First" || got[1].Name != "Last" {
		t.Errorf("order wrong: %s, %s", got[0].Name, got[1].Name)
	}
}

func TestVisibleMeals_PaginationChunks(t *testing.T) {
	s := NewSnapshot()
	s.Replace(nil, testMeals(40, 1))

	pager := NewPager(StorefrontChunk)
	meals, hasMore := s.VisibleMeals(Query{Limit: pager.Limit()})
	if len(meals) != 12 || !hasMore {
		t.Errorf("first page = %d meals, hasMore = %v; want 12, true", len(meals), hasMore)
	}

	pager.More()
	meals, hasMore = s.VisibleMeals(Query{Limit: pager.Limit()})
	if len(meals) != 24 || !hasMore {
		t.Errorf("second page = %d meals, hasMore = %v; want 24, true", len(meals), hasMore)
	}

	pager.More()
	pager.More()
	meals, hasMore = s.VisibleMeals(Query{Limit: pager.Limit()})
	if len(meals) != 40 || hasMore {
		t.Errorf("final page = %d meals, hasMore = %v; want 40, false", len(meals), hasMore)
	}

	pager.Reset()
	if pager.Limit() != StorefrontChunk {
		t.Errorf("Limit after reset = %d, want %d", pager.Limit(), StorefrontChunk)
	}
}

func TestVisibleMeals_AdminChunkSize(t *testing.T) {
	s := NewSnapshot()
	meals := testMeals(35, 1)
	meals[3].Active = false // admin view still shows it
	s.Replace(nil, meals)

	pager := NewPager(AdminChunk)
	got, hasMore := s.VisibleMeals(Query{Limit: pager.Limit(), IncludeInactive: true})
	if len(got) != 30 || !hasMore {
		t.Errorf("admin page = %d meals, hasMore = %v; want 30, true", len(got), hasMore)
	}
}

func TestVisibleMeals_FiltersInactiveByDefault(t *testing.T) {
	s := NewSnapshot()
	meals := testMeals(3, 1)
	meals[1].Active = false
	s.Replace(nil, meals)

	got, _ := s.VisibleMeals(Query{})
	if len(got) != 2 {
		t.Errorf("got %d meals, want 2 (inactive hidden)", len(got))
	}
}

func TestVisibleMeals_CategoryFilter(t *testing.T) {
	s := NewSnapshot()
	s.Replace(nil, append(testMeals(3, 1), testMeals(2, 2)...))

	got, _ := s.VisibleMeals(Query{CategoryID: 2})
	if len(got) != 2 {
		t.Errorf("got %d meals for category 2, want 2", len(got))
	}
	all, _ := s.VisibleMeals(Query{})
	if len(all) != 5 {
		t.Errorf("got %d meals without filter, want 5", len(all))
	}
}

func TestVisibleMeals_SearchNameAndDescription(t *testing.T) {
	s := NewSnapshot()
	s.Replace(nil, []models.Meal{
		{ID: 1, Name: "Chicken Shawarma", Description: "with garlic sauce", Active: true},
		{ID: 2, Name: "Falafel", Description: "crispy CHICKPEA balls", Active: true},
		{ID: 3, Name: "Beef Burger", Description: "classic", Active: true},
	})

	tests := []struct {
		search string
		want   int
	}{
		{"chick", 2},   // name of 1, description of 2, case-insensitive
		{"GARLIC", 1},  // description match
		{"burger", 1},  // name match
		{"", 3},        // empty search matches everything
		{"sushi", 0},   // no match
		{"  chick ", 2}, // surrounding whitespace trimmed
	}
	for _, tt := range tests {
		got, _ := s.VisibleMeals(Query{Search: tt.search})
		if len(got) != tt.want {
			t.Errorf("search %q: got %d meals, want %d", tt.search, len(got), tt.want)
		}
	}
}

func TestToggleMealActive_OptimisticFlip(t *testing.T) {
	s := NewSnapshot()
	s.Replace(nil, testMeals(2, 1))

	active, ok := s.ToggleMealActive(1)
	if !ok || active {
		t.Errorf("toggle = (%v, %v), want (false, true)", active, ok)
	}

	got, _ := s.VisibleMeals(Query{})
	if len(got) != 1 {
		t.Errorf("visible = %d meals after hiding one, want 1", len(got))
	}

	active, ok = s.ToggleMealActive(1)
	if !ok || !active {
		t.Errorf("second toggle = (%v, %v), want (true, true)", active, ok)
	}

	if _, ok := s.ToggleMealActive(999); ok {
		t.Error("toggling an unknown meal must report !ok")
	}
}

func TestCartLine_TotalRecomputes(t *testing.T) {
	meal := models.Meal{
		ID:    1,
		Name:  "Pizza",
		Price: 40,
		Sizes: []models.MealSize{
			{ID: 10, Name: "M", Price: 45},
			{ID: 11, Name: "L", Price: 60},
		},
	}

	line := CartLine{Meal: meal, Quantity: 1}
	if line.Total() != 40 {
		t.Errorf("base total = %v, want 40", line.Total())
	}

	line.Quantity = 3
	if line.Total() != 120 {
		t.Errorf("total after quantity change = %v, want 120", line.Total())
	}

	line.SelectSize(11)
	if line.Total() != 180 {
		t.Errorf("total after size change = %v, want 180", line.Total())
	}

	line.SelectSize(999) // unknown size falls back to base price
	if line.Total() != 120 {
		t.Errorf("total after unknown size = %v, want 120", line.Total())
	}
}
