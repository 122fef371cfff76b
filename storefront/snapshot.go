// Package storefront holds the catalog-snapshot behavior shared by the
// customer and admin pages: chunked pagination, category filtering,
// free-text search and cart price computation over a local copy of the
// catalog.
package storefront

import (
	"sort"
	"strings"
	"sync"

	"restaurant-catalog-api/models"
)

// Chunk sizes for incremental reveal
const (
	StorefrontChunk = 12
	AdminChunk      = 30
)

// Snapshot is a local copy of the catalog, refreshed by a data-sync
// collaborator. Reads and optimistic mutations are safe for concurrent use.
type Snapshot struct {
	mu         sync.RWMutex
	categories []models.Category
	meals      []models.Meal
}

func NewSnapshot() *Snapshot {
	return &Snapshot{}
}

// Replace swaps in freshly fetched catalog data
func (s *Snapshot) Replace(categories []models.Category, meals []models.Meal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
	s.meals = append([]models.Meal(nil), meals...)
}

// ActiveCategories returns visible categories sorted by their sort rank
func (s *Snapshot) ActiveCategories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Category
	for _, c := range s.categories {
		if c.Active {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Query selects meals for display. CategoryID 0 means all categories;
// Search matches name or description case-insensitively; Limit caps the
// result (0 means no cap). IncludeInactive is set on admin pages.
type Query struct {
	CategoryID      uint
	Search          string
	Limit           int
	IncludeInactive bool
}

// VisibleMeals applies the query and reports whether more meals remain
// beyond the limit
func (s *Snapshot) VisibleMeals(q Query) (meals []models.Meal, hasMore bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(q.Search))
	var matched []models.Meal
	for _, m := range s.meals {
		if !q.IncludeInactive && !m.Active {
			continue
		}
		if q.CategoryID != 0 && m.CategoryID != q.CategoryID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Name), search) &&
			!strings.Contains(strings.ToLower(m.Description), search) {
			continue
		}
		matched = append(matched, m)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].Order < matched[j].Order })

	if q.Limit > 0 && len(matched) > q.Limit {
		return matched[:q.Limit], true
	}
	return matched, false
}

// ToggleMealActive flips a meal's visibility locally and returns its new
// state for the follow-up network update. The flip happens before the
// network call; a failed call should Replace the snapshot with server data.
func (s *Snapshot) ToggleMealActive(id uint) (active bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.meals {
		if s.meals[i].ID == id {
			s.meals[i].Active = !s.meals[i].Active
			return s.meals[i].Active, true
		}
	}
	return false, false
}

// Pager implements "load more" chunked reveal. The limit grows by one chunk
// per More call and resets when the filter changes.
type Pager struct {
	chunk int
	limit int
}

func NewPager(chunk int) *Pager {
	return &Pager{chunk: chunk, limit: chunk}
}

func (p *Pager) Limit() int { return p.limit }

// More extends the visible window by one chunk
func (p *Pager) More() { p.limit += p.chunk }

// Reset collapses the window back to a single chunk
func (p *Pager) Reset() { p.limit = p.chunk }

// CartLine is one cart entry. The total recomputes from the current
// quantity and size selection; a chosen size's price overrides the meal
// price.
type CartLine struct {
	Meal     models.Meal
	Size     *models.MealSize
	Quantity int
}

func (l CartLine) UnitPrice() float64 {
	if l.Size != nil {
		return l.Size.Price
	}
	return l.Meal.Price
}

func (l CartLine) Total() float64 {
	return l.UnitPrice() * float64(l.Quantity)
}

// SelectSize switches the line to the meal size with the given id, or back
// to the base price when the size is unknown
func (l *CartLine) SelectSize(sizeID uint) {
	for i := range l.Meal.Sizes {
		if l.Meal.Sizes[i].ID == sizeID {
			l.Size = &l.Meal.Sizes[i]
			return
		}
	}
	l.Size = nil
}
