package catalog

import (
	"errors"
	"log"
	"strings"

	"restaurant-catalog-api/cache"
	"restaurant-catalog-api/models"

	"gorm.io/gorm"
)

// CategoryInput carries a create-or-update payload. A nil ID means create.
// Nil Order/Active mean "use the default" (0 / true); Order is never changed
// on update.
type CategoryInput struct {
	ID     *uint
	Name   string
	Icon   string
	Order  *int
	Active *bool
}

// ListCategories returns categories ordered by sort rank, from cache when
// possible. all=false filters to active categories only; the two variants
// live under separate cache keys sharing the categories tag.
func (s *Service) ListCategories(all bool) ([]models.Category, error) {
	key := keyCategoriesActive
	if all {
		key = keyCategoriesAll
	}
	return cache.GetOrFetch(s.cache, key, TagCategories, func() ([]models.Category, error) {
		var categories []models.Category
		q := s.db.Order("`order` asc")
		if !all {
			q = q.Where("active = ?", true)
		}
		if err := q.Find(&categories).Error; err != nil {
			return nil, err
		}
		return categories, nil
	})
}

// SaveCategory validates and persists a category, creating when no id is
// supplied and updating name/icon/active otherwise. Invalidates the
// categories cache tag on success.
func (s *Service) SaveCategory(in CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("اسم القسم مطلوب")
	}
	if strings.TrimSpace(in.Icon) == "" {
		return nil, invalid("أيقونة القسم مطلوبة")
	}

	// Name must be unique across all categories, active or not
	dup := s.db.Model(&models.Category{}).Where("name = ?", in.Name)
	if in.ID != nil {
		dup = dup.Where("id <> ?", *in.ID)
	}
	var count int64
	if err := dup.Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, invalid("يوجد قسم بنفس الاسم")
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	// ID present -> update; order is deliberately left untouched
	if in.ID != nil {
		var category models.Category
		if err := s.db.First(&category, *in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		updates := map[string]any{
			"name":   in.Name,
			"icon":   in.Icon,
			"active": active,
		}
		if err := s.db.Model(&category).Updates(updates).Error; err != nil {
			return nil, err
		}
		log.Printf("Category updated: %d", category.ID)
		s.cache.Invalidate(TagCategories)
		return &category, nil
	}

	order := 0
	if in.Order != nil {
		order = *in.Order
	}
	category := models.Category{
		Name:   in.Name,
		Icon:   in.Icon,
		Order:  order,
		Active: active,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	log.Printf("Category created: %d", category.ID)
	s.cache.Invalidate(TagCategories)
	return &category, nil
}

// DeleteCategory removes a category and its meals (store-level cascade).
// Invalidates both cache tags since meals go with the category.
func (s *Service) DeleteCategory(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var mealIDs []uint
		if err := tx.Model(&models.Meal{}).Where("category_id = ?", id).Pluck("id", &mealIDs).Error; err != nil {
			return err
		}
		if len(mealIDs) > 0 {
			if err := tx.Where("meal_id IN ?", mealIDs).Delete(&models.MealSize{}).Error; err != nil {
				return err
			}
			if err := tx.Where("category_id = ?", id).Delete(&models.Meal{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return err
	}
	log.Printf("Category deleted: %d", id)
	s.cache.Invalidate(TagCategories)
	s.cache.Invalidate(TagMeals)
	return nil
}
