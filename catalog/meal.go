package catalog

import (
	"context"
	"errors"
	"log"
	"strings"

	"restaurant-catalog-api/cache"
	"restaurant-catalog-api/models"
	"restaurant-catalog-api/storage"

	"gorm.io/gorm"
)

// MealInput carries a create-or-update payload. Prices arrive already
// coerced (unparseable values become 0 at the transport layer). A nil Sizes
// means "leave the size set alone"; a non-nil slice replaces it wholesale.
type MealInput struct {
	ID          *uint
	Name        string
	Description string
	Image       *string
	Price       float64
	CategoryID  uint
	Active      *bool
	Popular     bool
	HasSizes    bool
	Order       int
	Sizes       *[]SizeInput
}

type SizeInput struct {
	Name  string
	Price float64
}

// ListMeals returns every meal with its sizes and category, ordered by sort
// rank. One cache entry serves all callers; category filtering happens on
// the cached slice.
func (s *Service) ListMeals() ([]models.Meal, error) {
	return cache.GetOrFetch(s.cache, keyMealsAll, TagMeals, func() ([]models.Meal, error) {
		var meals []models.Meal
		err := s.db.Preload("Sizes").Preload("Category").Order("`order` asc").Find(&meals).Error
		if err != nil {
			return nil, err
		}
		return meals, nil
	})
}

// ListMealsByCategory filters the cached meal list by category id
func (s *Service) ListMealsByCategory(categoryID uint) ([]models.Meal, error) {
	meals, err := s.ListMeals()
	if err != nil {
		return nil, err
	}
	filtered := make([]models.Meal, 0, len(meals))
	for _, m := range meals {
		if m.CategoryID == categoryID {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func normalizeSizes(in []SizeInput, mealID uint) []models.MealSize {
	sizes := make([]models.MealSize, 0, len(in))
	for _, sz := range in {
		name := sz.Name
		if name == "" {
			name = "size"
		}
		sizes = append(sizes, models.MealSize{MealID: mealID, Name: name, Price: sz.Price})
	}
	return sizes
}

// SaveMeal validates and persists a meal. On update with a supplied size
// set, the old MealSize rows are deleted and the new ones created inside a
// single transaction so a failure cannot leave the meal sizeless. Returns
// the meal with sizes and category preloaded; invalidates the meals tag.
func (s *Service) SaveMeal(in MealInput) (*models.Meal, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, invalid("اسم الوجبة مطلوب")
	}
	if in.CategoryID == 0 {
		return nil, invalid("القسم مطلوب")
	}
	var count int64
	if err := s.db.Model(&models.Category{}).Where("id = ?", in.CategoryID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, invalid("القسم مطلوب")
	}
	if in.Price < 0 {
		in.Price = 0
	}

	active := true
	if in.Active != nil {
		active = *in.Active
	}

	var mealID uint
	if in.ID != nil {
		var meal models.Meal
		if err := s.db.First(&meal, *in.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if in.Sizes != nil {
				if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealSize{}).Error; err != nil {
					return err
				}
				if sizes := normalizeSizes(*in.Sizes, meal.ID); len(sizes) > 0 {
					if err := tx.Create(&sizes).Error; err != nil {
						return err
					}
				}
			}
			updates := map[string]any{
				"name":        in.Name,
				"description": in.Description,
				"image":       in.Image,
				"price":       in.Price,
				"category_id": in.CategoryID,
				"active":      active,
				"popular":     in.Popular,
				"has_sizes":   in.HasSizes,
			}
			return tx.Model(&meal).Updates(updates).Error
		})
		if err != nil {
			return nil, err
		}
		mealID = meal.ID
		log.Printf("Meal updated: %d", mealID)
	} else {
		meal := models.Meal{
			Name:        in.Name,
			Description: in.Description,
			Image:       in.Image,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
			Active:      active,
			Popular:     in.Popular,
			HasSizes:    in.HasSizes,
			Order:       in.Order,
		}
		if in.Sizes != nil {
			meal.Sizes = normalizeSizes(*in.Sizes, 0)
		}
		if err := s.db.Create(&meal).Error; err != nil {
			return nil, err
		}
		mealID = meal.ID
		log.Printf("Meal created: %d", mealID)
	}

	s.cache.Invalidate(TagMeals)

	var saved models.Meal
	if err := s.db.Preload("Sizes").Preload("Category").First(&saved, mealID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// DeleteMeal removes a meal and its sizes. Locally stored images are removed
// from disk, remote ones from the asset store; both are best-effort and
// never block the record deletion.
func (s *Service) DeleteMeal(ctx context.Context, id uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if meal.Image != nil && *meal.Image != "" {
		if strings.HasPrefix(*meal.Image, storage.LocalUploadPrefix) {
			if s.local != nil {
				_ = s.local.Delete(ctx, *meal.Image)
			}
		} else if s.images != nil {
			_ = s.images.Delete(ctx, *meal.Image)
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
	if err != nil {
		return err
	}
	log.Printf("Meal deleted: %d", id)
	s.cache.Invalidate(TagMeals)
	return nil
}
