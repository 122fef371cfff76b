package catalog

import (
	"errors"
	"log"

	"restaurant-catalog-api/models"

	"gorm.io/gorm"
)

// OrderInput is an order-placement payload. Item names and prices are
// snapshotted from the live catalog at placement time.
type OrderInput struct {
	CustomerName  string
	CustomerPhone string
	OrderType     string
	Items         []OrderItemInput
}

type OrderItemInput struct {
	MealID   uint
	Quantity int
	SizeID   *uint
}

// PlaceOrder validates the items against the catalog, freezes name and price
// into the order items, computes the total server-side and creates the order
// in status "new".
func (s *Service) PlaceOrder(in OrderInput) (*models.Order, error) {
	if in.CustomerName == "" {
		return nil, invalid("اسم العميل مطلوب")
	}
	if len(in.Items) == 0 {
		return nil, invalid("الطلب فارغ")
	}

	var orderItems []models.OrderItem
	var total float64
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, invalid("الكمية غير صحيحة")
		}
		var meal models.Meal
		if err := s.db.Preload("Sizes").First(&meal, item.MealID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, invalid("الوجبة غير موجودة")
			}
			return nil, err
		}

		name := meal.Name
		price := meal.Price
		if item.SizeID != nil {
			found := false
			for _, sz := range meal.Sizes {
				if sz.ID == *item.SizeID {
					name = meal.Name + " - " + sz.Name
					price = sz.Price
					found = true
					break
				}
			}
			if !found {
				return nil, invalid("الحجم غير موجود")
			}
		}

		total += price * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MealID:   meal.ID,
			MealName: name,
			Quantity: item.Quantity,
			Price:    price,
		})
	}

	order := models.Order{
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Status:        models.StatusNew,
		Total:         total,
		OrderType:     in.OrderType,
		Items:         orderItems,
	}
	if err := s.db.Create(&order).Error; err != nil {
		return nil, err
	}
	log.Printf("Order created: %d", order.ID)
	return &order, nil
}

// ListOrders returns orders with items, newest first, optionally filtered by
// status, together with a per-status summary
func (s *Service) ListOrders(status string) ([]models.Order, map[string]int, error) {
	var orders []models.Order
	q := s.db.Preload("Items")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, nil, err
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	return orders, summary, nil
}

// CleanupOrders deletes every order in a terminal status together with its
// items and returns the count deleted. Safe to run repeatedly.
func (s *Service) CleanupOrders() (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Order{}).
			Where("status IN ?", models.TerminalStatuses).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("order_id IN ?", ids).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Where("id IN ?", ids).Delete(&models.Order{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		log.Printf("Cleanup deleted %d terminal orders", deleted)
	}
	return deleted, nil
}
