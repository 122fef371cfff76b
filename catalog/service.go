// Package catalog owns category and meal reads and writes: cached list
// lookups, validated mutations, and the order maintenance path.
package catalog

import (
	"errors"

	"restaurant-catalog-api/cache"
	"restaurant-catalog-api/storage"

	"gorm.io/gorm"
)

// Cache keys are one-per-variant; tags group every variant of an entity kind
// so a write invalidates all of them at once.
const (
	TagCategories = "categories"
	TagMeals      = "meals"

	keyCategoriesAll    = "categories:all"
	keyCategoriesActive = "categories:active"
	keyMealsAll         = "meals:all"
)

// ErrNotFound is returned when a referenced record does not exist
var ErrNotFound = errors.New("record not found")

// ValidationError carries a localized (Arabic) message for the client.
// Unexpected failures keep English messages.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// IsValidation reports whether err is a validation failure and returns its
// client-facing message
func IsValidation(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	return "", false
}

// Service coordinates the persistent store, the read cache and the image
// stores for all catalog operations. images is the remote asset store;
// local handles legacy on-disk uploads.
type Service struct {
	db     *gorm.DB
	cache  *cache.Store
	images storage.ImageStore
	local  *storage.LocalStore
}

func New(db *gorm.DB, store *cache.Store, images storage.ImageStore, local *storage.LocalStore) *Service {
	return &Service{db: db, cache: store, images: images, local: local}
}
