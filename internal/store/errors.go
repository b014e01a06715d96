package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/stammy-cpu/Jtech/internal/domain"
)

// translate maps gorm's absence sentinel onto the domain taxonomy so callers
// never see driver-level errors.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
