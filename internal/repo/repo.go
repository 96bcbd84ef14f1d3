package repo

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("email already registered")

type GormRepo struct {
	DB *gorm.DB
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// sqlite and postgres report unique-index violations differently
	// and not every dialector translates them.
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
