package repository

import (
	"therapy-booking/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	// FindByUsername returns nil (and no error) when the user does not
	// exist, so the caller can fail with a credential error that does not
	// leak which half was wrong.
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
}
