package dbhelper

import (
	"errors"

	"gorm.io/gorm"

	"github.com/armsplatform/apiv1/models"
)

// UserDirectory is the account store consumed by the auth subsystem.
// Emails passed in must already be normalized (trimmed, lower-cased).
type UserDirectory interface {
	// FindByEmail returns (nil, nil) when no account exists for email.
	FindByEmail(email string) (*models.User, error)
	ExistsByEmail(email string) (bool, error)
	// Save creates the user when its ID is zero, updates it otherwise.
	Save(user *models.User) error
	IncrementUploadCount(id uint) error
	// TopContributors lists users by upload count, optionally filtered to
	// a single role (empty role means everyone).
	TopContributors(role models.Role, limit int) ([]models.User, error)
}

// GormUserDirectory backs the directory with the MySQL users table.
type GormUserDirectory struct {
	DB *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{DB: db}
}

func (d *GormUserDirectory) FindByEmail(email string) (*models.User, error) {
	var user models.User
	result := d.DB.Where("email = ?", email).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (d *GormUserDirectory) ExistsByEmail(email string) (bool, error) {
	var count int64
	result := d.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0, result.Error
}

func (d *GormUserDirectory) Save(user *models.User) error {
	return d.DB.Save(user).Error
}

func (d *GormUserDirectory) IncrementUploadCount(id uint) error {
	return d.DB.Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("upload_count", gorm.Expr("upload_count + 1")).Error
}

func (d *GormUserDirectory) TopContributors(role models.Role, limit int) ([]models.User, error) {
	var users []models.User
	query := d.DB.Order("upload_count DESC").Limit(limit)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	result := query.Find(&users)
	return users, result.Error
}
