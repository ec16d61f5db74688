package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MaxCategoriesPerUser is the maximum number of categories a single user
// may own. The 11th create is rejected.
const MaxCategoriesPerUser = 10

// Category groups expenses. Every category is owned by the user who
// created it.
type Category struct {
	DefaultModel
	Title       string    `json:"title" example:"Housing"`
	Description string    `json:"description" example:"Rent, mortgage, and repairs"`
	CreatedByID uuid.UUID `json:"createdBy" example:"d428f74c-7e33-482a-9ab3-04e2b7c46bcd"`
	CreatedBy   User      `json:"-"`
}

func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

// BeforeCreate enforces the category limit for the owning user.
func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	err = c.DefaultModel.BeforeCreate(tx)
	if err != nil {
		return err
	}

	var count int64
	err = tx.Model(&Category{}).Where("created_by_id = ?", c.CreatedByID).Count(&count).Error
	if err != nil {
		return err
	}

	if count >= MaxCategoriesPerUser {
		return ErrCategoryLimitReached
	}

	return nil
}
