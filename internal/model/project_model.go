package model

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Slug         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ApiKey       string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	Domain       *string   `gorm:"type:varchar(255)"`
	Language     string    `gorm:"type:varchar(8);not null;default:'en'"`
	HideBranding bool      `gorm:"not null;default:false"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Project) TableName() string {
	return "projects"
}
