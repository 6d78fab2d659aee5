package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Rating              int       `gorm:"not null"`
	Content             string    `gorm:"type:text;not null"`
	Email               string    `gorm:"type:varchar(255);not null"`
	Name                *string   `gorm:"type:varchar(255)"`
	SocialMediaProfile  *string   `gorm:"type:varchar(512)"`
	ConsentForMarketing bool      `gorm:"not null;default:false"`
	IsPublished         bool      `gorm:"not null;default:false;index"`
	ProjectId           uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt           time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
