package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FeatureRequest struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text;not null"`
	Email       *string        `gorm:"type:varchar(255)"`
	Name        *string        `gorm:"type:varchar(255)"`
	Status      string         `gorm:"type:varchar(32);not null;default:'NEW';index"`
	Priority    string         `gorm:"type:varchar(32);not null;default:'MEDIUM'"`
	Tags        datatypes.JSON `gorm:"type:jsonb"`
	ProjectId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (FeatureRequest) TableName() string {
	return "feature_requests"
}
