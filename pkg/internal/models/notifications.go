package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel

	AccountID uint              `json:"account_id"`
	Topic     string            `json:"topic"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	ReadAt    *time.Time        `json:"read_at"`
}
