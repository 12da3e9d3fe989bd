package models

type Account struct {
	BaseModel

	Name   string  `json:"name" gorm:"uniqueIndex"`
	Nick   string  `json:"nick"`
	Email  string  `json:"email" gorm:"uniqueIndex"`
	Avatar *string `json:"avatar"`

	PasswordHash string `json:"-"`

	Channels []Channel `json:"channels" gorm:"foreignKey:AccountID"`
}
