package models

type Platform struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`
}
