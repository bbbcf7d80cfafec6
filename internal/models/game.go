package models

// Game references its platform with clear-on-delete semantics: removing a
// platform nulls the reference instead of cascading into the game rows.
type Game struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Completed  bool      `gorm:"not null;default:false" json:"completed"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	PlatformID *uint     `gorm:"index" json:"platformId"`
	Platform   *Platform `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE" json:"platform,omitempty"`
}
