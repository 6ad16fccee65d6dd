package models

import "time"

// EstablishmentSettings é uma linha única com os dados institucionais do site.
type EstablishmentSettings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20" json:"phone"`
	Email    string `gorm:"size:100" json:"email"`
	Address  string `gorm:"size:255" json:"address"`
	MapsURL  string `gorm:"size:255" json:"maps_url"`
	About    string `gorm:"size:1000" json:"about"`

	Instagram string `gorm:"size:100" json:"instagram"`
	WhatsApp  string `gorm:"size:20" json:"whatsapp"`

	OpeningHoursText string `gorm:"size:255" json:"opening_hours_text"`

	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
