package models

import "time"

// AvailabilityRule é um template recorrente de horário aberto do barbeiro.
// ServiceID nulo significa "vale para todos os serviços".
type AvailabilityRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ServiceID *uint    `json:"service_id"`
	Service   *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`

	RecurrenceType string `gorm:"size:10;not null" json:"recurrence_type"` // DAILY | WEEKLY | MONTHLY
	DayOfWeek      string `gorm:"size:10" json:"day_of_week"`              // SUNDAY..SATURDAY, obrigatório se WEEKLY
	DayOfMonth     int    `json:"day_of_month"`                           // 1..31, obrigatório se MONTHLY

	StartTime string `gorm:"size:5;not null" json:"start_time"` // HH:MM
	EndTime   string `gorm:"size:5;not null" json:"end_time"`   // HH:MM

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AvailabilityException sobrepõe todas as regras do barbeiro naquela data.
// No máximo uma exceção por (barbeiro, data).
type AvailabilityException struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"not null;uniqueIndex:idx_exception_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_exception_barber_date" json:"date"`

	Type string `gorm:"size:10;not null" json:"type"` // BLOCKED | SPECIAL

	StartTime string `gorm:"size:5" json:"start_time"` // obrigatório se SPECIAL
	EndTime   string `gorm:"size:5" json:"end_time"`   // obrigatório se SPECIAL

	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
