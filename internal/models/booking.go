package models

import "time"

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ServiceID uint    `gorm:"index;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	BarberID uint   `gorm:"index;not null" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"barber"`

	ScheduledAt time.Time `gorm:"index;not null" json:"scheduled_at"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	// Usuário staff que criou o agendamento (nulo no fluxo público)
	CreatedBy *uint `json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EndTime deriva o fim do atendimento; nunca é persistido.
func (b *Booking) EndTime() time.Time {
	return b.ScheduledAt.Add(time.Duration(b.Service.DurationMinutes) * time.Minute)
}
