package models

import "time"

type Group struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	Permissions []Permission `gorm:"many2many:group_permissions;" json:"permissions,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permission é o par (resource, action) usado pelo gate do painel admin.
type Permission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Resource    string `gorm:"size:50;not null;uniqueIndex:idx_permission_resource_action" json:"resource"`
	Action      string `gorm:"size:20;not null;uniqueIndex:idx_permission_resource_action" json:"action"` // view | create | update | delete
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
