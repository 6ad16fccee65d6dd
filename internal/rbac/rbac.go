package rbac

import (
	"context"

	"gorm.io/gorm"
)

// Ações reconhecidas pelo gate do painel admin.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type Checker struct {
	db *gorm.DB
}

func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// HasPermission verifica se algum grupo do usuário carrega a permissão
// (resource, action).
func (c *Checker) HasPermission(
	ctx context.Context,
	userID uint,
	resource string,
	action string,
) (bool, error) {

	var count int64
	err := c.db.WithContext(ctx).
		Table("permissions").
		Joins("JOIN group_permissions ON group_permissions.permission_id = permissions.id").
		Joins("JOIN user_groups ON user_groups.group_id = group_permissions.group_id").
		Where(
			"user_groups.user_id = ? AND permissions.resource = ? AND permissions.action = ?",
			userID, resource, action,
		).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// ListPermissions devolve todos os pares (resource, action) do usuário,
// usado pelo /me para montar o menu do painel.
func (c *Checker) ListPermissions(
	ctx context.Context,
	userID uint,
) ([]PermissionPair, error) {

	var pairs []PermissionPair
	err := c.db.WithContext(ctx).
		Table("permissions").
		Select("permissions.resource, permissions.action").
		Joins("JOIN group_permissions ON group_permissions.permission_id = permissions.id").
		Joins("JOIN user_groups ON user_groups.group_id = group_permissions.group_id").
		Where("user_groups.user_id = ?", userID).
		Scan(&pairs).Error

	if err != nil {
		return nil, err
	}

	return pairs, nil
}

type PermissionPair struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}
