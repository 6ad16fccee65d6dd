package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/middleware"
	"github.com/edbarbearia/barbershop-api/internal/models"
)

// writeAudit registra mutações feitas pelo painel admin. Escrita direta,
// melhor esforço: falha de audit nunca derruba a resposta.
func writeAudit(
	db *gorm.DB,
	c *gin.Context,
	action string,
	entity string,
	entityID string,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   auditUser(c),
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&entry)
}

func auditUser(c *gin.Context) *uint {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			return &id
		}
	}
	return nil
}
