package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
)

type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

type SettingsRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Phone            string `json:"phone" binding:"omitempty,max=20"`
	Email            string `json:"email" binding:"omitempty,email"`
	Address          string `json:"address" binding:"max=255"`
	MapsURL          string `json:"maps_url" binding:"max=255"`
	About            string `json:"about" binding:"max=1000"`
	Instagram        string `json:"instagram" binding:"max=100"`
	WhatsApp         string `json:"whatsapp" binding:"max=20"`
	OpeningHoursText string `json:"opening_hours_text" binding:"max=255"`
	Timezone         string `json:"timezone" binding:"max=50"`
}

func (h *SettingsHandler) Get(c *gin.Context) {
	var settings models.EstablishmentSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Timezone inválido.")
		return
	}

	// linha única: cria se não existe, atualiza se existe
	var settings models.EstablishmentSettings
	if err := h.db.First(&settings).Error; err != nil {
		settings = models.EstablishmentSettings{}
	}

	settings.Name = req.Name
	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.Address = req.Address
	settings.MapsURL = req.MapsURL
	settings.About = req.About
	settings.Instagram = req.Instagram
	settings.WhatsApp = req.WhatsApp
	settings.OpeningHoursText = req.OpeningHoursText
	if req.Timezone != "" {
		settings.Timezone = req.Timezone
	}

	if err := h.db.Save(&settings).Error; err != nil {
		httperr.Internal(c, "failed_to_update_settings", "Erro ao salvar configurações.")
		return
	}

	writeAudit(h.db, c, "settings_updated", "settings", "1", nil)
	httpresp.OK(c, settings)
}
