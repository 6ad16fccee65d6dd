package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

type BarberRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone" binding:"omitempty,max=20"`
	Bio      string `json:"bio" binding:"max=255"`
	PhotoURL string `json:"photo_url" binding:"max=255"`
	IsActive *bool  `json:"is_active"`
}

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.Order("name ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}
	httpresp.List(c, barbers)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber := models.Barber{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Bio:      req.Bio,
		PhotoURL: req.PhotoURL,
		IsActive: req.IsActive == nil || *req.IsActive,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	writeAudit(h.db, c, "barber_created", "barber", strconv.Itoa(int(barber.ID)), nil)
	httpresp.Created(c, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	barber.Name = req.Name
	barber.Email = req.Email
	barber.Phone = req.Phone
	barber.Bio = req.Bio
	barber.PhotoURL = req.PhotoURL
	if req.IsActive != nil {
		barber.IsActive = *req.IsActive
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	writeAudit(h.db, c, "barber_updated", "barber", strconv.Itoa(int(barber.ID)), nil)
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Barber{}, id)
	if res.Error != nil {
		httperr.Conflict(c, "barber_in_use", "Barbeiro possui agendamentos vinculados.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	writeAudit(h.db, c, "barber_deleted", "barber", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
