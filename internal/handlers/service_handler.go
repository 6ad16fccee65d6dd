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

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

type ServiceRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description string  `json:"description" binding:"max=255"`
	// Duração entre 5 e 480 minutos
	DurationMinutes int     `json:"duration_minutes" binding:"required,min=5,max=480"`
	Price           float64 `json:"price" binding:"min=0"`
	IsActive        *bool   `json:"is_active"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *ServiceHandler) ListCategories(c *gin.Context) {
	var categories []models.ServiceCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}
	httpresp.List(c, categories)
}

func (h *ServiceHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.ServiceCategory{Name: req.Name}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Conflict(c, "category_exists", "Categoria já existe.")
		return
	}

	httpresp.Created(c, category)
}

func (h *ServiceHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.ServiceCategory{}, id)
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// SERVICES
// ======================================================

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Preload("Category").
		Order("category_id ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        req.IsActive == nil || *req.IsActive,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	writeAudit(h.db, c, "service_created", "service", strconv.Itoa(int(service.ID)), nil)
	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, id).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service.CategoryID = req.CategoryID
	service.Name = req.Name
	service.Description = req.Description
	service.DurationMinutes = req.DurationMinutes
	service.Price = req.Price
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	writeAudit(h.db, c, "service_updated", "service", strconv.Itoa(int(service.ID)), nil)
	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Service{}, id)
	if res.Error != nil {
		httperr.Conflict(c, "service_in_use", "Serviço possui agendamentos vinculados.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	writeAudit(h.db, c, "service_deleted", "service", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
