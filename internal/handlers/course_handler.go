package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/payments"
)

type CourseHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
}

func NewCourseHandler(db *gorm.DB, checkout *payments.Checkout) *CourseHandler {
	return &CourseHandler{db: db, checkout: checkout}
}

type CourseRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	Description   string  `json:"description" binding:"max=500"`
	Price         float64 `json:"price" binding:"min=0"`
	ImageURL      string  `json:"image_url" binding:"max=255"`
	DurationHours int     `json:"duration_hours" binding:"min=0"`
	IsActive      *bool   `json:"is_active"`
}

func (h *CourseHandler) List(c *gin.Context) {
	var courses []models.Course
	if err := h.db.Order("name ASC").Find(&courses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courses", "Erro ao listar cursos.")
		return
	}
	httpresp.List(c, courses)
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	course := models.Course{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		ImageURL:      req.ImageURL,
		DurationHours: req.DurationHours,
		IsActive:      req.IsActive == nil || *req.IsActive,
	}

	if err := h.db.Create(&course).Error; err != nil {
		httperr.Internal(c, "failed_to_create_course", "Erro ao criar curso.")
		return
	}

	writeAudit(h.db, c, "course_created", "course", fmt.Sprint(course.ID), nil)
	httpresp.Created(c, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var course models.Course
	if err := h.db.First(&course, id).Error; err != nil {
		httperr.NotFound(c, "course_not_found", "Curso não encontrado.")
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Price = req.Price
	course.ImageURL = req.ImageURL
	course.DurationHours = req.DurationHours
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := h.db.Save(&course).Error; err != nil {
		httperr.Internal(c, "failed_to_update_course", "Erro ao atualizar curso.")
		return
	}

	writeAudit(h.db, c, "course_updated", "course", fmt.Sprint(course.ID), nil)
	httpresp.OK(c, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Course{}, id)
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "course_not_found", "Curso não encontrado.")
		return
	}

	writeAudit(h.db, c, "course_deleted", "course", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *CourseHandler) CheckoutLink(c *gin.Context) {
	if h.checkout == nil {
		httperr.Internal(c, "payments_disabled", "Pagamentos não configurados.")
		return
	}

	id := c.Param("id")

	var course models.Course
	if err := h.db.Where("id = ? AND is_active = true", id).First(&course).Error; err != nil {
		httperr.NotFound(c, "course_not_found", "Curso não encontrado.")
		return
	}

	link, err := h.checkout.CreateLink(
		c.Request.Context(),
		payments.CheckoutItem{
			Reference:   fmt.Sprintf("course-%d", course.ID),
			Title:       course.Name,
			Description: course.Description,
			PictureURL:  course.ImageURL,
			UnitPrice:   course.Price,
		},
	)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Erro ao criar link de pagamento.")
		return
	}

	httpresp.OK(c, link)
}
