package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
	ucBooking "github.com/edbarbearia/barbershop-api/internal/usecase/booking"
	"github.com/edbarbearia/barbershop-api/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db       *gorm.DB
	getSlots *ucBooking.GetSlots
	create   *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	getSlots *ucBooking.GetSlots,
	create *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		getSlots: getSlots,
		create:   create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	BarberID      uint   `json:"barber_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:MM
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" binding:"required,min=8,max=20"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Preload("Category").
		Where("is_active = true").
		Order("category_id ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.Barber
	if err := h.db.
		Where("is_active = true").
		Order("name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

func (h *PublicHandler) ListProducts(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Preload("Category").
		Where("is_active = true").
		Order("name ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}

	httpresp.List(c, products)
}

func (h *PublicHandler) ListCourses(c *gin.Context) {
	var courses []models.Course
	if err := h.db.
		Where("is_active = true").
		Order("name ASC").
		Find(&courses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_courses", "Erro ao listar cursos.")
		return
	}

	httpresp.List(c, courses)
}

func (h *PublicHandler) GetSettings(c *gin.Context) {
	var settings models.EstablishmentSettings
	if err := h.db.First(&settings).Error; err != nil {
		httperr.NotFound(c, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberIDStr := c.Query("barberId")
	serviceIDStr := c.Query("serviceId")
	dateStr := c.Query("date")

	if barberIDStr == "" || serviceIDStr == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "barberId, serviceId e date são obrigatórios.")
		return
	}

	barberID, err1 := strconv.ParseUint(barberIDStr, 10, 64)
	serviceID, err2 := strconv.ParseUint(serviceIDStr, 10, 64)
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_params", "Identificadores inválidos.")
		return
	}

	if !validators.IsDate(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	date, err := timezone.ParseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.getSlots.Execute(
		c.Request.Context(),
		ucBooking.GetSlotsInput{
			BarberID:  uint(barberID),
			ServiceID: uint(serviceID),
			Date:      date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeServiceUnavailable) {
			httperr.NotFound(c, httperr.CodeServiceUnavailable, "Serviço não encontrado.")
			return
		}

		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING (fluxo público → nasce PENDING)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsDate(req.Date) || !validators.IsTime(req.Time) {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ServiceID:     req.ServiceID,
			BarberID:      req.BarberID,
			Date:          req.Date,
			Time:          req.Time,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, b)
}

// mapBookingErrors traduz os códigos de negócio da criação para HTTP.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
	case httperr.IsBusiness(err, httperr.CodePastDate):
		httperr.BadRequest(c, httperr.CodePastDate, "Não é possível agendar horários no passado.")
	case httperr.IsBusiness(err, httperr.CodeServiceUnavailable):
		httperr.NotFound(c, httperr.CodeServiceUnavailable, "Serviço não encontrado ou inativo.")
	case httperr.IsBusiness(err, httperr.CodeBarberUnavailable):
		httperr.NotFound(c, httperr.CodeBarberUnavailable, "Barbeiro não encontrado ou inativo.")
	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		httperr.Conflict(c, httperr.CodeSlotConflict, "Horário não disponível. Por favor, escolha outro.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Erro ao criar agendamento.")
	}
}
