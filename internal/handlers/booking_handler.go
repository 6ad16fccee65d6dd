package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/middleware"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
	ucBooking "github.com/edbarbearia/barbershop-api/internal/usecase/booking"
	"github.com/edbarbearia/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db           *gorm.DB
	create       *ucBooking.CreateBooking
	updateStatus *ucBooking.UpdateStatus
}

func NewBookingHandler(
	db *gorm.DB,
	create *ucBooking.CreateBooking,
	updateStatus *ucBooking.UpdateStatus,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		create:       create,
		updateStatus: updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StaffCreateBookingRequest struct {
	ServiceID     uint   `json:"service_id" binding:"required"`
	BarberID      uint   `json:"barber_id" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=20"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
}

type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	q := h.db.Preload("Service").Preload("Barber").Order("scheduled_at ASC")

	if barberIDStr := c.Query("barberId"); barberIDStr != "" {
		barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		q = q.Where("barber_id = ?", uint(barberID))
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		q = q.Where("scheduled_at >= ? AND scheduled_at < ?", dayStart, dayStart.Add(24*time.Hour))
	}

	if status := c.Query("status"); status != "" {
		if !domain.IsValidStatus(domain.Status(status)) {
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
			return
		}
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var b models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Barber").
		Where("id = ?", id).
		First(&b).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CREATE (fluxo staff → nasce CONFIRMED, com createdBy)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req StaffCreateBookingRequest
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
			CreatedBy:     &userID,
		},
	)

	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var req BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		&userID,
	)

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeInvalidTransition):
			httperr.BadRequest(c, httperr.CodeInvalidTransition, "Transição de status inválida.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Erro ao atualizar agendamento.")
		}
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Where("id = ?", id).Delete(&models.Booking{})
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_booking", "Erro ao excluir agendamento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "booking_not_found", "Agendamento não encontrado.")
		return
	}

	writeAudit(h.db, c, "booking_deleted", "booking", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
