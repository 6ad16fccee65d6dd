package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/edbarbearia/barbershop-api/internal/domain/schedule"
	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/timezone"
	"github.com/edbarbearia/barbershop-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// ======================================================
// REQUESTS — payload discriminado por "kind"
// ======================================================

type RuleInput struct {
	BarberID       uint   `json:"barber_id" binding:"required"`
	ServiceID      *uint  `json:"service_id"`
	RecurrenceType string `json:"recurrence_type" binding:"required,oneof=DAILY WEEKLY MONTHLY"`
	DayOfWeek      string `json:"day_of_week"`
	DayOfMonth     int    `json:"day_of_month"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	IsActive       *bool  `json:"is_active"`
}

type ExceptionInput struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=BLOCKED SPECIAL"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reason    string `json:"reason" binding:"max=255"`
}

type AvailabilityCreateRequest struct {
	Kind      string          `json:"kind" binding:"required,oneof=rule exception"`
	Rule      *RuleInput      `json:"rule"`
	Exception *ExceptionInput `json:"exception"`
}

type AvailabilityUpdateRequest struct {
	Kind      string          `json:"kind" binding:"required,oneof=rule exception"`
	ID        uint            `json:"id" binding:"required"`
	Rule      *RuleInput      `json:"rule"`
	Exception *ExceptionInput `json:"exception"`
}

// ======================================================
// VALIDAÇÃO semântica dos payloads
// ======================================================

func validateRule(in *RuleInput) (string, bool) {
	if !validators.IsTime(in.StartTime) || !validators.IsTime(in.EndTime) {
		return "Horários devem estar no formato HH:MM.", false
	}
	if domain.ToMinutes(in.StartTime) >= domain.ToMinutes(in.EndTime) {
		return "Início deve ser antes do fim.", false
	}

	switch in.RecurrenceType {
	case domain.RecurrenceWeekly:
		if !domain.IsDayOfWeek(in.DayOfWeek) {
			return "day_of_week deve ser SUNDAY..SATURDAY para recorrência semanal.", false
		}
	case domain.RecurrenceMonthly:
		if in.DayOfMonth < 1 || in.DayOfMonth > 31 {
			return "day_of_month é obrigatório para recorrência mensal.", false
		}
	}

	return "", true
}

func validateException(in *ExceptionInput) (string, bool) {
	if !validators.IsDate(in.Date) {
		return "Data deve estar no formato YYYY-MM-DD.", false
	}

	if in.Type == domain.ExceptionSpecial {
		if !validators.IsTime(in.StartTime) || !validators.IsTime(in.EndTime) {
			return "Horários são obrigatórios para exceção SPECIAL.", false
		}
		if domain.ToMinutes(in.StartTime) >= domain.ToMinutes(in.EndTime) {
			return "Início deve ser antes do fim.", false
		}
	}

	return "", true
}

// ======================================================
// LIST
// ======================================================

func (h *AvailabilityHandler) List(c *gin.Context) {
	barberIDStr := c.Query("barberId")
	if barberIDStr == "" {
		httperr.BadRequest(c, "missing_barber_id", "barberId é obrigatório.")
		return
	}

	barberID, err := strconv.ParseUint(barberIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	var rules []models.AvailabilityRule
	if err := h.db.
		Preload("Service").
		Where("barber_id = ?", uint(barberID)).
		Order("recurrence_type ASC, day_of_week ASC, start_time ASC").
		Find(&rules).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar disponibilidade.")
		return
	}

	var exceptions []models.AvailabilityException
	if err := h.db.
		Where("barber_id = ?", uint(barberID)).
		Order("date ASC, start_time ASC").
		Find(&exceptions).Error; err != nil {
		httperr.Internal(c, "failed_to_list_availability", "Erro ao listar disponibilidade.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": rules,
		"exceptions":   exceptions,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req AvailabilityCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Kind == "rule" {
		if req.Rule == nil {
			httperr.BadRequest(c, "invalid_request", "Payload de regra ausente.")
			return
		}
		if msg, ok := validateRule(req.Rule); !ok {
			httperr.BadRequest(c, "validation_failed", msg)
			return
		}

		rule := ruleFromInput(req.Rule)
		if err := h.db.Create(rule).Error; err != nil {
			httperr.Internal(c, "failed_to_create_rule", "Erro ao criar regra.")
			return
		}

		writeAudit(h.db, c, "availability_rule_created", "availability_rule", strconv.Itoa(int(rule.ID)), nil)
		c.JSON(http.StatusCreated, rule)
		return
	}

	if req.Exception == nil {
		httperr.BadRequest(c, "invalid_request", "Payload de exceção ausente.")
		return
	}
	if msg, ok := validateException(req.Exception); !ok {
		httperr.BadRequest(c, "validation_failed", msg)
		return
	}

	date, err := timezone.ParseDate(req.Exception.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	// no máximo uma exceção efetiva por (barbeiro, data)
	var count int64
	h.db.Model(&models.AvailabilityException{}).
		Where("barber_id = ? AND date = ?", req.Exception.BarberID, date).
		Count(&count)
	if count > 0 {
		httperr.Conflict(c, httperr.CodeDuplicateException, "Já existe exceção cadastrada para esta data.")
		return
	}

	exception := &models.AvailabilityException{
		BarberID:  req.Exception.BarberID,
		Date:      date,
		Type:      req.Exception.Type,
		StartTime: req.Exception.StartTime,
		EndTime:   req.Exception.EndTime,
		Reason:    req.Exception.Reason,
	}

	if err := h.db.Create(exception).Error; err != nil {
		// índice único (barber_id, date) cobre a corrida entre o count e o insert
		httperr.Conflict(c, httperr.CodeDuplicateException, "Já existe exceção cadastrada para esta data.")
		return
	}

	writeAudit(h.db, c, "availability_exception_created", "availability_exception", strconv.Itoa(int(exception.ID)), nil)
	c.JSON(http.StatusCreated, exception)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Kind == "rule" {
		if req.Rule == nil {
			httperr.BadRequest(c, "invalid_request", "Payload de regra ausente.")
			return
		}
		if msg, ok := validateRule(req.Rule); !ok {
			httperr.BadRequest(c, "validation_failed", msg)
			return
		}

		var rule models.AvailabilityRule
		if err := h.db.First(&rule, req.ID).Error; err != nil {
			httperr.NotFound(c, "rule_not_found", "Regra não encontrada.")
			return
		}

		applyRuleInput(&rule, req.Rule)
		if err := h.db.Save(&rule).Error; err != nil {
			httperr.Internal(c, "failed_to_update_rule", "Erro ao atualizar regra.")
			return
		}

		writeAudit(h.db, c, "availability_rule_updated", "availability_rule", strconv.Itoa(int(rule.ID)), nil)
		c.JSON(http.StatusOK, rule)
		return
	}

	if req.Exception == nil {
		httperr.BadRequest(c, "invalid_request", "Payload de exceção ausente.")
		return
	}
	if msg, ok := validateException(req.Exception); !ok {
		httperr.BadRequest(c, "validation_failed", msg)
		return
	}

	var exception models.AvailabilityException
	if err := h.db.First(&exception, req.ID).Error; err != nil {
		httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
		return
	}

	date, err := timezone.ParseDate(req.Exception.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	exception.BarberID = req.Exception.BarberID
	exception.Date = date
	exception.Type = req.Exception.Type
	exception.StartTime = req.Exception.StartTime
	exception.EndTime = req.Exception.EndTime
	exception.Reason = req.Exception.Reason

	if err := h.db.Save(&exception).Error; err != nil {
		httperr.Conflict(c, httperr.CodeDuplicateException, "Já existe exceção cadastrada para esta data.")
		return
	}

	writeAudit(h.db, c, "availability_exception_updated", "availability_exception", strconv.Itoa(int(exception.ID)), nil)
	c.JSON(http.StatusOK, exception)
}

// ======================================================
// DELETE
// ======================================================

func (h *AvailabilityHandler) Delete(c *gin.Context) {
	kind := c.Query("kind")
	idStr := c.Query("id")

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id é obrigatório.")
		return
	}

	switch kind {
	case "rule":
		res := h.db.Delete(&models.AvailabilityRule{}, uint(id))
		if res.RowsAffected == 0 {
			httperr.NotFound(c, "rule_not_found", "Regra não encontrada.")
			return
		}
	case "exception":
		res := h.db.Delete(&models.AvailabilityException{}, uint(id))
		if res.RowsAffected == 0 {
			httperr.NotFound(c, "exception_not_found", "Exceção não encontrada.")
			return
		}
	default:
		httperr.BadRequest(c, "invalid_kind", "kind inválido (use rule|exception).")
		return
	}

	writeAudit(h.db, c, "availability_"+kind+"_deleted", "availability_"+kind, idStr, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func ruleFromInput(in *RuleInput) *models.AvailabilityRule {
	rule := &models.AvailabilityRule{IsActive: true}
	applyRuleInput(rule, in)
	return rule
}

// applyRuleInput sobrescreve só os campos do payload; ID e created_at da
// linha carregada ficam intactos.
func applyRuleInput(rule *models.AvailabilityRule, in *RuleInput) {
	rule.BarberID = in.BarberID
	rule.ServiceID = in.ServiceID
	rule.RecurrenceType = in.RecurrenceType
	rule.DayOfWeek = in.DayOfWeek
	rule.DayOfMonth = in.DayOfMonth
	rule.StartTime = in.StartTime
	rule.EndTime = in.EndTime
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
}
