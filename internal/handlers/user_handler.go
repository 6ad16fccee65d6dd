package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/httpresp"
	"github.com/edbarbearia/barbershop-api/internal/models"
	"github.com/edbarbearia/barbershop-api/internal/validators"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UserCreateRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	GroupIDs []uint `json:"group_ids"`
}

type UserUpdateRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	IsActive *bool  `json:"is_active"`
	GroupIDs []uint `json:"group_ids"`
}

// ======================================================
// USERS
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	if err := h.db.Preload("Groups").Order("name ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsEmailDomainValid(req.Email) {
		httperr.BadRequest(c, "invalid_email_domain", "Domínio de e-mail inválido.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "hash_error", "Erro ao processar senha.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return h.assignGroups(tx, &user, req.GroupIDs)
	})

	if err != nil {
		httperr.Conflict(c, "user_exists", "E-mail já cadastrado.")
		return
	}

	writeAudit(h.db, c, "user_created", "user", strconv.Itoa(int(user.ID)), nil)
	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user.Name = req.Name
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if req.GroupIDs != nil {
			return h.assignGroups(tx, &user, req.GroupIDs)
		}
		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	writeAudit(h.db, c, "user_updated", "user", strconv.Itoa(int(user.ID)), nil)
	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.User{}, id)
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	writeAudit(h.db, c, "user_deleted", "user", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// GROUPS
// ======================================================

func (h *UserHandler) ListGroups(c *gin.Context) {
	var groups []models.Group
	if err := h.db.Preload("Permissions").Order("name ASC").Find(&groups).Error; err != nil {
		httperr.Internal(c, "failed_to_list_groups", "Erro ao listar grupos.")
		return
	}
	httpresp.List(c, groups)
}

func (h *UserHandler) assignGroups(tx *gorm.DB, user *models.User, groupIDs []uint) error {
	var groups []models.Group
	if len(groupIDs) > 0 {
		if err := tx.Find(&groups, groupIDs).Error; err != nil {
			return err
		}
	}
	return tx.Model(user).Association("Groups").Replace(groups)
}
