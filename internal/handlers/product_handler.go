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

type ProductHandler struct {
	db       *gorm.DB
	checkout *payments.Checkout
}

// checkout pode ser nulo quando o access token não está configurado
func NewProductHandler(db *gorm.DB, checkout *payments.Checkout) *ProductHandler {
	return &ProductHandler{db: db, checkout: checkout}
}

type ProductRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	Description string  `json:"description" binding:"max=255"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageURL    string  `json:"image_url" binding:"max=255"`
	IsActive    *bool   `json:"is_active"`
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *ProductHandler) ListCategories(c *gin.Context) {
	var categories []models.ProductCategory
	if err := h.db.Order("name ASC").Find(&categories).Error; err != nil {
		httperr.Internal(c, "failed_to_list_categories", "Erro ao listar categorias.")
		return
	}
	httpresp.List(c, categories)
}

func (h *ProductHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	category := models.ProductCategory{Name: req.Name}
	if err := h.db.Create(&category).Error; err != nil {
		httperr.Conflict(c, "category_exists", "Categoria já existe.")
		return
	}

	httpresp.Created(c, category)
}

// ======================================================
// PRODUCTS
// ======================================================

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.db.
		Preload("Category").
		Order("name ASC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Erro ao listar produtos.")
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.Product{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Erro ao criar produto.")
		return
	}

	writeAudit(h.db, c, "product_created", "product", fmt.Sprint(product.ID), nil)
	httpresp.Created(c, product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product.CategoryID = req.CategoryID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Erro ao atualizar produto.")
		return
	}

	writeAudit(h.db, c, "product_updated", "product", fmt.Sprint(product.ID), nil)
	httpresp.OK(c, product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Product{}, id)
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	writeAudit(h.db, c, "product_deleted", "product", id, nil)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// CHECKOUT (Mercado Pago)
// ======================================================

func (h *ProductHandler) CheckoutLink(c *gin.Context) {
	if h.checkout == nil {
		httperr.Internal(c, "payments_disabled", "Pagamentos não configurados.")
		return
	}

	id := c.Param("id")

	var product models.Product
	if err := h.db.Where("id = ? AND is_active = true", id).First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	link, err := h.checkout.CreateLink(
		c.Request.Context(),
		payments.CheckoutItem{
			Reference:   fmt.Sprintf("product-%d", product.ID),
			Title:       product.Name,
			Description: product.Description,
			PictureURL:  product.ImageURL,
			UnitPrice:   product.Price,
		},
	)
	if err != nil {
		httperr.Internal(c, "checkout_failed", "Erro ao criar link de pagamento.")
		return
	}

	httpresp.OK(c, link)
}
