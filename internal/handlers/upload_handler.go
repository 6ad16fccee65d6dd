package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/edbarbearia/barbershop-api/internal/httperr"
	"github.com/edbarbearia/barbershop-api/internal/imaging"
	"github.com/edbarbearia/barbershop-api/internal/storage"
)

// Tamanho máximo aceito para upload (antes da recompressão).
const maxUploadBytes = 10 << 20

type UploadHandler struct {
	uploader *storage.Uploader
}

func NewUploadHandler(uploader *storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload recebe uma imagem multipart, reencoda em webp e grava no bucket.
// Usado pelo painel para fotos de barbeiro, produto e curso.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	if file.Size > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima do limite de 10MB.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao ler imagem.")
		return
	}

	encoded, err := imaging.ToWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Formato de imagem não suportado.")
		return
	}

	key := fmt.Sprintf("media/%s/%s.webp", time.Now().Format("2006-01"), uuid.NewString())

	url, err := h.uploader.Upload(c.Request.Context(), key, encoded, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao enviar imagem.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
