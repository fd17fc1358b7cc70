package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"luppolo.dev/Luppolo/configs"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

const maxUploadBytes = 5 << 20

type UploadServer struct {
	config *configs.Config
	logger *zap.Logger
}

func NewUploadServer(config *configs.Config, logger *zap.Logger) *UploadServer {
	return &UploadServer{config: config, logger: logger}
}

// UploadImage stores a pub or beer picture under a fresh uuid filename and
// returns the public URL to put in the referencing record.
func (u *UploadServer) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})

		return
	}

	if file.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})

		return
	}

	extension := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[extension] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})

		return
	}

	filename := uuid.New().String() + extension
	destination := filepath.Join(u.config.Uploads.Directory, filename)

	if err := c.SaveUploadedFile(file, destination); err != nil {
		u.logger.Error("failed to store upload", zap.String("destination", destination), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})

		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": fmt.Sprintf("%s/%s", strings.TrimSuffix(u.config.Uploads.BaseURL, "/"), filename)})
}
