package handlers

import (
	"database/sql"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mukuru1/UbuzimaHC-2/internal/auth"
	"github.com/mukuru1/UbuzimaHC-2/internal/middleware"
	"github.com/mukuru1/UbuzimaHC-2/internal/models"
	"github.com/mukuru1/UbuzimaHC-2/internal/supabase"
)

const maxPhotoSize = 5 << 20 // 5 MiB

// PhotoUploader stores a profile photo and returns its storage path and
// public URL.
type PhotoUploader interface {
	UploadProfilePhoto(userID uuid.UUID, filename, contentType string, data []byte) (string, string, error)
}

type ProfileHandler struct {
	profiles auth.ProfileStore
	photos   PhotoUploader
}

func NewProfileHandler(profiles auth.ProfileStore, photos PhotoUploader) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, photos: photos}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get profile", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	profile, err := h.profiles.UpdateProfile(c.Request.Context(), userID, req.Fields())
	if err != nil {
		if errors.Is(err, supabase.ErrEmptyUpdate) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no fields to update"})
			return
		}
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update profile", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "photo storage is not configured"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "photo file is required"})
		return
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "photo exceeds 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read photo", Message: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "failed to read photo", Message: err.Error()})
		return
	}

	storagePath, publicURL, err := h.photos.UploadProfilePhoto(id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "failed to upload photo", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.UploadPhotoResponse{
		StoragePath: storagePath,
		PublicURL:   publicURL,
	})
}

func currentUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	userID, ok := value.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	return userID, true
}
