package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/auth"
	"schoolportal/internal/material"
	"schoolportal/internal/uploads"
)

// ListMaterials returns all materials, newest first, with the uploader name.
func (h *Handler) ListMaterials(c *gin.Context) {
	materials, err := h.materials.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if materials == nil {
		materials = []material.Material{}
	}
	c.JSON(http.StatusOK, materials)
}

// CreateMaterial stores a new material from a multipart form. The file part
// is optional; when present it is written to the upload store first.
func (h *Handler) CreateMaterial(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)

	title := c.PostForm("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	in := material.CreateInput{
		Title:       title,
		Description: c.PostForm("description"),
		Subject:     c.PostForm("subject"),
		Class:       c.PostForm("class"),
		UploadedBy:  claims.UserID,
	}

	fh, err := c.FormFile("file")
	switch {
	case err == nil:
		stored, err := h.files.Save(fh)
		if err != nil {
			if errors.Is(err, uploads.ErrFileType) || errors.Is(err, uploads.ErrFileTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		name := fh.Filename
		in.FilePath = &stored
		in.FileName = &name
	case errors.Is(err, http.ErrMissingFile):
		// no attachment
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid upload"})
		return
	}

	id, err := h.materials.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, material.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// A saved file whose row failed to insert stays orphaned on disk.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "material uploaded"})
}

// DeleteMaterial removes the row and its backing file.
func (h *Handler) DeleteMaterial(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid material id"})
		return
	}

	if err := h.materials.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, material.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "material deleted"})
}
