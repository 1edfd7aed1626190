package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolportal/internal/attendance"
	"schoolportal/internal/auth"
)

// ListAttendance returns the caller's records; staff see every student's.
func (h *Handler) ListAttendance(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)
	records, err := h.attendance.ListFor(c.Request.Context(), claims.UserID, claims.Role.Staff())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if records == nil {
		records = []attendance.Record{}
	}
	c.JSON(http.StatusOK, records)
}

type submitAttendanceRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// SubmitAttendance records today's attendance for the calling student.
func (h *Handler) SubmitAttendance(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)

	var req submitAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rec, err := h.attendance.Submit(c.Request.Context(), claims.UserID, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, attendance.ErrAlreadyMarked):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, attendance.ErrBadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "attendance marked", "attendance": rec})
}

// AttendanceToday reports whether the calling student has a record today.
func (h *Handler) AttendanceToday(c *gin.Context) {
	claims, _ := auth.ClaimsFrom(c)
	rec, err := h.attendance.TodayStatus(c.Request.Context(), claims.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hasAttendance": rec != nil, "attendance": rec})
}
