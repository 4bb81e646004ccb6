package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// ActivityLister reads stored activity entries
type ActivityLister interface {
	List(kind string, limit, offset int) ([]*models.ActivityLog, int64, error)
}

type ActivityHandler struct {
	activity ActivityLister
	sseHub   *services.SSEHub
}

func NewActivityHandler(activity ActivityLister, sseHub *services.SSEHub) *ActivityHandler {
	return &ActivityHandler{
		activity: activity,
		sseHub:   sseHub,
	}
}

// ActivityListResponse is a page of activity entries
type ActivityListResponse struct {
	Data       []models.ActivityLogResponse `json:"data"`
	Pagination utils.PaginationResponse     `json:"pagination"`
}

// ListActivity godoc
// @Summary List recent activity
// @Description Get paginated batch summaries, newest first. Requires a configured database.
// @Tags activity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param kind query string false "Activity kind" Enums(call, scrape, blog)
// @Param page query int false "Page" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} ActivityListResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/activity [get]
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	kind := c.Query("kind")
	if !validActivityKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity kind", "details": "kind must be one of call, scrape, blog"})
		return
	}

	page, pageSize := utils.ParsePaginationFromQuery(c.DefaultQuery("page", "1"), c.DefaultQuery("page_size", "20"))

	entries, total, err := h.activity.List(kind, pageSize, utils.CalculateOffset(page, pageSize))
	if err != nil {
		if errors.Is(err, services.ErrActivityStorageDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Failed to list activity: %v", err)
		utils.CaptureError(err, map[string]string{"operation": "list_activity"})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get activity", "details": err.Error()})
		return
	}

	responses := make([]models.ActivityLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = activityToResponse(entry)
	}

	c.JSON(http.StatusOK, ActivityListResponse{
		Data:       responses,
		Pagination: utils.CalculatePaginationInfo(int(total), page, pageSize),
	})
}

// StreamActivity godoc
// @Summary Stream activity via Server-Sent Events (SSE)
// @Description Stream batch summaries as they are recorded
// @Tags activity
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param kind query string false "Activity kind" Enums(call, scrape, blog)
// @Success 200 "SSE stream"
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/activity/stream [get]
func (h *ActivityHandler) StreamActivity(c *gin.Context) {
	kind := c.Query("kind")
	if !validActivityKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity kind", "details": "kind must be one of call, scrape, blog"})
		return
	}
	if kind == "" {
		kind = services.AllActivity
	}

	// Set headers for SSE
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient(kind)
	defer h.sseHub.UnregisterClient(kind, clientChan)

	c.SSEvent("connected", gin.H{
		"kind":    kind,
		"message": "Connected to activity stream",
	})
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: %s", kind)
			return
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

func validActivityKind(kind string) bool {
	switch models.ActivityKind(kind) {
	case "", models.ActivityCall, models.ActivityScrape, models.ActivityBlog:
		return true
	}
	return false
}

func activityToResponse(entry *models.ActivityLog) models.ActivityLogResponse {
	return models.ActivityLogResponse{
		ID:        entry.ID,
		Kind:      entry.Kind,
		Total:     entry.Total,
		Succeeded: entry.Succeeded,
		Failed:    entry.Failed,
		Status:    entry.Status,
		Message:   entry.Message,
		Metadata:  entry.Metadata,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}
}
