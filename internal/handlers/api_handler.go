package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/sirupsen/logrus"
)

// APIHandler exposes the dashboard actions as JSON endpoints
type APIHandler struct {
	outreach *Outreach
	basePath string
}

func NewAPIHandler(outreach *Outreach, basePath string) *APIHandler {
	return &APIHandler{
		outreach: outreach,
		basePath: basePath,
	}
}

// MakeCalls godoc
// @Summary Place outbound calls
// @Description Dial every number in a comma-separated list, one after another. Per-number failures are reported in the results.
// @Tags calls
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.MakeCallRequest true "Comma-separated phone numbers"
// @Success 200 {object} models.MakeCallResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/calls [post]
func (h *APIHandler) MakeCalls(c *gin.Context) {
	var req models.MakeCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	results, err := h.outreach.PlaceCalls(detach(c.Request.Context()), req.PhoneNumbers)
	if err != nil {
		validationResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MakeCallResponse{
		Results: results,
		Summary: models.SummarizeCalls(results),
	})
}

// Scrape godoc
// @Summary Scrape profiles
// @Description Submit a comma-separated list of profile URLs to the scraping backend. The backend's JSON is returned unchanged, or a failure record ({error, code, message, body}).
// @Tags scrape
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.ScrapeURLsRequest true "Comma-separated profile URLs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/scrape [post]
func (h *APIHandler) Scrape(c *gin.Context) {
	var req models.ScrapeURLsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	outcome, _, err := h.outreach.Scrape(detach(c.Request.Context()), req.URLs)
	if err != nil {
		validationResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// ScrapeAndExport godoc
// @Summary Scrape profiles and export them to Excel
// @Description Scrape the given profile URLs and redirect to the generated workbook
// @Tags scrape
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.ScrapeURLsRequest true "Comma-separated profile URLs"
// @Success 302 {string} string "Redirect to download URL"
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 502 {object} models.ScrapeFailure
// @Router /api/v1/scrape/export [post]
func (h *APIHandler) ScrapeAndExport(c *gin.Context) {
	var req models.ScrapeURLsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	outcome, _, err := h.outreach.Scrape(detach(c.Request.Context()), req.URLs)
	if err != nil {
		validationResponse(c, err)
		return
	}
	if !outcome.Succeeded() {
		c.JSON(http.StatusBadGateway, outcome.Failure)
		return
	}

	result, err := h.outreach.Export(outcome)
	if err != nil {
		logrus.Errorf("Failed to export scraped profiles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	downloadURL := fmt.Sprintf("%s/api/v1/exports/%s", h.basePath, result.Filename)
	c.Redirect(http.StatusFound, downloadURL)
}

// GenerateBlog godoc
// @Summary Generate a blog article
// @Description Generate an article for a title and optional details. Generation failures are returned as {error: true, message}.
// @Tags blogs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.GenerateBlogRequest true "Blog title and details"
// @Success 200 {object} models.GeneratedArticle
// @Failure 400 {object} map[string]interface{}
// @Router /api/v1/blogs/generate [post]
func (h *APIHandler) GenerateBlog(c *gin.Context) {
	var req models.GenerateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	article, err := h.outreach.GenerateBlog(detach(c.Request.Context()), req.Title, req.Details)
	if err != nil {
		validationResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

func validationResponse(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
