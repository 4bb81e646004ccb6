package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services/excel"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

const (
	homeTitle     = "Home Dashboard"
	scrapperTitle = "LinkedIn Scrapper"
	blogsTitle    = "Blog Showcase"
)

// StaticBlogs are the sample posts listed beside the generator
var StaticBlogs = []models.BlogPost{
	{
		Title: "Understanding Rails MVC",
		Data:  "Model-View-Controller (MVC) is an architectural pattern that separates an application into three main logical components: the model, the view, and the controller...",
	},
	{
		Title: "Why Linux is Better for Devs",
		Data:  "Linux offers superior package management, native support for most server-side languages, and a powerful terminal environment that Windows is still catching up to...",
	},
}

// PagesHandler serves the dashboard's HTML pages and their forms.
// Form posts always re-render the page with 422 so the hypermedia
// frontend swaps it in place instead of expecting a redirect.
type PagesHandler struct {
	outreach *Outreach
	pages    map[string]*template.Template
	basePath string
}

func NewPagesHandler(outreach *Outreach, pages map[string]*template.Template, basePath string) *PagesHandler {
	return &PagesHandler{
		outreach: outreach,
		pages:    pages,
		basePath: basePath,
	}
}

// Home renders the dialer page
func (h *PagesHandler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, "home", gin.H{"Title": homeTitle})
}

// MakeCall dials every number from the phone_numbers form field
func (h *PagesHandler) MakeCall(c *gin.Context) {
	raw := c.PostForm("phone_numbers")
	data := gin.H{"Title": homeTitle, "PhoneNumbers": raw}

	results, err := h.outreach.PlaceCalls(detach(c.Request.Context()), raw)
	if err != nil {
		data["Alert"] = "Please enter at least one number."
	} else {
		data["Results"] = results
		data["Notice"] = fmt.Sprintf("Processed %d numbers.", len(results))
	}

	h.render(c, http.StatusUnprocessableEntity, "home", data)
}

// Scrapper renders the scraper page
func (h *PagesHandler) Scrapper(c *gin.Context) {
	h.render(c, http.StatusOK, "scrapper", gin.H{"Title": scrapperTitle})
}

// ScrapeURLs submits the urls form field to the scraper and exports the profiles
func (h *PagesHandler) ScrapeURLs(c *gin.Context) {
	raw := c.PostForm("urls")
	data := gin.H{"Title": scrapperTitle, "URLs": raw}

	outcome, _, err := h.outreach.Scrape(detach(c.Request.Context()), raw)
	if err != nil {
		data["Alert"] = "Please enter at least one URL."
		h.render(c, http.StatusUnprocessableEntity, "scrapper", data)
		return
	}

	data["Notice"] = "Scraping finished."
	data["RawResponse"] = prettyJSON(outcome)
	if !outcome.Succeeded() {
		data["Failure"] = outcome.Failure
		h.render(c, http.StatusUnprocessableEntity, "scrapper", data)
		return
	}

	profiles := outcome.Profiles()
	rows := make([][]string, 0, len(profiles))
	for _, profile := range profiles {
		rows = append(rows, excel.ProfileRow(profile))
	}
	data["Columns"] = excel.ProfileColumns
	data["Profiles"] = rows

	if len(profiles) > 0 {
		if result, err := h.outreach.Export(outcome); err != nil {
			logrus.Errorf("Failed to export scraped profiles: %v", err)
		} else {
			data["ExportURL"] = fmt.Sprintf("%s/exports/%s", h.basePath, result.Filename)
		}
	}

	h.render(c, http.StatusUnprocessableEntity, "scrapper", data)
}

// Blogs renders the blog showcase
func (h *PagesHandler) Blogs(c *gin.Context) {
	h.render(c, http.StatusOK, "blogs", gin.H{"Title": blogsTitle, "StaticBlogs": StaticBlogs})
}

// GenerateBlog generates an article from the blog_title and blog_details form fields
func (h *PagesHandler) GenerateBlog(c *gin.Context) {
	title := c.PostForm("blog_title")
	details := c.PostForm("blog_details")
	data := gin.H{
		"Title":       blogsTitle,
		"StaticBlogs": StaticBlogs,
		"BlogTitle":   title,
		"BlogDetails": details,
	}

	article, err := h.outreach.GenerateBlog(detach(c.Request.Context()), title, details)
	switch {
	case err != nil:
		data["Alert"] = err.Error()
	case article.Error:
		data["Alert"] = article.Message
	default:
		data["Notice"] = "Content generated successfully!"
		data["Article"] = &article
	}

	h.render(c, http.StatusUnprocessableEntity, "blogs", data)
}

func (h *PagesHandler) render(c *gin.Context, status int, page string, data gin.H) {
	tmpl, ok := h.pages[page]
	if !ok {
		err := errors.New("template not found: " + page)
		utils.CaptureError(err, map[string]string{"page": page})
		c.String(http.StatusInternalServerError, "Template not found")
		return
	}

	data["Page"] = page
	c.Render(status, render.HTML{Template: tmpl, Name: "base.html", Data: data})
}

func prettyJSON(outcome models.ScrapeOutcome) string {
	raw, err := json.Marshal(outcome)
	if err != nil {
		return ""
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}
