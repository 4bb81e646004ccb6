package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services"
	"github.com/onegreenvn/outreach-dashboard/internal/services/excel"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// CallPlacer dials a single number
type CallPlacer interface {
	MakeCall(ctx context.Context, toNumber string) models.CallResult
}

// URLScraper submits a batch of profile URLs to the scraping backend
type URLScraper interface {
	Process(ctx context.Context, urls []string) models.ScrapeOutcome
}

// ArticleGenerator produces a blog article from a title and details
type ArticleGenerator interface {
	Generate(ctx context.Context, title, details string) models.GeneratedArticle
}

// ActivityRecorder receives a summary of every batch
type ActivityRecorder interface {
	Record(entry *models.ActivityLog)
}

// ProfileExporter writes scraped profiles to a workbook and finds it again for download
type ProfileExporter interface {
	ExportProfiles(profiles []models.ScrapedProfile) (*excel.ExportResult, error)
	ResolveExport(filename string) (string, error)
}

// Outreach runs the dashboard's three actions for both the HTML pages and the JSON API
type Outreach struct {
	calls    CallPlacer
	scraper  URLScraper
	blogs    ArticleGenerator
	exporter ProfileExporter
	activity ActivityRecorder
}

func NewOutreach(calls CallPlacer, scraper URLScraper, blogs ArticleGenerator, exporter ProfileExporter, activity ActivityRecorder) *Outreach {
	return &Outreach{
		calls:    calls,
		scraper:  scraper,
		blogs:    blogs,
		exporter: exporter,
		activity: activity,
	}
}

// ErrTitleRequired is returned when a blog is requested without a title
var ErrTitleRequired = &services.ValidationError{Field: "blog_title", Message: "Title is required!"}

// PlaceCalls dials every number in the comma-separated input, in order
func (o *Outreach) PlaceCalls(ctx context.Context, raw string) ([]models.CallResult, error) {
	results, err := services.RunBatch(ctx, raw, "phone_numbers", o.calls.MakeCall)
	if err != nil {
		return nil, err
	}

	summary := models.SummarizeCalls(results)
	o.record(&models.ActivityLog{
		Kind:      models.ActivityCall,
		Total:     summary.Total,
		Succeeded: summary.Called,
		Failed:    summary.Failed,
		Message:   fmt.Sprintf("Processed %d numbers.", summary.Total),
	})
	return results, nil
}

// Scrape submits every URL in the comma-separated input as one batch
func (o *Outreach) Scrape(ctx context.Context, raw string) (models.ScrapeOutcome, []string, error) {
	urls, err := services.ParseBatchInput(raw, "urls")
	if err != nil {
		return models.ScrapeOutcome{}, nil, err
	}

	outcome := o.scraper.Process(ctx, urls)

	entry := &models.ActivityLog{
		Kind:     models.ActivityScrape,
		Total:    len(urls),
		Metadata: models.JSON{},
	}
	if outcome.Succeeded() {
		entry.Succeeded = len(urls)
		entry.Message = "Scraping finished."
		entry.Metadata["profiles"] = len(outcome.Profiles())
	} else {
		entry.Failed = len(urls)
		entry.Message = outcome.Failure.Message
		entry.Metadata["failure"] = outcome.Failure.Error
		if outcome.Failure.Code != "" {
			entry.Metadata["code"] = outcome.Failure.Code
		}
	}
	o.record(entry)

	return outcome, urls, nil
}

// Export writes the profiles of a successful scrape to a workbook
func (o *Outreach) Export(outcome models.ScrapeOutcome) (*excel.ExportResult, error) {
	if o.exporter == nil {
		return nil, fmt.Errorf("exports are not configured")
	}
	result, err := o.exporter.ExportProfiles(outcome.Profiles())
	if err != nil {
		utils.CaptureError(err, map[string]string{"operation": "export_profiles"})
		return nil, fmt.Errorf("failed to export profiles: %w", err)
	}
	logrus.Infof("Exported scraped profiles to %s", result.Filename)
	return result, nil
}

// GenerateBlog asks the content service for an article. A blank title is a validation error.
func (o *Outreach) GenerateBlog(ctx context.Context, title, details string) (models.GeneratedArticle, error) {
	if strings.TrimSpace(title) == "" {
		return models.GeneratedArticle{}, ErrTitleRequired
	}

	article := o.blogs.Generate(ctx, title, details)

	entry := &models.ActivityLog{Kind: models.ActivityBlog, Total: 1, Metadata: models.JSON{"title": title}}
	if article.Error {
		entry.Failed = 1
		entry.Message = article.Message
		entry.Metadata["failure"] = article.Kind
		if article.Stage != "" {
			entry.Metadata["stage"] = article.Stage
		}
	} else {
		entry.Succeeded = 1
		entry.Message = "Content generated successfully!"
	}
	o.record(entry)

	return article, nil
}

func (o *Outreach) record(entry *models.ActivityLog) {
	if o.activity != nil {
		o.activity.Record(entry)
	}
}

// detach keeps adapter calls running when the browser or API client goes away
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
