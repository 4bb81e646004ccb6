package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services/outbound"
	"github.com/sirupsen/logrus"
)

// ScraperService submits URL batches to the profile scraping backend
type ScraperService struct {
	cfg    config.ScraperConfig
	client *outbound.Client
}

// NewScraperService creates a new scraper service
func NewScraperService(cfg config.ScraperConfig, client *outbound.Client) *ScraperService {
	return &ScraperService{
		cfg:    cfg,
		client: client,
	}
}

// Process sends all urls in a single request. The backend works through them
// one by one, so the request uses the long scraper timeout.
func (s *ScraperService) Process(ctx context.Context, urls []string) models.ScrapeOutcome {
	if urls == nil {
		urls = []string{}
	}

	logrus.Infof("Submitting %d URL(s) to scraper at %s", len(urls), s.cfg.Endpoint)

	resp, failure := s.client.Send(ctx, outbound.Request{
		Method:     http.MethodPost,
		URL:        s.cfg.Endpoint,
		Body:       models.ScrapeRequest{URLs: urls},
		Timeout:    s.cfg.Timeout,
		ExpectJSON: true,
	})
	if failure != nil {
		outcome := scrapeFailure(failure)
		logrus.WithFields(logrus.Fields{
			"urls":  len(urls),
			"error": outcome.Failure.Error,
			"code":  outcome.Failure.Code,
		}).Warnf("Scraper request failed: %s", outcome.Failure.Message)
		return outcome
	}

	return models.ScrapeOutcome{Payload: json.RawMessage(resp.Body)}
}

func scrapeFailure(failure *outbound.Failure) models.ScrapeOutcome {
	var record models.ScrapeFailure
	switch failure.Kind {
	case outbound.KindTimeout:
		record = models.ScrapeFailure{
			Error:   models.ScrapeErrorTimeout,
			Message: "The scraper took too long to respond.",
		}
	case outbound.KindHTTP:
		record = models.ScrapeFailure{
			Error:   models.ScrapeErrorRequestFailed,
			Code:    strconv.Itoa(failure.Code),
			Message: failure.Message,
			Body:    failure.RawBody,
		}
	case outbound.KindParse:
		record = models.ScrapeFailure{
			Error:   models.ScrapeErrorParse,
			Message: failure.Message,
			Body:    failure.RawBody,
		}
	default:
		record = models.ScrapeFailure{
			Error:   models.ScrapeErrorConnection,
			Message: failure.Message,
		}
	}
	return models.ScrapeOutcome{Failure: &record}
}
