package models

import (
	"encoding/json"
)

const (
	ScrapeErrorRequestFailed = "API Request Failed"
	ScrapeErrorTimeout       = "Timeout"
	ScrapeErrorConnection    = "Connection Error"
	ScrapeErrorParse         = "Parse Error"
)

// ScrapeFailure is the normalized failure record of the scrape adapter
type ScrapeFailure struct {
	Error   string `json:"error" example:"API Request Failed"`
	Code    string `json:"code,omitempty" example:"504"`
	Message string `json:"message" example:"Gateway Timeout"`
	Body    string `json:"body,omitempty"`
}

type requestFailedRecord struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Body    string `json:"body"`
}

// MarshalJSON always emits code and body for HTTP failures, even when the
// backend sent an empty body. Other kinds omit what they do not carry.
func (f ScrapeFailure) MarshalJSON() ([]byte, error) {
	if f.Error == ScrapeErrorRequestFailed {
		return json.Marshal(requestFailedRecord(f))
	}
	type plain ScrapeFailure
	return json.Marshal(plain(f))
}

// ScrapeOutcome holds either the backend payload, passed through untouched,
// or a failure record.
type ScrapeOutcome struct {
	Payload json.RawMessage
	Failure *ScrapeFailure
}

// Succeeded reports whether the backend returned a payload
func (o ScrapeOutcome) Succeeded() bool {
	return o.Failure == nil
}

// MarshalJSON emits the payload verbatim, or the failure record
func (o ScrapeOutcome) MarshalJSON() ([]byte, error) {
	if o.Failure != nil {
		return json.Marshal(o.Failure)
	}
	if len(o.Payload) == 0 {
		return []byte("null"), nil
	}
	return o.Payload, nil
}

// ScrapedProfile is one entry of the scraping backend's response
type ScrapedProfile struct {
	URL         string         `json:"url"`
	ScrapedData map[string]any `json:"scraped_data"`
}

// Field returns a scraped field as a display string
func (p ScrapedProfile) Field(name string) string {
	value, ok := p.ScrapedData[name]
	if !ok || value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(raw)
}

type scrapeReport struct {
	Count    int              `json:"count"`
	Profiles []ScrapedProfile `json:"profiles"`
}

// Profiles decodes the payload as {count, profiles: [...]} for display and
// export. Payloads in any other shape yield nil.
func (o ScrapeOutcome) Profiles() []ScrapedProfile {
	if o.Failure != nil || len(o.Payload) == 0 {
		return nil
	}
	var report scrapeReport
	if err := json.Unmarshal(o.Payload, &report); err != nil {
		return nil
	}
	return report.Profiles
}

// ScrapeRequest is the JSON body sent to the scraping backend
type ScrapeRequest struct {
	URLs []string `json:"urls"`
}

// ScrapeURLsRequest is the JSON body for POST /api/v1/scrape
type ScrapeURLsRequest struct {
	URLs string `json:"urls" form:"urls" example:"https://www.linkedin.com/in/someone, https://www.linkedin.com/in/another"`
}
