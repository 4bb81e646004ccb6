package models

// CallStatus is the outcome of a single dial attempt
type CallStatus string

const (
	CallStatusCalled CallStatus = "Called"
	CallStatusFailed CallStatus = "Failed"
)

// CallResult is produced once per dialled number and never persisted
type CallResult struct {
	Number  string     `json:"number" example:"+15551234567"`
	Status  CallStatus `json:"status" example:"Called"`
	Details string     `json:"details" example:"UUID: 63f61863-4a51-4f6b-86e1-46edebcf9356"`
}

// Succeeded reports whether the provider accepted the call
func (r CallResult) Succeeded() bool {
	return r.Status == CallStatusCalled
}

// CallSummary aggregates a batch of call results
type CallSummary struct {
	Total  int `json:"total" example:"2"`
	Called int `json:"called" example:"1"`
	Failed int `json:"failed" example:"1"`
}

// SummarizeCalls counts successful and failed attempts
func SummarizeCalls(results []CallResult) CallSummary {
	summary := CallSummary{Total: len(results)}
	for _, r := range results {
		if r.Succeeded() {
			summary.Called++
		} else {
			summary.Failed++
		}
	}
	return summary
}

// MakeCallRequest is the JSON body for POST /api/v1/calls
type MakeCallRequest struct {
	PhoneNumbers string `json:"phone_numbers" form:"phone_numbers" example:"+15551234567, +15557654321"`
}

// MakeCallResponse is returned by POST /api/v1/calls
type MakeCallResponse struct {
	Results []CallResult `json:"results"`
	Summary CallSummary  `json:"summary"`
}
