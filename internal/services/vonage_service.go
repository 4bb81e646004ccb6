package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services/outbound"
	"github.com/onegreenvn/outreach-dashboard/internal/utils"
	"github.com/sirupsen/logrus"
)

// vonageTokenTTL bounds the lifetime of the application JWT sent with each call
const vonageTokenTTL = 15 * time.Minute

type vonageEndpoint struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type vonageCallRequest struct {
	To        []vonageEndpoint `json:"to"`
	From      vonageEndpoint   `json:"from"`
	AnswerURL []string         `json:"answer_url"`
}

type vonageCallResponse struct {
	UUID             string `json:"uuid"`
	Status           string `json:"status"`
	Direction        string `json:"direction"`
	ConversationUUID string `json:"conversation_uuid"`
}

type vonageErrorResponse struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// VonageService places outbound calls through the Vonage Voice API
type VonageService struct {
	cfg    config.VonageConfig
	client *outbound.Client
	now    func() time.Time
}

// NewVonageService creates a new Vonage service
func NewVonageService(cfg config.VonageConfig, client *outbound.Client) *VonageService {
	return &VonageService{
		cfg:    cfg,
		client: client,
		now:    time.Now,
	}
}

// MakeCall dials toNumber once. Every attempt yields exactly one CallResult;
// failures are reported in Details instead of being returned as errors.
func (s *VonageService) MakeCall(ctx context.Context, toNumber string) models.CallResult {
	token, err := s.applicationToken()
	if err != nil {
		logrus.Errorf("Failed to build Vonage credentials for %s: %v", toNumber, err)
		return callFailed(toNumber, err.Error())
	}

	body := vonageCallRequest{
		To:        []vonageEndpoint{{Type: "phone", Number: toNumber}},
		From:      vonageEndpoint{Type: "phone", Number: s.cfg.VirtualNumber},
		AnswerURL: []string{s.cfg.AnswerURL},
	}

	resp, failure := s.client.Send(ctx, outbound.Request{
		Method:     http.MethodPost,
		URL:        strings.TrimSuffix(s.cfg.APIURL, "/") + "/v1/calls",
		Headers:    map[string]string{"Authorization": "Bearer " + token},
		Body:       body,
		Timeout:    s.cfg.Timeout,
		ExpectJSON: true,
	})
	if failure != nil {
		failure = classifyVonageFailure(failure)
		logrus.WithFields(logrus.Fields{
			"number": toNumber,
			"kind":   failure.Kind,
			"code":   failure.Code,
		}).Warnf("Vonage call failed: %s", failure.Message)
		return callFailed(toNumber, failure.Message)
	}

	var created vonageCallResponse
	if err := json.Unmarshal(resp.Body, &created); err != nil || created.UUID == "" {
		logrus.Warnf("Vonage response for %s did not include a call UUID: %s", toNumber, utils.Truncate(resp.Text(), 200))
		return callFailed(toNumber, "Vonage response did not include a call UUID")
	}

	logrus.Infof("Call placed to %s (uuid=%s, status=%s)", toNumber, created.UUID, created.Status)
	return models.CallResult{
		Number:  toNumber,
		Status:  models.CallStatusCalled,
		Details: "UUID: " + created.UUID,
	}
}

// applicationToken signs a Vonage application JWT with the configured private key
func (s *VonageService) applicationToken() (string, error) {
	if s.cfg.ApplicationID == "" {
		return "", fmt.Errorf("vonage application id is not configured")
	}
	if s.cfg.PrivateKeyPath == "" {
		return "", fmt.Errorf("vonage private key path is not configured")
	}

	pemBytes, err := os.ReadFile(s.cfg.PrivateKeyPath)
	if err != nil {
		return "", fmt.Errorf("failed to read vonage private key: %w", err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return "", fmt.Errorf("invalid vonage private key: %w", err)
	}

	now := s.now()
	claims := jwt.MapClaims{
		"application_id": s.cfg.ApplicationID,
		"iat":            now.Unix(),
		"exp":            now.Add(vonageTokenTTL).Unix(),
		"jti":            uuid.New().String(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign vonage token: %w", err)
	}
	return token, nil
}

// classifyVonageFailure prefers the provider's own error title/detail and
// marks credential rejections as provider errors.
func classifyVonageFailure(failure *outbound.Failure) *outbound.Failure {
	if failure.Kind != outbound.KindHTTP {
		return failure
	}

	classified := *failure
	if failure.Code == http.StatusUnauthorized || failure.Code == http.StatusForbidden {
		classified.Kind = outbound.KindProvider
	}

	var providerErr vonageErrorResponse
	if err := json.Unmarshal([]byte(failure.RawBody), &providerErr); err == nil && providerErr.Title != "" {
		if providerErr.Detail != "" {
			classified.Message = fmt.Sprintf("%s: %s", providerErr.Title, providerErr.Detail)
		} else {
			classified.Message = providerErr.Title
		}
		return &classified
	}

	classified.Message = fmt.Sprintf("Vonage API returned %d %s", failure.Code, failure.Message)
	return &classified
}

func callFailed(number, details string) models.CallResult {
	return models.CallResult{
		Number:  number,
		Status:  models.CallStatusFailed,
		Details: details,
	}
}
