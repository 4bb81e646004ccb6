package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/onegreenvn/outreach-dashboard/internal/config"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/onegreenvn/outreach-dashboard/internal/services/outbound"
	"github.com/sirupsen/logrus"
)

const (
	blogTemperature         = 0.59
	blogTopP                = 1
	blogMaxCompletionTokens = 8192

	// ParseFailureMessage is returned for both an unreadable envelope and
	// unreadable article content
	ParseFailureMessage = "Failed to parse LLM JSON response."

	StageRequest  = "request"
	StageEnvelope = "envelope"
	StageContent  = "content"
)

const blogSystemPrompt = `You are an LLM specialized in producing clear, accurate, well-structured technical articles and blog posts. Your job is to take a user-provided title and supporting details, then generate a concise, technically correct, and reader-friendly article.

REQUIRED BEHAVIOR:
1. Use precise technical terminology where appropriate.
2. Use analogies only when they improve clarity.
3. Maintain a friendly, accessible tone without oversimplifying.
4. Organize content logically (introduction, core explanation, examples, conclusion).
5. Avoid unnecessary length; prioritize clarity and relevance.
6. Produce well-structured paragraphs, clean formatting, and coherent flow.
7. Do not invent details not implied by the title or user-provided information.
8. Output **strict JSON** containing only the article fields.

OUTPUT FORMAT (STRICT JSON):
{
  "title": "<article title>",
  "content": "<full article>"
}
`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model               string             `json:"model"`
	Messages            []chatMessage      `json:"messages"`
	Temperature         float64            `json:"temperature"`
	MaxCompletionTokens int                `json:"max_completion_tokens"`
	TopP                float64            `json:"top_p"`
	Stream              bool               `json:"stream"`
	ResponseFormat      chatResponseFormat `json:"response_format"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// articlePayload fields are pointers so missing keys can be told apart from empty strings
type articlePayload struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// BlogService generates blog articles through an OpenAI-compatible chat API
type BlogService struct {
	cfg    config.GroqConfig
	client *outbound.Client
}

// NewBlogService creates a new blog service
func NewBlogService(cfg config.GroqConfig, client *outbound.Client) *BlogService {
	return &BlogService{
		cfg:    cfg,
		client: client,
	}
}

// Generate asks the model for an article. The article arrives as a JSON
// string inside the response envelope, so the body is decoded twice.
func (s *BlogService) Generate(ctx context.Context, title, details string) models.GeneratedArticle {
	body := chatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: blogSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("generate article on this title= %s, details= \"%s\"", title, details)},
		},
		Temperature:         blogTemperature,
		MaxCompletionTokens: blogMaxCompletionTokens,
		TopP:                blogTopP,
		Stream:              false,
		ResponseFormat:      chatResponseFormat{Type: "json_object"},
	}

	resp, failure := s.client.Send(ctx, outbound.Request{
		Method:  http.MethodPost,
		URL:     s.cfg.APIURL,
		Headers: map[string]string{"Authorization": "Bearer " + s.cfg.APIKey},
		Body:    body,
		Timeout: s.cfg.Timeout,
	})
	if failure != nil {
		logrus.WithFields(logrus.Fields{
			"kind": failure.Kind,
			"code": failure.Code,
		}).Warnf("Blog generation request failed: %s", failure.Message)
		if failure.Kind == outbound.KindHTTP {
			return models.ArticleFailure(string(failure.Kind), StageRequest, fmt.Sprintf("API Error: %d - %s", failure.Code, failure.Message))
		}
		return models.ArticleFailure(string(failure.Kind), StageRequest, failure.Message)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Warnf("Blog generation returned unexpected status %d", resp.StatusCode)
		return models.ArticleFailure(string(outbound.KindHTTP), StageRequest, fmt.Sprintf("API Error: %d - %s", resp.StatusCode, resp.Status))
	}

	var envelope chatCompletionResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		logrus.Warnf("Failed to decode chat completion envelope: %v", err)
		return models.ArticleFailure(string(outbound.KindParse), StageEnvelope, ParseFailureMessage)
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == nil {
		logrus.Warn("Chat completion envelope has no message content")
		return models.ArticleFailure(string(outbound.KindParse), StageEnvelope, ParseFailureMessage)
	}

	var article articlePayload
	if err := json.Unmarshal([]byte(*envelope.Choices[0].Message.Content), &article); err != nil {
		logrus.Warnf("Failed to decode article content: %v", err)
		return models.ArticleFailure(string(outbound.KindParse), StageContent, ParseFailureMessage)
	}
	if article.Title == nil || article.Content == nil {
		logrus.Warn("Article content is missing title or content")
		return models.ArticleFailure(string(outbound.KindParse), StageContent, ParseFailureMessage)
	}

	logrus.Infof("Generated article %q (%d chars)", *article.Title, len(*article.Content))
	return models.GeneratedArticle{
		Title:   *article.Title,
		Content: *article.Content,
	}
}
