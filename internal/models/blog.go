package models

import "encoding/json"

// GeneratedArticle is either an article ({title, content}) or an error record
// ({error: true, message}).
type GeneratedArticle struct {
	Title   string `json:"title,omitempty" example:"Understanding Goroutines"`
	Content string `json:"content,omitempty" example:"Goroutines are lightweight threads..."`
	Error   bool   `json:"error,omitempty" example:"false"`
	Message string `json:"message,omitempty"`

	// Kind and Stage tell failures apart for logs; they are not part of the wire shape
	Kind  string `json:"-"`
	Stage string `json:"-"`
}

type articleSuccess struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type articleError struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// MarshalJSON emits exactly one shape: {title, content} or {error, message}
func (a GeneratedArticle) MarshalJSON() ([]byte, error) {
	if a.Error {
		return json.Marshal(articleError{Error: true, Message: a.Message})
	}
	return json.Marshal(articleSuccess{Title: a.Title, Content: a.Content})
}

// ArticleFailure builds the error shape of GeneratedArticle
func ArticleFailure(kind, stage, message string) GeneratedArticle {
	return GeneratedArticle{Error: true, Message: message, Kind: kind, Stage: stage}
}

// GenerateBlogRequest is the JSON body for POST /api/v1/blogs/generate
type GenerateBlogRequest struct {
	Title   string `json:"blog_title" form:"blog_title" example:"Why Linux is Better for Devs"`
	Details string `json:"blog_details" form:"blog_details" example:"package managers, terminal, servers"`
}

// BlogPost is a static sample post shown on the blog page
type BlogPost struct {
	Title string
	Data  string
}
