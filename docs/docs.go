// OpenAPI document served at /swagger. It mirrors the handler annotations;
// regenerate with `swag init -g docs/swagger.go -o docs`.

package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.one-green.io/support",
            "email": "support@one-green.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/activity": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Get paginated batch summaries, newest first. Requires a configured database.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "List recent activity",
                "parameters": [
                    {
                        "enum": [
                            "call",
                            "scrape",
                            "blog"
                        ],
                        "type": "string",
                        "description": "Activity kind",
                        "name": "kind",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "Page",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "Page size",
                        "name": "page_size",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handlers.ActivityListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/activity/stream": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Stream batch summaries as they are recorded",
                "produces": [
                    "text/event-stream"
                ],
                "tags": [
                    "activity"
                ],
                "summary": "Stream activity via Server-Sent Events (SSE)",
                "parameters": [
                    {
                        "enum": [
                            "call",
                            "scrape",
                            "blog"
                        ],
                        "type": "string",
                        "description": "Activity kind",
                        "name": "kind",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "SSE stream"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/blogs/generate": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Generate an article for a title and optional details. Generation failures are returned as {error: true, message}.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "blogs"
                ],
                "summary": "Generate a blog article",
                "parameters": [
                    {
                        "description": "Blog title and details",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.GenerateBlogRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.GeneratedArticle"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/calls": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Dial every number in a comma-separated list, one after another. Per-number failures are reported in the results.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "calls"
                ],
                "summary": "Place outbound calls",
                "parameters": [
                    {
                        "description": "Comma-separated phone numbers",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MakeCallRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MakeCallResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/exports/{filename}": {
            "get": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Download a previously exported workbook of scraped profiles",
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "scrape"
                ],
                "summary": "Download Excel export",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Excel filename",
                        "name": "filename",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Excel file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "success: false, error: error message",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/health": {
            "get": {
                "description": "Liveness plus the optional components enabled at startup",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/scrape": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Submit a comma-separated list of profile URLs to the scraping backend. The backend's JSON is returned unchanged, or a failure record ({error, code, message, body}).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scrape"
                ],
                "summary": "Scrape profiles",
                "parameters": [
                    {
                        "description": "Comma-separated profile URLs",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ScrapeURLsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/v1/scrape/export": {
            "post": {
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "description": "Scrape the given profile URLs and redirect to the generated workbook",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scrape"
                ],
                "summary": "Scrape profiles and export them to Excel",
                "parameters": [
                    {
                        "description": "Comma-separated profile URLs",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ScrapeURLsRequest"
                        }
                    }
                ],
                "responses": {
                    "302": {
                        "description": "Redirect to download URL",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/models.ScrapeFailure"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handlers.ActivityListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.ActivityLogResponse"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/utils.PaginationResponse"
                }
            }
        },
        "models.ActivityKind": {
            "type": "string",
            "enum": [
                "call",
                "scrape",
                "blog"
            ],
            "x-enum-varnames": [
                "ActivityCall",
                "ActivityScrape",
                "ActivityBlog"
            ]
        },
        "models.ActivityLogResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string",
                    "example": "2025-01-21T10:30:00Z"
                },
                "failed": {
                    "type": "integer",
                    "example": 1
                },
                "id": {
                    "type": "string",
                    "example": "550e8400-e29b-41d4-a716-446655440000"
                },
                "kind": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.ActivityKind"
                        }
                    ],
                    "example": "call"
                },
                "message": {
                    "type": "string",
                    "example": "Processed 2 numbers."
                },
                "metadata": {
                    "type": "object",
                    "additionalProperties": true
                },
                "status": {
                    "type": "string",
                    "example": "warning"
                },
                "succeeded": {
                    "type": "integer",
                    "example": 1
                },
                "total": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "models.CallResult": {
            "type": "object",
            "properties": {
                "details": {
                    "type": "string",
                    "example": "UUID: 63f61863-4a51-4f6b-86e1-46edebcf9356"
                },
                "number": {
                    "type": "string",
                    "example": "+15551234567"
                },
                "status": {
                    "allOf": [
                        {
                            "$ref": "#/definitions/models.CallStatus"
                        }
                    ],
                    "example": "Called"
                }
            }
        },
        "models.CallStatus": {
            "type": "string",
            "enum": [
                "Called",
                "Failed"
            ],
            "x-enum-varnames": [
                "CallStatusCalled",
                "CallStatusFailed"
            ]
        },
        "models.CallSummary": {
            "type": "object",
            "properties": {
                "called": {
                    "type": "integer",
                    "example": 1
                },
                "failed": {
                    "type": "integer",
                    "example": 1
                },
                "total": {
                    "type": "integer",
                    "example": 2
                }
            }
        },
        "models.GenerateBlogRequest": {
            "type": "object",
            "properties": {
                "blog_details": {
                    "type": "string",
                    "example": "package managers, terminal, servers"
                },
                "blog_title": {
                    "type": "string",
                    "example": "Why Linux is Better for Devs"
                }
            }
        },
        "models.GeneratedArticle": {
            "type": "object",
            "properties": {
                "content": {
                    "type": "string",
                    "example": "Goroutines are lightweight threads..."
                },
                "error": {
                    "type": "boolean",
                    "example": false
                },
                "message": {
                    "type": "string"
                },
                "title": {
                    "type": "string",
                    "example": "Understanding Goroutines"
                }
            }
        },
        "models.MakeCallRequest": {
            "type": "object",
            "properties": {
                "phone_numbers": {
                    "type": "string",
                    "example": "+15551234567, +15557654321"
                }
            }
        },
        "models.MakeCallResponse": {
            "type": "object",
            "properties": {
                "results": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.CallResult"
                    }
                },
                "summary": {
                    "$ref": "#/definitions/models.CallSummary"
                }
            }
        },
        "models.ScrapeFailure": {
            "type": "object",
            "properties": {
                "body": {
                    "type": "string"
                },
                "code": {
                    "type": "string",
                    "example": "504"
                },
                "error": {
                    "type": "string",
                    "example": "API Request Failed"
                },
                "message": {
                    "type": "string",
                    "example": "Gateway Timeout"
                }
            }
        },
        "models.ScrapeURLsRequest": {
            "type": "object",
            "properties": {
                "urls": {
                    "type": "string",
                    "example": "https://www.linkedin.com/in/someone, https://www.linkedin.com/in/another"
                }
            }
        },
        "utils.PaginationResponse": {
            "type": "object",
            "properties": {
                "has_next": {
                    "type": "boolean"
                },
                "has_previous": {
                    "type": "boolean"
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Enter ` + "`" + `ApiKey ` + "`" + ` followed by the configured API key (e.g. \"ApiKey <key>\")",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Outreach Dashboard API",
	Description:      "Outbound calls, profile scraping and blog generation for the outreach dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
