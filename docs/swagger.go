// Package docs provides Swagger documentation for the API.
package docs

// @title Outreach Dashboard API
// @version 1.0
// @description Outbound calls, profile scraping and blog generation for the outreach dashboard
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.one-green.io/support
// @contact.email support@one-green.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Enter `ApiKey ` followed by the configured API key (e.g. "ApiKey <key>")
