package main

import "github.com/structech/survey-api/cmd"

// @title           Crack Survey API
// @version         1.0.0
// @description     API for crack survey imports and design map management
// @contact.name    API Support
// @contact.url     https://github.com/structech/survey-api
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer "
func main() {
	cmd.Execute()
}
