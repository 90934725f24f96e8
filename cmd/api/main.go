package main

import (
	_ "github.com/geovanereis/website-gsreistecnologia/docs"
	"github.com/geovanereis/website-gsreistecnologia/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GS Reis Tecnologia API
// @version         1.0
// @description     Quote-request submission API for the GS Reis Tecnologia site.
// @termsOfService  http://swagger.io/terms/

// @contact.name   GS Reis Tecnologia
// @contact.email  contato@gsreistecnologia.com.br

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
