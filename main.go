package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/linesmerrill/police-report-writer-api/api/handlers"

	"go.uber.org/zap"

	"github.com/linesmerrill/police-report-writer-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	err := a.Initialize() //initialize database, scheduler and router
	if err != nil {
		log.Fatal(err)
	}

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("police-report-writer-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
