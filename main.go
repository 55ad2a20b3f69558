package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/armsplatform/apiv1/dbhelper"
	"github.com/armsplatform/apiv1/googleauth"
	"github.com/armsplatform/apiv1/middlewares"
	"github.com/armsplatform/apiv1/routes"
	"github.com/armsplatform/apiv1/throttle"
	"github.com/armsplatform/apiv1/utils"
)

func main() {
	// Setting up environment variables
	err := godotenv.Load()
	if err != nil {
		log.Fatal(err)
	}
	// Setting up logs
	file, err := os.OpenFile("logs.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		log.Fatal(err)
	}
	log.SetOutput(file)
	// Loading config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	// Setting up database
	err = dbhelper.OpenDB()
	if err != nil {
		log.Fatal(err)
	}
	err = dbhelper.InitDB()
	if err != nil {
		log.Fatal(err)
	}
	// Wiring the auth subsystem
	users := dbhelper.NewGormUserDirectory(dbhelper.DB)
	api := &routes.API{
		Config:   config,
		Users:    users,
		Throttle: throttle.NewMemoryLimiter(config.MaxFailedAttempts, config.LockWindow, time.Now),
		Google: googleauth.NewVerifier(
			config.TokenInfoURL,
			config.OAuthClientID,
			config.AllowedEmailDomain,
			time.Second*utils.TOKENINFO_TIMEOUT_SECONDS,
		),
	}
	authenticator := &middlewares.Authenticator{
		Secret: config.SigningSecret,
		Users:  users,
	}
	// Opening the webserver
	r := mux.NewRouter()
	r.StrictSlash(true)
	routes.CreateRoutes(r, api)
	r.Use(authenticator.Middleware)
	limiter := tollbooth.NewLimiter(20, nil)
	limiter.SetMessage(utils.GENERIC_REQUEST_ERROR)
	http.ListenAndServe(":5005", tollbooth.LimitHandler(limiter, r))
}
