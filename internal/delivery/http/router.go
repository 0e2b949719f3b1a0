package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes.
// staticDir is served at the root for the browser client.
func NewRouter(eventController *controllers.EventController, registrationController *controllers.RegistrationController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("PUT /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Registrations
	mux.HandleFunc("POST /register/{eventID}", registrationController.Register)
	mux.HandleFunc("GET /registrations/{eventID}", registrationController.ListByEvent)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Static frontend
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	return mux
}
