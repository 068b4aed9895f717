package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/config"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/enrollment"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/handlers"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/middleware"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/sessions"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/uploads"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/utils"
)

func SetupRouter(client *mongo.Client, cfg config.Config, logger zerolog.Logger) (*mux.Router, error) {
	uploadStorage, err := uploads.NewStorage(cfg.UploadsDir)
	if err != nil {
		return nil, err
	}

	mailer := utils.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, logger)

	enrollmentStore := enrollment.NewMongoStore(client, cfg.DatabaseName)
	propagator := enrollment.NewPropagator(enrollmentStore)
	enrollmentService := enrollment.NewService(enrollmentStore, propagator, mailer, logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, uploadStorage, logger)

	sessionStore := sessions.NewMongoStore(client, cfg.DatabaseName)
	sessionService := sessions.NewService(sessionStore, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)

	userHandler := handlers.NewUserHandler(client, cfg.DatabaseName, logger)

	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users/signup", userHandler.Signup).Methods("POST")
	api.HandleFunc("/users/signin", userHandler.Signin).Methods("POST")

	asUser := func(h http.HandlerFunc) http.Handler { return middleware.RequireAuth(h) }
	asAdmin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }

	api.Handle("/enrollments", asUser(enrollmentHandler.Create)).Methods("POST")
	api.Handle("/enrollments", asAdmin(enrollmentHandler.List)).Methods("GET")
	api.Handle("/enrollments/pending-count", asUser(enrollmentHandler.PendingCount)).Methods("GET")
	api.Handle("/enrollments/clear-notifications", asUser(enrollmentHandler.ClearNotifications)).Methods("POST")
	api.Handle("/enrollments/{enrollmentId}/status", asAdmin(enrollmentHandler.UpdateStatus)).Methods("PATCH")
	api.Handle("/enrollments/{enrollmentId}", asAdmin(enrollmentHandler.Update)).Methods("PATCH")
	api.Handle("/enrollments/{enrollmentId}", asAdmin(enrollmentHandler.Delete)).Methods("DELETE")

	api.Handle("/sessions", asUser(sessionHandler.List)).Methods("GET")
	api.Handle("/sessions", asAdmin(sessionHandler.Create)).Methods("POST")

	return router, nil
}
