package handlers

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/enrollment"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/middleware"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

// Every handler answers with a JSON body, success or failure.

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// actorFromContext rebuilds the authenticated caller from the values the
// auth middleware placed in the request context.
func actorFromContext(r *http.Request) (enrollment.Actor, bool) {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)
	role, _ := r.Context().Value(middleware.RoleKey).(string)

	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return enrollment.Actor{}, false
	}
	return enrollment.Actor{ID: id, Role: models.UserRole(role)}, true
}
