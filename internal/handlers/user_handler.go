package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/auth"
	"github.com/J33WAKASUPUN/Edu-Nest-Learning-Platform/internal/models"
)

type UserHandler struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewUserHandler(client *mongo.Client, dbName string, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		collection: client.Database(dbName).Collection("users"),
		logger:     logger,
	}
}

// Signup handles user registration
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FirstName == "" || payload.LastName == "" || payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "First name, last name, email, and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var existing models.User
	err := h.collection.FindOne(ctx, bson.M{"email": payload.Email}).Decode(&existing)
	if err == nil {
		writeError(w, http.StatusConflict, "Email already exists")
		return
	} else if err != mongo.ErrNoDocuments {
		h.logger.Error().Err(err).Msg("email availability check failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.Error().Err(err).Msg("password hashing failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	now := time.Now()
	newUser := models.User{
		ID:                 primitive.NewObjectID(),
		FirstName:          payload.FirstName,
		LastName:           payload.LastName,
		Email:              payload.Email,
		Password:           string(hashed),
		Role:               models.RoleUser,
		AccessibleSubjects: []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if _, err := h.collection.InsertOne(ctx, newUser); err != nil {
		h.logger.Error().Err(err).Msg("user insert failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, newUser)
}

// Signin handles user login and sets the JWT token cookie.
func (h *UserHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var user models.User
	err := h.collection.FindOne(ctx, bson.M{"email": credentials.Email}).Decode(&user)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(credentials.Password)); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateJWT(user.ID.Hex(), string(user.Role))
	if err != nil {
		h.logger.Error().Err(err).Msg("token generation failed")
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Path:     "/api",
	})

	writeJSON(w, http.StatusOK, user)
}
