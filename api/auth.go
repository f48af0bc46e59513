package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/qri-io/jsonschema"
	"github.com/ttoweb/techportal/internal/apperr"
	"github.com/ttoweb/techportal/internal/models"
	"github.com/ttoweb/techportal/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// credentialsSchema mirrors the original signup/login validation: a
// syntactically valid email and a password of at least 6 characters.
const credentialsSchema = `{
	"type": "object",
	"required": ["email", "password"],
	"properties": {
		"email": {"type": "string", "pattern": "^[^@\\s]+@[^@\\s]+\\.[^@\\s]+$"},
		"password": {"type": "string", "minLength": 6}
	}
}`

type AuthHandler struct {
	userRepo      repository.UserRepo
	jwtSecret     string
	tokenDuration time.Duration
	schema        *jsonschema.Schema
}

// NewAuthHandler creates a new AuthHandler with required dependencies.
func NewAuthHandler(ur repository.UserRepo, jwtSecret string, tokenDuration time.Duration) *AuthHandler {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(credentialsSchema), rs); err != nil {
		panic("credentials schema: " + err.Error())
	}
	return &AuthHandler{userRepo: ur, jwtSecret: jwtSecret, tokenDuration: tokenDuration, schema: rs}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message  string `json:"message"`
	Success  bool   `json:"success"`
	JWTToken string `json:"jwtToken"`
	Email    string `json:"email"`
}

// decodeCredentials validates the raw body against the credentials schema
// before unmarshalling, so malformed input never reaches business logic.
func (h *AuthHandler) decodeCredentials(r *http.Request) (*credentialsRequest, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apperr.NewValidation("unreadable request body")
	}

	keyErrs, err := h.schema.ValidateBytes(r.Context(), body)
	if err != nil {
		return nil, apperr.NewValidation(err.Error())
	}
	if len(keyErrs) > 0 {
		return nil, apperr.NewValidation(keyErrs[0].Message)
	}

	var req credentialsRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, apperr.NewValidation("invalid JSON body")
	}

	return &req, nil
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()

	existing, err := h.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if existing != nil {
		writeError(w, apperr.NewConflict("User already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	user := models.User{Email: req.Email, PasswordHash: string(hash)}
	if _, err := h.userRepo.CreateUser(ctx, &user); err != nil {
		// a concurrent signup can slip past the existence check
		if errors.Is(err, repository.ErrDuplicate) {
			writeError(w, apperr.NewConflict("User already exists"))
			return
		}
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, envelope{Message: "Sign up successful", Success: true}, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeCredentials(r)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()

	user, err := h.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}
	if user == nil {
		writeError(w, apperr.NewAuthentication())
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, apperr.NewAuthentication())
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": user.Email,
		"_id":   user.ID,
		"exp":   time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, apperr.NewInternal(err))
		return
	}

	writeJSON(w, loginResponse{
		Message:  "Login successful",
		Success:  true,
		JWTToken: tokenStr,
		Email:    user.Email,
	}, http.StatusOK)
}
