package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"tripweaver/db"
	"tripweaver/models"
	"tripweaver/mq"
	"tripweaver/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type signupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func validateSignupInput(in signupInput) string {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return "Name, email, and password are required"
	}
	return ""
}

func validateLoginInput(in loginInput) string {
	if in.Email == "" || in.Password == "" {
		return "Email and password are required"
	}
	return ""
}

// respondInvalidCredentials is the only answer for a failed login.
// Unknown email and wrong password both end here, byte for byte.
func respondInvalidCredentials(w http.ResponseWriter) {
	utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
}

// POST /api/users/signup
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input signupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg := validateSignupInput(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	email := utils.NormalizeEmail(input.Email)

	// Check-then-insert is not transactional; the unique email index is
	// the real guard. A concurrent identical signup loses the race at
	// InsertOne and is reported as a conflict below.
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithError(w, http.StatusConflict, "User already exists with this email")
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("signup: lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("signup: bcrypt error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	user := models.User{
		UserID:    utils.GetUUID(),
		Name:      input.Name,
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	if _, err := db.UserCollection.InsertOne(r.Context(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			utils.RespondWithError(w, http.StatusConflict, "User already exists with this email")
			return
		}
		log.Printf("signup: insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	token, err := h.Tokens.Issue(user.UserID, user.Email)
	if err != nil {
		log.Printf("signup: token error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during signup")
		return
	}

	mq.Emit(r.Context(), "user-signed-up", mq.Index{EntityType: "user", Method: "POST", EntityId: user.UserID})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "User created successfully",
		"token":   token,
		"user":    user,
	})
}

// POST /api/users/authenticate
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input loginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if msg := validateLoginInput(input); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	// Unknown email and wrong password share one responder so callers
	// cannot enumerate accounts.
	var user models.User
	err := db.UserCollection.FindOne(r.Context(), bson.M{"email": utils.NormalizeEmail(input.Email)}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			respondInvalidCredentials(w)
			return
		}
		log.Printf("authenticate: lookup error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during authentication")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		respondInvalidCredentials(w)
		return
	}

	token, err := h.Tokens.Issue(user.UserID, user.Email)
	if err != nil {
		log.Printf("authenticate: token error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Server error during authentication")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
