package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"app/config"
	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	demoEmail    = "demo@dmart.com"
	demoPassword = "demo123"
)

// HandleLogin authenticates a dashboard user and issues a JWT. The demo
// account requires its fixed password; any other email/password pair is
// accepted, matching the demo nature of the dashboard.
// POST /api/v1/auth/login
func HandleLogin(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid email or password"})
	}

	var userID, username string
	if email == demoEmail {
		if password != demoPassword {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid email or password"})
		}
		userID = "demo_user"
		username = "Demo User"
	} else {
		userID = "user_" + sanitizeEmail(email)
		username = titleFromEmail(email)
	}

	upsertUser(c, username, email, password)

	token, err := issueToken(userID, username, email)
	if err != nil {
		log.Printf("Error signing JWT: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create session token"})
	}

	logActivity(c.Context(), "login", "User logged in", email)

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Logged in successfully",
		"token":   token,
		"user":    fiber.Map{"id": userID, "username": username, "email": email},
	})
}

// HandleUpdateProfile updates the authenticated user's display name and
// email.
// PUT /api/v1/profile
func HandleUpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Username and email are required"})
	}

	if db := database.GetDB(); db != nil {
		_, err := db.Exec(c.Context(),
			`UPDATE users SET email = $1 WHERE username = $2`, email, username)
		if err != nil {
			log.Printf("Failed to update user profile: %v", err)
		}
	}

	logActivity(c.Context(), "profile_update", "User updated profile", email)

	return c.JSON(fiber.Map{
		"status":   "success",
		"message":  "Profile updated successfully",
		"username": username,
		"email":    email,
	})
}

func issueToken(userID, username, email string) (string, error) {
	claims := models.JwtClaims{
		UserID:   userID,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// upsertUser persists the login as a user row, storing only the bcrypt hash
// of the password. Best-effort like the rest of the package.
func upsertUser(c *fiber.Ctx, username, email, password string) {
	db := database.GetDB()
	if db == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return
	}

	_, err = db.Exec(c.Context(),
		`INSERT INTO users (username, email, password_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email, password_hash = EXCLUDED.password_hash`,
		username, email, string(hashed))
	if err != nil {
		log.Printf("Failed to upsert user %q: %v", username, err)
	}
}

func sanitizeEmail(email string) string {
	r := strings.NewReplacer("@", "_", ".", "_")
	return r.Replace(email)
}

// titleFromEmail derives a display name from the local part of an email,
// e.g. "priya.shah@example.com" -> "Priya.shah".
func titleFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return email
	}
	return fmt.Sprintf("%s%s", strings.ToUpper(local[:1]), local[1:])
}
