package main

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"fintrack/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService owns user credentials: registration, login, profile and
// currency updates, and bearer-token issue/verification.
type AuthService struct {
	db  *gorm.DB
	cfg Config
}

func NewAuthService(db *gorm.DB, cfg Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register stores a new user with a bcrypt-hashed password and the default
// currency. The email must not be registered already.
func (s *AuthService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, validationErr("name, email and password are required")
	}
	if !emailRE.MatchString(email) {
		return nil, validationErr("invalid email address")
	}
	if len(password) < 6 { // basic password policy
		return nil, validationErr("password too short (min 6)")
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{Name: name, Email: email, HashedPassword: hashed, Currency: models.DefaultCurrency}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies the credentials and returns the matching user. Unknown
// email and hash mismatch are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// CurrentUser loads the profile for a verified token subject.
func (s *AuthService) CurrentUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// ProfileUpdate carries the optional fields of a profile change.
type ProfileUpdate struct {
	Name            string
	CurrentPassword string
	NewPassword     string
}

// UpdateProfile renames the user and/or rotates the password after
// verifying the current one.
func (s *AuthService) UpdateProfile(id uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.CurrentUser(id)
	if err != nil {
		return nil, err
	}
	if upd.Name != "" {
		name := strings.TrimSpace(upd.Name)
		if len(name) < 2 {
			return nil, validationErr("name too short (min 2)")
		}
		user.Name = name
	}
	if upd.NewPassword != "" || upd.CurrentPassword != "" {
		if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(upd.CurrentPassword)); err != nil {
			return nil, validationErr("current password is incorrect")
		}
		if len(upd.NewPassword) < 6 {
			return nil, validationErr("password too short (min 6)")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(upd.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateCurrency sets the user's preferred currency.
func (s *AuthService) UpdateCurrency(id uint, currency string) (*models.User, error) {
	if !models.ValidCurrency(currency) {
		return nil, validationErr("invalid currency")
	}
	user, err := s.CurrentUser(id)
	if err != nil {
		return nil, err
	}
	user.Currency = currency
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// IssueToken signs a bearer token whose subject is the user id.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(user.ID), 10),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.TokenTTL).Unix(),
	})
	return token.SignedString(s.cfg.JWTSecret)
}

// VerifyToken parses a signed token and returns the user id it carries.
// Expired or tampered tokens fail here; the parser enforces exp itself.
func (s *AuthService) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return s.cfg.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid subject")
	}
	return uint(id), nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
