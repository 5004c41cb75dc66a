package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"ticket-marketplace-backend/internal/config"
	"ticket-marketplace-backend/internal/models"
	"ticket-marketplace-backend/internal/utils"
	"ticket-marketplace-backend/pkg/kv"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const keyUsers = "marketplace:users"

// AuthService is the identity collaborator: it owns the user collection and
// issues the tokens the back office authenticates with. Users persist
// through the same key-value contract as the domain collections but under
// their own key, separate from the domain store.
type AuthService struct {
	mu    sync.Mutex
	kv    kv.Store
	cfg   *config.Config
	users []models.User
}

// userRow is the persisted shape: the json tag on User.Password is "-", so
// the hash is stored under its own field.
type userRow struct {
	models.User
	PasswordHash string `json:"password_hash"`
}

func NewAuthService(backend kv.Store, cfg *config.Config) (*AuthService, error) {
	s := &AuthService{kv: backend, cfg: cfg}

	raw, ok, err := backend.Get(keyUsers)
	if ok && err == nil {
		var rows []userRow
		if jsonErr := json.Unmarshal([]byte(raw), &rows); jsonErr == nil && len(rows) > 0 {
			s.users = make([]models.User, len(rows))
			for i, row := range rows {
				s.users[i] = row.User
				s.users[i].Password = row.PasswordHash
			}
			return s, nil
		}
	}

	// No usable user data: seed the demo accounts.
	if err := s.seedUsers(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *AuthService) seedUsers() error {
	now := time.Now()
	accounts := []struct {
		email, password, name, role string
	}{
		{"admin@marketplace.local", "admin123", "Demo Admin", "admin"},
		{"organizer@marketplace.local", "organizer123", "Demo Organizer", "organizer"},
		{"staff@marketplace.local", "staff123", "Demo Staff", "staff"},
	}

	s.users = s.users[:0]
	for _, a := range accounts {
		hashed, err := utils.HashPassword(a.password)
		if err != nil {
			return err
		}
		s.users = append(s.users, models.User{
			ID:        uuid.NewString(),
			Email:     a.email,
			Password:  hashed,
			Name:      a.name,
			Role:      a.role,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return s.persist()
}

func (s *AuthService) persist() error {
	rows := make([]userRow, len(s.users))
	for i, u := range s.users {
		rows[i] = userRow{User: u, PasswordHash: u.Password}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to serialize users: %w", err)
	}
	if err := s.kv.Set(keyUsers, string(data)); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *AuthService) Authenticate(email, password string) (*LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	user := s.findByEmail(email)
	if user == nil {
		return nil, errors.New("invalid credentials")
	}
	if err := utils.CheckPassword(password, user.Password); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	public := *user
	public.Password = ""
	return &LoginResponse{Token: token, User: &public}, nil
}

func (s *AuthService) CreateUser(email, password, name, role string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.TrimSpace(strings.ToLower(email))
	role = strings.TrimSpace(strings.ToLower(role))

	allowedRoles := map[string]bool{"admin": true, "organizer": true, "staff": true}
	if !allowedRoles[role] {
		return nil, errors.New("invalid role: must be admin, organizer, or staff")
	}
	if s.findByEmail(email) != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.users = append(s.users, user)
	if err := s.persist(); err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

func (s *AuthService) GetUserProfile(userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			user := s.users[i]
			user.Password = ""
			return &user, nil
		}
	}
	return nil, errors.New("user not found")
}

func (s *AuthService) findByEmail(email string) *models.User {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i]
		}
	}
	return nil
}

func (s *AuthService) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
