package repository

import (
	"errors"
	"time"

	authdomain "github.com/joelcalkins28/JobTracker-CRM/internal/auth/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user and credential persistence.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	Update(user *authdomain.User) error

	SaveRefreshToken(token *authdomain.RefreshToken) error
	FindRefreshToken(token string) (*authdomain.RefreshToken, error)
	DeleteRefreshToken(token string) error

	// Google credential store. Writes are last-write-wins.
	GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error)
	SetGoogleCredential(userID string, cred *authdomain.GoogleCredential) error
	ClearGoogleCredential(userID string) error
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByEmail(email string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) SaveRefreshToken(token *authdomain.RefreshToken) error {
	// Clean up expired tokens for this user first to prevent DB bloat.
	// Valid tokens remain so multiple devices can stay logged in.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND expires_at < ?", token.UserID, time.Now()).Delete(&authdomain.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Create(token).Error
	})
}

func (r *userRepository) FindRefreshToken(token string) (*authdomain.RefreshToken, error) {
	var refreshToken authdomain.RefreshToken
	err := r.db.Where("token = ?", token).First(&refreshToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refreshToken, nil
}

func (r *userRepository) DeleteRefreshToken(token string) error {
	return r.db.Where("token = ?", token).Delete(&authdomain.RefreshToken{}).Error
}

func (r *userRepository) GetGoogleCredential(userID string) (*authdomain.GoogleCredential, error) {
	user, err := r.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.GoogleConnected {
		return nil, nil
	}
	cred := &authdomain.GoogleCredential{
		AccessToken:  user.GoogleAccessToken,
		RefreshToken: user.GoogleRefreshToken,
	}
	if user.GoogleTokenExpiry != nil {
		cred.Expiry = *user.GoogleTokenExpiry
	}
	return cred, nil
}

func (r *userRepository) SetGoogleCredential(userID string, cred *authdomain.GoogleCredential) error {
	updates := map[string]interface{}{
		"google_access_token": cred.AccessToken,
		"google_connected":    true,
		"updated_at":          time.Now(),
	}
	// A refresh token is only returned on the first consent; keep the
	// stored one when Google omits it.
	if cred.RefreshToken != "" {
		updates["google_refresh_token"] = cred.RefreshToken
	}
	if !cred.Expiry.IsZero() {
		updates["google_token_expiry"] = cred.Expiry
	}
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *userRepository) ClearGoogleCredential(userID string) error {
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"google_access_token":  "",
		"google_refresh_token": "",
		"google_token_expiry":  nil,
		"google_connected":     false,
		"updated_at":           time.Now(),
	}).Error
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
