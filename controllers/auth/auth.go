package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kingofgreatnezzz/greenwood-invest/models"
)

// AuthController owns the register/login/refresh/logout flows. Refresh
// tokens are opaque random IDs stored server-side so they can be revoked
// individually.
type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 // days
)

var errRefreshInvalid = errors.New("refresh token invalid or expired")

func (c *AuthController) issueRefreshToken(userID uint) (*models.RefreshToken, error) {
	rt, err := models.NewRefreshToken(userID, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	if err := c.DB.Create(rt).Error; err != nil {
		return nil, err
	}
	return rt, nil
}

func (c *AuthController) validateRefreshToken(id string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := c.DB.Where("id = ?", id).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errRefreshInvalid
		}
		return nil, err
	}
	if rt.Revoked || time.Now().After(rt.ExpiresAt) {
		return nil, errRefreshInvalid
	}
	return &rt, nil
}
