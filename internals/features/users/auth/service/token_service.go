package service

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelshub_backend/internals/configs"
	authModel "hostelshub_backend/internals/features/users/auth/model"
	userModel "hostelshub_backend/internals/features/users/user/model"
	helper "hostelshub_backend/internals/helpers"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// CreateAccessToken signs a short-lived HS256 token carrying the
// claims the auth middleware reads back (user_id, role, exp).
func CreateAccessToken(user *userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", helper.NewInternal(err)
	}
	return signed, nil
}

// hashRefreshToken keys the stored digest with the refresh secret so a
// leaked database cannot be replayed as tokens.
func hashRefreshToken(raw string) []byte {
	mac := hmac.New(sha256.New, []byte(configs.JWTRefreshSecret))
	mac.Write([]byte(raw))
	return mac.Sum(nil)
}

// CreateRefreshToken issues an opaque random token and stores only its
// HMAC alongside the expiry.
func CreateRefreshToken(db *gorm.DB, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", helper.NewInternal(err)
	}
	raw := hex.EncodeToString(buf)

	record := authModel.RefreshTokenModel{
		UserID:    userID,
		TokenHash: hashRefreshToken(raw),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := db.Create(&record).Error; err != nil {
		return "", helper.NewInternal(err)
	}
	return raw, nil
}

// ConsumeRefreshToken validates a raw refresh token and returns its
// owner. Expired and revoked tokens are rejected.
func ConsumeRefreshToken(db *gorm.DB, raw string) (*authModel.RefreshTokenModel, error) {
	var record authModel.RefreshTokenModel
	if err := db.Where("token_hash = ?", hashRefreshToken(raw)).First(&record).Error; err != nil {
		return nil, helper.NewForbidden("Invalid refresh token")
	}
	if record.RevokedAt != nil {
		return nil, helper.NewForbidden("Refresh token has been revoked")
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, helper.NewForbidden("Refresh token has expired")
	}
	return &record, nil
}

// RevokeRefreshToken marks one token revoked. Unknown tokens are a
// no-op so logout is idempotent.
func RevokeRefreshToken(db *gorm.DB, raw string) error {
	now := time.Now()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("token_hash = ? AND revoked_at IS NULL", hashRefreshToken(raw)).
		Update("revoked_at", now).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}

// RevokeAllUserTokens revokes every live refresh token of one user,
// used on password change and account termination.
func RevokeAllUserTokens(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now()
	if err := db.Model(&authModel.RefreshTokenModel{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error; err != nil {
		return helper.NewInternal(err)
	}
	return nil
}
