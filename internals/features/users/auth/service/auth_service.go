package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostelshub_backend/internals/configs"
	"hostelshub_backend/internals/constants"
	"hostelshub_backend/internals/features/users/auth/dto"
	userModel "hostelshub_backend/internals/features/users/user/model"
	helper "hostelshub_backend/internals/helpers"
)

// Register creates a user and their role profile in one transaction.
// Only STUDENT and MANAGER may self-register; staff accounts are seeded.
func Register(db *gorm.DB, req *dto.RegisterRequest) (*userModel.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := db.Model(&userModel.UserModel{}).
		Where("email = ?", email).
		Count(&existing).Error; err != nil {
		return nil, helper.NewInternal(err)
	}
	if existing > 0 {
		return nil, helper.NewConflict("Email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, helper.NewInternal(err)
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		Email:    email,
		Password: string(hashed),
		Role:     req.Role,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return helper.NewInternal(err)
		}
		return createRoleProfile(tx, &user)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func createRoleProfile(tx *gorm.DB, user *userModel.UserModel) error {
	switch user.Role {
	case constants.RoleStudent:
		profile := userModel.StudentProfileModel{UserID: user.ID, FullName: user.UserName}
		if err := tx.Create(&profile).Error; err != nil {
			return helper.NewInternal(err)
		}
	case constants.RoleManager:
		profile := userModel.ManagerProfileModel{UserID: user.ID, OwnerName: user.UserName}
		if err := tx.Create(&profile).Error; err != nil {
			return helper.NewInternal(err)
		}
	}
	return nil
}

// Login verifies credentials and issues an access/refresh token pair.
func Login(db *gorm.DB, req *dto.LoginRequest) (*userModel.UserModel, *dto.AuthTokens, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.NewForbidden("Invalid email or password")
		}
		return nil, nil, helper.NewInternal(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, helper.NewForbidden("Invalid email or password")
	}
	if user.IsTerminated {
		return nil, nil, helper.NewForbidden("Your account has been terminated")
	}

	tokens, err := issueTokens(db, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// LoginGoogle verifies a Google ID token and signs the user in,
// creating the account on first login.
func LoginGoogle(db *gorm.DB, req *dto.GoogleLoginRequest) (*userModel.UserModel, *dto.AuthTokens, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return nil, nil, helper.NewForbidden("Invalid Google ID token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return nil, nil, helper.NewInternal(err)
	}
	email := strings.ToLower(claimSet.Email)
	name, googleID := claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	findErr := db.Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(findErr, gorm.ErrRecordNotFound) {
		// Link by email before creating a fresh account.
		findErr = db.Where("email = ?", email).First(&user).Error
		if findErr == nil {
			if err := db.Model(&user).Update("google_id", googleID).Error; err != nil {
				return nil, nil, helper.NewInternal(err)
			}
		}
	}
	switch {
	case findErr == nil:
		// existing account
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		role := req.Role
		if role == "" {
			role = constants.RoleStudent
		}
		user = userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: randomPassword(),
			GoogleID: &googleID,
			Role:     role,
		}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return helper.NewInternal(err)
			}
			return createRoleProfile(tx, &user)
		})
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, helper.NewInternal(findErr)
	}

	if user.IsTerminated {
		return nil, nil, helper.NewForbidden("Your account has been terminated")
	}

	tokens, err := issueTokens(db, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// Refresh rotates the refresh token and issues a new access token.
func Refresh(db *gorm.DB, raw string) (*userModel.UserModel, *dto.AuthTokens, error) {
	record, err := ConsumeRefreshToken(db, raw)
	if err != nil {
		return nil, nil, err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", record.UserID).Error; err != nil {
		return nil, nil, helper.NewForbidden("Account no longer exists")
	}
	if user.IsTerminated {
		return nil, nil, helper.NewForbidden("Your account has been terminated")
	}

	if err := RevokeRefreshToken(db, raw); err != nil {
		return nil, nil, err
	}
	tokens, err := issueTokens(db, &user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// ChangePassword verifies the old password, swaps the hash and revokes
// every outstanding refresh token.
func ChangePassword(db *gorm.DB, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helper.NewNotFound("User not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return helper.NewForbidden("Old password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.NewInternal(err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Update("password", string(hashed)).Error; err != nil {
			return helper.NewInternal(err)
		}
		return RevokeAllUserTokens(tx, userID)
	})
}

func issueTokens(db *gorm.DB, user *userModel.UserModel) (*dto.AuthTokens, error) {
	access, err := CreateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := CreateRefreshToken(db, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.AuthTokens{AccessToken: access, RefreshToken: refresh}, nil
}

// randomPassword fills the NOT NULL password column for Google-only
// accounts. It is never a valid login credential.
func randomPassword() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString() + uuid.NewString()
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return uuid.NewString() + uuid.NewString()
	}
	return string(hashed)
}
