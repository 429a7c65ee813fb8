package rest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/values"
	"golang.org/x/crypto/bcrypt"
)

type TokenClaims struct {
	UserID string `json:"sub"`
	Type   string `json:"typ"`
	Exp    int64  `json:"exp"`
}

// Simplified token creation
func (api *API) createToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.JwtExpires)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id, // subject (user ID)
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "access",
	})

	tokenString, err := token.SignedString([]byte(api.Config.JwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (api *API) createRefreshToken(id string) (string, time.Time, error) {
	expTime, err := time.ParseDuration(api.Config.RefreshExpiry)
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := time.Now().Add(expTime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": id, // subject (user ID)
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"typ": "refresh",
	})

	tokenString, err := token.SignedString([]byte(api.Config.RefreshSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (api *API) CreateNewUser(req model.RegisterRequest) (model.VerifyCodeResponse, string, string, error) {
	var err error
	var ctx = context.TODO()

	req.Email = strings.Trim(req.Email, " ")

	if err = util.ValidateStruct(req); err != nil {
		return model.VerifyCodeResponse{}, values.BadRequestBody, "Invalid registration details", err
	}

	exists, err := api.EmailExists(ctx, req.Email)
	if err != nil {
		return model.VerifyCodeResponse{}, values.Error, "Error checking email", err
	}

	if exists {
		return model.VerifyCodeResponse{}, values.Conflict, "Email already exists", fmt.Errorf("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.VerifyCodeResponse{}, values.Error, "Error hashing password", err
	}
	passwordHash := string(hash)

	user := model.User{
		ID:           util.GenerateUUID(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: &passwordHash,
		Role:         model.RoleUser,
		AuthProvider: "email",
	}

	err = api.CreateNewUserRepo(ctx, user)
	if err != nil {
		return model.VerifyCodeResponse{}, values.Error, "Error creating new user", err
	}

	// Generate verification code
	code := util.GenerateVerificationCode()
	expiresAt := time.Now().Add(1 * time.Hour) // Code expires in 1 hour
	tokenType := "register"
	err = api.StoreVerificationCode(ctx, user.ID.String(), user.Email, code, tokenType, expiresAt)
	if err != nil {
		return model.VerifyCodeResponse{}, values.Error, "Failed to store verification code", err
	}

	go func() {
		emailData := map[string]interface{}{
			"Code": code,
		}

		if sendErr := api.Mailer.Send(user.Email, emailData, "verifyEmail.tmpl"); sendErr != nil {
			log.Println(values.Error, "Failed to send verification email", sendErr)
		}
	}()

	resp := model.VerifyCodeResponse{
		ID:    user.ID.String(),
		Email: user.Email,
	}

	return resp, values.Created, "User created successfully", nil
}

func (api *API) LoginUser(req model.LoginRequest) (model.LoginResponse, string, string, error) {
	var err error
	var ctx = context.TODO()

	req.Email = strings.Trim(req.Email, " ")

	if err = util.ValidateStruct(req); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid login details", err
	}

	user, err := api.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return model.LoginResponse{}, values.NotFound, "User not found", err
	}

	if user.PasswordHash == nil {
		return model.LoginResponse{}, values.NotAllowed, "Account uses a different sign-in method", fmt.Errorf("no password set for user")
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid email or password", err
	}

	token, _, err := api.createToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	refreshToken, refreshExpiry, err := api.createRefreshToken(user.ID.String())
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrRt]", values.SystemErr), err
	}

	if err = api.StoreRefreshToken(ctx, user.ID.String(), refreshToken, refreshExpiry); err != nil {
		return model.LoginResponse{}, values.Error, "Failed to store refresh token", err
	}

	loggedInUser := model.LoginResponse{
		User: &model.LoginUserResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Token:        token,
		RefreshToken: refreshToken,
	}
	return loggedInUser, values.Success, "Login successful", nil
}

func (api *API) VerifyCodeHelper(req model.VerifyCodeRequest) (model.LoginResponse, string, string, error) {
	var err error
	var ctx = context.TODO()

	if err := util.ValidEmail(req.Email); err != nil {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid email format", err
	}

	if len(req.Code) != 4 {
		return model.LoginResponse{}, values.BadRequestBody, "Invalid verification code format", fmt.Errorf("code must be 4 digits")
	}

	userID, err := api.VerifyCodeRepo(ctx, req.Code, req.Type, req.Email)
	if err != nil {
		log.Println("Error verifying code", err)
		return model.LoginResponse{}, values.NotAuthorised, "Invalid or expired verification code", err
	}

	if req.Type == "register" {
		err = api.UpdateEmailVerifiedStatus(ctx, userID)
		if err != nil {
			return model.LoginResponse{}, values.Error, "Failed to update email verification status", err
		}
	}

	user, err := api.GetUserByID(ctx, userID)
	if err != nil {
		return model.LoginResponse{}, values.Error, "Failed to retrieve user", err
	}

	token, _, err := api.createToken(userID)
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	loggedInUser := model.LoginResponse{
		User: &model.LoginUserResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       user.Role,
			IsVerified: user.IsVerified,
		},
		Token: token,
	}
	return loggedInUser, values.Success, "Verification successful", nil
}

func (api *API) ResendVerificationCode(req model.ResendCodeRequest) (string, string, error) {
	var err error
	var ctx = context.TODO()

	req.Email = strings.Trim(req.Email, " ")

	err = util.ValidEmail(req.Email)
	if err != nil {
		return values.NotAllowed, "Invalid email address provided", err
	}

	user, err := api.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return values.NotFound, "User not found", err
	}

	code := util.GenerateVerificationCode()
	expiresAt := time.Now().Add(1 * time.Hour) // Code expires in 1 hour
	tokenType := "register"
	err = api.StoreVerificationCode(ctx, user.ID.String(), user.Email, code, tokenType, expiresAt)
	if err != nil {
		return values.Error, "Failed to store verification code", err
	}
	go func() {
		emailData := map[string]interface{}{
			"Name": user.FirstName,
			"Code": code,
		}
		if sendErr := api.Mailer.Send(user.Email, emailData, "verifyEmail.tmpl"); sendErr != nil {
			log.Println(values.Error, "Failed to send verification email", sendErr)
		}
	}()

	return values.Success, "Verification code sent", nil
}

// RequestPasswordReset reuses the verification-code flow with a reset type.
// A missing account still reports success so the endpoint cannot be used to
// probe for registered emails.
func (api *API) RequestPasswordReset(email string) (string, string, error) {
	var ctx = context.TODO()

	email = strings.Trim(email, " ")
	if err := util.ValidEmail(email); err != nil {
		return values.NotAllowed, "Invalid email address provided", err
	}

	user, err := api.GetUserByEmail(ctx, email)
	if err != nil {
		return values.Success, "If the account exists, a reset code has been sent", nil
	}

	code := util.GenerateVerificationCode()
	expiresAt := time.Now().Add(1 * time.Hour)
	if err := api.StoreVerificationCode(ctx, user.ID.String(), user.Email, code, "reset", expiresAt); err != nil {
		return values.Error, "Failed to store reset code", err
	}

	go func() {
		emailData := map[string]interface{}{
			"Name": user.FirstName,
			"Code": code,
		}
		if sendErr := api.Mailer.Send(user.Email, emailData, "resetPassword.tmpl"); sendErr != nil {
			log.Println(values.Error, "Failed to send reset email", sendErr)
		}
	}()

	return values.Success, "If the account exists, a reset code has been sent", nil
}

func (api *API) ResetPasswordHelper(ctx context.Context, req model.ResetPasswordRequest) (string, string, error) {
	if err := util.ValidateStruct(req); err != nil {
		return values.BadRequestBody, "Invalid reset details", err
	}

	userID, err := api.VerifyCodeRepo(ctx, req.Code, "reset", req.Email)
	if err != nil {
		return values.NotAuthorised, "Invalid or expired reset code", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return values.Error, "Error hashing password", err
	}

	if err := api.UpdatePasswordRepo(ctx, userID, string(hash)); err != nil {
		return values.Error, "Failed to update password", err
	}

	return values.Success, "Password updated successfully", nil
}

func (api *API) RefreshTokenHelper(ctx context.Context, refreshToken string) (model.LoginResponse, string, string, error) {
	claims, err := api.verifyToken(refreshToken, true)
	if err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Invalid refresh token", err
	}

	if err := api.ValidateRefreshToken(ctx, refreshToken); err != nil {
		return model.LoginResponse{}, values.NotAuthorised, "Refresh token revoked or expired", err
	}

	token, _, err := api.createToken(claims.UserID)
	if err != nil {
		return model.LoginResponse{}, values.Error, fmt.Sprintf("%s [CrTk]", values.SystemErr), err
	}

	return model.LoginResponse{Token: token, RefreshToken: refreshToken}, values.Success, "Token refreshed", nil
}
