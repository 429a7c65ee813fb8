package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yatrasetgo/packyourbags/internal/model"
	"github.com/yatrasetgo/packyourbags/util"
	"github.com/yatrasetgo/packyourbags/util/tracing"
	"github.com/yatrasetgo/packyourbags/util/values"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func (api *API) AuthRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/register", Handler(api.Register))
	mux.Method(http.MethodPost, "/login", Handler(api.Login))
	mux.Method(http.MethodPost, "/verify", Handler(api.VerifyCode))
	mux.Method(http.MethodPost, "/resend", Handler(api.ResendCode))
	mux.Method(http.MethodPost, "/refresh", Handler(api.RefreshToken))
	mux.Method(http.MethodPost, "/logout", Handler(api.Logout))
	mux.Method(http.MethodPost, "/password/forgot", Handler(api.ForgotPassword))
	mux.Method(http.MethodPost, "/password/reset", Handler(api.ResetPassword))
	mux.Method(http.MethodPost, "/google/create", Handler(api.CreateAccountWithGoogle))
	mux.Method(http.MethodPost, "/google/login", Handler(api.LoginWithGoogle))
	return mux
}

func (api *API) googleOauthConfig() *oauth2.Config {
	return &oauth2.Config{
		RedirectURL:  api.Config.GoogleRedirectURL,
		ClientID:     api.Config.GoogleClientID,
		ClientSecret: api.Config.GoogleClientSecret,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

func (api *API) fetchGoogleUserInfo(ctx context.Context, accessToken string) (googleUserInfo, error) {
	var userInfo googleUserInfo

	token := &oauth2.Token{AccessToken: accessToken}
	client := api.googleOauthConfig().Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return userInfo, err
	}
	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	return userInfo, err
}

func (api *API) CreateAccountWithGoogle(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userInfo, err := api.fetchGoogleUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}

	// Check if user already exists
	_, err = api.GetUserByEmail(r.Context(), userInfo.Email)
	if err == nil {
		return respondWithError(nil, "user already exists", values.Conflict, &tc)
	}

	user := model.User{
		ID:           util.GenerateUUID(),
		Email:        userInfo.Email,
		FirstName:    &userInfo.GivenName,
		LastName:     &userInfo.FamilyName,
		Role:         model.RoleUser,
		AuthProvider: "google",
		IsVerified:   userInfo.VerifiedEmail,
	}
	err = api.CreateNewUserRepo(r.Context(), user)
	if err != nil {
		return respondWithError(err, "failed to create new user", values.Error, &tc)
	}

	tokenString, _, err := api.createToken(user.ID.String())
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Account created successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"token": tokenString,
			"user":  user,
		},
	}
}

func (api *API) LoginWithGoogle(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req struct {
		AccessToken string `json:"access_token"`
	}
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userInfo, err := api.fetchGoogleUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		return respondWithError(err, "failed to get user info", values.Error, &tc)
	}

	user, err := api.GetUserByEmail(r.Context(), userInfo.Email)
	if err != nil {
		return respondWithError(err, "user does not exist", values.NotFound, &tc)
	}

	tokenString, _, err := api.createToken(user.ID.String())
	if err != nil {
		return respondWithError(err, "failed to create token", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Login successful",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"token": tokenString,
			"user":  user,
		},
	}
}

func (api *API) Register(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RegisterRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.CreateNewUser(req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

func (api *API) Login(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.LoginRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.LoginUser(req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

func (api *API) VerifyCode(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.VerifyCodeRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	user, status, message, err := api.VerifyCodeHelper(req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       user,
	}
}

func (api *API) ResendCode(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ResendCodeRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	status, message, err := api.ResendVerificationCode(req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) RefreshToken(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RefreshTokenRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	tokens, status, message, err := api.RefreshTokenHelper(r.Context(), req.RefreshToken)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       tokens,
	}
}

// Logout revokes the presented refresh token. The access token stays valid
// until it expires; only the long-lived credential is killed.
func (api *API) Logout(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.RefreshTokenRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}
	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "refresh token is required", values.BadRequestBody, &tc)
	}

	if err := api.RevokeRefreshToken(r.Context(), req.RefreshToken); err != nil {
		return respondWithError(err, "failed to log out", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Logged out successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func (api *API) ForgotPassword(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ResendCodeRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	status, message, err := api.RequestPasswordReset(req.Email)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) ResetPassword(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ResetPasswordRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	status, message, err := api.ResetPasswordHelper(r.Context(), req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}
