package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/auth"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/logging"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/models"
	"github.com/01imprashant/Complete-YouTube-Twitter-Backend/internal/repositories"
)

// UserHandler implements account, session and channel-profile endpoints.
type UserHandler struct {
	Users    UserStore
	Sessions SessionManager
	Views    UserViews
	Storage  BlobStorage
	Cleaner  BlobCleaner
	NowFunc  func() time.Time
}

type userResponse struct {
	ID          string    `json:"id"`
	Handle      string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"fullName"`
	AvatarURL   string    `json:"avatar"`
	CoverURL    string    `json:"coverImage"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newUserResponse(user models.User) userResponse {
	return userResponse{
		ID:          user.ID,
		Handle:      user.Handle,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		CoverURL:    user.CoverURL,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

type loginResponse struct {
	User   userResponse         `json:"user"`
	Tokens models.SessionTokens `json:"tokens"`
}

// Register handles POST /api/v1/users/register. The payload is multipart:
// text fields plus a required avatar image and an optional cover image.
func (h UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Users == nil || h.Storage == nil {
		logger.Error("registration dependencies unavailable", "hasUsers", h.Users != nil, "hasStorage", h.Storage != nil)
		respondError(ctx, w, http.StatusInternalServerError, "registration services unavailable")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.Warn("invalid registration form", "error", err)
		respondError(ctx, w, http.StatusBadRequest, "multipart form data is required")
		return
	}

	email := strings.TrimSpace(strings.ToLower(r.FormValue("email")))
	handle := strings.TrimSpace(strings.ToLower(r.FormValue("username")))
	displayName := strings.TrimSpace(r.FormValue("fullName"))
	password := r.FormValue("password")

	if email == "" || handle == "" || displayName == "" || password == "" {
		respondError(ctx, w, http.StatusBadRequest, "fullName, email, username and password are required")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(password) < 8 {
		respondError(ctx, w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	avatarURL, err := receiveUpload(ctx, h.Storage, r, "avatar", "image", "avatars")
	if err != nil {
		respondUploadError(w, r, "avatar", err)
		return
	}

	coverURL := ""
	if _, _, formErr := r.FormFile("coverImage"); formErr == nil {
		coverURL, err = receiveUpload(ctx, h.Storage, r, "coverImage", "image", "covers")
		if err != nil {
			respondUploadError(w, r, "coverImage", err)
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to secure password")
		return
	}

	now := h.now()
	user := models.User{
		ID:          uuid.NewString(),
		Email:       email,
		Handle:      handle,
		DisplayName: displayName,
		Password:    string(hashed),
		AvatarURL:   avatarURL,
		CoverURL:    coverURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respondError(ctx, w, http.StatusConflict, "username or email already registered")
			return
		}
		logger.Error("create user", "error", err, "email", email)
		respondError(ctx, w, http.StatusInternalServerError, "failed to create account")
		return
	}

	respondData(ctx, w, http.StatusCreated, newUserResponse(user), "user registered")
}

// Login handles POST /api/v1/users/login. The identifier may be a username
// or an email address.
func (h UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Users == nil || h.Sessions == nil {
		logger.Error("login dependencies unavailable", "hasUsers", h.Users != nil, "hasSessions", h.Sessions != nil)
		respondError(ctx, w, http.StatusInternalServerError, "authentication services unavailable")
		return
	}

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	identifier := strings.TrimSpace(strings.ToLower(req.Username))
	if identifier == "" {
		identifier = strings.TrimSpace(strings.ToLower(req.Email))
	}
	if identifier == "" || req.Password == "" {
		respondError(ctx, w, http.StatusBadRequest, "username or email, and password are required")
		return
	}

	user, err := h.Users.FindByLogin(ctx, identifier)
	if err != nil {
		logger.Warn("login lookup failed", "identifier", identifier, "error", err)
		respondError(ctx, w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.Warn("login password mismatch", "userId", user.ID)
		respondError(ctx, w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	tokens, err := h.Sessions.Issue(ctx, user.ID)
	if err != nil {
		logger.Error("issue session", "error", err, "userId", user.ID)
		respondError(ctx, w, http.StatusInternalServerError, "failed to create session")
		return
	}

	setSessionCookies(w, tokens)
	respondData(ctx, w, http.StatusOK, loginResponse{User: newUserResponse(user), Tokens: tokens}, "logged in")
}

// Logout handles POST /api/v1/users/logout. Every session for the user is
// revoked, not just the presented one.
func (h UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	if err := h.Sessions.RevokeAll(ctx, userID); err != nil {
		logging.FromContext(ctx).Error("revoke sessions", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "failed to log out")
		return
	}

	clearSessionCookies(w)
	respondData(ctx, w, http.StatusOK, nil, "logged out")
}

// RefreshToken handles POST /api/v1/users/refresh-token. The refresh token is
// read from the cookie, falling back to the request body, and is rotated on
// every successful exchange.
func (h UserHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	refreshToken := refreshTokenFrom(r, req.RefreshToken)
	if refreshToken == "" {
		respondError(ctx, w, http.StatusBadRequest, "refresh token is required")
		return
	}

	tokens, err := h.Sessions.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrSessionNotFound) || errors.Is(err, auth.ErrTokenExpired) {
			respondError(ctx, w, http.StatusUnauthorized, "invalid or expired refresh token")
			return
		}
		logger.Error("refresh session", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "unable to refresh session")
		return
	}

	setSessionCookies(w, tokens)
	respondData(ctx, w, http.StatusOK, tokens, "session refreshed")
}

// ChangePassword handles POST /api/v1/users/change-password.
func (h UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	var req struct {
		OldPassword     string `json:"oldPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OldPassword == "" || req.NewPassword == "" {
		respondError(ctx, w, http.StatusBadRequest, "oldPassword and newPassword are required")
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		respondError(ctx, w, http.StatusBadRequest, "newPassword and confirmPassword do not match")
		return
	}
	if len(req.NewPassword) < 8 {
		respondError(ctx, w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		logger.Error("load user", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to change password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		respondError(ctx, w, http.StatusUnauthorized, "old password is incorrect")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("hash password", "error", err)
		respondError(ctx, w, http.StatusInternalServerError, "failed to secure password")
		return
	}

	if err := h.Users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		logger.Error("update password", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to change password")
		return
	}

	respondData(ctx, w, http.StatusOK, nil, "password changed")
}

// CurrentUser handles GET /api/v1/users/current-user.
func (h UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load user", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load account")
		return
	}

	respondData(ctx, w, http.StatusOK, newUserResponse(user), "current user")
}

// ChannelProfile handles GET /api/v1/users/c/{username}.
func (h UserHandler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	handle := strings.TrimSpace(strings.ToLower(r.PathValue("username")))
	if handle == "" {
		respondError(ctx, w, http.StatusBadRequest, "username is required")
		return
	}

	profile, err := h.Views.ChannelProfile(ctx, handle, CurrentUserID(ctx))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			respondError(ctx, w, http.StatusNotFound, "channel not found")
			return
		}
		logging.FromContext(ctx).Error("load channel profile", "error", err, "handle", handle)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load channel")
		return
	}

	respondData(ctx, w, http.StatusOK, profile, "channel profile")
}

// WatchHistory handles GET /api/v1/users/history.
func (h UserHandler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := CurrentUserID(ctx)

	history, err := h.Views.WatchHistory(ctx, userID)
	if err != nil {
		logging.FromContext(ctx).Error("load watch history", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to load watch history")
		return
	}

	respondData(ctx, w, http.StatusOK, history, "watch history")
}

// UpdateAccount handles PATCH /api/v1/users/update-account.
func (h UserHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	var req struct {
		DisplayName string `json:"fullName"`
		Email       string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.DisplayName == "" || req.Email == "" {
		respondError(ctx, w, http.StatusBadRequest, "fullName and email are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "invalid email address")
		return
	}

	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		logger.Error("load user", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update account")
		return
	}

	user.DisplayName = req.DisplayName
	user.Email = req.Email
	user.UpdatedAt = h.now()

	if err := h.Users.UpdateAccount(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			respondError(ctx, w, http.StatusConflict, "email already registered")
			return
		}
		logger.Error("update account", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update account")
		return
	}

	respondData(ctx, w, http.StatusOK, newUserResponse(user), "account updated")
}

// UpdateAvatar handles PATCH /api/v1/users/avatar. The previous avatar blob
// is deleted in the background once the new one is saved.
func (h UserHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "avatar", "avatars",
		func(user models.User) string { return user.AvatarURL },
		h.Users.UpdateAvatar, "avatar updated")
}

// UpdateCoverImage handles PATCH /api/v1/users/cover-image.
func (h UserHandler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, "coverImage", "covers",
		func(user models.User) string { return user.CoverURL },
		h.Users.UpdateCover, "cover image updated")
}

func (h UserHandler) updateImage(
	w http.ResponseWriter,
	r *http.Request,
	field, prefix string,
	previous func(models.User) string,
	persist func(ctx context.Context, id, url string) error,
	message string,
) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)
	userID := CurrentUserID(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(ctx, w, http.StatusBadRequest, "multipart form data is required")
		return
	}

	user, err := h.Users.FindByID(ctx, userID)
	if err != nil {
		logger.Error("load user", "error", err, "userId", userID)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update image")
		return
	}

	location, err := receiveUpload(ctx, h.Storage, r, field, "image", prefix)
	if err != nil {
		respondUploadError(w, r, field, err)
		return
	}

	if err := persist(ctx, userID, location); err != nil {
		logger.Error("persist image", "error", err, "userId", userID, "field", field)
		respondError(ctx, w, http.StatusInternalServerError, "unable to update image")
		return
	}

	if old := previous(user); old != "" && h.Cleaner != nil {
		if err := h.Cleaner.Enqueue(ctx, old); err != nil {
			logger.Warn("schedule old blob cleanup", "error", err, "location", old)
		}
	}

	respondData(ctx, w, http.StatusOK, map[string]string{"url": location}, message)
}

func (h UserHandler) now() time.Time {
	if h.NowFunc != nil {
		return h.NowFunc()
	}
	return time.Now().UTC()
}
