package api

import (
	"net/http"

	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/placeshare/places-api/internal/platform/filestore"
	"github.com/placeshare/places-api/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService    service.UserService
	fileStore      filestore.FileStore
	maxUploadBytes int64
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(
	userService service.UserService,
	fileStore filestore.FileStore,
	maxUploadBytes int64,
) *UserHandler {
	return &UserHandler{
		userService:    userService,
		fileStore:      fileStore,
		maxUploadBytes: maxUploadBytes,
	}
}

// ListUsers handles GET /api/users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Fetching users failed, please try again later.")
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// SignUp handles POST /api/users/signup requests. The body is multipart
// form data carrying name, email, password, and an optional profile image.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.", err)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	imagePath, ok := h.saveUploadedImage(w, r)
	if !ok {
		return
	}

	result, err := h.userService.SignUp(r.Context(), name, email, password, imagePath)
	if err != nil {
		// The image was stored before the account creation failed; drop it
		// so rejected signups leave nothing behind.
		if imagePath != "" {
			_ = h.fileStore.Remove(imagePath)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, authResultToResponse(result))
}

// LogIn handles POST /api/users/login requests
func (h *UserHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	result, err := h.userService.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, authResultToResponse(result))
}

// saveUploadedImage stores the "image" form file if one was sent. Returns
// the stored path (empty when no file was uploaded) and whether the caller
// may proceed; on failure an error response has already been written.
func (h *UserHandler) saveUploadedImage(w http.ResponseWriter, r *http.Request) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", true
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Invalid image upload, please check your data.", err)
		return "", false
	}
	defer func() { _ = file.Close() }()

	path, err := h.fileStore.Save(file, header.Filename)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Invalid image upload, please check your data.", err)
		return "", false
	}

	return path, true
}
