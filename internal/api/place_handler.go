package api

import (
	"net/http"
	"strconv"

	"github.com/placeshare/places-api/internal/api/shared"
	"github.com/placeshare/places-api/internal/platform/filestore"
	"github.com/placeshare/places-api/internal/platform/logger"
	"github.com/placeshare/places-api/internal/service"
)

// PlaceHandler handles place-related HTTP requests
type PlaceHandler struct {
	placeService   service.PlaceService
	fileStore      filestore.FileStore
	maxUploadBytes int64
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(
	placeService service.PlaceService,
	fileStore filestore.FileStore,
	maxUploadBytes int64,
) *PlaceHandler {
	return &PlaceHandler{
		placeService:   placeService,
		fileStore:      fileStore,
		maxUploadBytes: maxUploadBytes,
	}
}

// GetPlace handles GET /api/places/{placeID} requests
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := getPathUUID(r, "placeID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.placeService.GetPlace(r.Context(), placeID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// ListPlacesByUser handles GET /api/places/user/{userID} requests.
// A user with no places gets an empty list, not a 404.
func (h *PlaceHandler) ListPlacesByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := getPathUUID(r, "userID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	places, err := h.placeService.ListPlacesByOwner(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Fetching places failed, please try again later.")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placesToResponse(places))
}

// CreatePlace handles POST /api/places requests. The body is multipart
// form data carrying title, description, address, coordinates, and an
// optional image.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), nil)

	userID, ok := getUserIDFromContext(r)
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusForbidden, "Authentication failed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.", err)
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	address := r.FormValue("address")

	latitude, err := strconv.ParseFloat(r.FormValue("latitude"), 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid latitude, please check your data.")
		return
	}

	longitude, err := strconv.ParseFloat(r.FormValue("longitude"), 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid longitude, please check your data.")
		return
	}

	imagePath, ok := h.saveUploadedImage(w, r)
	if !ok {
		return
	}

	place, err := h.placeService.CreatePlace(
		r.Context(), userID, title, description, address, latitude, longitude, imagePath)
	if err != nil {
		if imagePath != "" {
			_ = h.fileStore.Remove(imagePath)
		}
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// UpdatePlace handles PATCH /api/places/{placeID} requests
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "placeID", nil)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity,
			"Invalid inputs passed, please check your data.")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	place, err := h.placeService.UpdatePlace(r.Context(), placeID, userID, req.Title, req.Description)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// DeletePlace handles DELETE /api/places/{placeID} requests
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	userID, placeID, ok := handleUserIDAndPathUUID(w, r, "placeID", nil)
	if !ok {
		return
	}

	if err := h.placeService.DeletePlace(r.Context(), placeID, userID); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Deleted place."})
}

// saveUploadedImage stores the "image" form file if one was sent. Returns
// the stored path (empty when no file was uploaded) and whether the caller
// may proceed; on failure an error response has already been written.
func (h *PlaceHandler) saveUploadedImage(w http.ResponseWriter, r *http.Request) (string, bool) {
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
