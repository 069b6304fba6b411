package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/placeshare/places-api/internal/api"
	"github.com/placeshare/places-api/internal/domain"
	"github.com/placeshare/places-api/internal/mocks"
	"github.com/placeshare/places-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMaxUploadBytes = 5 << 20

func newUserRouter(userService service.UserService, fileStore *mocks.MockFileStore) http.Handler {
	h := api.NewUserHandler(userService, fileStore, testMaxUploadBytes)

	r := chi.NewRouter()
	r.Get("/api/users", h.ListUsers)
	r.Post("/api/users/signup", h.SignUp)
	r.Post("/api/users/login", h.LogIn)
	return r
}

// multipartBody builds a multipart form with the given fields and no file.
func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUserHandler_SignUp(t *testing.T) {
	t.Parallel()

	signupFields := map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "password123",
	}

	t.Run("successful signup returns 201 with token", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		userService := &mockUserService{
			SignUpFn: func(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error) {
				assert.Equal(t, "Ada Lovelace", name)
				assert.Equal(t, "ada@example.com", email)
				assert.Equal(t, "password123", password)
				return &service.AuthResult{UserID: userID, Email: email, Token: "signed-token"}, nil
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		body, contentType := multipartBody(t, signupFields)
		req := httptest.NewRequest(http.MethodPost, "/api/users/signup", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			UserID string `json:"user_id"`
			Email  string `json:"email"`
			Token  string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp.UserID)
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("duplicate email returns 422", func(t *testing.T) {
		t.Parallel()

		userService := &mockUserService{
			SignUpFn: func(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error) {
				return nil, service.ErrEmailTaken
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		body, contentType := multipartBody(t, signupFields)
		req := httptest.NewRequest(http.MethodPost, "/api/users/signup", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "User exists already")
	})

	t.Run("invalid account data returns 422", func(t *testing.T) {
		t.Parallel()

		userService := &mockUserService{
			SignUpFn: func(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error) {
				return nil, domain.ErrPasswordTooShort
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		body, contentType := multipartBody(t, map[string]string{
			"name":     "Ada",
			"email":    "ada@example.com",
			"password": "12345",
		})
		req := httptest.NewRequest(http.MethodPost, "/api/users/signup", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("stored image is cleaned up when signup fails", func(t *testing.T) {
		t.Parallel()

		fileStore := &mocks.MockFileStore{SavedPath: "uploads/images/avatar.png"}
		userService := &mockUserService{
			SignUpFn: func(ctx context.Context, name, email, password, imagePath string) (*service.AuthResult, error) {
				assert.Equal(t, "uploads/images/avatar.png", imagePath)
				return nil, service.ErrEmailTaken
			},
		}
		router := newUserRouter(userService, fileStore)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		for key, value := range signupFields {
			require.NoError(t, writer.WriteField(key, value))
		}
		part, err := writer.CreateFormFile("image", "avatar.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/users/signup", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, []string{"uploads/images/avatar.png"}, fileStore.Removed())
	})
}

func TestUserHandler_LogIn(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return 200 with token", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		userService := &mockUserService{
			LogInFn: func(ctx context.Context, email, password string) (*service.AuthResult, error) {
				return &service.AuthResult{UserID: userID, Email: email, Token: "login-token"}, nil
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"ada@example.com","password":"password123"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "login-token")
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		t.Parallel()

		userService := &mockUserService{
			LogInFn: func(ctx context.Context, email, password string) (*service.AuthResult, error) {
				return nil, service.ErrInvalidCredentials
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"ada@example.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("malformed JSON returns 422", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(&mockUserService{}, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodPost, "/api/users/login", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("missing fields return 422", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(&mockUserService{}, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodPost, "/api/users/login",
			strings.NewReader(`{"email":"not-an-email","password":""}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Parallel()

	t.Run("returns users without password material", func(t *testing.T) {
		t.Parallel()

		users := []*domain.User{
			{
				ID:             uuid.New(),
				Name:           "Ada",
				Email:          "ada@example.com",
				HashedPassword: "super-secret-hash",
				PlaceIDs:       []uuid.UUID{uuid.New()},
			},
		}
		userService := &mockUserService{
			ListUsersFn: func(ctx context.Context) ([]*domain.User, error) {
				return users, nil
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ada@example.com")
		assert.NotContains(t, rec.Body.String(), "super-secret-hash")
	})

	t.Run("no users yields an empty array", func(t *testing.T) {
		t.Parallel()

		userService := &mockUserService{
			ListUsersFn: func(ctx context.Context) ([]*domain.User, error) {
				return []*domain.User{}, nil
			},
		}
		router := newUserRouter(userService, &mocks.MockFileStore{})

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}
