package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	authhttp "yogic-backend/internal/auth/adapter/http"
	authmodel "yogic-backend/internal/auth/domain/model"
	authrepo "yogic-backend/internal/auth/domain/repository"
	authusecase "yogic-backend/internal/auth/usecase"
	mediahttp "yogic-backend/internal/media/adapter/http"
	"yogic-backend/internal/media/config"
	apperrors "yogic-backend/internal/shared/errors"
	"yogic-backend/internal/shared/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type mockUploadUsecase struct {
	mock.Mock
}

func (m *mockUploadUsecase) Upload(ctx context.Context, originalName string, size int64, content io.Reader) (string, error) {
	args := m.Called(ctx, originalName, size, content)
	return args.String(0), args.Error(1)
}

type stubAuthUsecase struct{}

func (s *stubAuthUsecase) Bootstrap(ctx context.Context) (*authmodel.Admin, error) {
	return nil, authusecase.ErrUsernameTaken
}

func (s *stubAuthUsecase) Login(ctx context.Context, req authusecase.LoginRequest) (string, error) {
	return "", authusecase.ErrAdminNotFound
}

func (s *stubAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*authrepo.Claims, error) {
	if tokenString == testToken {
		return &authrepo.Claims{AdminID: "admin-1", Username: "admin"}, nil
	}
	return nil, authusecase.ErrTokenInvalid
}

func (s *stubAuthUsecase) GetAdminFromToken(ctx context.Context, tokenString string) (*authmodel.Admin, error) {
	return nil, authusecase.ErrTokenInvalid
}

func newUploadTestApp(uc *mockUploadUsecase) *fiber.App {
	// Same body limit the server runs with, so a max-size upload clears
	// the transport layer instead of dying on Fiber's 4 MiB default.
	cfg := &config.Config{MaxUploadBytes: 5 * 1024 * 1024}
	app := fiber.New(fiber.Config{BodyLimit: cfg.BodyLimit()})
	middleware := authhttp.NewAuthMiddleware(&stubAuthUsecase{})
	handler := mediahttp.NewUploadHTTPHandler(uc, logger.NewLogger())
	handler.SetupUploadRoutes(app, middleware)
	return app
}

func multipartRequest(t *testing.T, token, field, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload
}

func TestUpload_RequiresToken(t *testing.T) {
	uc := &mockUploadUsecase{}
	app := newUploadTestApp(uc)

	resp, err := app.Test(multipartRequest(t, "", "image", "pose.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	uc.AssertNotCalled(t, "Upload")
}

func TestUpload_Success(t *testing.T) {
	uc := &mockUploadUsecase{}
	uc.On("Upload", mock.Anything, "pose.jpg", int64(4), mock.Anything).
		Return("/uploads/1693000000000-1a2b3c4d-pose.jpg", nil)

	app := newUploadTestApp(uc)

	resp, err := app.Test(multipartRequest(t, testToken, "image", "pose.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/uploads/1693000000000-1a2b3c4d-pose.jpg", decodeBody(t, resp)["imageUrl"])
}

func TestUpload_LargeFileWithinCapReachesHandler(t *testing.T) {
	// 4.5 MiB sits above Fiber's default 4 MiB body limit but below the
	// 5 MiB upload cap, so it must reach the usecase and succeed.
	data := bytes.Repeat([]byte("j"), 4*1024*1024+512*1024)

	uc := &mockUploadUsecase{}
	uc.On("Upload", mock.Anything, "big.jpg", int64(len(data)), mock.Anything).
		Return("/uploads/1693000000000-1a2b3c4d-big.jpg", nil)

	app := newUploadTestApp(uc)

	resp, err := app.Test(multipartRequest(t, testToken, "image", "big.jpg", data))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	uc.AssertExpectations(t)
}

func TestUpload_MissingFile(t *testing.T) {
	uc := &mockUploadUsecase{}
	app := newUploadTestApp(uc)

	// wrong multipart field name
	resp, err := app.Test(multipartRequest(t, testToken, "file", "pose.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No file uploaded", decodeBody(t, resp)["error"])
	uc.AssertNotCalled(t, "Upload")
}

func TestUpload_ValidationFailure(t *testing.T) {
	uc := &mockUploadUsecase{}
	uc.On("Upload", mock.Anything, "script.sh", mock.Anything, mock.Anything).
		Return("", apperrors.NewValidationError(`file type ".sh" is not allowed`))

	app := newUploadTestApp(uc)

	resp, err := app.Test(multipartRequest(t, testToken, "image", "script.sh", []byte("#!/bin/sh")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, `file type ".sh" is not allowed`, decodeBody(t, resp)["error"])
}

func TestUpload_StoreFailure(t *testing.T) {
	uc := &mockUploadUsecase{}
	uc.On("Upload", mock.Anything, "pose.jpg", mock.Anything, mock.Anything).
		Return("", errors.New("disk full"))

	app := newUploadTestApp(uc)

	resp, err := app.Test(multipartRequest(t, testToken, "image", "pose.jpg", []byte("jpeg")))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to store upload", decodeBody(t, resp)["error"])
}
