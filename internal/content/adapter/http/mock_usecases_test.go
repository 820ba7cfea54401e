package http_test

import (
	"context"

	authmodel "yogic-backend/internal/auth/domain/model"
	"yogic-backend/internal/auth/domain/repository"
	authusecase "yogic-backend/internal/auth/usecase"
	"yogic-backend/internal/content/domain/model"
	"yogic-backend/internal/content/usecase"

	"github.com/stretchr/testify/mock"
)

type mockContentUsecase struct {
	mock.Mock
}

func (m *mockContentUsecase) ListContent(ctx context.Context) (*model.ContentListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentListing), args.Error(1)
}

func (m *mockContentUsecase) CreateSchedule(ctx context.Context, req usecase.CreateScheduleRequest) (*model.Schedule, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Schedule), args.Error(1)
}

func (m *mockContentUsecase) CreateFact(ctx context.Context, req usecase.CreateFactRequest) (*model.Fact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Fact), args.Error(1)
}

func (m *mockContentUsecase) CreateBlog(ctx context.Context, req usecase.CreateBlogRequest) (*model.Blog, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Blog), args.Error(1)
}

func (m *mockContentUsecase) CreateAsana(ctx context.Context, req usecase.CreateAsanaRequest) (*model.Asana, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Asana), args.Error(1)
}

func (m *mockContentUsecase) Delete(ctx context.Context, kindTag, id string) error {
	args := m.Called(ctx, kindTag, id)
	return args.Error(0)
}

type mockSettingsUsecase struct {
	mock.Mock
}

func (m *mockSettingsUsecase) GetSettings(ctx context.Context) (*model.Settings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

func (m *mockSettingsUsecase) UpdateSettings(ctx context.Context, req usecase.UpdateSettingsRequest) (*model.Settings, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Settings), args.Error(1)
}

// stubAuthUsecase accepts exactly one token so the protected routes can be
// exercised without a real signing key.
type stubAuthUsecase struct {
	validToken string
}

func (s *stubAuthUsecase) Bootstrap(ctx context.Context) (*authmodel.Admin, error) {
	return nil, authusecase.ErrUsernameTaken
}

func (s *stubAuthUsecase) Login(ctx context.Context, req authusecase.LoginRequest) (string, error) {
	return "", authusecase.ErrAdminNotFound
}

func (s *stubAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	if tokenString == s.validToken {
		return &repository.Claims{AdminID: "admin-1", Username: "admin"}, nil
	}
	return nil, authusecase.ErrTokenInvalid
}

func (s *stubAuthUsecase) GetAdminFromToken(ctx context.Context, tokenString string) (*authmodel.Admin, error) {
	if tokenString == s.validToken {
		return &authmodel.Admin{ID: "admin-1", Username: "admin"}, nil
	}
	return nil, authusecase.ErrTokenInvalid
}
