package http

import (
	"context"

	"yogic-backend/internal/auth/domain/model"
	"yogic-backend/internal/auth/domain/repository"
	"yogic-backend/internal/auth/usecase"

	"github.com/stretchr/testify/mock"
)

// mockAuthUsecase is a testify mock of usecase.AuthUsecaseInterface
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Bootstrap(ctx context.Context) (*model.Admin, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req usecase.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockAuthUsecase) ValidateToken(ctx context.Context, tokenString string) (*repository.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Claims), args.Error(1)
}

func (m *mockAuthUsecase) GetAdminFromToken(ctx context.Context, tokenString string) (*model.Admin, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Admin), args.Error(1)
}

var _ usecase.AuthUsecaseInterface = (*mockAuthUsecase)(nil)
