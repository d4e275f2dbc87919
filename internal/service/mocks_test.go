package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// --- Test Helpers ---

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// --- Mock Adapters ---

type mockAuthAdapter struct {
	mock.Mock
}

func (m *mockAuthAdapter) authResponse(args mock.Arguments) (storefront.AuthResponse, error) {
	return args.Get(0).(storefront.AuthResponse), args.Error(1)
}

func (m *mockAuthAdapter) Register(ctx context.Context, in storefront.RegisterInput) (storefront.AuthResponse, error) {
	return m.authResponse(m.Called(ctx, in))
}

func (m *mockAuthAdapter) Login(ctx context.Context, in storefront.LoginInput) (storefront.AuthResponse, error) {
	return m.authResponse(m.Called(ctx, in))
}

func (m *mockAuthAdapter) ChangePassword(ctx context.Context, in storefront.ChangePasswordInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthAdapter) ForgotPassword(ctx context.Context, in storefront.ForgetPasswordInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthAdapter) VerifyResetToken(ctx context.Context, in storefront.VerifyForgetPasswordTokenInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthAdapter) ResetPassword(ctx context.Context, in storefront.ResetPasswordInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthAdapter) SocialLogin(ctx context.Context, in storefront.SocialLoginInput) (storefront.AuthResponse, error) {
	return m.authResponse(m.Called(ctx, in))
}

func (m *mockAuthAdapter) OTPLogin(ctx context.Context, in storefront.OTPLoginInput) (storefront.AuthResponse, error) {
	return m.authResponse(m.Called(ctx, in))
}

func (m *mockAuthAdapter) SendOTP(ctx context.Context, in storefront.SendOTPInput) (storefront.OTPResponse, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storefront.OTPResponse), args.Error(1)
}

func (m *mockAuthAdapter) VerifyOTP(ctx context.Context, in storefront.VerifyOTPInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuthAdapter) Me(ctx context.Context) (storefront.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(storefront.User), args.Error(1)
}

func (m *mockAuthAdapter) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockAuthAdapter) Refresh(ctx context.Context, in storefront.RefreshTokenInput) (storefront.AuthResponse, error) {
	return m.authResponse(m.Called(ctx, in))
}

func (m *mockAuthAdapter) UpdateProfile(ctx context.Context, in storefront.UpdateUserInput) (storefront.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storefront.User), args.Error(1)
}

func (m *mockAuthAdapter) AgeVerification(ctx context.Context, userID int64) (storefront.AgeVerification, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(storefront.AgeVerification), args.Error(1)
}

func (m *mockAuthAdapter) PurchaseHistory(ctx context.Context, userID int64, p adapter.PurchaseHistoryParams) ([]json.RawMessage, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

type mockAddressAdapter struct {
	mock.Mock
}

func (m *mockAddressAdapter) List(ctx context.Context) ([]storefront.Address, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Address), args.Error(1)
}

func (m *mockAddressAdapter) Get(ctx context.Context, id int64) (storefront.Address, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storefront.Address), args.Error(1)
}

func (m *mockAddressAdapter) Create(ctx context.Context, in storefront.AddressInput) (storefront.Address, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storefront.Address), args.Error(1)
}

func (m *mockAddressAdapter) Update(ctx context.Context, id int64, in storefront.AddressInput) (storefront.Address, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(storefront.Address), args.Error(1)
}

func (m *mockAddressAdapter) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockCategoryAdapter struct {
	mock.Mock
}

func (m *mockCategoryAdapter) categories(args mock.Arguments) ([]storefront.Category, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Category), args.Error(1)
}

func (m *mockCategoryAdapter) List(ctx context.Context, p adapter.CategoryListParams) (storefront.Page[storefront.Category], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(storefront.Page[storefront.Category]), args.Error(1)
}

func (m *mockCategoryAdapter) Get(ctx context.Context, param, language string) (storefront.Category, error) {
	args := m.Called(ctx, param, language)
	return args.Get(0).(storefront.Category), args.Error(1)
}

func (m *mockCategoryAdapter) Create(ctx context.Context, in storefront.CategoryInput) (storefront.Category, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storefront.Category), args.Error(1)
}

func (m *mockCategoryAdapter) Update(ctx context.Context, id int64, in storefront.CategoryInput) (storefront.Category, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(storefront.Category), args.Error(1)
}

func (m *mockCategoryAdapter) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCategoryAdapter) Liquor(ctx context.Context, limit int) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx, limit))
}

func (m *mockCategoryAdapter) Hierarchy(ctx context.Context) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx))
}

func (m *mockCategoryAdapter) ByType(ctx context.Context, liquorType string) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx, liquorType))
}

func (m *mockCategoryAdapter) Parents(ctx context.Context) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx))
}

func (m *mockCategoryAdapter) Children(ctx context.Context, parentID int64) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx, parentID))
}

func (m *mockCategoryAdapter) Search(ctx context.Context, p adapter.CategorySearchParams) ([]storefront.Category, error) {
	return m.categories(m.Called(ctx, p))
}

func (m *mockCategoryAdapter) Stats(ctx context.Context, id int64) (storefront.CategoryStats, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storefront.CategoryStats), args.Error(1)
}

type mockProductAdapter struct {
	mock.Mock
}

func (m *mockProductAdapter) page(args mock.Arguments) (storefront.Page[storefront.Product], error) {
	return args.Get(0).(storefront.Page[storefront.Product]), args.Error(1)
}

func (m *mockProductAdapter) products(args mock.Arguments) ([]storefront.Product, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storefront.Product), args.Error(1)
}

func (m *mockProductAdapter) List(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return m.page(m.Called(ctx, p))
}

func (m *mockProductAdapter) BySlug(ctx context.Context, slug string) (storefront.ProductDetail, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(storefront.ProductDetail), args.Error(1)
}

func (m *mockProductAdapter) Popular(ctx context.Context, p adapter.RankedProductParams) ([]storefront.Product, error) {
	return m.products(m.Called(ctx, p))
}

func (m *mockProductAdapter) BestSelling(ctx context.Context, p adapter.RankedProductParams) ([]storefront.Product, error) {
	return m.products(m.Called(ctx, p))
}

func (m *mockProductAdapter) LowStock(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return m.page(m.Called(ctx, p))
}

func (m *mockProductAdapter) Drafts(ctx context.Context, p adapter.ProductListParams) (storefront.Page[storefront.Product], error) {
	return m.page(m.Called(ctx, p))
}

func (m *mockProductAdapter) Search(ctx context.Context, p adapter.ProductSearchParams) ([]storefront.Product, error) {
	return m.products(m.Called(ctx, p))
}

type mockOrderAdapter struct {
	mock.Mock
}

func (m *mockOrderAdapter) order(args mock.Arguments) (storefront.Order, error) {
	return args.Get(0).(storefront.Order), args.Error(1)
}

func (m *mockOrderAdapter) Create(ctx context.Context, in storefront.OrderInput) (storefront.Order, error) {
	return m.order(m.Called(ctx, in))
}

func (m *mockOrderAdapter) List(ctx context.Context, p adapter.OrderListParams) (storefront.Page[storefront.Order], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(storefront.Page[storefront.Order]), args.Error(1)
}

func (m *mockOrderAdapter) Get(ctx context.Context, idOrTracking string) (storefront.Order, error) {
	return m.order(m.Called(ctx, idOrTracking))
}

func (m *mockOrderAdapter) Update(ctx context.Context, id int64, in storefront.OrderInput) (storefront.Order, error) {
	return m.order(m.Called(ctx, id, in))
}

func (m *mockOrderAdapter) Cancel(ctx context.Context, id int64) (storefront.Order, error) {
	return m.order(m.Called(ctx, id))
}

func (m *mockOrderAdapter) VerifyCheckout(ctx context.Context, in storefront.OrderInput) (storefront.VerifiedCheckout, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(storefront.VerifiedCheckout), args.Error(1)
}

type mockTrackingAdapter struct {
	mock.Mock
}

func (m *mockTrackingAdapter) Track(ctx context.Context, trackingNumber string) (storefront.TrackingView, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Get(0).(storefront.TrackingView), args.Error(1)
}

type mockUserAdapter struct {
	mock.Mock
}

func (m *mockUserAdapter) user(args mock.Arguments) (storefront.User, error) {
	return args.Get(0).(storefront.User), args.Error(1)
}

func (m *mockUserAdapter) List(ctx context.Context, p adapter.UserListParams) (storefront.Page[storefront.User], error) {
	args := m.Called(ctx, p)
	return args.Get(0).(storefront.Page[storefront.User]), args.Error(1)
}

func (m *mockUserAdapter) Get(ctx context.Context, id int64) (storefront.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserAdapter) Create(ctx context.Context, in storefront.CreateUserInput) (storefront.User, error) {
	return m.user(m.Called(ctx, in))
}

func (m *mockUserAdapter) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserAdapter) Block(ctx context.Context, id int64) (storefront.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserAdapter) Unblock(ctx context.Context, id int64) (storefront.User, error) {
	return m.user(m.Called(ctx, id))
}

func (m *mockUserAdapter) MakeAdmin(ctx context.Context, id int64) (storefront.User, error) {
	return m.user(m.Called(ctx, id))
}
