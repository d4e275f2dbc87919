// Package adapter defines the per-resource operations the storefront
// services perform against the upstream catalogue, identity and order APIs.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// CategoryListParams selects a page of categories.
type CategoryListParams struct {
	Page   int
	Limit  int
	Search string
	// Parent is a parent id, or "null" for root categories.
	Parent string
}

// CategorySearchParams filters a category search.
type CategorySearchParams struct {
	Query       string
	LiquorType  string
	Origin      string
	HasProducts string
	Limit       int
}

// ProductListParams selects a page of products.
type ProductListParams struct {
	Page   int
	Limit  int
	Search string
}

// RankedProductParams selects popular or best-selling products.
type RankedProductParams struct {
	Limit    int
	TypeSlug string
}

// ProductSearchParams filters a liquor product search.
type ProductSearchParams struct {
	Query             string
	AlcoholContentMin string
	AlcoholContentMax string
	Volume            string
	Origin            string
	Vintage           string
	PriceMin          string
	PriceMax          string
	Limit             int
}

// OrderListParams selects a page of orders.
type OrderListParams struct {
	Page           int
	Limit          int
	CustomerID     string
	TrackingNumber string
	ShopID         string
	Search         string
}

// UserListParams selects a page of users, optionally limited to one role.
type UserListParams struct {
	Page   int
	Limit  int
	Search string
	Role   string
	// Route is the storefront path the paginator links point at.
	Route string
}

// PurchaseHistoryParams selects a user's purchase history.
type PurchaseHistoryParams struct {
	Limit      int
	LiquorOnly bool
}

// AuthAdapter performs sign-in, password and profile operations.
type AuthAdapter interface {
	Register(ctx context.Context, in storefront.RegisterInput) (storefront.AuthResponse, error)
	Login(ctx context.Context, in storefront.LoginInput) (storefront.AuthResponse, error)
	ChangePassword(ctx context.Context, in storefront.ChangePasswordInput) error
	ForgotPassword(ctx context.Context, in storefront.ForgetPasswordInput) error
	VerifyResetToken(ctx context.Context, in storefront.VerifyForgetPasswordTokenInput) error
	ResetPassword(ctx context.Context, in storefront.ResetPasswordInput) error
	SocialLogin(ctx context.Context, in storefront.SocialLoginInput) (storefront.AuthResponse, error)
	OTPLogin(ctx context.Context, in storefront.OTPLoginInput) (storefront.AuthResponse, error)
	SendOTP(ctx context.Context, in storefront.SendOTPInput) (storefront.OTPResponse, error)
	VerifyOTP(ctx context.Context, in storefront.VerifyOTPInput) error
	Me(ctx context.Context) (storefront.User, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context, in storefront.RefreshTokenInput) (storefront.AuthResponse, error)
	UpdateProfile(ctx context.Context, in storefront.UpdateUserInput) (storefront.User, error)
	AgeVerification(ctx context.Context, userID int64) (storefront.AgeVerification, error)
	PurchaseHistory(ctx context.Context, userID int64, p PurchaseHistoryParams) ([]json.RawMessage, error)
}

// AddressAdapter manages the caller's saved addresses.
type AddressAdapter interface {
	List(ctx context.Context) ([]storefront.Address, error)
	Get(ctx context.Context, id int64) (storefront.Address, error)
	Create(ctx context.Context, in storefront.AddressInput) (storefront.Address, error)
	Update(ctx context.Context, id int64, in storefront.AddressInput) (storefront.Address, error)
	Delete(ctx context.Context, id int64) error
}

// CategoryAdapter reads and writes categories.
type CategoryAdapter interface {
	List(ctx context.Context, p CategoryListParams) (storefront.Page[storefront.Category], error)
	Get(ctx context.Context, param, language string) (storefront.Category, error)
	Create(ctx context.Context, in storefront.CategoryInput) (storefront.Category, error)
	Update(ctx context.Context, id int64, in storefront.CategoryInput) (storefront.Category, error)
	Delete(ctx context.Context, id int64) error
	Liquor(ctx context.Context, limit int) ([]storefront.Category, error)
	Hierarchy(ctx context.Context) ([]storefront.Category, error)
	ByType(ctx context.Context, liquorType string) ([]storefront.Category, error)
	Parents(ctx context.Context) ([]storefront.Category, error)
	Children(ctx context.Context, parentID int64) ([]storefront.Category, error)
	Search(ctx context.Context, p CategorySearchParams) ([]storefront.Category, error)
	Stats(ctx context.Context, id int64) (storefront.CategoryStats, error)
}

// ProductAdapter reads products.
type ProductAdapter interface {
	List(ctx context.Context, p ProductListParams) (storefront.Page[storefront.Product], error)
	BySlug(ctx context.Context, slug string) (storefront.ProductDetail, error)
	Popular(ctx context.Context, p RankedProductParams) ([]storefront.Product, error)
	BestSelling(ctx context.Context, p RankedProductParams) ([]storefront.Product, error)
	LowStock(ctx context.Context, p ProductListParams) (storefront.Page[storefront.Product], error)
	Drafts(ctx context.Context, p ProductListParams) (storefront.Page[storefront.Product], error)
	Search(ctx context.Context, p ProductSearchParams) ([]storefront.Product, error)
}

// OrderAdapter reads and writes orders.
type OrderAdapter interface {
	Create(ctx context.Context, in storefront.OrderInput) (storefront.Order, error)
	List(ctx context.Context, p OrderListParams) (storefront.Page[storefront.Order], error)
	Get(ctx context.Context, idOrTracking string) (storefront.Order, error)
	Update(ctx context.Context, id int64, in storefront.OrderInput) (storefront.Order, error)
	Cancel(ctx context.Context, id int64) (storefront.Order, error)
	VerifyCheckout(ctx context.Context, in storefront.OrderInput) (storefront.VerifiedCheckout, error)
}

// TrackingAdapter reads delivery tracking.
type TrackingAdapter interface {
	Track(ctx context.Context, trackingNumber string) (storefront.TrackingView, error)
}

// UserAdapter administers user accounts.
type UserAdapter interface {
	List(ctx context.Context, p UserListParams) (storefront.Page[storefront.User], error)
	Get(ctx context.Context, id int64) (storefront.User, error)
	Create(ctx context.Context, in storefront.CreateUserInput) (storefront.User, error)
	Delete(ctx context.Context, id int64) error
	Block(ctx context.Context, id int64) (storefront.User, error)
	Unblock(ctx context.Context, id int64) (storefront.User, error)
	MakeAdmin(ctx context.Context, id int64) (storefront.User, error)
}
