package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
)

// Storefront user listing routes.
const (
	RouteAdmins    = "/admin/list"
	RouteVendors   = "/vendors/list"
	RouteMyStaffs  = "/my-staffs"
	RouteAllStaffs = "/all-staffs"
	RouteCustomers = "/customers/list"
)

var routeRoles = map[string]string{
	RouteAdmins:    "super_admin",
	RouteVendors:   "store_owner",
	RouteMyStaffs:  "staff",
	RouteAllStaffs: "staff",
	RouteCustomers: "customer",
}

// RoleForRoute returns the upstream role a user listing route is limited
// to, or "" for the unfiltered list.
func RoleForRoute(route string) string {
	return routeRoles[route]
}

// UserService administers user accounts.
type UserService struct {
	users  adapter.UserAdapter
	auth   adapter.AuthAdapter
	logger *slog.Logger
}

// NewUserService creates a new user service. Profile writes go through the
// auth adapter because the upstream only updates the caller's own profile.
func NewUserService(users adapter.UserAdapter, auth adapter.AuthAdapter, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		auth:   auth,
		logger: logger,
	}
}

// List returns a page of users. It never fails.
func (s *UserService) List(ctx context.Context, p adapter.UserListParams) storefront.Page[storefront.User] {
	route := p.Route
	if route == "" {
		route = transform.RouteUsers
	}
	if p.Role == "" {
		p.Role = RoleForRoute(route)
	}

	page, err := s.users.List(ctx, p)
	if err != nil {
		fallback(ctx, s.logger, "users", err)
		return transform.EmptyPage[storefront.User](route)
	}
	return page
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (storefront.User, error) {
	return s.users.Get(ctx, id)
}

// Create adds a user account.
func (s *UserService) Create(ctx context.Context, in storefront.CreateUserInput) (storefront.User, error) {
	return s.users.Create(ctx, in)
}

// UpdateProfile updates the caller's profile. It needs the caller's token.
func (s *UserService) UpdateProfile(ctx context.Context, in storefront.UpdateUserInput) (storefront.User, error) {
	if err := requireToken(ctx); err != nil {
		return storefront.User{}, err
	}
	return s.auth.UpdateProfile(ctx, in)
}

// Delete removes a user account.
func (s *UserService) Delete(ctx context.Context, id int64) (storefront.CoreResponse, error) {
	if err := s.users.Delete(ctx, id); err != nil {
		return storefront.CoreResponse{}, err
	}
	return storefront.CoreResponse{
		Success: true,
		Message: fmt.Sprintf("User #%d has been successfully removed", id),
	}, nil
}

// Block deactivates a user.
func (s *UserService) Block(ctx context.Context, id int64) (storefront.User, error) {
	return s.users.Block(ctx, id)
}

// Unblock reactivates a user.
func (s *UserService) Unblock(ctx context.Context, id int64) (storefront.User, error) {
	return s.users.Unblock(ctx, id)
}

// MakeAdmin grants a user the admin role.
func (s *UserService) MakeAdmin(ctx context.Context, id int64) (storefront.User, error) {
	return s.users.MakeAdmin(ctx, id)
}
