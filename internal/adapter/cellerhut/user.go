package cellerhut

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/adapter"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/search"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/upstream"
)

const (
	defaultUserLimit = 30
	usersFailed      = "Failed to fetch users from Celler Hut API"
)

// UserAdapter implements adapter.UserAdapter.
type UserAdapter struct {
	client *upstream.Client
}

var _ adapter.UserAdapter = (*UserAdapter)(nil)

// NewUserAdapter creates a user adapter.
func NewUserAdapter(client *upstream.Client) *UserAdapter {
	return &UserAdapter{client: client}
}

// List returns a page of users.
func (a *UserAdapter) List(ctx context.Context, p adapter.UserListParams) (storefront.Page[storefront.User], error) {
	q := pageQuery(p.Page, p.Limit, defaultUserLimit)
	applySearch(ctx, q, p.Search, search.Users)
	setIf(q, "role", p.Role)

	route := p.Route
	if route == "" {
		route = transform.RouteUsers
	}

	list, err := fetchList[celler.User](ctx, a.client, usersPath, q)
	if err != nil {
		return storefront.Page[storefront.User]{}, mapError(err, nil, usersFailed)
	}
	return transform.Page(list, route, transform.User), nil
}

// Get returns a user by id.
func (a *UserAdapter) Get(ctx context.Context, id int64) (storefront.User, error) {
	var u celler.User
	if err := a.client.Get(ctx, idPath(usersPath, id), nil, &u); err != nil {
		return storefront.User{}, mapError(err, userNotFound(id), usersFailed)
	}
	return transform.User(u), nil
}

// Create adds a user account.
func (a *UserAdapter) Create(ctx context.Context, in storefront.CreateUserInput) (storefront.User, error) {
	body := map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"password": in.Password,
	}
	if in.Permission != "" {
		body["role"] = in.Permission
	}

	var u celler.User
	if err := a.client.Post(ctx, usersPath, body, &u); err != nil {
		return storefront.User{}, mapError(err, registerMessages, "Failed to create user")
	}
	return transform.User(u), nil
}

// Delete removes a user account.
func (a *UserAdapter) Delete(ctx context.Context, id int64) error {
	err := a.client.Delete(ctx, idPath(usersPath, id), nil)
	return mapError(err, userNotFound(id), fmt.Sprintf("Failed to remove user %d", id))
}

// Block deactivates a user.
func (a *UserAdapter) Block(ctx context.Context, id int64) (storefront.User, error) {
	return a.action(ctx, id, "block")
}

// Unblock reactivates a user.
func (a *UserAdapter) Unblock(ctx context.Context, id int64) (storefront.User, error) {
	return a.action(ctx, id, "unblock")
}

// MakeAdmin grants a user the admin role.
func (a *UserAdapter) MakeAdmin(ctx context.Context, id int64) (storefront.User, error) {
	return a.action(ctx, id, "make-admin")
}

func (a *UserAdapter) action(ctx context.Context, id int64, name string) (storefront.User, error) {
	var u celler.User
	if err := a.client.Post(ctx, idPath(usersPath, id, name), nil, &u); err != nil {
		return storefront.User{}, mapError(err, userNotFound(id), fmt.Sprintf("Failed to %s user %d", name, id))
	}
	return transform.User(u), nil
}

func userNotFound(id int64) messages {
	return messages{http.StatusNotFound: fmt.Sprintf("User #%d not found", id)}
}
