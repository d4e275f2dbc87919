package transform

import (
	"encoding/json"
	"strings"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

// DefaultRole is assumed when the upstream omits the role.
const DefaultRole = "customer"

const guardName = "api"

var rolePermissions = map[string][]string{
	"super_admin": {"super_admin", "store_owner", "customer"},
	"admin":       {"store_owner", "customer"},
	"store_owner": {"store_owner", "customer"},
	"staff":       {"customer"},
	"customer":    {"customer"},
}

// Permissions returns the storefront permissions granted to an upstream
// role. Unknown roles get customer only.
func Permissions(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		perms = rolePermissions[DefaultRole]
	}
	return append([]string(nil), perms...)
}

// PermissionList returns Permissions(role) as numbered permission records.
func PermissionList(role string) []storefront.Permission {
	names := Permissions(role)
	out := make([]storefront.Permission, len(names))
	for i, name := range names {
		out[i] = storefront.Permission{ID: i + 1, Name: name, GuardName: guardName}
	}
	return out
}

// User converts an upstream user. The profile is only present when the
// upstream sent one.
func User(u celler.User) storefront.User {
	out := storefront.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  boolOr(u.IsActive, true),
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if u.Profile != nil {
		out.Profile = &storefront.Profile{
			ID:       u.Profile.ID,
			Avatar:   nonEmpty(u.Profile.Avatar),
			Bio:      stringOr(u.Profile.Bio, ""),
			Socials:  socials(u.Profile.Socials),
			Contact:  u.Profile.Contact,
			Customer: rawOrNull(u.Profile.Customer),
		}
	}
	return out
}

// Me converts the authenticated user. Unlike User it always carries a
// profile, the customer record, addresses and the permission list.
func Me(u celler.User) storefront.User {
	out := User(u)
	role := u.Role
	if role == "" {
		role = DefaultRole
	}
	out.Role = role

	profile := storefront.Profile{ID: u.ID, Bio: "", Socials: []storefront.Social{}}
	if out.Profile != nil {
		profile = *out.Profile
		if profile.ID == 0 {
			profile.ID = u.ID
		}
	}
	if profile.Avatar == nil {
		profile.Avatar = nonEmpty(u.Avatar)
	}
	if profile.Contact == nil {
		profile.Contact = nonEmpty(u.Phone)
	}
	customer, _ := json.Marshal(map[string]any{"id": u.ID, "name": u.Name, "email": u.Email})
	profile.Customer = customer
	out.Profile = &profile

	out.Permissions = PermissionList(role)
	out.Address = Map(u.Addresses, Address)
	return out
}

// DemoUser is returned by me when the upstream cannot be reached.
func DemoUser() storefront.User {
	contact := "+27123456789"
	customer, _ := json.Marshal(map[string]any{"id": 1, "name": "Demo User", "email": "demo@example.com"})
	return storefront.User{
		ID:       1,
		Name:     "Demo User",
		Email:    "demo@example.com",
		IsActive: true,
		Role:     DefaultRole,
		Profile: &storefront.Profile{
			ID:       1,
			Bio:      "Demo user for testing",
			Socials:  []storefront.Social{},
			Contact:  &contact,
			Customer: customer,
		},
		Permissions: PermissionList(DefaultRole),
		Address:     []storefront.Address{},
	}
}

// Auth converts a sign-in payload. The role defaults to customer.
func Auth(p celler.AuthPayload) storefront.AuthResponse {
	out := storefront.AuthResponse{
		Token:       p.Token,
		Role:        DefaultRole,
		Permissions: Permissions(DefaultRole),
	}
	if p.User == nil {
		return out
	}

	u := p.User
	if u.Role != "" {
		out.Role = u.Role
		out.Permissions = Permissions(u.Role)
	}
	out.ID = u.ID
	out.Email = u.Email
	out.Name = u.Name

	first, last := u.FirstName, u.LastName
	if first == "" && last == "" {
		first, last, _ = strings.Cut(strings.TrimSpace(u.Name), " ")
	}
	out.FirstName, out.FirstNameSnake = first, first
	out.LastName, out.LastNameSnake = last, last
	return out
}

// FallbackAuth is the optimistic identity returned when a social or OTP
// sign-in cannot reach the upstream.
func FallbackAuth(token string) storefront.AuthResponse {
	return storefront.AuthResponse{
		Token:       token,
		Role:        DefaultRole,
		Permissions: Permissions(DefaultRole),
	}
}

// ProfileUpdate maps a storefront user update onto the upstream profile
// body. contact may arrive at the top level or inside profile.
func ProfileUpdate(in storefront.UpdateUserInput) celler.ProfileUpdate {
	out := celler.ProfileUpdate{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Contact,
	}
	if in.Profile != nil {
		if out.Phone == "" {
			out.Phone = in.Profile.Contact
		}
		out.Bio = in.Profile.Bio
		out.Avatar = in.Profile.Avatar
		for _, s := range in.Profile.Socials {
			out.Socials = append(out.Socials, celler.Social{Type: s.Type, Link: s.Link})
		}
	}
	return out
}

func socials(in []celler.Social) []storefront.Social {
	out := make([]storefront.Social, 0, len(in))
	for _, s := range in {
		out = append(out, storefront.Social{Type: s.Type, Link: s.Link})
	}
	return out
}
