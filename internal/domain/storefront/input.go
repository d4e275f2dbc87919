package storefront

import "encoding/json"

// LoginInput is the body of POST /token.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the body of POST /register.
type RegisterInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Permission string `json:"permission,omitempty"`
}

// ChangePasswordInput is the body of POST /change-password.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ForgetPasswordInput is the body of POST /forget-password.
type ForgetPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyForgetPasswordTokenInput is the body of POST /verify-forget-password-token.
type VerifyForgetPasswordTokenInput struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// ResetPasswordInput is the body of POST /reset-password.
type ResetPasswordInput struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// SocialLoginInput is the body of POST /social-login-token.
type SocialLoginInput struct {
	Provider    string `json:"provider" validate:"required"`
	AccessToken string `json:"access_token" validate:"required"`
}

// OTPLoginInput is the body of POST /otp-login.
type OTPLoginInput struct {
	OTPID       string `json:"otp_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// SendOTPInput is the body of POST /send-otp-code.
type SendOTPInput struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// VerifyOTPInput is the body of POST /verify-otp-code.
type VerifyOTPInput struct {
	OTPID       string `json:"otp_id" validate:"required"`
	Code        string `json:"code" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// RefreshTokenInput is the body of POST /refresh-token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// ProfileInput is the nested profile on user updates.
type ProfileInput struct {
	ID      int64           `json:"id,omitempty"`
	Bio     string          `json:"bio,omitempty"`
	Contact string          `json:"contact,omitempty"`
	Avatar  json.RawMessage `json:"avatar,omitempty"`
	Socials []Social        `json:"socials,omitempty"`
}

// UpdateUserInput is the body of PUT /me, PUT /users/{id} and the profile routes.
type UpdateUserInput struct {
	Name    string        `json:"name,omitempty" validate:"omitempty,max=255"`
	Email   string        `json:"email,omitempty" validate:"omitempty,email"`
	Contact string        `json:"contact,omitempty"`
	Profile *ProfileInput `json:"profile,omitempty"`
}

// CreateUserInput is the body of POST /users.
type CreateUserInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Permission string `json:"permission,omitempty"`
}

// UserIDInput is the body of the block and unblock routes.
type UserIDInput struct {
	ID int64 `json:"id" validate:"required,gte=1"`
}

// MakeAdminInput is the body of POST /users/make-admin.
type MakeAdminInput struct {
	UserID int64 `json:"user_id" validate:"required,gte=1"`
}

// AddressInput is the body of the address write routes.
type AddressInput struct {
	Title            string        `json:"title" validate:"required"`
	Type             AddressType   `json:"type"`
	Default          bool          `json:"default,omitempty"`
	Address          AddressFields `json:"address"`
	Latitude         *float64      `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude        *float64      `json:"longitude,omitempty" validate:"omitempty,longitude"`
	FormattedAddress *string       `json:"formattedAddress,omitempty"`
	CustomerID       *int64        `json:"customer_id,omitempty"`
}

// CategoryInput is the body of the category write routes.
type CategoryInput struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Slug        string      `json:"slug,omitempty"`
	Parent      *int64      `json:"parent,omitempty"`
	Details     string      `json:"details,omitempty"`
	Image       *Attachment `json:"image,omitempty"`
	Icon        string      `json:"icon,omitempty"`
	LiquorType  string      `json:"liquor_type,omitempty"`
	Description string      `json:"description,omitempty"`
	Language    string      `json:"language,omitempty"`
	TypeID      *int64      `json:"type_id,omitempty"`
}

// OrderProductInput is a line item on an order write.
type OrderProductInput struct {
	ProductID         int64   `json:"product_id" validate:"required,gte=1"`
	VariationOptionID *int64  `json:"variation_option_id,omitempty"`
	OrderQuantity     int     `json:"order_quantity" validate:"required,gte=1"`
	UnitPrice         float64 `json:"unit_price" validate:"gte=0"`
	Subtotal          float64 `json:"subtotal" validate:"gte=0"`
}

// OrderInput is the body of order create, update and checkout verification.
type OrderInput struct {
	CustomerID      *int64              `json:"customer_id,omitempty"`
	CustomerContact string              `json:"customer_contact,omitempty"`
	CustomerName    string              `json:"customer_name,omitempty"`
	Products        []OrderProductInput `json:"products,omitempty" validate:"omitempty,dive"`
	Amount          *float64            `json:"amount,omitempty" validate:"omitempty,gte=0"`
	SubTotal        *float64            `json:"sub_total,omitempty" validate:"omitempty,gte=0"`
	SalesTax        *float64            `json:"sales_tax,omitempty"`
	Total           *float64            `json:"total,omitempty"`
	PaidTotal       *float64            `json:"paid_total,omitempty"`
	PaymentGateway  string              `json:"payment_gateway,omitempty"`
	CouponID        *int64              `json:"coupon_id,omitempty"`
	ShopID          *int64              `json:"shop_id,omitempty"`
	Discount        *float64            `json:"discount,omitempty"`
	DeliveryFee     *float64            `json:"delivery_fee,omitempty"`
	DeliveryTime    string              `json:"delivery_time,omitempty"`
	OrderStatus     string              `json:"order_status,omitempty"`
	PaymentStatus   string              `json:"payment_status,omitempty"`
	UseWalletPoints *bool               `json:"use_wallet_points,omitempty"`
	Language        string              `json:"language,omitempty"`
	BillingAddress  *UserAddress        `json:"billing_address,omitempty"`
	ShippingAddress *UserAddress        `json:"shipping_address,omitempty"`
}
