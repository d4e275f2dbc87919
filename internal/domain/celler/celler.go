// Package celler holds the Celler Hut API wire shapes as the upstream sends
// and accepts them.
package celler

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Scalar is a JSON value the upstream sends as either a string or a number,
// such as Tookan job ids or coordinates. It always re-encodes as a string.
type Scalar string

// UnmarshalJSON accepts strings, numbers and booleans.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	*s = Scalar(data)
	return nil
}

// String returns the raw text.
func (s Scalar) String() string { return string(s) }

// Float parses the value as a float.
func (s Scalar) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(s), 64)
	return f, err == nil
}

// User is an upstream user account.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Avatar    *string   `json:"avatar,omitempty"`
	Role      string    `json:"role,omitempty"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	IsActive  *bool     `json:"is_active,omitempty"`
	Profile   *Profile  `json:"profile,omitempty"`
	Addresses []Address `json:"addresses,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	UpdatedAt string    `json:"updated_at,omitempty"`
}

// Profile is the optional profile block of a user.
type Profile struct {
	ID       int64           `json:"id"`
	Avatar   *string         `json:"avatar,omitempty"`
	Bio      *string         `json:"bio,omitempty"`
	Socials  []Social        `json:"socials,omitempty"`
	Contact  *string         `json:"contact,omitempty"`
	Customer json.RawMessage `json:"customer,omitempty"`
}

// Social is a social profile link.
type Social struct {
	Type string `json:"type"`
	Link string `json:"link"`
}

// AuthPayload is returned by login, register, social and OTP login.
type AuthPayload struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// OTPSent is the send-otp response.
type OTPSent struct {
	OTPID      Scalar `json:"otp_id"`
	UserExists bool   `json:"user_exists"`
	Message    string `json:"message"`
}

// AgeVerification is the age check result for a user.
type AgeVerification struct {
	IsOfLegalAge bool   `json:"is_of_legal_age"`
	Age          *int   `json:"age,omitempty"`
	LegalAge     *int   `json:"legal_age,omitempty"`
	Message      string `json:"message,omitempty"`
}

// ProfileUpdate is the body of PUT /ecommerce/auth/profile.
type ProfileUpdate struct {
	Name    string          `json:"name,omitempty"`
	Email   string          `json:"email,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Bio     string          `json:"bio,omitempty"`
	Avatar  json.RawMessage `json:"avatar,omitempty"`
	Socials []Social        `json:"socials,omitempty"`
}

// Address is an upstream customer address.
type Address struct {
	ID                int64    `json:"id,omitempty"`
	Title             string   `json:"title,omitempty"`
	Street            string   `json:"street,omitempty"`
	Province          string   `json:"province,omitempty"`
	PostalCode        string   `json:"postalCode,omitempty"`
	PostalCodeSnake   string   `json:"postal_code,omitempty"`
	City              string   `json:"city,omitempty"`
	Country           string   `json:"country,omitempty"`
	IsDefaultBilling  *bool    `json:"isDefaultBilling,omitempty"`
	IsDefaultShipping *bool    `json:"isDefaultShipping,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
	FormattedAddress  *string  `json:"formattedAddress,omitempty"`
	CreatedAt         string   `json:"createdAt,omitempty"`
	UpdatedAt         string   `json:"updatedAt,omitempty"`
}

// Zip returns whichever postal code spelling the upstream used.
func (a Address) Zip() string {
	if a.PostalCode != "" {
		return a.PostalCode
	}
	return a.PostalCodeSnake
}

// OrderAddress is the address embedded in orders. Reads accept both the
// upstream and the storefront spellings.
type OrderAddress struct {
	Street        string `json:"street,omitempty"`
	StreetAddress string `json:"street_address,omitempty"`
	Province      string `json:"province,omitempty"`
	State         string `json:"state,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Zip           string `json:"zip,omitempty"`
	City          string `json:"city,omitempty"`
	Country       string `json:"country,omitempty"`
}

// Category is an upstream category node.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	ParentID    *int64     `json:"parent_id,omitempty"`
	Children    []Category `json:"children,omitempty"`
	Details     *string    `json:"details,omitempty"`
	Image       *Scalar    `json:"image,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	LiquorType  *string    `json:"liquor_type,omitempty"`
	Description *string    `json:"description,omitempty"`
	Language    string     `json:"language,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
}

// CategoryInput is the create and update body for categories.
type CategoryInput struct {
	Name        string  `json:"name,omitempty"`
	Slug        string  `json:"slug,omitempty"`
	ParentID    *int64  `json:"parent_id,omitempty"`
	Details     string  `json:"details,omitempty"`
	Image       string  `json:"image,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	LiquorType  string  `json:"liquor_type,omitempty"`
	Description string  `json:"description,omitempty"`
	Language    string  `json:"language,omitempty"`
	TypeID      *int64  `json:"type_id,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// CategoryStats summarizes the products in a category.
type CategoryStats struct {
	TotalProducts      int        `json:"total_products"`
	ActiveProducts     int        `json:"active_products"`
	AveragePrice       float64    `json:"average_price"`
	PriceRange         PriceRange `json:"price_range"`
	SubcategoriesCount int        `json:"subcategories_count"`
}

// PriceRange is a min and max price pair.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductType is the type block of a product.
type ProductType struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ProductCategory is a category reference on a product.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is an upstream product.
type Product struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Slug               string            `json:"slug"`
	Description        string            `json:"description,omitempty"`
	Type               *ProductType      `json:"type,omitempty"`
	Price              float64           `json:"price"`
	DiscountPrice      *float64          `json:"discountPrice,omitempty"`
	SKU                *string           `json:"sku,omitempty"`
	Quantity           *int              `json:"quantity,omitempty"`
	InStock            *bool             `json:"in_stock,omitempty"`
	IsTaxable          *bool             `json:"is_taxable,omitempty"`
	Status             string            `json:"status,omitempty"`
	ProductType        string            `json:"product_type,omitempty"`
	Unit               string            `json:"unit,omitempty"`
	Height             json.RawMessage   `json:"height,omitempty"`
	Width              json.RawMessage   `json:"width,omitempty"`
	Length             json.RawMessage   `json:"length,omitempty"`
	Image              json.RawMessage   `json:"image,omitempty"`
	Gallery            []json.RawMessage `json:"gallery,omitempty"`
	Categories         []ProductCategory `json:"categories,omitempty"`
	Category           *ProductCategory  `json:"category,omitempty"`
	AlcoholContent     *float64          `json:"alcohol_content,omitempty"`
	Volume             *string           `json:"volume,omitempty"`
	Origin             *string           `json:"origin,omitempty"`
	Vintage            *int              `json:"vintage,omitempty"`
	TastingNotes       *string           `json:"tasting_notes,omitempty"`
	FoodPairings       json.RawMessage   `json:"food_pairings,omitempty"`
	ServingTemperature *string           `json:"serving_temperature,omitempty"`
	AgeRestricted      *bool             `json:"age_restricted,omitempty"`
	CreatedAt          string            `json:"created_at,omitempty"`
	UpdatedAt          string            `json:"updated_at,omitempty"`
}

// CategorySlug returns the slug used to look up related products.
func (p Product) CategorySlug() string {
	if p.Category != nil && p.Category.Slug != "" {
		return p.Category.Slug
	}
	if len(p.Categories) > 0 {
		return p.Categories[0].Slug
	}
	return ""
}

// Order is an upstream order including the delivery tracking block.
type Order struct {
	ID                    int64           `json:"id"`
	TrackingNumber        string          `json:"tracking_number"`
	CustomerID            *int64          `json:"customer_id,omitempty"`
	CustomerContact       *string         `json:"customer_contact,omitempty"`
	CustomerName          *string         `json:"customer_name,omitempty"`
	SubTotal              *float64        `json:"sub_total,omitempty"`
	Amount                *float64        `json:"amount,omitempty"`
	SalesTax              *float64        `json:"sales_tax,omitempty"`
	Total                 *float64        `json:"total,omitempty"`
	PaidTotal             *float64        `json:"paid_total,omitempty"`
	PaymentID             *Scalar         `json:"payment_id,omitempty"`
	PaymentGateway        *string         `json:"payment_gateway,omitempty"`
	CouponID              *int64          `json:"coupon_id,omitempty"`
	ShopID                *int64          `json:"shop_id,omitempty"`
	Discount              *float64        `json:"discount,omitempty"`
	DeliveryFee           *float64        `json:"delivery_fee,omitempty"`
	DeliveryTime          *string         `json:"delivery_time,omitempty"`
	Status                *string         `json:"status,omitempty"`
	OrderStatus           *string         `json:"order_status,omitempty"`
	PaymentStatus         *string         `json:"payment_status,omitempty"`
	Products              json.RawMessage `json:"products,omitempty"`
	BillingAddress        *OrderAddress   `json:"billing_address,omitempty"`
	ShippingAddress       *OrderAddress   `json:"shipping_address,omitempty"`
	ShippingZone          *string         `json:"shipping_zone,omitempty"`
	EstimatedDelivery     *string         `json:"estimated_delivery,omitempty"`
	TrackingEnabled       *bool           `json:"tracking_enabled,omitempty"`
	DeliveryService       *string         `json:"delivery_service,omitempty"`
	TookanJobID           *Scalar         `json:"tookan_job_id,omitempty"`
	TookanJobToken        *string         `json:"tookan_job_token,omitempty"`
	TookanStatus          *Scalar         `json:"tookan_status,omitempty"`
	TrackingURL           *string         `json:"tracking_url,omitempty"`
	DriverID              *Scalar         `json:"driver_id,omitempty"`
	DriverName            *string         `json:"driver_name,omitempty"`
	DriverPhone           *string         `json:"driver_phone,omitempty"`
	DriverEmail           *string         `json:"driver_email,omitempty"`
	DriverPhoto           *string         `json:"driver_photo,omitempty"`
	DriverVehicleNumber   *string         `json:"driver_vehicle_number,omitempty"`
	EstimatedDeliveryTime *string         `json:"estimated_delivery_time,omitempty"`
	AcknowledgedDatetime  *string         `json:"acknowledged_datetime,omitempty"`
	ArrivedDatetime       *string         `json:"arrived_datetime,omitempty"`
	ActualDeliveryTime    *string         `json:"actual_delivery_time,omitempty"`
	DeliveryLatitude      *Scalar         `json:"delivery_latitude,omitempty"`
	DeliveryLongitude     *Scalar         `json:"delivery_longitude,omitempty"`
	DeliverySignatureURL  *string         `json:"delivery_signature_url,omitempty"`
	DeliveryPhotoURL      *string         `json:"delivery_photo_url,omitempty"`
	DeliveryNotes         *string         `json:"delivery_notes,omitempty"`
	CreatedAt             string          `json:"created_at,omitempty"`
	UpdatedAt             string          `json:"updated_at,omitempty"`
}

// OrderProduct is a line item on an order write.
type OrderProduct struct {
	ProductID         int64   `json:"product_id"`
	VariationOptionID *int64  `json:"variation_option_id,omitempty"`
	OrderQuantity     int     `json:"order_quantity"`
	UnitPrice         float64 `json:"unit_price"`
	Subtotal          float64 `json:"subtotal"`
}

// OrderInput is the body for order create, update and checkout verification.
type OrderInput struct {
	CustomerID      *int64         `json:"customer_id,omitempty"`
	CustomerContact string         `json:"customer_contact,omitempty"`
	CustomerName    string         `json:"customer_name,omitempty"`
	Products        []OrderProduct `json:"products,omitempty"`
	SubTotal        *float64       `json:"sub_total,omitempty"`
	SalesTax        *float64       `json:"sales_tax,omitempty"`
	Total           *float64       `json:"total,omitempty"`
	PaidTotal       *float64       `json:"paid_total,omitempty"`
	PaymentGateway  string         `json:"payment_gateway,omitempty"`
	CouponID        *int64         `json:"coupon_id,omitempty"`
	ShopID          *int64         `json:"shop_id,omitempty"`
	Discount        *float64       `json:"discount,omitempty"`
	DeliveryFee     *float64       `json:"delivery_fee,omitempty"`
	DeliveryTime    string         `json:"delivery_time,omitempty"`
	OrderStatus     string         `json:"order_status,omitempty"`
	PaymentStatus   string         `json:"payment_status,omitempty"`
	UseWalletPoints *bool          `json:"use_wallet_points,omitempty"`
	Language        string         `json:"language,omitempty"`
	BillingAddress  *OrderAddress  `json:"billing_address,omitempty"`
	ShippingAddress *OrderAddress  `json:"shipping_address,omitempty"`
}

// CheckoutVerification is the verify-checkout response.
type CheckoutVerification struct {
	UnavailableProducts []json.RawMessage `json:"unavailable_products"`
	TotalTax            float64           `json:"total_tax"`
	ShippingCharge      float64           `json:"shipping_charge"`
	ShippingZone        string            `json:"shipping_zone"`
	EstimatedDelivery   string            `json:"estimated_delivery"`
	AvailableCoupons    []json.RawMessage `json:"available_coupons"`
}
