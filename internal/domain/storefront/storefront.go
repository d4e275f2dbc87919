// Package storefront holds the PickBazar shapes the storefront reads and
// writes.
package storefront

import "encoding/json"

// Paginator is the pagination block flattened into every list response.
type Paginator struct {
	Count        int     `json:"count"`
	CurrentPage  int     `json:"current_page"`
	FirstItem    int     `json:"firstItem"`
	LastItem     int     `json:"lastItem"`
	LastPage     int     `json:"last_page"`
	PerPage      int     `json:"per_page"`
	Total        int     `json:"total"`
	FirstPageURL string  `json:"first_page_url"`
	LastPageURL  string  `json:"last_page_url"`
	NextPageURL  *string `json:"next_page_url"`
	PrevPageURL  *string `json:"prev_page_url"`
}

// Page is a page of results.
type Page[T any] struct {
	Data []T `json:"data"`
	Paginator
}

// Permission is a named permission on the me response.
type Permission struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	GuardName string `json:"guard_name"`
}

// Social is a social profile link.
type Social struct {
	Type string `json:"type"`
	Link string `json:"link"`
}

// Profile is the user profile block.
type Profile struct {
	ID       int64           `json:"id"`
	Avatar   *string         `json:"avatar"`
	Bio      string          `json:"bio"`
	Socials  []Social        `json:"socials"`
	Contact  *string         `json:"contact"`
	Customer json.RawMessage `json:"customer"`
}

// User is a storefront user.
type User struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	IsActive    bool         `json:"is_active"`
	Role        string       `json:"role,omitempty"`
	Profile     *Profile     `json:"profile"`
	Permissions []Permission `json:"permissions,omitempty"`
	Address     []Address    `json:"address,omitempty"`
	CreatedAt   string       `json:"created_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

// AuthResponse is returned by every successful sign-in flow.
type AuthResponse struct {
	Token          string   `json:"token"`
	Permissions    []string `json:"permissions"`
	Role           string   `json:"role"`
	ID             int64    `json:"id,omitempty"`
	Email          string   `json:"email,omitempty"`
	Name           string   `json:"name,omitempty"`
	FirstName      string   `json:"firstName,omitempty"`
	LastName       string   `json:"lastName,omitempty"`
	FirstNameSnake string   `json:"first_name,omitempty"`
	LastNameSnake  string   `json:"last_name,omitempty"`
}

// CoreResponse is the generic success flag plus message.
type CoreResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OTPResponse is returned by send-otp.
type OTPResponse struct {
	ID             string `json:"id"`
	Message        string `json:"message"`
	Success        bool   `json:"success"`
	PhoneNumber    string `json:"phone_number"`
	Provider       string `json:"provider"`
	IsContactExist bool   `json:"is_contact_exist"`
}

// AgeVerification is the age check result.
type AgeVerification struct {
	IsOfLegalAge bool   `json:"is_of_legal_age"`
	Age          *int   `json:"age,omitempty"`
	LegalAge     *int   `json:"legal_age,omitempty"`
	Message      string `json:"message,omitempty"`
}

// AddressType tags an address as billing or shipping.
type AddressType struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug"`
}

// AddressFields is the postal part of an address.
type AddressFields struct {
	StreetAddress string `json:"street_address"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// Address is a saved customer address.
type Address struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Address          AddressFields `json:"address"`
	Type             AddressType   `json:"type"`
	Latitude         *float64      `json:"latitude,omitempty"`
	Longitude        *float64      `json:"longitude,omitempty"`
	FormattedAddress *string       `json:"formattedAddress,omitempty"`
	CreatedAt        string        `json:"created_at,omitempty"`
	UpdatedAt        string        `json:"updated_at,omitempty"`
}

// UserAddress is the flat address nested in orders.
type UserAddress struct {
	StreetAddress string `json:"street_address"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	City          string `json:"city"`
	Country       string `json:"country"`
}

// Attachment is an image reference.
type Attachment struct {
	ID        *string `json:"id"`
	Original  *string `json:"original"`
	Thumbnail *string `json:"thumbnail"`
}

// Category is a storefront category node.
type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Parent      *int64     `json:"parent"`
	Children    []Category `json:"children"`
	Details     string     `json:"details"`
	Image       Attachment `json:"image"`
	Icon        string     `json:"icon"`
	LiquorType  *string    `json:"liquor_type,omitempty"`
	Description string     `json:"description"`
	Language    string     `json:"language,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
}

// PriceRange is a min and max price pair.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CategoryStats summarizes the products in a category.
type CategoryStats struct {
	TotalProducts      int        `json:"total_products"`
	ActiveProducts     int        `json:"active_products"`
	AveragePrice       float64    `json:"average_price"`
	PriceRange         PriceRange `json:"price_range"`
	SubcategoriesCount int        `json:"subcategories_count"`
}

// ProductCategory is a category reference on a product.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is a storefront product. Liquor attributes are only present when
// the upstream sent them.
type Product struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Slug               string            `json:"slug"`
	Description        string            `json:"description"`
	TypeID             *int64            `json:"type_id"`
	Price              float64           `json:"price"`
	SalePrice          float64           `json:"sale_price"`
	SKU                *string           `json:"sku"`
	Quantity           int               `json:"quantity"`
	InStock            bool              `json:"in_stock"`
	IsTaxable          bool              `json:"is_taxable"`
	Status             string            `json:"status"`
	ProductType        string            `json:"product_type"`
	Unit               string            `json:"unit"`
	Height             json.RawMessage   `json:"height,omitempty"`
	Width              json.RawMessage   `json:"width,omitempty"`
	Length             json.RawMessage   `json:"length,omitempty"`
	Image              json.RawMessage   `json:"image"`
	Gallery            []json.RawMessage `json:"gallery"`
	Categories         []ProductCategory `json:"categories"`
	Category           *ProductCategory  `json:"category"`
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

// ProductDetail is a product read by slug together with its related items.
type ProductDetail struct {
	Product
	RelatedProducts []Product `json:"related_products"`
}

// GPSTracking summarizes live delivery tracking on an order.
type GPSTracking struct {
	TrackingEnabled bool    `json:"trackingEnabled"`
	TrackingURL     *string `json:"trackingUrl"`
	OrderID         int64   `json:"orderId"`
	OrderNumber     string  `json:"orderNumber"`
	OrderStatus     *string `json:"orderStatus"`
	DeliveryService *string `json:"deliveryService"`
}

// Order is a storefront order.
type Order struct {
	ID                    int64           `json:"id"`
	TrackingNumber        string          `json:"tracking_number"`
	CustomerID            *int64          `json:"customer_id"`
	CustomerContact       *string         `json:"customer_contact"`
	CustomerName          *string         `json:"customer_name"`
	Amount                float64         `json:"amount"`
	SalesTax              float64         `json:"sales_tax"`
	Total                 float64         `json:"total"`
	PaidTotal             float64         `json:"paid_total"`
	PaymentID             *string         `json:"payment_id"`
	PaymentGateway        string          `json:"payment_gateway"`
	CouponID              *int64          `json:"coupon_id"`
	ShopID                *int64          `json:"shop_id"`
	Discount              float64         `json:"discount"`
	DeliveryFee           float64         `json:"delivery_fee"`
	DeliveryTime          *string         `json:"delivery_time"`
	Products              json.RawMessage `json:"products"`
	BillingAddress        *UserAddress    `json:"billing_address"`
	ShippingAddress       *UserAddress    `json:"shipping_address"`
	Status                string          `json:"status"`
	OrderStatus           string          `json:"order_status"`
	PaymentStatus         string          `json:"payment_status"`
	ShippingZone          *string         `json:"shipping_zone"`
	EstimatedDelivery     *string         `json:"estimated_delivery"`
	TrackingEnabled       bool            `json:"tracking_enabled"`
	DeliveryService       *string         `json:"delivery_service"`
	TookanJobID           *string         `json:"tookan_job_id"`
	TookanJobToken        *string         `json:"tookan_job_token"`
	TookanStatus          *string         `json:"tookan_status"`
	TrackingURL           *string         `json:"tracking_url"`
	DriverID              *string         `json:"driver_id"`
	DriverName            *string         `json:"driver_name"`
	DriverPhone           *string         `json:"driver_phone"`
	DriverEmail           *string         `json:"driver_email"`
	DriverPhoto           *string         `json:"driver_photo"`
	DriverVehicleNumber   *string         `json:"driver_vehicle_number"`
	EstimatedDeliveryTime *string         `json:"estimated_delivery_time"`
	AcknowledgedDatetime  *string         `json:"acknowledged_datetime"`
	ArrivedDatetime       *string         `json:"arrived_datetime"`
	ActualDeliveryTime    *string         `json:"actual_delivery_time"`
	DeliveryLatitude      *string         `json:"delivery_latitude"`
	DeliveryLongitude     *string         `json:"delivery_longitude"`
	DeliverySignatureURL  *string         `json:"delivery_signature_url"`
	DeliveryPhotoURL      *string         `json:"delivery_photo_url"`
	DeliveryNotes         *string         `json:"delivery_notes"`
	CreatedAt             string          `json:"created_at,omitempty"`
	UpdatedAt             string          `json:"updated_at,omitempty"`
	GPSTracking           *GPSTracking    `json:"gps_tracking,omitempty"`
	Payment               json.RawMessage `json:"payment,omitempty"`
}

// LatLng is a coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Driver is the courier assigned to a delivery.
type Driver struct {
	ID            *string `json:"id"`
	Name          string  `json:"name"`
	Phone         *string `json:"phone"`
	Photo         *string `json:"photo"`
	VehicleNumber *string `json:"vehicleNumber"`
	Location      *LatLng `json:"location"`
}

// ProofOfDelivery holds the delivery evidence links.
type ProofOfDelivery struct {
	Signature *string `json:"signature"`
	Photo     *string `json:"photo"`
}

// Delivery is the delivery progress block of a tracking view.
type Delivery struct {
	EstimatedTime   *string         `json:"estimatedTime"`
	ActualTime      *string         `json:"actualTime"`
	Location        *LatLng         `json:"location"`
	ProofOfDelivery ProofOfDelivery `json:"proofOfDelivery"`
}

// TrackingView is the public delivery tracking page model.
type TrackingView struct {
	OrderID         int64             `json:"orderId"`
	OrderNumber     string            `json:"orderNumber"`
	OrderStatus     *string           `json:"orderStatus"`
	TrackingEnabled bool              `json:"trackingEnabled"`
	TrackingURL     *string           `json:"trackingUrl"`
	DeliveryService *string           `json:"deliveryService"`
	Driver          *Driver           `json:"driver"`
	Delivery        Delivery          `json:"delivery"`
	Timeline        []json.RawMessage `json:"timeline"`
}

// VerifiedCheckout is the verify-checkout result.
type VerifiedCheckout struct {
	UnavailableProducts []json.RawMessage `json:"unavailable_products"`
	TotalTax            float64           `json:"total_tax"`
	ShippingCharge      float64           `json:"shipping_charge"`
	ShippingZone        string            `json:"shipping_zone,omitempty"`
	EstimatedDelivery   string            `json:"estimated_delivery,omitempty"`
	AvailableCoupons    []json.RawMessage `json:"available_coupons"`
}
