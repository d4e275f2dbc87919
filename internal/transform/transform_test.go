package transform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/celler"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/domain/storefront"
)

func intp(v int) *int { return &v }

func TestPermissions(t *testing.T) {
	assert.Equal(t, []string{"super_admin", "store_owner", "customer"}, Permissions("super_admin"))
	assert.Equal(t, []string{"store_owner", "customer"}, Permissions("admin"))
	assert.Equal(t, []string{"customer"}, Permissions("staff"))
	assert.Equal(t, []string{"customer"}, Permissions("pirate"))
	assert.Equal(t, []string{"customer"}, Permissions(""))

	perms := Permissions("super_admin")
	perms[0] = "mutated"
	assert.Equal(t, "super_admin", Permissions("super_admin")[0], "table must not be shared")
}

func TestPermissionList(t *testing.T) {
	got := PermissionList("admin")
	require.Len(t, got, 2)
	assert.Equal(t, storefront.Permission{ID: 1, Name: "store_owner", GuardName: "api"}, got[0])
	assert.Equal(t, storefront.Permission{ID: 2, Name: "customer", GuardName: "api"}, got[1])
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name      string
		meta      celler.PageMeta
		items     int
		wantPage  storefront.Paginator
		wantNext  bool
		wantPrev  bool
		wantFirst int
		wantLast  int
	}{
		{
			name:      "snake case middle page",
			meta:      celler.PageMeta{CurrentPage: intp(2), PerPage: intp(10), Total: intp(35)},
			items:     10,
			wantPage:  storefront.Paginator{CurrentPage: 2, PerPage: 10, Total: 35, LastPage: 4, Count: 35},
			wantNext:  true,
			wantPrev:  true,
			wantFirst: 11,
			wantLast:  20,
		},
		{
			name:      "camel case last page",
			meta:      celler.PageMeta{CurrentPageCamel: intp(4), PerPageCamel: intp(10), Total: intp(35)},
			items:     5,
			wantPage:  storefront.Paginator{CurrentPage: 4, PerPage: 10, Total: 35, LastPage: 4, Count: 35},
			wantPrev:  true,
			wantFirst: 31,
			wantLast:  35,
		},
		{
			name:     "empty defaults",
			wantPage: storefront.Paginator{CurrentPage: 1, PerPage: 15, Total: 0, LastPage: 1},
		},
		{
			name:      "explicit last page wins",
			meta:      celler.PageMeta{Total: intp(10), LastPage: intp(7)},
			items:     10,
			wantPage:  storefront.Paginator{CurrentPage: 1, PerPage: 15, Total: 10, LastPage: 7, Count: 10},
			wantNext:  true,
			wantFirst: 1,
			wantLast:  10,
		},
		{
			name:      "bare list uses item count",
			items:     3,
			wantPage:  storefront.Paginator{CurrentPage: 1, PerPage: 15, Total: 3, LastPage: 1, Count: 3},
			wantFirst: 1,
			wantLast:  3,
		},
		{
			name:      "upstream item bounds",
			meta:      celler.PageMeta{Total: intp(40), FirstItem: intp(5), LastItemSnake: intp(9)},
			items:     5,
			wantPage:  storefront.Paginator{CurrentPage: 1, PerPage: 15, Total: 40, LastPage: 3, Count: 40},
			wantNext:  true,
			wantFirst: 5,
			wantLast:  9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pagination(tt.meta, tt.items, RouteProducts)

			assert.Equal(t, tt.wantPage.CurrentPage, got.CurrentPage)
			assert.Equal(t, tt.wantPage.PerPage, got.PerPage)
			assert.Equal(t, tt.wantPage.Total, got.Total)
			assert.Equal(t, tt.wantPage.LastPage, got.LastPage)
			assert.Equal(t, tt.wantPage.Count, got.Count)
			assert.Equal(t, tt.wantFirst, got.FirstItem)
			assert.Equal(t, tt.wantLast, got.LastItem)
			assert.Equal(t, "/products?page=1", got.FirstPageURL)
			assert.Equal(t, tt.wantNext, got.NextPageURL != nil)
			assert.Equal(t, tt.wantPrev, got.PrevPageURL != nil)
		})
	}
}

func TestPagination_NextURLIffBeforeLastPage(t *testing.T) {
	for total := 0; total <= 60; total += 7 {
		for page := 1; page <= 6; page++ {
			got := Pagination(celler.PageMeta{CurrentPage: intp(page), PerPage: intp(10), Total: intp(total)}, 0, RouteOrders)

			wantLast := max(1, (total+9)/10)
			current := min(page, wantLast)
			assert.Equal(t, wantLast, got.LastPage)
			assert.Equal(t, current, got.CurrentPage, "total=%d page=%d", total, page)
			assert.Equal(t, current < got.LastPage, got.NextPageURL != nil, "total=%d page=%d", total, page)
			assert.Equal(t, current > 1, got.PrevPageURL != nil)
			if total == 0 {
				assert.Zero(t, got.FirstItem)
				assert.Zero(t, got.LastItem)
			} else {
				assert.Equal(t, (current-1)*10+1, got.FirstItem)
				assert.LessOrEqual(t, got.FirstItem, got.LastItem)
				assert.LessOrEqual(t, got.LastItem, total)
			}
		}
	}
}

func TestPagination_PageBeyondLastIsClamped(t *testing.T) {
	got := Pagination(celler.PageMeta{CurrentPage: intp(5), Total: intp(20)}, 0, RouteProducts)

	assert.Equal(t, 2, got.LastPage)
	assert.Equal(t, 2, got.CurrentPage)
	assert.Equal(t, 16, got.FirstItem)
	assert.Equal(t, 20, got.LastItem)
	assert.Nil(t, got.NextPageURL)
	require.NotNil(t, got.PrevPageURL)
	assert.Equal(t, "/products?page=1", *got.PrevPageURL)

	empty := Pagination(celler.PageMeta{CurrentPage: intp(5), Total: intp(0)}, 0, RouteProducts)
	assert.Equal(t, 1, empty.CurrentPage)
	assert.Equal(t, 1, empty.LastPage)
	assert.Nil(t, empty.PrevPageURL)
	assert.Nil(t, empty.NextPageURL)

	// Item bounds the upstream sent for a page it did not serve are recomputed.
	stale := Pagination(celler.PageMeta{CurrentPage: intp(9), PerPage: intp(10), Total: intp(25), FirstItem: intp(81), LastItem: intp(90)}, 0, RouteProducts)
	assert.Equal(t, 3, stale.CurrentPage)
	assert.Equal(t, 21, stale.FirstItem)
	assert.Equal(t, 25, stale.LastItem)
}

func TestPagination_URLs(t *testing.T) {
	got := Pagination(celler.PageMeta{CurrentPage: intp(2), PerPage: intp(5), Total: intp(20)}, 5, RouteCategories)
	assert.Equal(t, "/categories?page=4", got.LastPageURL)
	require.NotNil(t, got.NextPageURL)
	assert.Equal(t, "/categories?page=3", *got.NextPageURL)
	require.NotNil(t, got.PrevPageURL)
	assert.Equal(t, "/categories?page=1", *got.PrevPageURL)
}

func TestEmptyPage(t *testing.T) {
	page := EmptyPage[storefront.Category](RouteCategories)
	require.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Zero(t, page.Total)

	data, err := json.Marshal(page)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":[]`)
	assert.Contains(t, string(data), `"next_page_url":null`)
}

func TestAddress_RoundTrip(t *testing.T) {
	for _, billing := range []bool{true, false} {
		up := celler.Address{
			ID:                9,
			Title:             "Home",
			Street:            "1 Long St",
			Province:          "Western Cape",
			PostalCode:        "8001",
			City:              "Cape Town",
			Country:           "ZA",
			IsDefaultBilling:  ptr(billing),
			IsDefaultShipping: ptr(!billing),
		}

		sf := Address(up)
		back := AddressInput(storefront.AddressInput{
			Title:   sf.Title,
			Type:    sf.Type,
			Address: sf.Address,
		})

		assert.Equal(t, up.Street, back.Street)
		assert.Equal(t, up.Province, back.Province)
		assert.Equal(t, up.PostalCode, back.PostalCode)
		assert.Equal(t, up.City, back.City)
		assert.Equal(t, up.Country, back.Country)
		assert.Equal(t, up.Title, back.Title)
		assert.Equal(t, billing, *back.IsDefaultBilling)
		assert.Equal(t, !billing, *back.IsDefaultShipping)
	}
}

func TestAddress_ReadsSnakePostalCode(t *testing.T) {
	got := Address(celler.Address{PostalCodeSnake: "2000"})
	assert.Equal(t, "2000", got.Address.Zip)
	assert.Equal(t, "shipping", got.Type.Slug, "neither flag reads as shipping")
}

func TestAddressInput_TypeFlags(t *testing.T) {
	billing := AddressInput(storefront.AddressInput{Type: storefront.AddressType{Slug: "billing"}})
	assert.True(t, *billing.IsDefaultBilling)
	assert.False(t, *billing.IsDefaultShipping)

	other := AddressInput(storefront.AddressInput{Type: storefront.AddressType{Slug: "office"}})
	assert.Nil(t, other.IsDefaultBilling)
	assert.Nil(t, other.IsDefaultShipping)

	data, err := json.Marshal(other)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "isDefault")
}

func TestOrderAddress(t *testing.T) {
	got := OrderAddress(&celler.OrderAddress{StreetAddress: "2 Short St", Province: "Gauteng", Zip: "2001", City: "Joburg"})
	require.NotNil(t, got)
	assert.Equal(t, "2 Short St", got.StreetAddress)
	assert.Equal(t, "Gauteng", got.State)
	assert.Equal(t, "2001", got.Zip)
	assert.Nil(t, OrderAddress(nil))

	up := OrderAddressInput(got)
	assert.Equal(t, "2 Short St", up.Street)
	assert.Equal(t, "Gauteng", up.Province)
	assert.Equal(t, "2001", up.PostalCode)
}

func TestCategory_Defaults(t *testing.T) {
	img := celler.Scalar("https://cdn/x.png")
	got := Category(celler.Category{ID: 3, Name: "Wine", Slug: "wine", Image: &img})

	assert.Nil(t, got.Parent)
	assert.NotNil(t, got.Children)
	assert.Empty(t, got.Children)
	assert.Equal(t, "", got.Details)
	assert.Equal(t, "Beverage", got.Icon)
	assert.Equal(t, "", got.Description)
	require.NotNil(t, got.Image.Original)
	assert.Equal(t, "https://cdn/x.png", *got.Image.Original)
	assert.Equal(t, got.Image.Original, got.Image.Thumbnail)
	assert.Equal(t, got.Image.Original, got.Image.ID)
}

func TestCategory_ParentAndChildren(t *testing.T) {
	parent := int64(1)
	icon := "Wine"
	got := Category(celler.Category{
		ID: 2, ParentID: &parent, Icon: &icon,
		Children: []celler.Category{{ID: 5, Name: "Red"}},
	})

	require.NotNil(t, got.Parent)
	assert.Equal(t, int64(1), *got.Parent)
	assert.Equal(t, "Wine", got.Icon)
	require.Len(t, got.Children, 1)
	assert.Equal(t, "Beverage", got.Children[0].Icon)
}

func TestCategoryInput_CollapsesImage(t *testing.T) {
	orig := "https://cdn/a.png"
	got := CategoryInput(storefront.CategoryInput{Name: "Gin", Image: &storefront.Attachment{Original: &orig}})
	assert.Equal(t, orig, got.Image)
	assert.Equal(t, "Gin", got.Name)
}

func TestProduct_SalePrice(t *testing.T) {
	discount := 80.0
	assert.Equal(t, 80.0, Product(celler.Product{Price: 100, DiscountPrice: &discount}).SalePrice)
	assert.Equal(t, 100.0, Product(celler.Product{Price: 100}).SalePrice)
}

func TestProduct_DefaultsAndSparseLiquorFields(t *testing.T) {
	got := Product(celler.Product{ID: 1, Name: "Merlot", Type: &celler.ProductType{ID: 4}})

	require.NotNil(t, got.TypeID)
	assert.Equal(t, int64(4), *got.TypeID)
	assert.Zero(t, got.Quantity)
	assert.True(t, got.InStock)
	assert.True(t, got.IsTaxable)
	assert.Equal(t, "publish", got.Status)
	assert.Equal(t, "simple", got.ProductType)
	assert.Equal(t, "1", got.Unit)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out["image"])
	assert.Contains(t, out, "image")
	assert.Equal(t, []any{}, out["gallery"])
	assert.Equal(t, []any{}, out["categories"])
	assert.Nil(t, out["category"])
	assert.NotContains(t, out, "alcohol_content")
	assert.NotContains(t, out, "vintage")
}

func TestProduct_LiquorFieldsPassThrough(t *testing.T) {
	abv := 13.5
	vintage := 2019
	origin := "Stellenbosch"
	got := Product(celler.Product{AlcoholContent: &abv, Vintage: &vintage, Origin: &origin})

	data, err := json.Marshal(got)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 13.5, out["alcohol_content"])
	assert.Equal(t, 2019.0, out["vintage"])
	assert.Equal(t, "Stellenbosch", out["origin"])
}

func TestOrder_Defaults(t *testing.T) {
	total := 250.0
	got := Order(celler.Order{ID: 1, TrackingNumber: "TRK1", Total: &total})

	assert.Zero(t, got.Amount)
	assert.Equal(t, 250.0, got.PaidTotal)
	assert.Equal(t, "CASH_ON_DELIVERY", got.PaymentGateway)
	assert.Equal(t, "order-pending", got.Status)
	assert.Equal(t, "order-pending", got.OrderStatus)
	assert.Equal(t, "payment-pending", got.PaymentStatus)
	assert.False(t, got.TrackingEnabled)
	assert.Nil(t, got.GPSTracking)
	assert.JSONEq(t, `[]`, string(got.Products))

	data, err := json.Marshal(got)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	for _, key := range []string{"driver_name", "tookan_job_id", "delivery_latitude", "delivery_photo_url", "billing_address"} {
		v, ok := out[key]
		assert.True(t, ok, "%s must be present", key)
		assert.Nil(t, v, "%s must be null", key)
	}
	assert.NotContains(t, out, "gps_tracking")
}

func TestOrder_AmountPrefersSubTotal(t *testing.T) {
	sub, amount := 90.0, 120.0
	assert.Equal(t, 90.0, Order(celler.Order{SubTotal: &sub, Amount: &amount}).Amount)
	assert.Equal(t, 120.0, Order(celler.Order{Amount: &amount}).Amount)
}

func TestOrder_GPSTracking(t *testing.T) {
	var o celler.Order
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 5,
		"tracking_number": "TRK5",
		"order_status": "processing",
		"tracking_enabled": true,
		"tookan_job_id": "J1",
		"tracking_url": "https://track.example/J1"
	}`), &o))

	got := Order(o)
	require.NotNil(t, got.GPSTracking)

	data, err := json.Marshal(got.GPSTracking)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"trackingEnabled": true,
		"trackingUrl": "https://track.example/J1",
		"orderId": 5,
		"orderNumber": "TRK5",
		"orderStatus": "processing",
		"deliveryService": null
	}`, string(data))
}

func TestOrder_NumericTookanJobID(t *testing.T) {
	var o celler.Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"tracking_enabled":true,"tookan_job_id":12345}`), &o))

	got := Order(o)
	require.NotNil(t, got.TookanJobID)
	assert.Equal(t, "12345", *got.TookanJobID)
	assert.NotNil(t, got.GPSTracking)
}

func TestOrderWithPayment(t *testing.T) {
	got := OrderWithPayment(celler.Order{ID: 1}, json.RawMessage(`{"id":"pay_1"}`))
	assert.JSONEq(t, `{"id":"pay_1"}`, string(got.Payment))

	none := OrderWithPayment(celler.Order{ID: 1}, json.RawMessage(`null`))
	assert.Nil(t, none.Payment)
}

func TestOrderInput(t *testing.T) {
	amount, sub := 150.0, 100.0
	got := OrderInput(storefront.OrderInput{
		Amount:          &amount,
		SubTotal:        &sub,
		BillingAddress:  &storefront.UserAddress{StreetAddress: "1 A St", State: "WC", Zip: "8000"},
		Products:        []storefront.OrderProductInput{{ProductID: 3, OrderQuantity: 2, UnitPrice: 75, Subtotal: 150}},
		ShippingAddress: nil,
	})

	require.NotNil(t, got.SubTotal)
	assert.Equal(t, 150.0, *got.SubTotal)
	require.NotNil(t, got.BillingAddress)
	assert.Equal(t, "1 A St", got.BillingAddress.Street)
	assert.Equal(t, "8000", got.BillingAddress.PostalCode)
	assert.Nil(t, got.ShippingAddress)
	require.Len(t, got.Products, 1)
	assert.Equal(t, int64(3), got.Products[0].ProductID)

	onlySub := OrderInput(storefront.OrderInput{SubTotal: &sub})
	assert.Equal(t, 100.0, *onlySub.SubTotal)
}

func TestTracking(t *testing.T) {
	var o celler.Order
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 7,
		"tracking_number": "TRK7",
		"order_status": "out-for-delivery",
		"tracking_enabled": true,
		"driver_id": 12,
		"driver_name": "Sipho",
		"driver_phone": "+2711",
		"delivery_latitude": "-33.92",
		"delivery_longitude": 18.42,
		"delivery_signature_url": "https://sig"
	}`), &o))

	got := Tracking(o)
	assert.Equal(t, int64(7), got.OrderID)
	assert.Equal(t, "TRK7", got.OrderNumber)
	assert.True(t, got.TrackingEnabled)
	require.NotNil(t, got.Driver)
	assert.Equal(t, "Sipho", got.Driver.Name)
	require.NotNil(t, got.Driver.ID)
	assert.Equal(t, "12", *got.Driver.ID)
	require.NotNil(t, got.Driver.Location)
	assert.Equal(t, -33.92, got.Driver.Location.Lat)
	assert.Equal(t, 18.42, got.Driver.Location.Lng)
	assert.Equal(t, got.Driver.Location, got.Delivery.Location)
	require.NotNil(t, got.Delivery.ProofOfDelivery.Signature)
	assert.NotNil(t, got.Timeline)
}

func TestTracking_NoDriver(t *testing.T) {
	got := Tracking(celler.Order{ID: 1})
	assert.Nil(t, got.Driver)
	assert.Nil(t, got.Delivery.Location)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"driver":null`)
	assert.Contains(t, string(data), `"timeline":[]`)
}

func TestCheckoutVerification_NeverNullLists(t *testing.T) {
	got := CheckoutVerification(celler.CheckoutVerification{TotalTax: 15})
	assert.NotNil(t, got.UnavailableProducts)
	assert.NotNil(t, got.AvailableCoupons)
	assert.Equal(t, 15.0, got.TotalTax)
}

func TestUser_Defaults(t *testing.T) {
	got := User(celler.User{ID: 3, Name: "Thandi"})
	assert.True(t, got.IsActive)
	assert.Nil(t, got.Profile)

	inactive := false
	assert.False(t, User(celler.User{IsActive: &inactive}).IsActive)

	withProfile := User(celler.User{Profile: &celler.Profile{ID: 8}})
	require.NotNil(t, withProfile.Profile)
	assert.Nil(t, withProfile.Profile.Avatar)
	assert.Equal(t, "", withProfile.Profile.Bio)
	assert.NotNil(t, withProfile.Profile.Socials)
	assert.JSONEq(t, `null`, string(withProfile.Profile.Customer))
}

func TestMe(t *testing.T) {
	phone := "+2782"
	got := Me(celler.User{ID: 4, Name: "Lerato", Email: "l@x.co", Role: "admin", Phone: &phone})

	assert.Equal(t, "admin", got.Role)
	require.Len(t, got.Permissions, 2)
	require.NotNil(t, got.Profile)
	assert.Equal(t, int64(4), got.Profile.ID)
	require.NotNil(t, got.Profile.Contact)
	assert.Equal(t, "+2782", *got.Profile.Contact)
	assert.JSONEq(t, `{"id":4,"name":"Lerato","email":"l@x.co"}`, string(got.Profile.Customer))
}

func TestDemoUser(t *testing.T) {
	got := DemoUser()
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Demo User", got.Name)
	assert.Equal(t, "demo@example.com", got.Email)
	require.NotNil(t, got.Profile.Contact)
	assert.Equal(t, "+27123456789", *got.Profile.Contact)
}

func TestAuth(t *testing.T) {
	got := Auth(celler.AuthPayload{Token: "jwt", User: &celler.User{ID: 2, Name: "Ayanda Dlamini", Email: "a@d.co", Role: "super_admin"}})
	assert.Equal(t, "jwt", got.Token)
	assert.Equal(t, "super_admin", got.Role)
	assert.Equal(t, []string{"super_admin", "store_owner", "customer"}, got.Permissions)
	assert.Equal(t, "Ayanda", got.FirstName)
	assert.Equal(t, "Dlamini", got.LastNameSnake)

	bare := Auth(celler.AuthPayload{Token: "jwt"})
	assert.Equal(t, "customer", bare.Role)
	assert.Equal(t, []string{"customer"}, bare.Permissions)
}

func TestProfileUpdate_ContactMapsToPhone(t *testing.T) {
	assert.Equal(t, "+1", ProfileUpdate(storefront.UpdateUserInput{Contact: "+1"}).Phone)
	assert.Equal(t, "+2", ProfileUpdate(storefront.UpdateUserInput{Profile: &storefront.ProfileInput{Contact: "+2", Bio: "hi"}}).Phone)
}

func TestPage_MapsItems(t *testing.T) {
	list := celler.List[celler.Category]{
		Items: []celler.Category{{ID: 1}, {ID: 2}},
		Meta:  celler.PageMeta{Total: intp(2)},
	}
	page := Page(list, RouteCategories, Category)
	require.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "Beverage", page.Data[1].Icon)
}
