package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/service"
	"github.com/bringforthjoy101/cellerhut-ecom-api/internal/transform"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/health"
	"github.com/bringforthjoy101/cellerhut-ecom-api/pkg/middleware"
)

const serviceName = "storefront"

// Services are the storefront services the router dispatches to.
type Services struct {
	Auth       *service.AuthService
	Addresses  *service.AddressService
	Categories *service.CategoryService
	Products   *service.ProductService
	Orders     *service.OrderService
	Tracking   *service.TrackingService
	Users      *service.UserService
}

// RouterConfig holds the inbound HTTP settings.
type RouterConfig struct {
	CORS           middleware.CORSConfig
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
	// CatalogMaxAge is the Cache-Control max-age, in seconds, of anonymous
	// category and product reads.
	CatalogMaxAge int
}

// NewRouter creates a chi router with all storefront routes registered. ctx
// bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, svcs Services, healthHandler *health.Handler, cfg RouterConfig, logger *slog.Logger) http.Handler {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.CatalogMaxAge <= 0 {
		cfg.CatalogMaxAge = 60
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst, logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(cfg.RequestTimeout))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	authHandler := NewAuthHandler(svcs.Auth, logger)
	addressHandler := NewAddressHandler(svcs.Addresses, logger)
	categoryHandler := NewCategoryHandler(svcs.Categories, logger)
	productHandler := NewProductHandler(svcs.Products, logger)
	orderHandler := NewOrderHandler(svcs.Orders, logger)
	trackingHandler := NewTrackingHandler(svcs.Tracking, logger)
	userHandler := NewUserHandler(svcs.Users, logger)

	// Storefront API endpoints
	r.Group(func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.BearerToken(logger))
		r.Use(ForwardToken)

		r.Post("/register", authHandler.Register)
		r.Post("/token", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Post("/refresh-token", authHandler.Refresh)
		r.Post("/social-login-token", authHandler.SocialLogin)
		r.Post("/otp-login", authHandler.OTPLogin)
		r.Post("/send-otp-code", authHandler.SendOTP)
		r.Post("/verify-otp-code", authHandler.VerifyOTP)
		r.Post("/change-password", authHandler.ChangePassword)
		r.Post("/forget-password", authHandler.ForgetPassword)
		r.Post("/verify-forget-password-token", authHandler.VerifyForgetPasswordToken)
		r.Post("/reset-password", authHandler.ResetPassword)
		r.Get("/me", authHandler.Me)
		r.Put("/me", authHandler.UpdateMe)

		r.Route("/address", func(r chi.Router) {
			r.Get("/", addressHandler.List)
			r.Post("/", addressHandler.Create)
			r.Get("/{id}", addressHandler.Get)
			r.Put("/{id}", addressHandler.Update)
			r.Delete("/{id}", addressHandler.Delete)
		})

		catalog := middleware.CacheControl(cfg.CatalogMaxAge)

		r.Route("/categories", func(r chi.Router) {
			r.Use(catalog)
			r.Get("/", categoryHandler.List)
			r.Post("/", categoryHandler.Create)
			r.Get("/liquor", categoryHandler.Liquor)
			r.Get("/hierarchy", categoryHandler.Hierarchy)
			r.Get("/parents", categoryHandler.Parents)
			r.Get("/type/{liquorType}", categoryHandler.ByType)
			r.Get("/search/{query}", categoryHandler.Search)
			r.Get("/{id}/stats", categoryHandler.Stats)
			r.Get("/{id}/children", categoryHandler.Children)
			r.Get("/{id}", categoryHandler.Get)
			r.Put("/{id}", categoryHandler.Update)
			r.Delete("/{id}", categoryHandler.Delete)
		})

		r.With(catalog).Get("/products", productHandler.List)
		r.With(catalog).Get("/products/search", productHandler.Search)
		r.With(catalog).Get("/products/{slug}", productHandler.BySlug)
		r.With(catalog).Get("/popular-products", productHandler.Popular)
		r.With(catalog).Get("/best-selling-products", productHandler.BestSelling)
		r.Get("/products-stock", productHandler.LowStock)
		r.Get("/draft-products", productHandler.Drafts)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orderHandler.List)
			r.Post("/", orderHandler.Create)
			r.Post("/checkout/verify", orderHandler.VerifyCheckout)
			r.Get("/tracking-number/{id}", orderHandler.Get)
			r.Get("/{id}", orderHandler.Get)
			r.Put("/{id}", orderHandler.Update)
			r.Delete("/{id}", orderHandler.Cancel)
		})

		r.Route("/order-status", func(r chi.Router) {
			r.Get("/", orderHandler.Statuses)
			r.Post("/", orderHandler.CreateStatus)
			r.Get("/{param}", orderHandler.Status)
			r.Put("/{param}", orderHandler.UpdateStatus)
			r.Delete("/{param}", orderHandler.UpdateStatus)
		})

		r.Get("/downloads", orderHandler.Downloads)
		r.Post("/downloads/digital_file", orderHandler.DigitalFile)
		r.Get("/export-order-url", orderHandler.Export)
		r.Post("/download-invoice-url", orderHandler.Invoice)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.List(transform.RouteUsers))
			r.Post("/", userHandler.Create)
			r.Post("/block-user", userHandler.Block)
			r.Post("/unblock-user", userHandler.Unblock)
			r.Post("/make-admin", userHandler.MakeAdmin)
			r.Get("/{id}", userHandler.Get)
			r.Put("/{id}", userHandler.UpdateProfile)
			r.Delete("/{id}", userHandler.Delete)
			r.Get("/{id}/age-verification", authHandler.AgeVerification)
			r.Get("/{id}/purchase-history", authHandler.PurchaseHistory)
		})

		r.Post("/profiles", userHandler.UpdateProfile)
		r.Put("/profiles/{id}", userHandler.UpdateProfile)
		r.Delete("/profiles/{id}", userHandler.Delete)

		for _, route := range []string{
			service.RouteAdmins,
			service.RouteVendors,
			service.RouteMyStaffs,
			service.RouteAllStaffs,
			service.RouteCustomers,
		} {
			r.Get(route, userHandler.List(route))
		}

		r.Get("/tracking/{trackingNumber}", trackingHandler.Track)
		r.Get("/tracking/order/{trackingNumber}", trackingHandler.Track)
	})

	return r
}
