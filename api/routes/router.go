package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hadayashop/storefront-backend/api/controllers"
	"github.com/hadayashop/storefront-backend/api/middleware"
	"github.com/hadayashop/storefront-backend/internal/analytics"
	"github.com/hadayashop/storefront-backend/internal/blog"
	"github.com/hadayashop/storefront-backend/internal/bookings"
	"github.com/hadayashop/storefront-backend/internal/cart"
	"github.com/hadayashop/storefront-backend/internal/catalog"
	"github.com/hadayashop/storefront-backend/internal/contact"
	"github.com/hadayashop/storefront-backend/internal/newsletter"
	"github.com/hadayashop/storefront-backend/internal/preferences"
	"github.com/hadayashop/storefront-backend/pkg/config"
	"github.com/hadayashop/storefront-backend/pkg/db"
	"github.com/hadayashop/storefront-backend/pkg/logger"
	pkgredis "github.com/hadayashop/storefront-backend/pkg/redis"
)

// Services bundles everything the router wires into handlers.
type Services struct {
	Catalog     catalog.Service
	Cart        cart.Service
	Blog        blog.Service
	Bookings    bookings.Service
	Contact     contact.Service
	Newsletter  newsletter.Service
	Preferences preferences.Service
	Tracker     analytics.Tracker
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *pkgredis.Client,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	var redisP pkgredis.Pinger
	if redisClient != nil {
		redisP = redisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	var idemStore pkgredis.IdempotencyStore
	if redisClient != nil {
		idemStore = redisClient
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(logg))
		r.Use(middleware.Idempotency(idemStore, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Catalog, logg))
			r.Get("/featured", controllers.FeaturedProducts(svcs.Catalog, logg))
			r.Get("/{productId}", controllers.GetProduct(svcs.Catalog, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(svcs.Cart, logg))
			r.Post("/items", controllers.AddCartItem(svcs.Cart, logg))
			r.Delete("/items/{productId}", controllers.RemoveCartItem(svcs.Cart, logg))
			r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/posts", controllers.ListPosts(svcs.Blog, logg))
			r.Get("/categories", controllers.BlogCategories(svcs.Blog, logg))
		})

		r.Post("/bookings", controllers.SubmitBooking(svcs.Bookings, logg))
		r.Post("/contact", controllers.SubmitContact(svcs.Contact, logg))
		r.Get("/contact/hours", controllers.ContactHours(svcs.Contact, logg))
		r.Get("/contact/social", controllers.ListSocialLinks())
		r.Post("/newsletter/subscribe", controllers.SubscribeNewsletter(svcs.Newsletter, logg))

		r.Route("/preferences", func(r chi.Router) {
			r.Get("/theme", controllers.GetTheme(svcs.Preferences, logg))
			r.Put("/theme", controllers.SetTheme(svcs.Preferences, logg))
		})

		r.Post("/validate/field", controllers.ValidateField(logg))
		r.Post("/events", controllers.TrackEvent(svcs.Tracker, logg))
	})

	return r
}
