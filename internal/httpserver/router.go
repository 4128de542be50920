package httpserver

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/cart"
	"littlelemon/internal/db"
	"littlelemon/internal/domain"
	bookingsvc "littlelemon/internal/service/booking"
	cartsvc "littlelemon/internal/service/cart"
	checkoutsvc "littlelemon/internal/service/checkout"
	contactsvc "littlelemon/internal/service/contact"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MenuService interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	Get(ctx context.Context, id string) (*domain.MenuItem, error)
}

type SessionService interface {
	Issue(ctx context.Context) (string, error)
	Lookup(ctx context.Context, token string) (*cart.Store, error)
	TTLSeconds() int
}

type CartService interface {
	AddItem(ctx context.Context, store *cart.Store, menuItemID string, quantity int) (cart.Snapshot, error)
	ChangeQuantity(store *cart.Store, id string, quantity int) (cart.Snapshot, error)
	Remove(store *cart.Store, id string) cart.Snapshot
	Clear(store *cart.Store) cart.Snapshot
	Update(ctx context.Context, store *cart.Store, in cartsvc.UpdateInput) (cart.Snapshot, error)
}

type BookingService interface {
	Availability(date string) (bookingsvc.Availability, error)
	Submit(ctx context.Context, req bookingsvc.Request, idemKey string) (bookingsvc.Result, error)
}

type CheckoutService interface {
	Quote(snap cart.Snapshot, orderType string) (checkoutsvc.Quote, error)
	PlaceOrder(ctx context.Context, store *cart.Store, req checkoutsvc.Request) (checkoutsvc.Confirmation, error)
}

type OrderReader interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

type ContactService interface {
	Submit(ctx context.Context, req contactsvc.Request) (contactsvc.Receipt, error)
	Info() contactsvc.Info
}

// Deps carries the services the router dispatches to.
type Deps struct {
	MenuSvc     MenuService
	SessionSvc  SessionService
	CartSvc     CartService
	BookingSvc  BookingService
	CheckoutSvc CheckoutService
	Orders      OrderReader
	ContactSvc  ContactService
}

func (d Deps) validate() error {
	switch {
	case d.MenuSvc == nil:
		return errors.New("menu service required")
	case d.SessionSvc == nil:
		return errors.New("session service required")
	case d.CartSvc == nil:
		return errors.New("cart service required")
	case d.BookingSvc == nil:
		return errors.New("booking service required")
	case d.CheckoutSvc == nil:
		return errors.New("checkout service required")
	case d.Orders == nil:
		return errors.New("order reader required")
	case d.ContactSvc == nil:
		return errors.New("contact service required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, pinger db.Pinger, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), recoverer(logger))
	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     allowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(pinger))

	h := &handlers{deps: deps, logger: logger}
	api := router.Group("/api")
	api.GET("/menu", h.listMenu)
	api.GET("/menu/:id", h.getMenuItem)
	api.GET("/availability", h.availability)
	api.POST("/bookings", h.createBooking)
	api.POST("/sessions", h.createSession)
	api.GET("/orders/:id", h.getOrder)
	api.GET("/contact", h.contactInfo)
	api.POST("/contact", h.createContact)

	cartRoutes := api.Group("/cart", sessionMiddleware(deps.SessionSvc))
	cartRoutes.GET("", h.getCart)
	cartRoutes.DELETE("", h.clearCart)
	cartRoutes.POST("/items", h.addCartItem)
	cartRoutes.PATCH("/items/:id", h.changeCartItem)
	cartRoutes.DELETE("/items/:id", h.removeCartItem)
	cartRoutes.POST("/actions", h.updateCart)
	cartRoutes.GET("/quote", h.quote)
	cartRoutes.POST("/checkout", h.checkout)

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *zap.Logger
}
