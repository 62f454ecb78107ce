// Package httpapi — HTTP/JSON транспорт витрины.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/admin"
	"github.com/vladislavdragonenkov/storefront/internal/service/cart"
	"github.com/vladislavdragonenkov/storefront/internal/service/catalog"
	"github.com/vladislavdragonenkov/storefront/internal/service/checkout"
)

// заголовок, из которого берётся идентификатор действующего пользователя.
const headerUserID = "X-User-ID"

const defaultOrderListLimit = 100

// Server собирает все HTTP-ручки витрины поверх chi router.
type Server struct {
	router   chi.Router
	logger   *log.Entry
	catalog  *catalog.Service
	cart     *cart.Service
	checkout *checkout.Orchestrator
	admin    *admin.Service
	users    domain.UserRepository
	orders   domain.OrderRepository
	now      func() time.Time
}

// New создаёт HTTP-сервер витрины и регистрирует маршруты.
func New(
	catalogSvc *catalog.Service,
	cartSvc *cart.Service,
	checkoutSvc *checkout.Orchestrator,
	adminSvc *admin.Service,
	users domain.UserRepository,
	orders domain.OrderRepository,
	logger *log.Logger,
) *Server {
	s := &Server{
		logger:   logger.WithField("component", "http_server"),
		catalog:  catalogSvc,
		cart:     cartSvc,
		checkout: checkoutSvc,
		admin:    adminSvc,
		users:    users,
		orders:   orders,
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	// Публичная витрина.
	r.Get("/products", s.handleListProducts)
	r.Get("/products/{id}", s.handleGetProduct)
	r.Post("/users", s.handleCreateUser)

	// Всё остальное требует идентификации пользователя.
	r.Group(func(r chi.Router) {
		r.Use(s.requireUser)

		r.Get("/cart", s.handleViewCart)
		r.Post("/cart", s.handleAddToCart)
		r.Put("/cart/items/{id}", s.handleSetCartQuantity)
		r.Delete("/cart/items/{id}", s.handleRemoveFromCart)

		r.Post("/checkout", s.handleCheckout)
		r.Get("/orders", s.handleListOrders)

		r.Route("/admin/products", func(r chi.Router) {
			r.Get("/", s.handleAdminListProducts)
			r.Post("/", s.handleAdminCreateProduct)
			r.Put("/{id}", s.handleAdminUpdateProduct)
			r.Delete("/{id}", s.handleAdminDeleteProduct)
		})
	})

	return r
}

// ServeHTTP делает Server обычным http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestLogger пишет строку access-лога на каждый запрос.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.WithFields(log.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(started).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("http request")
	})
}

// requireUser проверяет наличие X-User-ID. Полноценной аутентификации здесь нет:
// идентификацию выдаёт внешний слой, витрина ей доверяет.
func (s *Server) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(headerUserID) == "" {
			s.writeError(w, http.StatusUnauthorized, "missing "+headerUserID+" header")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) actingUser(r *http.Request) string {
	return r.Header.Get(headerUserID)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Warn("failed to encode response body")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

// writeDomainError переводит доменные ошибки в HTTP-статусы.
func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFound(err):
		s.writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.WithError(err).Error("request failed")
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}
