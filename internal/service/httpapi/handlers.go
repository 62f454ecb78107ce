package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	PriceMinor  int64     `json:"price_minor"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type productInputRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PriceMinor  int64  `json:"price_minor"`
}

type cartItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int32  `json:"quantity"`
}

type cartResponse struct {
	Items []cartItemResponse `json:"items"`
}

type resolvedLineResponse struct {
	Product  productResponse `json:"product"`
	Quantity int32           `json:"quantity"`
}

type orderLineResponse struct {
	ProductID   string `json:"product_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	PriceMinor  int64  `json:"price_minor"`
	OwnerID     string `json:"owner_id"`
	Qty         int32  `json:"qty"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Email       string              `json:"email"`
	AmountMinor int64               `json:"amount_minor"`
	Lines       []orderLineResponse `json:"lines"`
	CreatedAt   time.Time           `json:"created_at"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		PriceMinor:  p.PriceMinor,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductListResponse(products []domain.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	return result
}

func toCartResponse(c domain.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, cartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return cartResponse{Items: items}
}

func toOrderResponse(o domain.Order) orderResponse {
	lines := make([]orderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, orderLineResponse{
			ProductID:   line.ProductID,
			Title:       line.Title,
			Description: line.Description,
			ImageURL:    line.ImageURL,
			PriceMinor:  line.PriceMinor,
			OwnerID:     line.OwnerID,
			Qty:         line.Qty,
		})
	}
	return orderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		Email:       o.Email,
		AmountMinor: o.AmountMinor,
		Lines:       lines,
		CreatedAt:   o.CreatedAt,
	}
}

// --- Витрина ---

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": toProductListResponse(products),
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toProductResponse(product))
}

// --- Пользователи ---

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		s.writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	now := s.now()
	user := domain.User{
		ID:        req.ID,
		Email:     req.Email,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			s.writeError(w, http.StatusConflict, err.Error())
			return
		}
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
}

// --- Корзина ---

func (s *Server) handleViewCart(w http.ResponseWriter, r *http.Request) {
	lines, err := s.cart.ViewCart(r.Context(), s.actingUser(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	items := make([]resolvedLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, resolvedLineResponse{
			Product:  toProductResponse(line.Product),
			Quantity: line.Quantity,
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		s.writeError(w, http.StatusBadRequest, "product_id is required")
		return
	}

	updated, err := s.cart.AddToCart(r.Context(), s.actingUser(r), req.ProductID)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCartResponse(updated))
}

func (s *Server) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int32 `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.cart.SetQuantity(r.Context(), s.actingUser(r), chi.URLParam(r, "id"), req.Quantity)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCartResponse(updated))
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	updated, err := s.cart.RemoveFromCart(r.Context(), s.actingUser(r), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toCartResponse(updated))
}

// --- Оформление и заказы ---

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	result, err := s.checkout.Checkout(r.Context(), s.actingUser(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"order":        toOrderResponse(result.Order),
		"cart_cleared": result.CartCleared,
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.orders.ListByUser(r.Context(), s.actingUser(r), defaultOrderListLimit)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{"orders": result})
}

// --- Админка каталога ---

func (s *Server) handleAdminListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.admin.ListProducts(r.Context(), s.actingUser(r))
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": toProductListResponse(products),
	})
}

func (s *Server) handleAdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := domain.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PriceMinor:  req.PriceMinor,
	}
	if _, err := s.admin.CreateProduct(r.Context(), s.actingUser(r), in); err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			s.writeValidationError(w, vErr, req)
			return
		}
		s.writeDomainError(w, err)
		return
	}

	s.redirectToAdminProducts(w, r)
}

func (s *Server) handleAdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req productInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := domain.ProductInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		PriceMinor:  req.PriceMinor,
	}
	_, err := s.admin.UpdateProduct(r.Context(), s.actingUser(r), chi.URLParam(r, "id"), in)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			s.writeValidationError(w, vErr, req)
			return
		}
		// Чужой или исчезнувший товар — наружу выглядит так же, как успех.
		if errors.Is(err, domain.ErrNotOwner) || errors.Is(err, domain.ErrProductNotFound) {
			s.redirectToAdminProducts(w, r)
			return
		}
		s.writeDomainError(w, err)
		return
	}

	s.redirectToAdminProducts(w, r)
}

func (s *Server) handleAdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.admin.DeleteProduct(r.Context(), s.actingUser(r), chi.URLParam(r, "id")); err != nil {
		s.writeDomainError(w, err)
		return
	}
	s.redirectToAdminProducts(w, r)
}

// writeValidationError отвечает 422 и возвращает клиенту введённые данные,
// чтобы форма могла показать их повторно.
func (s *Server) writeValidationError(w http.ResponseWriter, vErr *domain.ValidationError, input productInputRequest) {
	s.writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"error":             vErr.Error(),
		"validation_errors": vErr.Messages(),
		"product":           input,
	})
}

func (s *Server) redirectToAdminProducts(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/admin/products", http.StatusSeeOther)
}
