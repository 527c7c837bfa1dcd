package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	dombilling "example.com/bookbarn/app/internal/domain/billing"
	dombook "example.com/bookbarn/app/internal/domain/book"
	domcart "example.com/bookbarn/app/internal/domain/cart"
	domcontact "example.com/bookbarn/app/internal/domain/contact"
	dompayment "example.com/bookbarn/app/internal/domain/payment"
	domreview "example.com/bookbarn/app/internal/domain/review"
	domuser "example.com/bookbarn/app/internal/domain/user"
	"example.com/bookbarn/app/internal/infra/metrics"
	billinguc "example.com/bookbarn/app/internal/usecase/billing"
	bookuc "example.com/bookbarn/app/internal/usecase/book"
	cartuc "example.com/bookbarn/app/internal/usecase/cart"
	checkoutuc "example.com/bookbarn/app/internal/usecase/checkout"
	contactuc "example.com/bookbarn/app/internal/usecase/contact"
	reviewuc "example.com/bookbarn/app/internal/usecase/review"
	useruc "example.com/bookbarn/app/internal/usecase/user"
)

type API struct {
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	billingSvc  *billinguc.Service
	bookSvc     *bookuc.Service
	userSvc     *useruc.Service
	reviewSvc   *reviewuc.Service
	contactSvc  *contactuc.Service
	validator   *validator.Validate
	frontendURL string
	metrics     *metrics.ServerMetrics
}

type Dependencies struct {
	CartService     *cartuc.Service
	CheckoutService *checkoutuc.Service
	BillingService  *billinguc.Service
	BookService     *bookuc.Service
	UserService     *useruc.Service
	ReviewService   *reviewuc.Service
	ContactService  *contactuc.Service
	FrontendURL     string
	Metrics         *metrics.ServerMetrics
}

func NewAPI(deps Dependencies) *API {
	return &API{
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		billingSvc:  deps.BillingService,
		bookSvc:     deps.BookService,
		userSvc:     deps.UserService,
		reviewSvc:   deps.ReviewService,
		contactSvc:  deps.ContactService,
		validator:   validator.New(),
		frontendURL: deps.FrontendURL,
		metrics:     deps.Metrics,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.AllowAll().Handler)
	if a.metrics != nil {
		r.Use(a.metrics.Middleware)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("server is running"))
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Get("/books", a.handleListBooks)
	r.Get("/books/category/{category}", a.handleListBooksByCategory)
	r.Post("/books", a.handleCreateBook)
	r.Delete("/books/{id}", a.handleDeleteBook)

	r.Get("/reviews", a.handleListReviews)
	r.Post("/reviews", a.handleCreateReview)

	r.Get("/carts", a.handleListCart)
	r.Post("/carts", a.handleAddCartLine)
	r.Put("/carts/{id}", a.handleUpdateCartCount)
	r.Delete("/carts/{id}", a.handleRemoveCartLine)

	r.Post("/initiate-payment", a.handleInitiatePayment)
	r.Post("/payment-success", a.handlePaymentSuccess)
	r.Post("/payment-fail", a.handlePaymentFail)
	r.Post("/payment-cancel", a.handlePaymentCancel)
	r.Get("/billings", a.handleListBillings)

	r.Get("/users", a.handleListUsers)
	r.Get("/users/{email}", a.handleGetUser)
	r.Post("/users", a.handleCreateUser)
	r.Patch("/users/{email}", a.handleUpdateUserRole)

	r.Get("/contact", a.handleListContactMessages)
	r.Post("/contact", a.handleCreateContactMessage)

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Message: err.Error()})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcart.ErrLineNotFound),
		errors.Is(err, dombook.ErrBookNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, dombook.ErrBookIDExists),
		errors.Is(err, domuser.ErrInvalidRole),
		errors.Is(err, domuser.ErrInvalidRoleChange),
		errors.Is(err, domcontact.ErrMissingFields),
		errors.Is(err, dompayment.ErrInvalidDelivery),
		errors.Is(err, dompayment.ErrEmptyCart),
		errors.Is(err, dompayment.ErrInvalidCallback),
		errors.Is(err, dombilling.ErrEmptyCartAtSettlement):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, dompayment.ErrGatewayUnavailable):
		respondError(w, http.StatusInternalServerError, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}

func mapCartLine(line *domcart.Line) map[string]any {
	return map[string]any{
		"_id":    line.ID,
		"email":  line.Email,
		"bookId": line.BookID,
		"title":  line.Title,
		"author": line.Author,
		"price":  line.Price,
		"image":  line.Image,
		"count":  line.Count,
	}
}

func mapBillingRecord(rec *dombilling.Record) map[string]any {
	items := make([]map[string]any, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, map[string]any{
			"bookId":   item.BookID,
			"title":    item.Title,
			"author":   item.Author,
			"price":    item.Price,
			"quantity": item.Quantity,
			"image":    item.Image,
		})
	}
	return map[string]any{
		"_id":           rec.ID,
		"email":         rec.Email,
		"transactionId": rec.TransactionID,
		"items":         items,
		"purchasedAt":   rec.PurchasedAt,
	}
}

func mapBook(b *dombook.Book) map[string]any {
	return map[string]any{
		"id":              b.ID,
		"title":           b.Title,
		"author":          b.Author,
		"course":          b.Course,
		"condition":       b.Condition,
		"image":           b.Image,
		"price":           b.Price,
		"quantity":        b.Quantity,
		"orderCount":      b.OrderCount,
		"sellerName":      b.SellerName,
		"location":        b.Location,
		"bookDescription": b.Description,
		"category":        b.Category,
	}
}

func mapUser(u *domuser.User) map[string]any {
	return map[string]any{
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
}

func mapReview(rev *domreview.Review) map[string]any {
	return map[string]any{
		"_id":        rev.ID,
		"bookId":     rev.BookID,
		"email":      rev.Email,
		"name":       rev.Name,
		"avatar":     rev.Avatar,
		"title":      rev.Title,
		"message":    rev.Message,
		"rating":     rev.Rating,
		"created_at": rev.CreatedAt,
	}
}

func mapContactMessage(m *domcontact.Message) map[string]any {
	return map[string]any{
		"_id":       m.ID,
		"name":      m.Name,
		"email":     m.Email,
		"message":   m.Message,
		"createdAt": m.CreatedAt,
	}
}
