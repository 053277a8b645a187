package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/cart"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/pricing"
)

// SuccessPath is where the shopper lands after a placed order.
const SuccessPath = "/order-success"

// ErrSubmitInProgress is returned while the same session already has a submission running.
var ErrSubmitInProgress = errors.New("checkout: submission already in progress")

type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Service struct {
	client commerce.Client
	prices *pricing.Display
	mailer mailer
	logger *log.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New builds the checkout flow. mailer may be nil to skip confirmation mail.
func New(client commerce.Client, prices *pricing.Display, m mailer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, prices: prices, mailer: m, logger: logger, inFlight: map[string]struct{}{}}
}

// Request is one checkout submission for a session.
type Request struct {
	SessionID string
	Lang      lang.Lang
	Cart      *cart.Cart
	Auth      *auth.Session
	Form      Form
	// NewAddress is set when the form was typed rather than filled from a saved address.
	NewAddress bool
}

type Result struct {
	Order        *domain.Order `json:"order"`
	Message      string        `json:"message"`
	Redirect     string        `json:"redirect"`
	AddressSaved bool          `json:"addressSaved"`
}

// Submit places the order. On any failure the cart is left as it was.
func (s *Service) Submit(ctx context.Context, req Request) (*Result, error) {
	if !s.begin(req.SessionID) {
		return nil, ErrSubmitInProgress
	}
	defer s.end(req.SessionID)

	if errs := Validate(req.Form, req.Lang); errs != nil {
		return nil, errs
	}
	items := req.Cart.Items()
	if len(items) == 0 {
		errs := &storefront.FieldErrors{}
		errs.Add("cart", i18n.T(req.Lang, "errors.cartEmpty"))
		return nil, errs
	}

	var customerID string
	var loggedIn bool
	if req.Auth != nil {
		customerID, loggedIn = req.Auth.CustomerID()
	}

	lines := make([]commerce.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, commerce.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity, PriceCents: it.PriceCents})
	}
	order, err := s.client.Checkout().CreateOrder(ctx, commerce.OrderRequest{
		CustomerID:      customerID,
		Items:           lines,
		ShippingAddress: req.Form.ShippingAddress(),
	})
	if err != nil {
		s.logger.Printf("checkout: create order failed session=%s err=%v", req.SessionID, err)
		return nil, err
	}

	if err := req.Cart.Clear(ctx); err != nil {
		s.logger.Printf("checkout: clear cart session=%s err=%v", req.SessionID, err)
	}
	res := &Result{
		Order:    order,
		Message:  i18n.T(req.Lang, "errors.orderConfirmed"),
		Redirect: SuccessPath,
	}
	if loggedIn && req.NewAddress {
		res.AddressSaved = s.saveAddress(ctx, customerID, req.Form)
	}
	if loggedIn {
		s.sendConfirmation(ctx, req.Lang, customerID, order)
	}
	s.logger.Printf("checkout: order placed number=%s session=%s", order.OrderNumber, req.SessionID)
	return res, nil
}

func (s *Service) begin(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[session]; busy {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *Service) end(session string) {
	s.mu.Lock()
	delete(s.inFlight, session)
	s.mu.Unlock()
}

func (s *Service) saveAddress(ctx context.Context, customerID string, f Form) bool {
	_, err := s.client.Customers().AddAddress(ctx, customerID, commerce.AddressRequest{
		Label:        f.City,
		Name:         f.FullName,
		Phone:        f.Phone,
		AddressLine1: f.Address,
		AddressLine2: f.Area,
		City:         f.City,
	})
	if err != nil {
		s.logger.Printf("checkout: save address customer=%s err=%v", customerID, err)
		return false
	}
	return true
}

func (s *Service) sendConfirmation(ctx context.Context, l lang.Lang, customerID string, order *domain.Order) {
	if s.mailer == nil {
		return
	}
	profile, err := s.client.Customers().Profile(ctx, customerID)
	if err != nil || profile.Email == "" {
		s.logger.Printf("checkout: no mail recipient customer=%s err=%v", customerID, err)
		return
	}
	subject, body := s.confirmationMail(ctx, l, order)
	if err := s.mailer.Send(ctx, profile.Email, subject, body); err != nil {
		s.logger.Printf("checkout: confirmation mail order=%s err=%v", order.OrderNumber, err)
	}
}

func (s *Service) confirmationMail(ctx context.Context, l lang.Lang, order *domain.Order) (string, string) {
	var b strings.Builder
	subject := fmt.Sprintf("%s %s", i18n.T(l, "orderSuccess.title"), order.OrderNumber)
	b.WriteString(i18n.T(l, "orderSuccess.subtitle"))
	b.WriteString("\n\n")
	for _, it := range order.Items {
		fmt.Fprintf(&b, "%d x %s (%s)\n", it.Quantity, it.Name, it.OEM)
	}
	fmt.Fprintf(&b, "\n%s: %s\n", i18n.T(l, "cart.total"), s.prices.Label(ctx, l, order.TotalCents))
	return subject, b.String()
}

// UserMessage is the text shown for a failed submission.
func UserMessage(err error, l lang.Lang) string {
	var fe *storefront.FieldErrors
	switch {
	case err == nil:
		return ""
	case errors.As(err, &fe):
		return fe.First()
	case errors.Is(err, ErrSubmitInProgress):
		return i18n.T(l, "errors.submitInProgress")
	}
	return i18n.T(l, "errors.checkoutFailed")
}
