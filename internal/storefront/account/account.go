// Package account covers sign-in, sign-up, the profile page and order tracking.
package account

import (
	"context"
	"errors"
	"io"
	"log"
	"regexp"
	"strings"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/i18n"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/checkout"
	"autoparts-storefront/internal/storefront/pricing"
)

const (
	profileOrders  = 20
	fallbackOrders = 50
	passwordMin    = 8
)

var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrLoginRequired is wrapped in an authentication error when no customer is stored.
var ErrLoginRequired = errors.New("login required")

type Service struct {
	client commerce.Client
	prices *pricing.Display
	logger *log.Logger
}

func New(client commerce.Client, prices *pricing.Display, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{client: client, prices: prices, logger: logger}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func ValidateLogin(in LoginInput, l lang.Lang) *storefront.FieldErrors {
	errs := &storefront.FieldErrors{}
	validateEmail(errs, in.Email, l)
	if in.Password == "" {
		errs.Add("password", i18n.T(l, "errors.passwordRequired"))
	}
	return errs.OrNil()
}

type SignupInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

func ValidateSignup(in SignupInput, l lang.Lang) *storefront.FieldErrors {
	errs := &storefront.FieldErrors{}
	if strings.TrimSpace(in.Name) == "" {
		errs.Add("name", i18n.T(l, "errors.nameRequired"))
	}
	validateEmail(errs, in.Email, l)
	switch {
	case strings.TrimSpace(in.Phone) == "":
		errs.Add("phone", i18n.T(l, "errors.phoneRequired"))
	case !checkout.PhonePattern.MatchString(in.Phone):
		errs.Add("phone", i18n.T(l, "errors.phoneFormat"))
	}
	switch {
	case in.Password == "":
		errs.Add("password", i18n.T(l, "errors.passwordRequired"))
	case len([]rune(in.Password)) < passwordMin:
		errs.Add("password", i18n.T(l, "errors.passwordShort"))
	}
	switch {
	case in.ConfirmPassword == "":
		errs.Add("confirmPassword", i18n.T(l, "errors.confirmRequired"))
	case in.Password != in.ConfirmPassword:
		errs.Add("confirmPassword", i18n.T(l, "errors.passwordMismatch"))
	}
	return errs.OrNil()
}

func validateEmail(errs *storefront.FieldErrors, email string, l lang.Lang) {
	switch {
	case strings.TrimSpace(email) == "":
		errs.Add("email", i18n.T(l, "errors.emailRequired"))
	case !EmailPattern.MatchString(email):
		errs.Add("email", i18n.T(l, "errors.emailInvalid"))
	}
}

// Login signs the session in. Every failure comes back as field errors ready to render.
func (s *Service) Login(ctx context.Context, l lang.Lang, a *auth.Session, in LoginInput) (*domain.Customer, error) {
	if errs := ValidateLogin(in, l); errs != nil {
		return nil, errs
	}
	c, err := s.client.Customers().Login(ctx, strings.TrimSpace(in.Email), in.Password)
	if err != nil {
		errs := &storefront.FieldErrors{}
		if commerce.IsAuthentication(err) {
			errs.Add("password", i18n.T(l, "errors.wrongCredentials"))
		} else {
			s.logger.Printf("account: login failed err=%v", err)
			errs.Add("general", i18n.T(l, "errors.general"))
		}
		return nil, errs
	}
	if err := a.SetCustomerID(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

// Signup registers and signs the session in. A taken email maps onto the email field.
func (s *Service) Signup(ctx context.Context, l lang.Lang, a *auth.Session, in SignupInput) (*domain.Customer, error) {
	if errs := ValidateSignup(in, l); errs != nil {
		return nil, errs
	}
	c, err := s.client.Customers().Register(ctx, commerce.Registration{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		Phone:    in.Phone,
		Password: in.Password,
	})
	if err != nil {
		errs := &storefront.FieldErrors{}
		if commerce.IsValidation(err) && strings.Contains(strings.ToLower(err.Error()), "exist") {
			errs.Add("email", i18n.T(l, "errors.emailTaken"))
		} else {
			s.logger.Printf("account: signup failed err=%v", err)
			errs.Add("general", i18n.T(l, "errors.general"))
		}
		return nil, errs
	}
	if err := a.SetCustomerID(ctx, c.ID); err != nil {
		return nil, err
	}
	return c, nil
}

// Logout tells the backend and always clears the session.
func (s *Service) Logout(ctx context.Context, a *auth.Session) error {
	if id, ok := a.CustomerID(); ok {
		if err := s.client.Customers().Logout(ctx, id); err != nil {
			s.logger.Printf("account: logout customer=%s err=%v", id, err)
		}
	}
	return a.Logout(ctx)
}

func requireCustomer(a *auth.Session) (string, error) {
	if a != nil {
		if id, ok := a.CustomerID(); ok {
			return id, nil
		}
	}
	return "", commerce.NewError(commerce.KindAuthentication, "account.session", ErrLoginRequired)
}
