package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/commerce/commercetest"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/state/auth"
	"autoparts-storefront/internal/state/kv"
	"autoparts-storefront/internal/state/lang"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/checkout"
	"autoparts-storefront/internal/storefront/pricing"
)

func newService(fake *commercetest.Fake) *Service {
	fake.RateFn = func(ctx context.Context) (float64, error) { return 50, nil }
	return New(fake, pricing.NewDisplay(fake.Pricing(), time.Hour, nil), nil)
}

func session(t *testing.T, customerID string) *auth.Session {
	t.Helper()
	ctx := context.Background()
	a, err := auth.Open(ctx, kv.NewMemory())
	if err != nil {
		t.Fatalf("open auth: %v", err)
	}
	if customerID != "" {
		_ = a.SetCustomerID(ctx, customerID)
	}
	return a
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var fe *storefront.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected field errors, got %v", err)
	}
	return fe.Fields
}

func TestValidateLogin(t *testing.T) {
	errs := ValidateLogin(LoginInput{Email: "not-an-email"}, lang.English)
	if errs.Fields["email"] != "Invalid email address" || errs.Fields["password"] != "Password is required" {
		t.Fatalf("unexpected errors %v", errs.Fields)
	}
	errs = ValidateLogin(LoginInput{}, lang.Arabic)
	if errs.Fields["email"] != "يرجى ادخال البريد الإلكتروني" {
		t.Fatalf("unexpected errors %v", errs.Fields)
	}
	if ValidateLogin(LoginInput{Email: "a@b.co", Password: "x"}, lang.English) != nil {
		t.Fatalf("valid login rejected")
	}
}

func TestValidateSignup(t *testing.T) {
	errs := ValidateSignup(SignupInput{Email: "a@b.co", Phone: "01312345678", Password: "short", ConfirmPassword: "other"}, lang.English)
	want := map[string]string{
		"name":            "Name is required",
		"phone":           "Must be a valid Egyptian number (010/011/012/015)",
		"password":        "Password must be at least 8 characters",
		"confirmPassword": "Passwords do not match",
	}
	for k, v := range want {
		if errs.Fields[k] != v {
			t.Errorf("%s: got %q want %q", k, errs.Fields[k], v)
		}
	}
	ok := SignupInput{Name: "Ahmed", Email: "a@b.co", Phone: "01012345678", Password: "secret123", ConfirmPassword: "secret123"}
	if ValidateSignup(ok, lang.English) != nil {
		t.Fatalf("valid signup rejected")
	}
}

func TestLoginSetsSession(t *testing.T) {
	fake := &commercetest.Fake{
		LoginFn: func(ctx context.Context, email, password string) (*domain.Customer, error) {
			return &domain.Customer{ID: "cust-9", Email: email}, nil
		},
	}
	a := session(t, "")
	if _, err := newService(fake).Login(context.Background(), lang.English, a, LoginInput{Email: "a@b.co", Password: "secret123"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	if id, ok := a.CustomerID(); !ok || id != "cust-9" {
		t.Fatalf("session not set: %q", id)
	}
}

func TestLoginErrorMapping(t *testing.T) {
	cases := []struct {
		err   error
		field string
		msg   string
	}{
		{commerce.NewError(commerce.KindAuthentication, "customers.login", errors.New("invalid credentials")), "password", "Incorrect email or password"},
		{commerce.NewError(commerce.KindRemote, "customers.login", errors.New("timeout")), "general", "Something went wrong, please try again"},
	}
	for _, tc := range cases {
		fake := &commercetest.Fake{
			LoginFn: func(ctx context.Context, email, password string) (*domain.Customer, error) { return nil, tc.err },
		}
		a := session(t, "")
		_, err := newService(fake).Login(context.Background(), lang.English, a, LoginInput{Email: "a@b.co", Password: "x"})
		if got := fieldErrors(t, err)[tc.field]; got != tc.msg {
			t.Fatalf("%v: got %q want %q", tc.err, got, tc.msg)
		}
		if a.LoggedIn() {
			t.Fatalf("failed login must not set the session")
		}
	}
}

func TestSignupEmailTaken(t *testing.T) {
	fake := &commercetest.Fake{
		RegisterFn: func(ctx context.Context, r commerce.Registration) (*domain.Customer, error) {
			return nil, commerce.NewError(commerce.KindValidation, "customers.register", domain.ErrAlreadyExists)
		},
	}
	in := SignupInput{Name: "Ahmed", Email: "a@b.co", Phone: "01012345678", Password: "secret123", ConfirmPassword: "secret123"}
	_, err := newService(fake).Signup(context.Background(), lang.Arabic, session(t, ""), in)
	if got := fieldErrors(t, err)["email"]; got != "البريد الإلكتروني مسجل بالفعل" {
		t.Fatalf("unexpected email error %q", got)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	fake := &commercetest.Fake{}
	a := session(t, "cust-1")
	if err := newService(fake).Logout(context.Background(), a); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if a.LoggedIn() || fake.Calls("customers.logout") != 1 {
		t.Fatalf("logout should call backend and clear session")
	}
}

func TestPagesRequireLogin(t *testing.T) {
	svc := newService(&commercetest.Fake{})
	_, err := svc.Profile(context.Background(), lang.English, session(t, ""))
	if !commerce.IsAuthentication(err) || !errors.Is(err, ErrLoginRequired) {
		t.Fatalf("expected authentication error, got %v", err)
	}
}

func TestProfileLoadsTwentyOrders(t *testing.T) {
	var limit int
	fake := &commercetest.Fake{
		ListOrdersFn: func(ctx context.Context, customerID string, n int) ([]domain.Order, error) {
			limit = n
			return []domain.Order{{ID: "o1", OrderNumber: "AP-1", Status: domain.OrderShipped, TotalCents: 10000,
				Items: []domain.OrderItem{{Quantity: 2}, {Quantity: 1}}}}, nil
		},
	}
	p, err := newService(fake).Profile(context.Background(), lang.Arabic, session(t, "cust-1"))
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if limit != 20 {
		t.Fatalf("expected 20 orders requested, got %d", limit)
	}
	if p.Orders[0].StatusLabel != "في الطريق" || p.Orders[0].ItemCount != 3 || p.Orders[0].Total.EGP != 5000 {
		t.Fatalf("unexpected summary %+v", p.Orders[0])
	}
}

func TestAddAddressValidationAndLabel(t *testing.T) {
	var got commerce.AddressRequest
	fake := &commercetest.Fake{
		AddAddressFn: func(ctx context.Context, customerID string, a commerce.AddressRequest) (*domain.Customer, error) {
			got = a
			return &domain.Customer{ID: customerID}, nil
		},
	}
	svc := newService(fake)
	a := session(t, "cust-1")
	_, err := svc.AddAddress(context.Background(), lang.English, a, commerce.AddressRequest{Phone: "123"})
	if fields := fieldErrors(t, err); fields["phone"] == "" || fields["name"] == "" || fields["city"] == "" {
		t.Fatalf("unexpected fields %v", fields)
	}
	_, err = svc.AddAddress(context.Background(), lang.English, a, commerce.AddressRequest{
		Name: "Ahmed", Phone: "01012345678", AddressLine1: "12 St", AddressLine2: "الدقي", City: "الجيزة",
	})
	if err != nil {
		t.Fatalf("add address: %v", err)
	}
	if got.Label != "الجيزة" {
		t.Fatalf("label should default to city, got %q", got.Label)
	}
}

func TestSavedAddressPassesCheckoutValidation(t *testing.T) {
	var saved []domain.SavedAddress
	fake := &commercetest.Fake{
		AddAddressFn: func(ctx context.Context, customerID string, a commerce.AddressRequest) (*domain.Customer, error) {
			saved = append(saved, domain.SavedAddress{
				ID: "a1", Name: a.Name, Phone: a.Phone, AddressLine1: a.AddressLine1, AddressLine2: a.AddressLine2, City: a.City, IsDefault: true,
			})
			return &domain.Customer{ID: customerID, Addresses: saved}, nil
		},
	}
	svc := newService(fake)
	a := session(t, "cust-1")

	_, err := svc.AddAddress(context.Background(), lang.English, a, commerce.AddressRequest{
		Name: "Ahmed", Phone: "01012345678", AddressLine1: "12 St", City: "Cairo",
	})
	fields := fieldErrors(t, err)
	if fields["city"] == "" || fields["addressLine2"] == "" {
		t.Fatalf("expected city and area errors, got %v", fields)
	}
	if len(saved) != 0 {
		t.Fatalf("invalid address was saved")
	}

	if _, err := svc.AddAddress(context.Background(), lang.English, a, commerce.AddressRequest{
		Name: "Ahmed", Phone: "01012345678", AddressLine1: "12 St", AddressLine2: "مدينة نصر", City: " القاهرة ",
	}); err != nil {
		t.Fatalf("add address: %v", err)
	}
	sel := checkout.NewSelection(saved)
	if errs := checkout.Validate(sel.Form, lang.English); errs != nil {
		t.Fatalf("preselected saved address fails checkout: %v", errs)
	}
}
