package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"autoparts-storefront/internal/commerce"
	"autoparts-storefront/internal/commerce/commercetest"
	"autoparts-storefront/internal/domain"
	"autoparts-storefront/internal/state/kv"
	"autoparts-storefront/internal/storefront"
	"autoparts-storefront/internal/storefront/account"
	"autoparts-storefront/internal/storefront/catalog"
	"autoparts-storefront/internal/storefront/checkout"
	"autoparts-storefront/internal/storefront/pricing"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func testDeps(fake *commercetest.Fake) Deps {
	if fake.RateFn == nil {
		fake.RateFn = func(context.Context) (float64, error) { return 50, nil }
	}
	prices := pricing.NewDisplay(fake.Pricing(), time.Hour, nil)
	return Deps{
		Sessions:       kv.NewMemory(),
		Catalog:        catalog.New(fake, prices, "201000000000", nil),
		Checkout:       checkout.New(fake, prices, nil, nil),
		Account:        account.New(fake, prices, nil),
		SearchDebounce: 10 * time.Millisecond,
	}
}

func newTestRouter(t *testing.T, fake *commercetest.Fake) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps(fake))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

// client replays the session cookie across requests like a browser would.
type client struct {
	t      *testing.T
	router http.Handler
	cookie *http.Cookie
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookie {
			c.cookie = ck
		}
	}
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func TestBuildRouterRequiresServices(t *testing.T) {
	if _, err := buildRouter(logDiscard(), nil, Deps{}); err == nil {
		t.Fatalf("expected error for missing deps")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &commercetest.Fake{})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyzWithoutDB(t *testing.T) {
	router := newTestRouter(t, &commercetest.Fake{})
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestSessionCookieIssuedAndKept(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	c.do(http.MethodGet, "/api/lang", "")
	if c.cookie == nil || !validSessionID(c.cookie.Value) {
		t.Fatalf("expected a uuid session cookie, got %+v", c.cookie)
	}
	first := c.cookie.Value

	c.do(http.MethodGet, "/api/lang", "")
	if c.cookie.Value != first {
		t.Fatalf("expected session id to be kept, got %s then %s", first, c.cookie.Value)
	}

	c.cookie = &http.Cookie{Name: sessionCookie, Value: "not-a-uuid"}
	c.do(http.MethodGet, "/api/lang", "")
	if c.cookie.Value == "not-a-uuid" || !validSessionID(c.cookie.Value) {
		t.Fatalf("expected malformed id to be replaced, got %s", c.cookie.Value)
	}
}

func TestLanguageDefaultToggleAndReject(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}

	var got langResponse
	decode(t, c.do(http.MethodGet, "/api/lang", ""), &got)
	if got.Lang != "ar" || got.Dir != "rtl" {
		t.Fatalf("expected ar/rtl default, got %+v", got)
	}

	decode(t, c.do(http.MethodPost, "/api/lang/toggle", ""), &got)
	if got.Lang != "en" || got.Dir != "ltr" {
		t.Fatalf("expected en/ltr after toggle, got %+v", got)
	}

	rec := c.do(http.MethodPut, "/api/lang", `{"lang":"fr"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	decode(t, c.do(http.MethodGet, "/api/lang", ""), &got)
	if got.Lang != "en" {
		t.Fatalf("expected rejected value to leave en, got %+v", got)
	}
}

func TestCartFlow(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	item := `{"productId":"p1","oem":"A2058800118","nameAr":"رفرف","nameEn":"Fender","priceCents":10000,"quantity":9}`

	c.do(http.MethodPost, "/api/cart/items", item)
	rec := c.do(http.MethodPost, "/api/cart/items", item)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var view checkout.CartView
	decode(t, rec, &view)
	if len(view.Lines) != 1 || view.Lines[0].Quantity != 2 {
		t.Fatalf("expected one line of quantity 2, got %+v", view.Lines)
	}
	if view.Total.EGP != 10000 {
		t.Fatalf("expected 2 x 100 USD x 50 = 10000 EGP, got %+v", view.Total)
	}

	decode(t, c.do(http.MethodPatch, "/api/cart/items/p1", `{"quantity":0}`), &view)
	if len(view.Lines) != 0 {
		t.Fatalf("expected quantity 0 to remove the line, got %+v", view.Lines)
	}

	if rec := c.do(http.MethodPost, "/api/cart/items", `{"nameEn":"no id"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing product id, got %d", rec.Code)
	}
}

func TestCartIsPerSession(t *testing.T) {
	router := newTestRouter(t, &commercetest.Fake{})
	a := &client{t: t, router: router}
	b := &client{t: t, router: router}

	a.do(http.MethodPost, "/api/cart/items", `{"productId":"p1","priceCents":100}`)
	var view checkout.CartView
	decode(t, b.do(http.MethodGet, "/api/cart", ""), &view)
	if len(view.Lines) != 0 {
		t.Fatalf("expected a separate empty cart, got %+v", view.Lines)
	}
}

func TestCheckoutEmptyCartIsFieldError(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	body := `{"fullName":"Ahmed","phone":"01012345678","city":"القاهرة","area":"Nasr City","address":"12 Street"}`
	rec := c.do(http.MethodPost, "/api/checkout", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	decode(t, rec, &resp)
	if resp.Fields["cart"] == "" {
		t.Fatalf("expected cart field error, got %+v", resp)
	}
}

func TestCheckoutPlacesOrder(t *testing.T) {
	var got commerce.OrderRequest
	fake := &commercetest.Fake{
		CreateOrderFn: func(_ context.Context, req commerce.OrderRequest) (*domain.Order, error) {
			got = req
			return &domain.Order{ID: "o1", OrderNumber: "AP-0A1B2C3D", Status: domain.OrderPending}, nil
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	c.do(http.MethodPost, "/api/cart/items", `{"productId":"p1","priceCents":10000}`)

	body := `{"fullName":"Ahmed","phone":"01012345678","city":"القاهرة","area":"Nasr City","address":"12 Street"}`
	rec := c.do(http.MethodPost, "/api/checkout", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var res checkout.Result
	decode(t, rec, &res)
	if res.Redirect != "/order-success?order=AP-0A1B2C3D" {
		t.Fatalf("unexpected redirect %q", res.Redirect)
	}
	if len(got.Items) != 1 || got.Items[0].ProductID != "p1" || got.ShippingAddress.City != "القاهرة" {
		t.Fatalf("unexpected order request %+v", got)
	}

	var view checkout.CartView
	decode(t, c.do(http.MethodGet, "/api/cart", ""), &view)
	if len(view.Lines) != 0 {
		t.Fatalf("expected cart cleared after order, got %+v", view.Lines)
	}
}

func TestCheckoutRemoteFailureKeepsCart(t *testing.T) {
	fake := &commercetest.Fake{
		CreateOrderFn: func(context.Context, commerce.OrderRequest) (*domain.Order, error) {
			return nil, commerce.NewError(commerce.KindRemote, "checkout.create_order", errors.New("connection reset"))
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	c.do(http.MethodPost, "/api/cart/items", `{"productId":"p1","priceCents":10000}`)

	body := `{"fullName":"Ahmed","phone":"01012345678","city":"القاهرة","area":"Nasr City","address":"12 Street"}`
	rec := c.do(http.MethodPost, "/api/checkout", body)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rec.Code, rec.Body.String())
	}
	var view checkout.CartView
	decode(t, c.do(http.MethodGet, "/api/cart", ""), &view)
	if len(view.Lines) != 1 {
		t.Fatalf("expected cart kept after failure, got %+v", view.Lines)
	}
}

func TestCheckoutUsesSavedAddress(t *testing.T) {
	var got commerce.OrderRequest
	fake := &commercetest.Fake{
		LoginFn: func(_ context.Context, email, _ string) (*domain.Customer, error) {
			return &domain.Customer{ID: "cust-1", Email: email}, nil
		},
		ProfileFn: func(_ context.Context, id string) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Addresses: []domain.SavedAddress{
				{ID: "addr-1", Name: "Mona", Phone: "01112345678", City: "الجيزة", AddressLine1: "5 Road", AddressLine2: "Dokki"},
			}}, nil
		},
		CreateOrderFn: func(_ context.Context, req commerce.OrderRequest) (*domain.Order, error) {
			got = req
			return &domain.Order{ID: "o1", OrderNumber: "AP-00000001"}, nil
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	c.do(http.MethodPost, "/api/auth/login", `{"email":"mona@example.com","password":"secret123"}`)
	c.do(http.MethodPost, "/api/cart/items", `{"productId":"p1","priceCents":100}`)

	rec := c.do(http.MethodPost, "/api/checkout", `{"addressId":"addr-1","notes":"ring twice"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got.CustomerID != "cust-1" || got.ShippingAddress.FullName != "Mona" || got.ShippingAddress.Area != "Dokki" || got.ShippingAddress.Notes != "ring twice" {
		t.Fatalf("unexpected order request %+v", got)
	}
	if fake.Calls("customers.add_address") != 0 {
		t.Fatalf("expected saved address not to be re-added")
	}
}

func TestLoginWrongPasswordMapsToField(t *testing.T) {
	fake := &commercetest.Fake{
		LoginFn: func(context.Context, string, string) (*domain.Customer, error) {
			return nil, commerce.NewError(commerce.KindAuthentication, "customers.login", errors.New("invalid credentials"))
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	rec := c.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"wrongpass"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp errorResponse
	decode(t, rec, &resp)
	if resp.Fields["password"] == "" {
		t.Fatalf("expected password field error, got %+v", resp)
	}
}

func TestLoginThenLogout(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	if rec := c.do(http.MethodPost, "/api/auth/login", `{"email":"a@b.co","password":"secret123"}`); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var sess struct {
		LoggedIn   bool   `json:"loggedIn"`
		CustomerID string `json:"customerId"`
	}
	decode(t, c.do(http.MethodGet, "/api/auth/session", ""), &sess)
	if !sess.LoggedIn || sess.CustomerID != "cust-1" {
		t.Fatalf("expected logged in as cust-1, got %+v", sess)
	}

	if rec := c.do(http.MethodPost, "/api/auth/logout", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	decode(t, c.do(http.MethodGet, "/api/auth/session", ""), &sess)
	if sess.LoggedIn {
		t.Fatalf("expected logged out")
	}
}

func TestProfileRequiresLogin(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	for _, path := range []string{"/api/profile", "/api/orders/o1"} {
		if rec := c.do(http.MethodGet, path, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d body=%s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestPartNotFound(t *testing.T) {
	c := &client{t: t, router: newTestRouter(t, &commercetest.Fake{})}
	if rec := c.do(http.MethodGet, "/api/parts/NOPE", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCatalogBackendFailureIs502(t *testing.T) {
	fake := &commercetest.Fake{
		ListCategoriesFn: func(context.Context) ([]domain.Category, error) {
			return nil, errors.New("db down")
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	if rec := c.do(http.MethodGet, "/api/catalog", ""); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestCatalogForwardsFitmentQuery(t *testing.T) {
	var got commerce.FitmentQuery
	fake := &commercetest.Fake{
		FitmentProductsFn: func(_ context.Context, q commerce.FitmentQuery) ([]domain.Product, error) {
			got = q
			return []domain.Product{{ID: "p1", OEM: "A1", Name: "Fender"}}, nil
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	rec := c.do(http.MethodGet, "/api/catalog?modelId=m1&year=2016&categoryId=c1&brand=BMW", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got.ModelID != "m1" || got.Year != 2016 || got.CategoryID != "c1" {
		t.Fatalf("unexpected fitment query %+v", got)
	}
	var listing catalog.Listing
	decode(t, rec, &listing)
	if listing.Heading != "قطع BMW" || len(listing.Parts) != 1 {
		t.Fatalf("unexpected listing %+v", listing)
	}
}

func TestYearsIncludeSelectionURL(t *testing.T) {
	fake := &commercetest.Fake{
		ModelFn: func(_ context.Context, id string) (*domain.VehicleModel, error) {
			return &domain.VehicleModel{ID: id, YearFrom: 2018, YearTo: 2019}, nil
		},
	}
	c := &client{t: t, router: newTestRouter(t, fake)}
	var resp struct {
		Results []yearOption `json:"results"`
	}
	decode(t, c.do(http.MethodGet, "/api/fitment/models/m1/years?brand=BMW", ""), &resp)
	if len(resp.Results) != 2 || resp.Results[0].Year != 2019 {
		t.Fatalf("expected newest first, got %+v", resp.Results)
	}
	if resp.Results[0].URL != "/catalog?brand=BMW&modelId=m1&year=2019" {
		t.Fatalf("unexpected url %q", resp.Results[0].URL)
	}
}

func TestStatusFor(t *testing.T) {
	fe := &storefront.FieldErrors{}
	fe.Add("phone", "bad")
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"fields", fe, http.StatusUnprocessableEntity},
		{"in flight", checkout.ErrSubmitInProgress, http.StatusConflict},
		{"auth", commerce.NewError(commerce.KindAuthentication, "op", errors.New("x")), http.StatusUnauthorized},
		{"not found", commerce.NewError(commerce.KindNotFound, "op", domain.ErrNotFound), http.StatusNotFound},
		{"validation", commerce.NewError(commerce.KindValidation, "op", domain.ErrInvalidInput), http.StatusUnprocessableEntity},
		{"remote", errors.New("boom"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := statusFor(tc.err); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
