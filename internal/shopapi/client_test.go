package shopapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mamahiam-storefront/internal/domain"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, DefaultTimeout, log.New(io.Discard, "", 0))
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":[]}`))
	})

	if _, err := client.Products(context.Background(), ProductQuery{}); err != nil {
		t.Fatal(err)
	}
	for header, want := range map[string]string{
		"Accept":        "application/json",
		"Content-Type":  "application/json",
		"Cache-Control": "no-cache, no-store, must-revalidate",
		"Pragma":        "no-cache",
		"Expires":       "0",
	} {
		if got.Get(header) != want {
			t.Fatalf("header %s = %q, want %q", header, got.Get(header), want)
		}
	}
}

func TestProductsQueryParams(t *testing.T) {
	var r *http.Request
	client := testClient(t, func(w http.ResponseWriter, req *http.Request) {
		r = req.Clone(context.Background())
		w.Write([]byte(`{"data":[]}`))
	})

	_, err := client.Products(context.Background(), ProductQuery{
		Page:     2,
		PerPage:  12,
		Search:   "dress",
		Category: "girls",
		Featured: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	q := r.URL.Query()
	if q.Get("page") != "2" || q.Get("per_page") != "12" || q.Get("search") != "dress" ||
		q.Get("category") != "girls" || q.Get("featured") != "true" {
		t.Fatalf("unexpected query: %v", q)
	}
	if q.Has("_t") {
		t.Fatalf("plain listings should not be cache-busted")
	}
	if q.Has("new_collection") {
		t.Fatalf("unset filters should be omitted")
	}
}

func TestProductsNewCollectionCacheBusts(t *testing.T) {
	var r *http.Request
	client := testClient(t, func(w http.ResponseWriter, req *http.Request) {
		r = req.Clone(context.Background())
		w.Write([]byte(`{"data":[]}`))
	})

	if _, err := client.Products(context.Background(), ProductQuery{NewCollection: true}); err != nil {
		t.Fatal(err)
	}
	q := r.URL.Query()
	if q.Get("new_collection") != "true" || !q.Has("_t") {
		t.Fatalf("new-collection listing should be cache-busted: %v", q)
	}
}

func TestProductsDecodesLoosePayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[
			{"id":"7","name":"Dress","price":"19.90","discount_price":null,"sizes":["2Y","4Y"]},
			{"id":8,"name":"Cap","price":"oops","discount_price":5}
		]}`))
	})

	products, err := client.Products(context.Background(), ProductQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("expected two products, got %d", len(products))
	}
	first := products[0]
	if first.ID != 7 || first.Price != 19.90 || first.DiscountPrice != 0 {
		t.Fatalf("loose decoding failed: %+v", first)
	}
	if len(first.Sizes) != 2 {
		t.Fatalf("sizes lost: %+v", first)
	}
	second := products[1]
	if second.ID != 8 || second.Price != 0 || second.DiscountPrice != 5 {
		t.Fatalf("unparseable price should coerce to zero: %+v", second)
	}
}

func TestProductNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.Product(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBranchesPathAndCacheBust(t *testing.T) {
	var r *http.Request
	client := testClient(t, func(w http.ResponseWriter, req *http.Request) {
		r = req.Clone(context.Background())
		w.Write([]byte(`{"data":[{"id":1,"name":"Downtown"}]}`))
	})

	branches, err := client.Branches(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if r.URL.Path != "/branchs" {
		t.Fatalf("expected upstream path /branchs, got %s", r.URL.Path)
	}
	if !r.URL.Query().Has("_t") {
		t.Fatalf("branches read should be cache-busted")
	}
	if len(branches) != 1 || branches[0].Name != "Downtown" {
		t.Fatalf("unexpected branches: %+v", branches)
	}
}

func TestFeaturedProductsPath(t *testing.T) {
	var r *http.Request
	client := testClient(t, func(w http.ResponseWriter, req *http.Request) {
		r = req.Clone(context.Background())
		w.Write([]byte(`{"data":[]}`))
	})

	if _, err := client.FeaturedProducts(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.URL.Path != "/featured-products" || !r.URL.Query().Has("_t") {
		t.Fatalf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	var body domain.OrderSubmission
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode submission: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{
			"number":1234,
			"created_at":"2026-03-01T12:00:00Z",
			"customer_name":"Sami",
			"total_price":"249.50",
			"items":[{"product_name":"Dress","qty":"2","unit_price":100,"line_total":200}]
		}}`))
	})

	conf, err := client.CreateOrder(context.Background(), domain.OrderSubmission{
		Name:    "Sami",
		Phone:   "0999999999",
		Address: "12 Main St",
		Items:   []domain.OrderLine{{ShopProductID: 7, Qty: 2}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(body.Items) != 1 || body.Items[0].ShopProductID != 7 || body.Items[0].Qty != 2 {
		t.Fatalf("unexpected submission body: %+v", body)
	}
	if conf.Number != "1234" {
		t.Fatalf("numeric order number should decode as string, got %q", conf.Number)
	}
	if conf.TotalPrice != 249.50 {
		t.Fatalf("unexpected total: %v", conf.TotalPrice)
	}
	if len(conf.Items) != 1 || conf.Items[0].Qty != 2 || conf.Items[0].UnitPrice != 100 {
		t.Fatalf("unexpected confirmation lines: %+v", conf.Items)
	}
}

func TestCreateOrderStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusBadRequest, KindBadRequest},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
		{http.StatusServiceUnavailable, KindServer},
		{http.StatusTeapot, KindGeneric},
	}
	for _, tc := range cases {
		client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := client.CreateOrder(context.Background(), domain.OrderSubmission{})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected APIError, got %v", tc.status, err)
		}
		if apiErr.Kind != tc.want || apiErr.StatusCode != tc.status {
			t.Fatalf("status %d: classified as %+v", tc.status, apiErr)
		}
		if apiErr.Message() == "" {
			t.Fatalf("status %d: empty user-facing message", tc.status)
		}
	}
}

func TestCreateOrderTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	client := New(srv.URL, 20*time.Millisecond, log.New(io.Discard, "", 0))

	_, err := client.CreateOrder(context.Background(), domain.OrderSubmission{})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Kind != KindTimeout {
		t.Fatalf("expected timeout classification, got %v", err)
	}
}

func TestNewTrimsTrailingSlash(t *testing.T) {
	client := New("https://example.test/api/v1/", DefaultTimeout, log.New(io.Discard, "", 0))
	if client.baseURL != "https://example.test/api/v1" {
		t.Fatalf("unexpected base URL %q", client.baseURL)
	}
}
