package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	companydomain "github.com/smallbiznis/komisi/internal/company/domain"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
)

func postJSON(t *testing.T, srv *Server, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestCreateAndListProducts(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	rec := postJSON(t, srv, "/v1/products", `{"code":"SKU-1","name":"Widget","commission_rate":"10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/products")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []struct {
			Code           string `json:"code"`
			CommissionRate string `json:"commission_rate"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Code != "SKU-1" {
		t.Fatalf("unexpected products: %+v", body.Data)
	}
}

func TestCreateProductRejectsDuplicateCode(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	rec := postJSON(t, srv, "/v1/products", `{"code":"SKU-1","name":"Widget","commission_rate":"10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, srv, "/v1/products", `{"code":"SKU-1","name":"Other","commission_rate":"5"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateProductValidation(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	rec := postJSON(t, srv, "/v1/products", `{"name":"No code"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing code, got %d", rec.Code)
	}

	rec = postJSON(t, srv, "/v1/products", `{"code":"SKU-2","name":"Widget","commission_rate":"-1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative rate, got %d", rec.Code)
	}
}

func TestGetProduct(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	rec := postJSON(t, srv, "/v1/products", `{"code":"SKU-1","name":"Widget","commission_rate":"10"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create body: %v", err)
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/products/"+created.Data.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Code string `json:"code"`
		} `json:"data"`
		Commissionable bool `json:"commissionable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Code != "SKU-1" || !body.Commissionable {
		t.Fatalf("unexpected product body: %s", rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/products/12345")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", rec.Code)
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/products/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rec.Code)
	}
}

func TestGetProductZeroRateIsNotCommissionable(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	rec := postJSON(t, srv, "/v1/products", `{"code":"SKU-0","name":"Freebie","commission_rate":"0"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create body: %v", err)
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/products/"+created.Data.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Commissionable bool `json:"commissionable"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Commissionable {
		t.Fatalf("zero-rate product must not be commissionable")
	}
}

func TestGetCompany(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})

	company := companydomain.Company{
		ID:           srv.genID.Generate(),
		Name:         "Acme",
		CurrencyCode: "USD",
	}
	if err := srv.db.Create(&company).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}

	rec := doRequest(t, srv, http.MethodGet, fmt.Sprintf("/v1/companies/%d", company.ID))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Name         string `json:"name"`
			CurrencyCode string `json:"currency_code"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Name != "Acme" || body.Data.CurrencyCode != "USD" {
		t.Fatalf("unexpected company body: %s", rec.Body.String())
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/companies/98765")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown company, got %d", rec.Code)
	}
}

func TestGetCurrency(t *testing.T) {
	srv := newTestServer(t, &stubCommissionService{})
	if err := srv.db.Create(&referencedomain.Currency{
		Code:      "USD",
		Name:      "US Dollar",
		MinorUnit: 2,
		IsActive:  true,
	}).Error; err != nil {
		t.Fatalf("seed currency: %v", err)
	}

	rec := doRequest(t, srv, http.MethodGet, "/v1/currencies/usd")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data referencedomain.Currency `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Code != "USD" || body.Data.MinorUnit != 2 {
		t.Fatalf("unexpected currency: %+v", body.Data)
	}

	rec = doRequest(t, srv, http.MethodGet, "/v1/currencies/XXX")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
