package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("path = %s, expected /auth/login", r.URL.Path)
		}
		var creds map[string]string
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds["username"] != "admin1" || creds["password"] != "admin1pass" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok123", "display_name": "Administrator 1"})
	}))
	t.Cleanup(server.Close)

	c := New(Config{APIURL: server.URL})
	if err := c.Login("admin1", "admin1pass"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if c.token != "tok123" {
		t.Errorf("token = %q, expected tok123", c.token)
	}

	bad := New(Config{APIURL: server.URL})
	if err := bad.Login("admin1", "wrong"); err == nil {
		t.Error("Login() with bad credentials should fail")
	}
}

func TestImportSales(t *testing.T) {
	var gotAuth string
	var gotBody struct {
		Sales []SaleRow `json:"sales"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/1/sales/import" {
			t.Errorf("path = %s, expected /api/1/sales/import", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]int{"imported": len(gotBody.Sales)})
	}))
	t.Cleanup(server.Close)

	c := New(Config{APIURL: server.URL})
	c.token = "tok123"

	count, err := c.ImportSales([]SaleRow{
		{Outlet: "Ortosalon Munisa", Date: "2026-03-01", Amount: 150},
		{Outlet: "Ortosalon Siema", Date: "2026-03-01", Amount: 80},
	})
	if err != nil {
		t.Fatalf("ImportSales() error = %v", err)
	}
	if count != 2 {
		t.Errorf("ImportSales() = %d, expected 2", count)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, expected bearer token", gotAuth)
	}
	if len(gotBody.Sales) != 2 || gotBody.Sales[0].Outlet != "Ortosalon Munisa" {
		t.Errorf("submitted rows = %+v", gotBody.Sales)
	}
}

func TestSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/1/reports/summary" {
			t.Errorf("path = %s, expected /api/1/reports/summary", r.URL.Path)
		}
		if r.URL.Query().Get("from") != "2026-03-01" || r.URL.Query().Get("to") != "2026-03-31" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"summary": Summary{From: "2026-03-01", To: "2026-03-31", Revenue: 1500, Profit: 450, Balance: 350},
		})
	}))
	t.Cleanup(server.Close)

	c := New(Config{APIURL: server.URL})
	c.token = "tok123"

	summary, err := c.Summary("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.Revenue != 1500 || summary.Profit != 450 {
		t.Errorf("summary = %+v", summary)
	}
}

func TestDebtSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"debt": map[string]interface{}{
				"byCountry": map[string]interface{}{
					"TJ": map[string]float64{"debt": 900, "debtUSD": 90},
				},
				"total":    900,
				"totalUSD": 90,
			},
		})
	}))
	t.Cleanup(server.Close)

	c := New(Config{APIURL: server.URL})
	c.token = "tok123"

	debt, err := c.DebtSummary()
	if err != nil {
		t.Fatalf("DebtSummary() error = %v", err)
	}
	if debt.Total != 900 || debt.ByCountry["TJ"].DebtUSD != 90 {
		t.Errorf("debt = %+v", debt)
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		contains string
	}{
		{"structured error", http.StatusBadRequest, `{"error":"invalid_parameter","error_description":"amount must be positive"}`, "amount must be positive"},
		{"error without description", http.StatusUnauthorized, `{"error":"unauthorized"}`, "unauthorized"},
		{"plain body", http.StatusBadGateway, "bad gateway", "status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(server.Close)

			c := New(Config{APIURL: server.URL})
			_, err := c.DebtSummary()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error = %q, expected to contain %q", err, tt.contains)
			}
		})
	}
}
