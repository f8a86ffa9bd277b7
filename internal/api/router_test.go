package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Booking-Operations-Backend/internal/api"
	"github.com/ndewijer/Booking-Operations-Backend/internal/config"
	"github.com/ndewijer/Booking-Operations-Backend/internal/repository"
	"github.com/ndewijer/Booking-Operations-Backend/internal/service"
	"github.com/ndewijer/Booking-Operations-Backend/internal/testutil"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db := testutil.SetupTestDB(t)
	analyticsService := service.NewAnalyticsService(repository.NewBookingRepository(db))
	bookingService := service.NewBookingService(repository.NewBookingRepository(db), analyticsService)

	cfg := &config.Config{CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}}
	router := api.NewRouter(
		testutil.NewTestSystemService(t, db),
		bookingService,
		analyticsService,
		testutil.NewTestFxService(t, db),
		cfg,
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestRouter(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/api/system/health", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/api/system/version", wantStatus: http.StatusOK},
		{name: "list bookings", method: http.MethodGet, path: "/api/booking", wantStatus: http.StatusOK},
		{name: "create booking", method: http.MethodPost, path: "/api/booking", body: `{"booking_date":"2024-03-05"}`, wantStatus: http.StatusCreated},
		{name: "analytics", method: http.MethodGet, path: "/api/booking/analytics?reference_date=2024-03-31", wantStatus: http.StatusOK},
		{name: "rates", method: http.MethodGet, path: "/api/fx/rate", wantStatus: http.StatusOK},
		{name: "matrix", method: http.MethodGet, path: "/api/fx/matrix?side=bid", wantStatus: http.StatusOK},
		{name: "all matrices", method: http.MethodGet, path: "/api/fx/matrix/all", wantStatus: http.StatusOK},
		{name: "spread", method: http.MethodGet, path: "/api/fx/spread", wantStatus: http.StatusOK},
		{name: "update spread", method: http.MethodPut, path: "/api/fx/spread/" + testutil.SeedSpreadID, body: `{"value":"0.01"}`, wantStatus: http.StatusOK},
		{name: "update spread with invalid id", method: http.MethodPut, path: "/api/fx/spread/not-a-uuid", body: `{"value":"0.01"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/portfolio", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, server.URL+tt.path, bytes.NewBufferString(tt.body))
			if err != nil {
				t.Fatalf("Failed to build request: %v", err)
			}
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("Expected %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestRouter_CORS(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/api/fx/spread", nil)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected allowed origin 'http://localhost:3000', got '%s'", got)
	}
}
