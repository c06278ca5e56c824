package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coder-yr/taste-link/config"
	"github.com/coder-yr/taste-link/database"
	"github.com/coder-yr/taste-link/marketplace"
	"github.com/coder-yr/taste-link/models"
	"github.com/coder-yr/taste-link/notify"
	"github.com/coder-yr/taste-link/web/handlers"
	"github.com/coder-yr/taste-link/web/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type testServer struct {
	t       *testing.T
	app     *fiber.App
	catalog *database.MemoryCatalog
	hub     *notify.Hub
	visitor string
}

func newTestServer(t *testing.T, submitter marketplace.Submitter, health func() error) *testServer {
	t.Helper()

	catalog := database.NewMemoryCatalog()
	if submitter == nil {
		submitter = catalog
	}
	hub := notify.NewHub(nil)
	srv := NewServer(handlers.Deps{
		Catalog:  catalog,
		Modals:   marketplace.NewModalRegistry(submitter, 2*time.Second, time.Hour),
		Hub:      hub,
		Recorder: database.NewQueryRecorder(10),
		Join:     config.JoinConfig{SubmitTimeout: time.Second},
		Health:   health,
	}, true)

	return &testServer{t: t, app: srv.App(), catalog: catalog, hub: hub, visitor: uuid.New().String()}
}

func (s *testServer) do(req *http.Request) (*http.Response, string) {
	s.t.Helper()
	req.Header.Set("Cookie", middleware.VisitorCookie+"="+s.visitor)
	resp, err := s.app.Test(req, 5000)
	if err != nil {
		s.t.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (s *testServer) get(target string) (*http.Response, string) {
	return s.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (s *testServer) post(target string, form url.Values) (*http.Response, string) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}

func assertContains(t *testing.T, body string, parts ...string) {
	t.Helper()
	for _, p := range parts {
		if !strings.Contains(body, p) {
			t.Errorf("body does not contain %q", p)
		}
	}
}

func validJoinForm() url.Values {
	return url.Values{
		"supplierName":     {"GreenPack Solutions"},
		"supplierId":       {"SUP001"},
		"productOffering":  {"rice-bowls"},
		"pricePerUnit":     {"2.50"},
		"minOrderQuantity": {"100"},
	}
}

func TestLandingPage(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.get("/")
	assertStatus(t, resp, fiber.StatusOK)
	assertContains(t, body, "Connect. Collaborate. Save.", "Why Choose TrustedMarket?", "Track Your Savings")
	if strings.Contains(body, `aria-current="page"`) {
		t.Error("landing page renders its own nav, not the header")
	}
}

func TestVendorDashboard(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.get("/vendor")
	assertStatus(t, resp, fiber.StatusOK)
	assertContains(t, body,
		"Welcome back, John!",
		"$2,847",
		"3 pending delivery",
		"-29% OFF",
		"147 / 200 units",
		"width: 74%",
		"ORD-002",
		"In Transit",
		"15 orders",
	)
	if strings.Count(body, `aria-current="page"`) != 1 {
		t.Error("expected exactly one active header link")
	}
	// d2 is already joined
	if strings.Count(body, "Join Group Buy") != 1 {
		t.Errorf("expected one join button, got %d", strings.Count(body, "Join Group Buy"))
	}
}

func TestSupplierListSearch(t *testing.T) {
	s := newTestServer(t, nil, nil)

	resp, body := s.get("/vendor/suppliers")
	assertStatus(t, resp, fiber.StatusOK)
	assertContains(t, body, "Found 4 suppliers", "Load More Suppliers", "1 more</span>", "Trust Score: 95/100")

	_, body = s.get("/vendor/suppliers?q=SPICE")
	assertContains(t, body, "Found 2 suppliers", "Spice Masters Ltd", "GreenField Supplies")

	_, body = s.get("/vendor/suppliers?category=dairy")
	assertContains(t, body, "Found 1 suppliers", "Quality Foods Co")

	_, body = s.get("/vendor/suppliers?q=zzz")
	assertContains(t, body, "Found 0 suppliers", "No suppliers found")
	if strings.Contains(body, "Load More Suppliers") {
		t.Error("Load More should be hidden when nothing matches")
	}
}

func TestContactSupplierFlashesToast(t *testing.T) {
	s := newTestServer(t, nil, nil)

	resp, _ := s.post("/vendor/suppliers/2/contact", url.Values{"q": {"farm"}})
	assertStatus(t, resp, fiber.StatusSeeOther)
	if loc := resp.Header.Get("Location"); loc != "/vendor/suppliers?q=farm" {
		t.Errorf("Location = %q", loc)
	}

	_, body := s.get("/vendor/suppliers?q=farm")
	assertContains(t, body, "Contact Request Sent", "FarmFresh Direct")

	_, body = s.get("/vendor/suppliers")
	if strings.Contains(body, "Contact Request Sent") {
		t.Error("toast should be shown once")
	}
}

func TestContactSupplierAsync(t *testing.T) {
	s := newTestServer(t, nil, nil)
	client := notify.NewClient("c1", s.visitor)
	s.hub.Register(client)

	req := httptest.NewRequest(http.MethodPost, "/vendor/suppliers/4/contact", nil)
	req.Header.Set("X-Requested-With", "fetch")
	resp, _ := s.do(req)
	assertStatus(t, resp, fiber.StatusNoContent)

	select {
	case ev := <-client.Events:
		if ev.EventType != "toast" || !strings.Contains(ev.Data, "Spice Masters Ltd") {
			t.Errorf("unexpected event %+v", ev)
		}
	default:
		t.Fatal("toast was not streamed")
	}
}

func TestContactUnknownSupplier(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.post("/vendor/suppliers/99/contact", nil)
	assertStatus(t, resp, fiber.StatusNotFound)
	assertContains(t, body, "Supplier not found")
}

func TestQuickJoinGroupBuy(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, _ := s.post("/vendor/group-buys/d1/join", nil)
	assertStatus(t, resp, fiber.StatusSeeOther)

	_, body := s.get("/vendor")
	assertContains(t, body, "Joined Group Buy!")

	resp, _ = s.post("/vendor/group-buys/nope/join", nil)
	assertStatus(t, resp, fiber.StatusNotFound)
}

func TestJoinCampaignHappyPath(t *testing.T) {
	s := newTestServer(t, nil, nil)

	resp, body := s.get("/group-buyers")
	assertStatus(t, resp, fiber.StatusOK)
	assertContains(t, body, "Premium Rice Bowls", "-22% OFF", "150 / 500 units", "width: 30%")
	if strings.Contains(body, `role="dialog"`) {
		t.Fatal("modal should start closed")
	}

	_, body = s.get("/group-buyers?join=c1")
	assertContains(t, body, `role="dialog"`, `action="/group-buyers/c1/join"`, "Rice Bowls &amp; Containers")

	resp, _ = s.post("/group-buyers/c1/join", validJoinForm())
	assertStatus(t, resp, fiber.StatusSeeOther)

	_, body = s.get("/group-buyers")
	assertContains(t, body, "Joined!", "Successfully joined!", `http-equiv="refresh"`)

	reqs := s.catalog.JoinRequests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 join request, got %d", len(reqs))
	}
	if reqs[0].CampaignID != "c1" || reqs[0].PricePerUnit != 2.5 || reqs[0].Status != models.JoinPending {
		t.Errorf("unexpected join request %+v", reqs[0])
	}
}

func TestJoinCampaignValidation(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.get("/group-buyers?join=c2")

	form := validJoinForm()
	form.Set("supplierName", "A")
	form.Set("pricePerUnit", "-1")
	resp, body := s.post("/group-buyers/c2/join", form)
	assertStatus(t, resp, fiber.StatusUnprocessableEntity)
	assertContains(t, body,
		"Supplier name must be at least 2 characters",
		"Price must be a positive number",
		`value="SUP001"`,
	)
	if len(s.catalog.JoinRequests()) != 0 {
		t.Error("invalid form must not be submitted")
	}
}

func TestJoinCampaignSubmitFailure(t *testing.T) {
	failing := marketplace.SubmitterFunc(func(ctx context.Context, req models.JoinRequest) error {
		return errors.New("upstream unavailable")
	})
	s := newTestServer(t, failing, nil)
	s.get("/group-buyers?join=c3")

	resp, _ := s.post("/group-buyers/c3/join", validJoinForm())
	assertStatus(t, resp, fiber.StatusSeeOther)

	_, body := s.get("/group-buyers")
	assertContains(t, body, `role="dialog"`, "Failed to join campaign. Please try again.", "toast-destructive")
}

func TestJoinCampaignCancel(t *testing.T) {
	s := newTestServer(t, nil, nil)
	s.get("/group-buyers?join=c1")

	resp, _ := s.post("/group-buyers/join/cancel", nil)
	assertStatus(t, resp, fiber.StatusSeeOther)

	_, body := s.get("/group-buyers")
	if strings.Contains(body, `role="dialog"`) {
		t.Error("modal should be closed after cancel")
	}
}

func TestJoinUnknownCampaign(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, _ := s.get("/group-buyers?join=zz")
	assertStatus(t, resp, fiber.StatusNotFound)

	resp, _ = s.post("/group-buyers/zz/join", validJoinForm())
	assertStatus(t, resp, fiber.StatusNotFound)
}

func TestSuppliersAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.get("/api/suppliers?q=spice&sort=trust")
	assertStatus(t, resp, fiber.StatusOK)

	var out struct {
		Count     int               `json:"count"`
		Suppliers []models.Supplier `json:"suppliers"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 2 || out.Suppliers[0].ID != "1" {
		t.Errorf("unexpected result %+v", out)
	}
}

func TestGroupBuysAPI(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.get("/api/group-buys")
	assertStatus(t, resp, fiber.StatusOK)

	var out []struct {
		ID         string `json:"id"`
		Percentage int    `json:"percentage"`
		Discount   int    `json:"discount"`
	}
	if err := json.Unmarshal([]byte(body), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 3 || out[0].ID != "c1" || out[0].Percentage != 30 || out[0].Discount != 22 {
		t.Errorf("unexpected campaigns %+v", out)
	}

	resp, body = s.get("/api/group-buys?board=archive")
	assertStatus(t, resp, fiber.StatusBadRequest)
	assertContains(t, body, `"error":"unknown board"`)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, _ := s.get("/healthz")
	assertStatus(t, resp, fiber.StatusOK)

	down := newTestServer(t, nil, func() error { return errors.New("db down") })
	resp, body := down.get("/healthz")
	assertStatus(t, resp, fiber.StatusServiceUnavailable)
	assertContains(t, body, "db down")
}

func TestDebugSQLEndpoints(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, _ := s.do(httptest.NewRequest(http.MethodDelete, "/api/debug/sql", nil))
	assertStatus(t, resp, fiber.StatusOK)

	resp, body := s.get("/api/debug/sql")
	assertStatus(t, resp, fiber.StatusOK)
	if strings.TrimSpace(body) != "[]" {
		t.Errorf("expected empty log, got %s", body)
	}
}

func TestStaticAssets(t *testing.T) {
	s := newTestServer(t, nil, nil)
	resp, body := s.get("/static/js/app.js")
	assertStatus(t, resp, fiber.StatusOK)
	assertContains(t, body, "EventSource")
}

func TestAnonymousVisitorsDoNotPileUp(t *testing.T) {
	catalog := database.NewMemoryCatalog()
	modals := marketplace.NewModalRegistry(catalog, 2*time.Second, 20*time.Millisecond)
	hub := notify.NewHub(nil)
	app := NewServer(handlers.Deps{
		Catalog:  catalog,
		Modals:   modals,
		Hub:      hub,
		Recorder: database.NewQueryRecorder(10),
	}, true).App()

	send := func(req *http.Request) {
		t.Helper()
		resp, err := app.Test(req, 5000)
		if err != nil {
			t.Fatalf("%s %s: %v", req.Method, req.URL, err)
		}
		resp.Body.Close()
	}

	for i := 0; i < 20; i++ {
		send(httptest.NewRequest(http.MethodGet, "/group-buyers", nil))
	}
	if modals.Len() != 0 {
		t.Fatalf("browsing the campaign list created %d modals", modals.Len())
	}

	for i := 0; i < 50; i++ {
		send(httptest.NewRequest(http.MethodGet, "/group-buyers?join=c1", nil))
		send(httptest.NewRequest(http.MethodPost, "/vendor/suppliers/1/contact", nil))
	}
	if modals.Len() != 50 || hub.PendingCount() != 50 {
		t.Fatalf("expected 50 modals and 50 toast queues, got %d and %d", modals.Len(), hub.PendingCount())
	}

	time.Sleep(50 * time.Millisecond)
	if removed := modals.Sweep(); removed != 50 {
		t.Errorf("modal Sweep removed %d, want 50", removed)
	}
	if removed := hub.Sweep(20 * time.Millisecond); removed != 50 {
		t.Errorf("hub Sweep removed %d, want 50", removed)
	}
	if modals.Len() != 0 || hub.PendingCount() != 0 {
		t.Errorf("state left behind: %d modals, %d toast queues", modals.Len(), hub.PendingCount())
	}
}
