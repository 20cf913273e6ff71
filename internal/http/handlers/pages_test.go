package handlers_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	html "github.com/gofiber/template/html/v2"

	"bloomfront/internal/content"
	"bloomfront/internal/controller"
	"bloomfront/internal/http/handlers"
)

func newApp(t *testing.T, backendURL string) *fiber.App {
	t.Helper()
	ctrl := controller.New(content.New(backendURL+"/api", backendURL, 0))
	pages := &handlers.PageHandler{Ctrl: ctrl}

	engine := html.New("../../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Get("/", pages.Home)
	app.Get("/catalog", pages.Catalog)
	app.Get("/catalog/filter", pages.Filter)
	app.Post("/events/scroll", pages.Scroll)
	return app
}

func newContentBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/site-content/":
			fmt.Fprint(w, `{
				"settings": {"site_name":"Лавка","telegram_bot_link":"https://t.me/shopbot"},
				"hero": {"title":"Свежие букеты"}
			}`)
		case "/api/products/":
			fmt.Fprint(w, `[
				{"id":1,"name":"Нежность","price":"1500.00"},
				{"id":2,"name":"Пион","price":"4000.00"}
			]`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestHomePage(t *testing.T) {
	srv := newContentBackend(t)
	defer srv.Close()
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("want 200, got %d", resp.StatusCode)
	}
	s := body(t, resp)
	if !strings.Contains(s, "Свежие букеты") {
		t.Fatalf("hero missing from page: %s", s)
	}
	if !strings.Contains(s, "Лавка") {
		t.Fatal("site name missing from page")
	}
}

func TestCatalogPageAndFilter(t *testing.T) {
	srv := newContentBackend(t)
	defer srv.Close()
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
	if err != nil {
		t.Fatal(err)
	}
	s := body(t, resp)
	if !strings.Contains(s, "Нежность") || !strings.Contains(s, "Пион") {
		t.Fatalf("unfiltered catalog incomplete: %s", s)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/catalog/filter?min=2000", nil))
	if err != nil {
		t.Fatal(err)
	}
	s = body(t, resp)
	if strings.Contains(s, "Нежность") {
		t.Fatal("filtered-out product still on page")
	}
	if !strings.Contains(s, "Пион") {
		t.Fatal("matching product missing")
	}
}

func TestFilterRejectsGarbageBounds(t *testing.T) {
	srv := newContentBackend(t)
	defer srv.Close()
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/filter?min=abc", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("want redirect to /catalog, got %d", resp.StatusCode)
	}
}

func TestFilterBeforeLoadRedirects(t *testing.T) {
	srv := newContentBackend(t)
	defer srv.Close()
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/filter?min=100", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("want redirect with no snapshot, got %d", resp.StatusCode)
	}
}

func TestScrollEndpoint(t *testing.T) {
	srv := newContentBackend(t)
	defer srv.Close()
	app := newApp(t, srv.URL)

	// arm the upsell via a catalog load
	if _, err := app.Test(httptest.NewRequest("GET", "/catalog", nil)); err != nil {
		t.Fatal(err)
	}

	post := func(formBody string) *http.Response {
		req := httptest.NewRequest("POST", "/events/scroll", strings.NewReader(formBody))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp
	}

	resp := post("delta=100")
	if !strings.Contains(body(t, resp), `"fired":false`) {
		t.Fatal("small delta must not fire")
	}
	resp = post("delta=900")
	if !strings.Contains(body(t, resp), `"fired":true`) {
		t.Fatal("crossing the threshold must fire")
	}
	resp = post("delta=900")
	if !strings.Contains(body(t, resp), `"fired":false`) {
		t.Fatal("upsell must not fire twice")
	}

	resp = post("delta=nonsense")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for bad delta, got %d", resp.StatusCode)
	}
}

func TestCatalogPageSurvivesBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	app := newApp(t, srv.URL)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("page still renders with the inline error, got %d", resp.StatusCode)
	}
	if !strings.Contains(body(t, resp), controller.CatalogErrText) {
		t.Fatal("inline error missing from page")
	}
}
