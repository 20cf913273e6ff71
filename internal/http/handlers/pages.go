package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"bloomfront/internal/controller"
	applog "bloomfront/internal/log"
	"bloomfront/internal/validate"
)

// PageHandler serves the storefront pages off one controller-owned page
// session. The page mode is fixed per route, not probed from markup.
type PageHandler struct {
	Ctrl *controller.Controller
}

// Home is the content-page variant: one combined payload, every section
// present gets rendered. A failed fetch still renders the page; the error
// lives inline in the affected region.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	if err := h.Ctrl.LoadHome(c.UserContext()); err != nil {
		applog.Error(c, "home.load", err, nil)
	}
	return h.renderPage(c, "home", nil)
}

// Catalog is the catalog-page variant: a full load cycle, optionally scoped
// to a category from the query.
func (h *PageHandler) Catalog(c *fiber.Ctx) error {
	category := ""
	if raw := c.Query("category"); raw != "" {
		id, ok := validate.CategoryID(raw)
		if !ok {
			applog.Warn(c, "validation.fail", nil, map[string]any{"field": "category", "value": raw})
		} else {
			category = id
		}
	}
	if err := h.Ctrl.LoadCatalog(c.UserContext(), category); err != nil {
		applog.Error(c, "catalog.load", err, nil)
	}
	return h.renderPage(c, "catalog", fiber.Map{"Category": category})
}

// Filter re-renders the catalog grid from the cached snapshot; it never
// refetches. Without a loaded snapshot it falls back to a full load.
func (h *PageHandler) Filter(c *fiber.Ctx) error {
	min, okMin := validate.Price(c.Query("min"))
	max, okMax := validate.Price(c.Query("max"))
	if !okMin || !okMax {
		applog.Warn(c, "validation.fail", nil, map[string]any{"field": "price", "min": c.Query("min"), "max": c.Query("max")})
		return c.Redirect("/catalog", fiber.StatusSeeOther)
	}
	if !h.Ctrl.ApplyFilter(min, max) {
		return c.Redirect("/catalog", fiber.StatusSeeOther)
	}
	data := fiber.Map{}
	f := h.Ctrl.Filter()
	if f.Min != nil {
		data["Min"] = strconv.FormatFloat(*f.Min, 'f', -1, 64)
	}
	if f.Max != nil {
		data["Max"] = strconv.FormatFloat(*f.Max, 'f', -1, 64)
	}
	return h.renderPage(c, "catalog", data)
}

// Scroll feeds an accumulated scroll delta from the page to the upsell
// subscription. The subscription detaches itself after the first trigger,
// so repeated posts cannot produce duplicate prompts.
func (h *PageHandler) Scroll(c *fiber.Ctx) error {
	delta, err := strconv.ParseFloat(c.FormValue("delta"), 64)
	if err != nil || delta < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad delta"})
	}
	fired := h.Ctrl.Scroll(delta)
	return c.JSON(fiber.Map{"fired": fired})
}

func (h *PageHandler) renderPage(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	// the skeleton references these unconditionally
	for _, k := range []string{"Min", "Max", "Category"} {
		if _, ok := data[k]; !ok {
			data[k] = ""
		}
	}
	data["Regions"] = h.Ctrl.Regions()
	data["Settings"] = h.Ctrl.Settings()
	return c.Render(tmpl, data)
}
