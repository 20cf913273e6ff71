// Package controller owns one storefront page session: the catalog snapshot,
// the settings cache and the rendered surface. The rendered view is always a
// pure function of (snapshot, filter, settings); nothing else mutates it.
package controller

import (
	"context"
	"html/template"
	"sync"

	"golang.org/x/sync/errgroup"

	"bloomfront/internal/catalog"
	"bloomfront/internal/content"
	"bloomfront/internal/deeplink"
	"bloomfront/internal/domain"
	applog "bloomfront/internal/log"
	"bloomfront/internal/render"
)

// CatalogErrText replaces any partial catalog content when the primary fetch
// fails. A fresh page load is the only retry.
const CatalogErrText = "Не удалось загрузить каталог. Обновите страницу и попробуйте ещё раз."

// upsellThreshold is the accumulated scroll distance that triggers the
// custom-order prompt.
const upsellThreshold = 600.0

// Controller drives the fetch/filter/render pipeline. The browser original
// runs on one thread; here a mutex serializes the same guarantees across
// concurrent requests.
type Controller struct {
	mu      sync.Mutex
	client  *content.Client
	surface *render.PageSurface
	engine  *render.Engine

	settings domain.Settings
	snapshot []domain.Product
	filter   domain.PriceFilter
	upsell   *Subscription
	loaded   bool
}

// New builds a session seeded with the hardcoded bot-link fallback, so a
// valid ordering base exists before the first successful fetch.
func New(client *content.Client) *Controller {
	surface := render.NewPageSurface()
	return &Controller{
		client:   client,
		surface:  surface,
		engine:   render.NewEngine(surface, client.ResolveMedia),
		settings: domain.Settings{TelegramBotLink: deeplink.DefaultBotLink},
	}
}

// LoadCatalog runs one catalog-page load cycle: the settings fetch and the
// paginated catalog fetch start together, neither waits on the other, and
// each applies its effect as soon as it completes. A settings failure is
// swallowed; a catalog failure replaces the grid with the inline error and
// is returned.
func (c *Controller) LoadCatalog(ctx context.Context, categoryID string) error {
	cycle := applog.CycleID()
	var g errgroup.Group

	g.Go(func() error {
		sc, err := c.client.SiteContent(ctx)
		if err != nil {
			applog.Warn(nil, "settings.fetch", err, map[string]any{"cycle": cycle})
			return nil
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		c.mergeSettings(sc.Settings)
		c.engine.Settings(&c.settings)
		return nil
	})

	g.Go(func() error {
		products, err := c.client.Products(ctx, categoryID)
		c.mu.Lock()
		defer c.mu.Unlock()
		if err != nil {
			c.loaded = false
			c.snapshot = nil
			c.upsell.Cancel()
			c.engine.Message(render.RegionFullCatalog, CatalogErrText)
			applog.Error(nil, "catalog.load", err, map[string]any{"cycle": cycle, "category": categoryID})
			return err
		}
		c.snapshot = products
		c.filter = domain.PriceFilter{}
		c.loaded = true
		c.engine.Products(render.RegionFullCatalog, products, c.settings.TelegramBotLink)
		c.armUpsell()
		applog.Info(nil, "catalog.load", map[string]any{"cycle": cycle, "category": categoryID, "items": len(products)})
		return nil
	})

	return g.Wait()
}

// LoadHome runs one content-page load cycle: a single combined payload,
// every section present gets rendered.
func (c *Controller) LoadHome(ctx context.Context) error {
	cycle := applog.CycleID()
	sc, err := c.client.SiteContent(ctx)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.engine.Message(render.RegionCatalog, CatalogErrText)
		applog.Error(nil, "content.load", err, map[string]any{"cycle": cycle})
		return err
	}
	c.mergeSettings(sc.Settings)
	c.engine.Settings(&c.settings)
	c.engine.Hero(sc.Hero)
	c.engine.Promo(sc.Promo)
	c.engine.Categories(sc.Categories)
	if len(sc.Products) > 0 {
		c.engine.Products(render.RegionCatalog, sc.Products, c.settings.TelegramBotLink)
	}
	c.engine.Delivery(sc.Delivery)
	c.engine.Reviews(sc.Reviews)
	applog.Info(nil, "content.load", map[string]any{"cycle": cycle})
	return nil
}

// ApplyFilter re-derives the visible subset from the cached snapshot and
// re-renders the grid. No refetch: the view reflects only the last completed
// fetch. Reports false when no snapshot is loaded yet.
func (c *Controller) ApplyFilter(min, max *float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.loaded {
		return false
	}
	c.filter = domain.PriceFilter{Min: min, Max: max}
	visible := catalog.Apply(c.snapshot, c.filter)
	c.engine.Products(render.RegionFullCatalog, visible, c.settings.TelegramBotLink)
	return true
}

// Scroll feeds a scroll delta to the armed upsell subscription and reports
// whether the prompt fired.
func (c *Controller) Scroll(delta float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upsell.Offer(delta)
}

// armUpsell replaces any previous subscription; each successful load cycle
// gets one fresh shot at the prompt. Callers hold c.mu.
func (c *Controller) armUpsell() {
	c.upsell.Cancel()
	c.upsell = newSubscription(upsellThreshold, func() {
		c.engine.Upsell(deeplink.CustomLink(c.settings.TelegramBotLink))
	})
}

// mergeSettings shallow-merges non-empty incoming fields over the cache.
// Absent fields never erase previously known values. Callers hold c.mu.
func (c *Controller) mergeSettings(in *domain.Settings) {
	if in == nil {
		return
	}
	if in.SiteName != "" {
		c.settings.SiteName = in.SiteName
	}
	if in.Phone != "" {
		c.settings.Phone = in.Phone
	}
	if in.Address != "" {
		c.settings.Address = in.Address
	}
	if in.TelegramBotLink != "" {
		c.settings.TelegramBotLink = in.TelegramBotLink
	}
	if in.InstagramLink != "" {
		c.settings.InstagramLink = in.InstagramLink
	}
	if in.VKLink != "" {
		c.settings.VKLink = in.VKLink
	}
	if in.TelegramChannelLink != "" {
		c.settings.TelegramChannelLink = in.TelegramChannelLink
	}
	if in.FooterText != "" {
		c.settings.FooterText = in.FooterText
	}
}

// Settings returns a copy of the current settings cache.
func (c *Controller) Settings() domain.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

// Filter returns the current filter state.
func (c *Controller) Filter() domain.PriceFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Loaded reports whether a catalog snapshot is cached.
func (c *Controller) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Regions snapshots the rendered surface for the page template.
func (c *Controller) Regions() map[string]template.HTML {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.surface.Snapshot()
}
