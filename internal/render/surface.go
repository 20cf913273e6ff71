package render

import "html/template"

// Region ids match the named slots of the page skeleton. The catalog grid
// holds the featured products on the content page; the full catalog grid is
// the catalog page's own.
const (
	RegionHero        = "hero"
	RegionPromo       = "promo"
	RegionCategories  = "categories"
	RegionCatalog     = "catalog"
	RegionFullCatalog = "full-catalog"
	RegionFooter      = "footer"
	RegionDelivery    = "delivery"
	RegionReviews     = "reviews"
	RegionUpsell      = "upsell"
)

var defaultRegions = []string{
	RegionHero, RegionPromo, RegionCategories, RegionCatalog,
	RegionFullCatalog, RegionFooter, RegionDelivery, RegionReviews,
	RegionUpsell,
}

// Surface is the capability a renderer needs from the page: locate a named
// region. A missing region makes the render step a silent no-op.
type Surface interface {
	Region(id string) (*Region, bool)
}

// Region is one writable slot of the skeleton.
type Region struct {
	html string
}

// Replace swaps the region's entire content for the given nodes. Prior
// markup never survives, which keeps re-renders idempotent.
func (r *Region) Replace(nodes ...Node) {
	r.html = Markup(nodes...)
}

func (r *Region) HTML() string { return r.html }
func (r *Region) Empty() bool  { return r.html == "" }

// PageSurface is the in-memory skeleton the renderers write into.
type PageSurface struct {
	regions map[string]*Region
}

// NewPageSurface builds a surface with the given region ids, defaulting to
// the full storefront set.
func NewPageSurface(ids ...string) *PageSurface {
	if len(ids) == 0 {
		ids = defaultRegions
	}
	m := make(map[string]*Region, len(ids))
	for _, id := range ids {
		m[id] = &Region{}
	}
	return &PageSurface{regions: m}
}

func (s *PageSurface) Region(id string) (*Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// Snapshot returns each region's current markup keyed by id, ready for the
// page template. Region content is built from escaped nodes only, which is
// what justifies the template.HTML cast.
func (s *PageSurface) Snapshot() map[string]template.HTML {
	out := make(map[string]template.HTML, len(s.regions))
	for id, r := range s.regions {
		out[id] = template.HTML(r.html)
	}
	return out
}
