package render

import (
	"math"
	"strconv"
	"strings"

	"bloomfront/internal/deeplink"
	"bloomfront/internal/domain"
)

// Engine projects content sections into named regions of a surface. Every
// render replaces the target region's whole content; a nil section or a
// missing region leaves the page untouched.
type Engine struct {
	surface Surface
	media   func(string) string
}

// NewEngine wires an engine to a surface. media resolves possibly-relative
// media references; nil means pass-through.
func NewEngine(surface Surface, media func(string) string) *Engine {
	if media == nil {
		media = func(s string) string { return s }
	}
	return &Engine{surface: surface, media: media}
}

// Settings renders the footer/contacts block.
func (e *Engine) Settings(s *domain.Settings) {
	r, ok := e.surface.Region(RegionFooter)
	if !ok || s == nil {
		return
	}
	var kids []Node
	if s.Phone != "" {
		kids = append(kids, El("a", Text(s.Phone)).
			Attr("class", "footer-phone").
			Attr("href", "tel:"+strings.Map(keepPhoneRune, s.Phone)))
	}
	if s.Address != "" {
		kids = append(kids, El("p", Text(s.Address)).Attr("class", "footer-address"))
	}
	social := El("div").Attr("class", "footer-social")
	for _, l := range []struct{ href, label string }{
		{s.InstagramLink, "Instagram"},
		{s.VKLink, "VK"},
		{s.TelegramChannelLink, "Telegram"},
	} {
		if l.href != "" {
			social.Child(El("a", Text(l.label)).Attr("href", l.href).Attr("target", "_blank").Attr("rel", "noopener"))
		}
	}
	kids = append(kids, social)
	if s.FooterText != "" {
		kids = append(kids, El("p", Text(s.FooterText)).Attr("class", "footer-text"))
	}
	r.Replace(kids...)
}

func keepPhoneRune(r rune) rune {
	if r == '+' || (r >= '0' && r <= '9') {
		return r
	}
	return -1
}

// Hero renders the hero block.
func (e *Engine) Hero(h *domain.Hero) {
	r, ok := e.surface.Region(RegionHero)
	if !ok || h == nil {
		return
	}
	body := El("div").Attr("class", "hero-body")
	if h.Label != "" {
		body.Child(El("span", Text(h.Label)).Attr("class", "hero-label"))
	}
	body.Child(El("h1", Text(h.Title)))
	if h.Subtitle != "" {
		body.Child(El("p", Text(h.Subtitle)).Attr("class", "hero-subtitle"))
	}
	btns := El("div").Attr("class", "hero-buttons")
	if h.ButtonText != "" {
		btns.Child(El("a", Text(h.ButtonText)).Attr("class", "btn").Attr("href", h.ButtonLink))
	}
	if h.SecondaryButtonText != "" {
		btns.Child(El("a", Text(h.SecondaryButtonText)).Attr("class", "btn btn-ghost").Attr("href", h.SecondaryButtonLink))
	}
	body.Child(btns)
	if h.Benefit1 != "" || h.Benefit2 != "" || h.Benefit3 != "" {
		ul := El("ul").Attr("class", "hero-benefits")
		for _, b := range []string{h.Benefit1, h.Benefit2, h.Benefit3} {
			if b != "" {
				ul.Child(El("li", Text(b)))
			}
		}
		body.Child(ul)
	}
	kids := []Node{body}
	if h.Image != "" {
		side := El("div").Attr("class", "hero-photo").
			Child(El("img").Attr("src", e.media(h.Image)).Attr("alt", h.Title))
		if h.BadgeNumber != "" {
			side.Child(El("div").Attr("class", "hero-badge").
				Child(El("strong", Text(h.BadgeNumber)), Text(h.BadgeText)))
		}
		kids = append(kids, side)
	}
	r.Replace(kids...)
}

// Promo renders the promotional banner. With no active promotion the region
// is left alone so the skeleton's static default keeps showing.
func (e *Engine) Promo(p *domain.Promo) {
	r, ok := e.surface.Region(RegionPromo)
	if !ok || p == nil || !p.IsActive {
		return
	}
	card := El("div").Attr("class", "promo-card")
	if p.Icon != "" {
		card.Child(El("span", Text(p.Icon)).Attr("class", "promo-icon"))
	}
	card.Child(El("h2", Text(p.Title)))
	if p.Text != "" {
		card.Child(El("p", Text(p.Text)))
	}
	if p.ButtonText != "" {
		card.Child(El("a", Text(p.ButtonText)).Attr("class", "btn").Attr("href", p.ButtonLink))
	}
	r.Replace(card)
}

// Categories renders the category grid.
func (e *Engine) Categories(cs []domain.Category) {
	r, ok := e.surface.Region(RegionCategories)
	if !ok || len(cs) == 0 {
		return
	}
	kids := make([]Node, 0, len(cs))
	for _, c := range cs {
		card := El("a").
			Attr("class", "card category-card").
			Attr("href", "/catalog?category="+strconv.Itoa(c.ID))
		if c.Image != "" {
			card.Child(El("img").Attr("src", e.media(c.Image)).Attr("alt", c.Name))
		}
		card.Child(El("h3", Text(c.Name)))
		if c.Description != "" {
			card.Child(El("p", Text(c.Description)))
		}
		kids = append(kids, card)
	}
	r.Replace(kids...)
}

// Products renders a product grid into the given region. The region is
// always fully replaced, so a narrower filter result never leaves stale
// cards behind. botLink parameterizes each card's ordering deep link.
func (e *Engine) Products(regionID string, ps []domain.Product, botLink string) {
	r, ok := e.surface.Region(regionID)
	if !ok {
		return
	}
	kids := make([]Node, 0, len(ps))
	for _, p := range ps {
		kids = append(kids, e.productCard(p, botLink))
	}
	r.Replace(kids...)
}

func (e *Engine) productCard(p domain.Product, botLink string) Node {
	card := El("article").Attr("class", "card product-card")
	if p.Image != "" {
		card.Child(El("div").Attr("class", "product-photo").
			Child(El("img").Attr("src", e.media(p.Image)).Attr("alt", p.Name)))
	}
	card.Child(El("h3", Text(p.Name)))
	desc := p.ShortDescription
	if desc == "" {
		desc = p.Description
	}
	if desc != "" {
		card.Child(El("p", Text(desc)).Attr("class", "product-desc"))
	}
	meta := El("div").Attr("class", "product-meta")
	if !p.HidePrice && strings.TrimSpace(p.Price) != "" {
		meta.Child(El("span", Text(p.Price+" ₽")).Attr("class", "product-price"))
	} else {
		meta.Child(El("span", Text("Цена по запросу")).Attr("class", "product-price product-price-hidden"))
	}
	meta.Child(El("a", Text("Заказать")).
		Attr("class", "btn btn-small").
		Attr("href", deeplink.OrderLink(botLink, p.ID)).
		Attr("target", "_blank").
		Attr("rel", "noopener"))
	card.Child(meta)
	return card
}

// Delivery renders the delivery info block.
func (e *Engine) Delivery(d *domain.Delivery) {
	r, ok := e.surface.Region(RegionDelivery)
	if !ok || d == nil {
		return
	}
	var kids []Node
	kids = append(kids, El("h2", Text(d.Title)))
	if d.Subtitle != "" {
		kids = append(kids, El("p", Text(d.Subtitle)).Attr("class", "delivery-subtitle"))
	}
	if d.Benefit1 != "" || d.Benefit2 != "" || d.Benefit3 != "" {
		ul := El("ul").Attr("class", "delivery-benefits")
		for _, b := range []string{d.Benefit1, d.Benefit2, d.Benefit3} {
			if b != "" {
				ul.Child(El("li", Text(b)))
			}
		}
		kids = append(kids, ul)
	}
	if d.Step1 != "" || d.Step2 != "" || d.Step3 != "" {
		ol := El("ol").Attr("class", "delivery-steps")
		for _, s := range []string{d.Step1, d.Step2, d.Step3} {
			if s != "" {
				ol.Child(El("li", Text(s)))
			}
		}
		kids = append(kids, ol)
	}
	r.Replace(kids...)
}

// Reviews renders the review carousel. With three or more records the base
// sequence is followed by one full duplicate so the scroll loops seamlessly.
func (e *Engine) Reviews(rs []domain.Review) {
	r, ok := e.surface.Region(RegionReviews)
	if !ok || len(rs) == 0 {
		return
	}
	cards := rs
	if len(rs) >= 3 {
		cards = make([]domain.Review, 0, len(rs)*2)
		cards = append(cards, rs...)
		cards = append(cards, rs...)
	}
	kids := make([]Node, 0, len(cards))
	for _, rv := range cards {
		card := El("div").Attr("class", "card review-card")
		head := El("div").Attr("class", "review-head")
		if rv.AvatarURL != "" {
			head.Child(El("img").Attr("src", e.media(rv.AvatarURL)).Attr("alt", rv.Name).Attr("class", "review-avatar"))
		}
		head.Child(El("strong", Text(rv.Name)))
		head.Child(El("span", Text(RatingGlyphs(rv.Rating))).Attr("class", "review-stars"))
		card.Child(head)
		card.Child(El("p", Text(rv.Text)).Attr("class", "review-text"))
		if rv.ProductName != "" {
			card.Child(El("span", Text(rv.ProductName)).Attr("class", "review-product"))
		}
		kids = append(kids, card)
	}
	r.Replace(kids...)
}

// Upsell renders the scroll-triggered custom-order prompt.
func (e *Engine) Upsell(link string) {
	r, ok := e.surface.Region(RegionUpsell)
	if !ok {
		return
	}
	r.Replace(El("div").Attr("class", "upsell-banner").
		Child(
			El("p", Text("Не нашли подходящий букет? Соберём под ваш повод и бюджет.")),
			El("a", Text("Собрать свой букет")).
				Attr("class", "btn").
				Attr("href", link).
				Attr("target", "_blank").
				Attr("rel", "noopener"),
		))
}

// Message renders a single inline notice into a region, replacing whatever
// partial content was there.
func (e *Engine) Message(regionID, text string) {
	r, ok := e.surface.Region(regionID)
	if !ok {
		return
	}
	r.Replace(El("p", Text(text)).Attr("class", "notice"))
}

// RatingGlyphs clamps a rating to [0,5] and renders it as five glyphs,
// filled for the rounded rating and open for the remainder.
func RatingGlyphs(rating float64) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	n := int(math.Round(rating))
	return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
}
