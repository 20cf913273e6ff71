package domain

// PageMode selects which page variant the controller drives.
type PageMode int

const (
	ModeContentHome PageMode = iota
	ModeCatalog
)

// Settings carries the site-wide fields served under the `settings` key of
// /site-content/. Fields are merged additively into the controller's cache:
// an empty field in a later response never erases a previously known value.
type Settings struct {
	SiteName            string `json:"site_name"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	TelegramBotLink     string `json:"telegram_bot_link"`
	InstagramLink       string `json:"instagram_link"`
	VKLink              string `json:"vk_link"`
	TelegramChannelLink string `json:"telegram_channel_link"`
	FooterText          string `json:"footer_text"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Order       int    `json:"order"`
}

// Product is one immutable row of the catalog snapshot. Price arrives as a
// decimal string (the upstream serializes decimals that way) and may be
// empty; HidePrice suppresses it entirely.
type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Price            string    `json:"price"`
	HidePrice        bool      `json:"hide_price"`
	Image            string    `json:"image"`
	Category         *Category `json:"category"`
	IsActive         bool      `json:"is_active"`
	IsPopular        bool      `json:"is_popular"`
	Order            int       `json:"order"`
	AverageRating    *float64  `json:"average_rating"`
}

type Hero struct {
	Label               string `json:"label"`
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	ButtonText          string `json:"button_text"`
	ButtonLink          string `json:"button_link"`
	SecondaryButtonText string `json:"secondary_button_text"`
	SecondaryButtonLink string `json:"secondary_button_link"`
	Image               string `json:"image"`
	BadgeNumber         string `json:"badge_number"`
	BadgeText           string `json:"badge_text"`
	Benefit1            string `json:"benefit_1"`
	Benefit2            string `json:"benefit_2"`
	Benefit3            string `json:"benefit_3"`
}

type Promo struct {
	Icon       string `json:"icon"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	ButtonText string `json:"button_text"`
	ButtonLink string `json:"button_link"`
	IsActive   bool   `json:"is_active"`
}

type Delivery struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Benefit1 string `json:"benefit_1"`
	Benefit2 string `json:"benefit_2"`
	Benefit3 string `json:"benefit_3"`
	Step1    string `json:"step_1"`
	Step2    string `json:"step_2"`
	Step3    string `json:"step_3"`
}

type Review struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Text        string  `json:"text"`
	Rating      float64 `json:"rating"`
	ProductName string  `json:"product_name"`
	AvatarURL   string  `json:"avatar_url"`
}

// SiteContent is the combined payload of /site-content/. Every key is
// optional; a nil section means "skip that render step", not an error.
type SiteContent struct {
	Settings   *Settings  `json:"settings"`
	Hero       *Hero      `json:"hero"`
	Promo      *Promo     `json:"promo"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	Delivery   *Delivery  `json:"delivery"`
	Reviews    []Review   `json:"reviews"`
}

// PriceFilter holds the user's inclusive price bounds. Either bound may be
// nil independently; both nil means "no constraint".
type PriceFilter struct {
	Min *float64
	Max *float64
}

// Active reports whether any bound is set.
func (f PriceFilter) Active() bool { return f.Min != nil || f.Max != nil }
