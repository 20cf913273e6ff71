// Package deeplink builds Telegram ordering links. Operators paste the bot
// link into the admin by hand, so the builder must survive anything from a
// clean URL to free-form text and still come back with a usable link.
package deeplink

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultBotLink is the hardcoded fallback ordering link, used whenever the
// configured base cannot be salvaged.
const DefaultBotLink = "https://t.me/flowersraevka_bot"

const messengerHost = "t.me"

// OrderLink builds a deep link that opens the bot with a product token.
func OrderLink(base string, itemID int) string {
	return build(base, "product_"+strconv.Itoa(itemID))
}

// CustomLink builds a deep link for a generic "custom order" request.
func CustomLink(base string) string {
	return build(base, "custom")
}

// build applies the three-tier fallback: structured rewrite when the base
// parses and lives on the messenger host, raw string-append when it does not
// parse but clearly targets the messenger, hardcoded default otherwise.
func build(base, token string) string {
	raw := strings.TrimSpace(base)
	if raw == "" {
		raw = DefaultBotLink
	}
	norm := raw
	if !strings.Contains(norm, "://") {
		norm = "https://" + norm
	}
	u, err := url.Parse(norm)
	if err == nil && strings.Contains(u.Host, messengerHost) {
		q := u.Query()
		q.Set("start", token)
		u.RawQuery = q.Encode()
		return u.String()
	}
	if err != nil && strings.Contains(raw, messengerHost) {
		sep := "?"
		if strings.Contains(raw, "?") {
			sep = "&"
		}
		return raw + sep + "start=" + token
	}
	return DefaultBotLink + "?start=" + token
}
