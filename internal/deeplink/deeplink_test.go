package deeplink

import (
	"net/url"
	"strings"
	"testing"
)

func TestOrderLinkCleanBase(t *testing.T) {
	got := OrderLink("https://t.me/bot", 42)
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("result does not parse: %v", err)
	}
	if u.Host != "t.me" {
		t.Fatalf("want host t.me, got %q", u.Host)
	}
	if u.Query().Get("start") != "product_42" {
		t.Fatalf("want start=product_42, got %q", u.RawQuery)
	}
}

func TestOrderLinkSchemeless(t *testing.T) {
	got := OrderLink("t.me/bot", 5)
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("result does not parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "t.me" {
		t.Fatalf("want https://t.me, got %q", got)
	}
	if u.Query().Get("start") != "product_5" {
		t.Fatalf("want start=product_5, got %q", got)
	}
}

func TestOrderLinkOverwritesExistingStart(t *testing.T) {
	got := OrderLink("https://t.me/bot?start=old", 9)
	u, _ := url.Parse(got)
	vals := u.Query()["start"]
	if len(vals) != 1 || vals[0] != "product_9" {
		t.Fatalf("want single start=product_9, got %v", vals)
	}
}

func TestOrderLinkStringAppendTier(t *testing.T) {
	got := OrderLink("not a url but has t.me/something", 7)
	if got != "not a url but has t.me/something?start=product_7" {
		t.Fatalf("want raw append with ?, got %q", got)
	}

	got = OrderLink("not a url t.me/bot?start=old", 7)
	if !strings.HasSuffix(got, "&start=product_7") {
		t.Fatalf("want raw append with &, got %q", got)
	}
}

func TestOrderLinkWrongHostFallsBackToDefault(t *testing.T) {
	got := OrderLink("https://example.com", 7)
	if got != DefaultBotLink+"?start=product_7" {
		t.Fatalf("want hardcoded default, got %q", got)
	}
}

func TestCustomLink(t *testing.T) {
	got := CustomLink("https://t.me/bot")
	u, _ := url.Parse(got)
	if u.Query().Get("start") != "custom" {
		t.Fatalf("want start=custom, got %q", got)
	}

	got = CustomLink("")
	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("empty base result does not parse: %v", err)
	}
	if u.Host != "t.me" || u.Query().Get("start") != "custom" {
		t.Fatalf("empty base should use default link, got %q", got)
	}
}

// Whatever an operator manages to paste in, the result carries the token.
func TestMalformedBasesAlwaysCarryToken(t *testing.T) {
	bases := []string{
		"",
		"   ",
		"https://example.com",
		"example.com/bot",
		"not a url at all",
		"not a url but has t.me/x",
		"https://t.me/bot?a=1&b=2",
		"ftp://t.me/bot",
		"t.me",
	}
	for _, base := range bases {
		got := OrderLink(base, 3)
		if !strings.Contains(got, "start=product_3") {
			t.Fatalf("base %q: token missing in %q", base, got)
		}
	}
}
