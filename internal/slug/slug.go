// Package slug builds Skinport item page links from item titles.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ItemBaseURL is the prefix of every item page.
const ItemBaseURL = "https://skinport.com/item/"

var (
	separators = strings.NewReplacer("★", "", "™", "", "|", " ", "(", " ", ")", " ")
	disallowed = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// ItemSlug converts an item title into its URL slug.
//
//	"★ Butterfly Knife | Marble Fade (Factory New)" -> "butterfly-knife-marble-fade-factory-new"
//	"StatTrak™ AK-47 | Redline (Field-Tested)"      -> "stattrak-ak-47-redline-field-tested"
func ItemSlug(title string) string {
	// Star and trademark go before NFKD, which would expand ™ to "TM".
	s := separators.Replace(title)
	s = toASCII(norm.NFKD.String(s))
	s = disallowed.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.ToLower(s)
}

// ItemURL returns the item page for title, with saleID appended when set.
func ItemURL(title, saleID string) string {
	return ItemBaseURL + ItemSlug(title) + "/" + saleID
}

func toASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}
