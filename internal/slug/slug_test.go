package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"★ Butterfly Knife | Marble Fade (Factory New)", "butterfly-knife-marble-fade-factory-new"},
		{"StatTrak™ AK-47 | Redline (Field-Tested)", "stattrak-ak-47-redline-field-tested"},
		{"Sticker | Natus Vincere (Holo) | Katowice 2014", "sticker-natus-vincere-holo-katowice-2014"},
		{"Pokémon Card", "pokemon-card"},
		{"  AWP  |  Asiimov  ", "awp-asiimov"},
		{"Souvenir M4A1-S | Knight's Edge", "souvenir-m4a1-s-knights-edge"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ItemSlug(tt.title), "ItemSlug(%q)", tt.title)
	}
}

func TestItemURL(t *testing.T) {
	assert.Equal(t,
		"https://skinport.com/item/stattrak-ak-47-redline-field-tested/69678360",
		ItemURL("StatTrak™ AK-47 | Redline (Field-Tested)", "69678360"))
	assert.Equal(t,
		"https://skinport.com/item/awp-asiimov/",
		ItemURL("AWP | Asiimov", ""))
}
