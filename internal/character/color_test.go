package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#ffffff"},
		{49, 176, 209, "#31b0d1"},
		{1, 2, 3, "#010203"},
		{-5, 300, 16, "#00ff10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RGBToHex(tt.r, tt.g, tt.b))
	}
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#fff", RGB{255, 255, 255}},
		{"#31b0d1", RGB{49, 176, 209}},
		{"31B0D1", RGB{49, 176, 209}},
		{"  #0a0b0c \n", RGB{10, 11, 12}},
		{"#abc", RGB{0xaa, 0xbb, 0xcc}},
		// 3桁の16進数として読めてしまう
		{"bad", RGB{0xbb, 0xaa, 0xdd}},
		{"xyz", RGB{}},
		{"#ffffffff", RGB{}},
		{"#ff", RGB{}},
		{"", RGB{}},
		{"#gg0000", RGB{}},
		{"#+12345", RGB{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, HexToRGB(tt.in))
		})
	}
}

func TestHexToRGBValue_NonString(t *testing.T) {
	assert.Equal(t, RGB{}, HexToRGBValue(nil))
	assert.Equal(t, RGB{}, HexToRGBValue(0xffffff))
	assert.Equal(t, RGB{255, 0, 0}, HexToRGBValue("#f00"))
}

func TestColorRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 5 {
				assert.Equal(t, RGB{r, g, b}, HexToRGB(RGBToHex(r, g, b)))
			}
		}
	}
}
