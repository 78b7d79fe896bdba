package character

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBToHex は各成分を 0〜255 に丸めて "#rrggbb" を返す。
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// HexToRGB は "#rgb" または "#rrggbb" を解釈する。
// 解釈できない場合はエラーにせず黒を返す。
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		var sb strings.Builder
		for _, c := range hex {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		hex = sb.String()
	}
	if len(hex) != 6 {
		return RGB{}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// HexToRGBValue は文字列以外の値を黒として扱う HexToRGB。
func HexToRGBValue(v any) RGB {
	s, ok := v.(string)
	if !ok {
		return RGB{}
	}
	return HexToRGB(s)
}

func clampChannel(c int) int {
	return max(0, min(255, c))
}
