package character

import (
	"regexp"
	"strconv"
	"strings"
)

// 1トークンから展開するフレーム数の上限。これを超える範囲は不正なトークンとして読み飛ばす。
const maxRangeSpan = 1 << 16

var reLeadingInt = regexp.MustCompile(`^[+-]?\d+`)

// EncodeIndices はフレーム番号列を "0..2,5" 形式に圧縮する。
// 3つ以上連続する区間だけを "start..end" にまとめる。
func EncodeIndices(indices []int) string {
	parts := make([]string, 0, len(indices))
	for i := 0; i < len(indices); i++ {
		start := indices[i]
		end := start
		for i+1 < len(indices) && indices[i+1] == indices[i]+1 {
			i++
			end = indices[i]
		}
		if end-start >= 2 {
			parts = append(parts, strconv.Itoa(start)+".."+strconv.Itoa(end))
			continue
		}
		for j := start; j <= end; j++ {
			parts = append(parts, strconv.Itoa(j))
		}
	}
	return strings.Join(parts, ",")
}

// DecodeIndices は EncodeIndices の逆変換。
// 数値として読めないトークンは無視し、end < start の範囲は何も生成しない。
func DecodeIndices(s string) []int {
	indices := []int{}
	if strings.TrimSpace(s) == "" {
		return indices
	}
	for _, part := range strings.Split(s, ",") {
		token := strings.TrimSpace(part)
		if strings.Contains(token, "..") {
			bounds := strings.SplitN(token, "..", 3)
			start, ok1 := parseLeadingInt(bounds[0])
			end, ok2 := parseLeadingInt(bounds[1])
			if !ok1 || !ok2 || end < start {
				continue
			}
			// 差は int では溢れることがあるので符号なしで比べる。
			span := uint64(end) - uint64(start)
			if span >= maxRangeSpan {
				continue
			}
			for n := uint64(0); n <= span; n++ {
				indices = append(indices, start+int(n))
			}
			continue
		}
		if v, ok := parseLeadingInt(token); ok {
			indices = append(indices, v)
		}
	}
	return indices
}

// parseLeadingInt は先頭の整数部分だけを読む("12abc" は 12)。
func parseLeadingInt(s string) (int, bool) {
	m := reLeadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return v, true
}
