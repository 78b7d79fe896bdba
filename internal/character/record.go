package character

import (
	"math"
	"strconv"
)

// RGB は 0〜255 の色成分。
type RGB struct {
	R, G, B int
}

// Point は x, y の数値の組。
type Point struct {
	X, Y float64
}

// Flag はJSON側の真偽値を元の値の性質ごと保持する。
// ゼロ値はキーが存在しない状態(undefined)を表す。
type Flag struct {
	literalFalse bool
	truthy       bool
}

// NewFlag は真偽値から Flag を作る。
func NewFlag(b bool) Flag {
	return Flag{literalFalse: !b, truthy: b}
}

// IsLiteralFalse は元の値がJSONの false そのものであるかを返す。
// 0 や null は false ではない。
func (f Flag) IsLiteralFalse() bool { return f.literalFalse }

// Truthy はJavaScriptの真偽評価での値を返す。
func (f Flag) Truthy() bool { return f.truthy }

// Character は両フォーマット共通のキャラクター定義。
type Character struct {
	Image          string
	HealthIcon     string
	HealthbarColor RGB
	FlipX          bool
	SingDuration   float64
	Position       Point
	CameraOffset   Point
	Scale          float64
	NoAntialiasing Flag
	Animations     []Animation
}

// Animation は1つのアニメーション定義。
type Animation struct {
	// InternalName はゲーム側が参照する名前(Psych: anim / CNE: anim)。
	InternalName string
	// DisplayName はスプライトシート上のアニメーション名(Psych: name / CNE: name)。
	DisplayName  string
	FPS          float64
	Loop         bool
	Offset       Point
	FrameIndices []int
}

// 既定値。
const (
	DefaultFPS          = 24
	DefaultScale        = 1
	DefaultSingDuration = 4
)

// formatNumber はJavaScriptの文字列化と同じ形で数値を書き出す。
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0" // -0 も "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
