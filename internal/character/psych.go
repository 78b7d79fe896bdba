package character

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// watermarkKey はPsych側の出力に追加する目印のキー。
const watermarkKey = "__converter__"

// psychCharacter はPsychのキャラクターJSON。フィールドの並びが出力順になる。
type psychCharacter struct {
	Animations      []psychAnimation `json:"animations"`
	NoAntialiasing  bool             `json:"no_antialiasing"`
	Position        [2]float64       `json:"position"`
	CameraPosition  [2]float64       `json:"camera_position"`
	SingDuration    float64          `json:"sing_duration"`
	FlipX           bool             `json:"flip_x"`
	Scale           float64          `json:"scale"`
	Image           string           `json:"image"`
	HealthIcon      string           `json:"healthicon"`
	HealthbarColors [3]int           `json:"healthbar_colors"`
}

type psychAnimation struct {
	Anim    string     `json:"anim"`
	Name    string     `json:"name"`
	FPS     float64    `json:"fps"`
	Loop    bool       `json:"loop"`
	Offsets [2]float64 `json:"offsets"`
	Indices []int      `json:"indices"`
}

// DecodePsych はPsychのJSONを読み込む。
// 値の型が多少違っていても読める範囲で読み、座標など形が決まっている項目だけを検査する。
func (m *Mapper) DecodePsych(data []byte) (*Character, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.Wrap(ErrParse, "JSONのパースに失敗しました")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.Wrap(ErrParse, "JSONの最上位がオブジェクトではありません")
	}

	c := &Character{
		Image:          root.Get("image").String(),
		HealthIcon:     root.Get("healthicon").String(),
		FlipX:          root.Get("flip_x").Bool(),
		SingDuration:   numberOr(root.Get("sing_duration"), DefaultSingDuration),
		Scale:          numberOr(root.Get("scale"), DefaultScale),
		NoAntialiasing: flagFromJSON(root.Get("no_antialiasing")),
	}

	colors := root.Get("healthbar_colors")
	if !colors.IsArray() || len(colors.Array()) < 3 {
		return nil, errors.Wrap(ErrMalformedRecord, "healthbar_colors は3要素の配列である必要があります")
	}
	rgb := colors.Array()
	c.HealthbarColor = RGB{R: channel(rgb[0]), G: channel(rgb[1]), B: channel(rgb[2])}
	m.observer.Field("healthbar_colors", c.HealthbarColor)

	var err error
	if c.Position, err = pairOf(root.Get("position"), "position"); err != nil {
		return nil, err
	}
	m.observer.Field("position", c.Position)
	if c.CameraOffset, err = pairOf(root.Get("camera_position"), "camera_position"); err != nil {
		return nil, err
	}
	m.observer.Field("camera_position", c.CameraOffset)
	m.observer.Field("scale", c.Scale)
	m.observer.Field("no_antialiasing", c.NoAntialiasing.Truthy())

	anims := root.Get("animations")
	if anims.Exists() && !anims.IsArray() {
		return nil, errors.Wrap(ErrMalformedRecord, "animations は配列である必要があります")
	}
	for i, a := range anims.Array() {
		anim := Animation{
			InternalName: a.Get("anim").String(),
			DisplayName:  a.Get("name").String(),
			FPS:          numberOr(a.Get("fps"), DefaultFPS),
			Loop:         a.Get("loop").Bool(),
			FrameIndices: []int{},
		}
		if offsets := a.Get("offsets"); offsets.Exists() {
			if anim.Offset, err = pairOf(offsets, "animations."+anim.InternalName+".offsets"); err != nil {
				return nil, err
			}
		}
		if indices := a.Get("indices"); indices.IsArray() {
			for _, v := range indices.Array() {
				anim.FrameIndices = append(anim.FrameIndices, int(v.Int()))
			}
		}
		m.observer.Animation(i, anim.InternalName)
		c.Animations = append(c.Animations, anim)
	}
	return c, nil
}

// EncodePsych はPsychのJSONを2段階で組み立てる。構造体を書き出した後で目印を末尾に追加し、最後に整形する。
func (m *Mapper) EncodePsych(c *Character) (string, error) {
	out := psychCharacter{
		Animations:      make([]psychAnimation, 0, len(c.Animations)),
		NoAntialiasing:  c.NoAntialiasing.Truthy(),
		Position:        [2]float64{c.Position.X, c.Position.Y},
		CameraPosition:  [2]float64{c.CameraOffset.X, c.CameraOffset.Y},
		SingDuration:    c.SingDuration,
		FlipX:           c.FlipX,
		Scale:           c.Scale,
		Image:           c.Image,
		HealthIcon:      c.HealthIcon,
		HealthbarColors: [3]int{c.HealthbarColor.R, c.HealthbarColor.G, c.HealthbarColor.B},
	}
	for _, a := range c.Animations {
		indices := a.FrameIndices
		if indices == nil {
			indices = []int{}
		}
		out.Animations = append(out.Animations, psychAnimation{
			Anim:    a.InternalName,
			Name:    a.DisplayName,
			FPS:     a.FPS,
			Loop:    a.Loop,
			Offsets: [2]float64{a.Offset.X, a.Offset.Y},
			Indices: indices,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(out); err != nil {
		return "", errors.Wrap(err, "JSONへの変換に失敗しました")
	}
	data := buf.Bytes()
	if m.watermark != "" {
		var err error
		data, err = sjson.SetBytes(data, watermarkKey, m.watermark)
		if err != nil {
			return "", errors.Wrap(err, "目印の追加に失敗しました")
		}
	}
	// Width を 0 にすると配列も1要素ずつ改行される。
	data = pretty.PrettyOptions(data, &pretty.Options{Indent: m.indent})
	return strings.TrimRight(string(data), "\n"), nil
}

// flagFromJSON はJavaScriptの真偽評価に合わせて Flag を作る。
func flagFromJSON(r gjson.Result) Flag {
	switch r.Type {
	case gjson.False:
		return NewFlag(false)
	case gjson.True:
		return NewFlag(true)
	case gjson.Number:
		return Flag{truthy: r.Num != 0 && !math.IsNaN(r.Num)}
	case gjson.String:
		return Flag{truthy: r.Str != ""}
	case gjson.JSON:
		return Flag{truthy: true}
	}
	return Flag{} // null または未定義
}

// numberOr は数値ならその値、そうでなければ def を返す。
func numberOr(r gjson.Result, def float64) float64 {
	if r.Type != gjson.Number {
		return def
	}
	return r.Num
}

func channel(r gjson.Result) int {
	return int(math.Round(r.Float()))
}

// pairOf は [x, y] 形式の数値2要素の配列を読む。
func pairOf(r gjson.Result, field string) (Point, error) {
	values := r.Array()
	if !r.IsArray() || len(values) != 2 {
		return Point{}, errors.Wrapf(ErrMalformedRecord, "%s は数値2要素の配列である必要があります", field)
	}
	for _, v := range values {
		if v.Type != gjson.Number {
			return Point{}, errors.Wrapf(ErrMalformedRecord, "%s に数値以外の値があります: %s", field, v.Raw)
		}
	}
	return Point{X: values[0].Num, Y: values[1].Num}, nil
}
