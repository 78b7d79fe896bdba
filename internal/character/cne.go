package character

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/clbanning/mxj"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

const (
	cneDoctype = "<!DOCTYPE codename-engine-character>"
	// spritePrefix はCNEのスプライトパスでは省略される。
	spritePrefix = "characters/"
	// defaultColor は color 属性がないときの値。8桁なので黒として解釈される。
	defaultColor = "#ffffffff"
)

var reLeadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func init() {
	// encoding="Shift_JIS" などのXMLも読めるようにする。
	mxj.XmlCharsetReader = charset.NewReaderLabel
}

// EncodeCNE はCNEのXMLを組み立てて整形する。
// 既定値と同じ値の属性は省略する。
func (m *Mapper) EncodeCNE(c *Character, charTag string) string {
	var buf bytes.Buffer
	buf.WriteString(cneDoctype)
	if m.watermark != "" {
		buf.WriteString("<!-- " + strings.ReplaceAll(m.watermark, "--", "- -") + " -->")
	}

	buf.WriteString("<character")
	// charTag は属性の並びとしてそのまま埋め込む。
	if charTag != "" {
		buf.WriteString(" ")
		buf.WriteString(charTag)
	}
	color := RGBToHex(c.HealthbarColor.R, c.HealthbarColor.G, c.HealthbarColor.B)
	m.observer.Field("color", color)
	writeAttr(&buf, "icon", c.HealthIcon)
	writeAttr(&buf, "color", color)
	writeAttr(&buf, "sprite", strings.Replace(c.Image, spritePrefix, "", 1))
	writeAttr(&buf, "flipX", strconv.FormatBool(c.FlipX))
	writeAttr(&buf, "holdTime", formatNumber(c.SingDuration))

	if c.Position.X != 0 {
		writeAttr(&buf, "x", formatNumber(c.Position.X))
	}
	if c.Position.Y != 0 {
		writeAttr(&buf, "y", formatNumber(c.Position.Y))
	}
	if c.CameraOffset.X != 0 {
		writeAttr(&buf, "camX", formatNumber(c.CameraOffset.X))
	}
	if c.CameraOffset.Y != 0 {
		writeAttr(&buf, "camY", formatNumber(c.CameraOffset.Y))
	}
	if c.Scale != DefaultScale {
		writeAttr(&buf, "scale", formatNumber(c.Scale))
	}
	// false 以外(未定義や 0 を含む)なら出力する。読み込み側とは対称ではない。
	if !c.NoAntialiasing.IsLiteralFalse() {
		writeAttr(&buf, "antialiasing", strconv.FormatBool(!c.NoAntialiasing.Truthy()))
	}
	buf.WriteString(">")

	for i, a := range c.Animations {
		m.observer.Animation(i, a.InternalName)
		buf.WriteString("<anim")
		writeAttr(&buf, "name", a.DisplayName)
		writeAttr(&buf, "anim", a.InternalName)
		if a.FPS != DefaultFPS {
			writeAttr(&buf, "fps", formatNumber(a.FPS))
		}
		writeAttr(&buf, "loop", strconv.FormatBool(a.Loop))
		writeAttr(&buf, "x", formatNumber(a.Offset.X))
		writeAttr(&buf, "y", formatNumber(a.Offset.Y))
		if indices := EncodeIndices(a.FrameIndices); indices != "" {
			writeAttr(&buf, "indices", indices)
			m.observer.Field("indices", indices)
		}
		buf.WriteString(" />")
	}
	buf.WriteString("</character>")

	return FormatXML(buf.String(), m.indent)
}

// DecodeCNE はCNEのXMLを読み込む。
// 文書順で最初の <character> 要素を使い、その中の <anim> を文書順に読む。
// 数値として読めない属性は既定値にする。
func (m *Mapper) DecodeCNE(xmlText []byte) (*Character, error) {
	root, err := parseDocument(xmlText)
	if err != nil {
		return nil, err
	}
	el, ok := root.first("character")
	if !ok {
		return nil, errors.WithStack(ErrMissingElement)
	}

	flipX, _ := el.attr("flipX")
	color, _ := el.attr("color")
	if color == "" {
		color = defaultColor
	}
	c := &Character{
		Image:          el.attrString("sprite"),
		HealthIcon:     el.attrString("icon"),
		HealthbarColor: HexToRGB(color),
		FlipX:          flipX == "true",
		SingDuration:   m.floatAttr(el, "holdTime", DefaultSingDuration),
		Position:       Point{X: m.floatAttr(el, "x", 0), Y: m.floatAttr(el, "y", 0)},
		CameraOffset:   Point{X: m.floatAttr(el, "camX", 0), Y: m.floatAttr(el, "camY", 0)},
		Scale:          m.floatAttr(el, "scale", DefaultScale),
	}
	if aa, ok := el.attr("antialiasing"); ok {
		c.NoAntialiasing = NewFlag(strings.ToLower(aa) != "true")
	} else {
		c.NoAntialiasing = NewFlag(false)
	}
	m.observer.Field("color", color)
	m.observer.Field("position", c.Position)
	m.observer.Field("camera_position", c.CameraOffset)
	m.observer.Field("no_antialiasing", c.NoAntialiasing.Truthy())

	anims := el.descendants("anim")
	c.Animations = make([]Animation, 0, len(anims))
	for i, a := range anims {
		loop, _ := a.attr("loop")
		indices, _ := a.attr("indices")
		anim := Animation{
			InternalName: a.attrString("anim"),
			DisplayName:  a.attrString("name"),
			FPS:          m.intAttr(a, "fps", DefaultFPS),
			Loop:         loop == "true",
			Offset:       Point{X: m.floatAttr(a, "x", 0), Y: m.floatAttr(a, "y", 0)},
			FrameIndices: DecodeIndices(indices),
		}
		m.observer.Animation(i, anim.InternalName)
		c.Animations = append(c.Animations, anim)
	}
	return c, nil
}

// floatAttr は属性を parseFloat と同じ規則で読み、読めないか 0 なら def を返す。
func (m *Mapper) floatAttr(el element, name string, def float64) float64 {
	s, ok := el.attr(name)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(reLeadingFloat.FindString(strings.TrimSpace(s)), 64)
	if err != nil {
		m.observer.Warn(fmt.Sprintf("%s=%q を数値として読めないため %s を使います", name, s, formatNumber(def)))
		return def
	}
	if v == 0 {
		return def
	}
	return v
}

// intAttr は属性を parseInt と同じ規則で読み、読めないか 0 なら def を返す。
func (m *Mapper) intAttr(el element, name string, def float64) float64 {
	s, ok := el.attr(name)
	if !ok {
		return def
	}
	v, ok := parseLeadingInt(s)
	if !ok {
		m.observer.Warn(fmt.Sprintf("%s=%q を整数として読めないため %s を使います", name, s, formatNumber(def)))
		return def
	}
	if v == 0 {
		return def
	}
	return float64(v)
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(" ")
	buf.WriteString(name)
	buf.WriteString("=\"")
	buf.WriteString(escapeXMLAttr(value))
	buf.WriteString("\"")
}

func escapeXMLAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
