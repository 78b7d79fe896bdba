package character

import (
	"bytes"
	"cmp"
	"encoding/xml"
	"io"
	"regexp"
	"slices"
	"strings"

	"github.com/clbanning/mxj"
	"github.com/pkg/errors"
	"golang.org/x/net/html/charset"
)

var reXMLEncoding = regexp.MustCompile(`encoding\s*=\s*["']([^"']+)["']`)

// element は mxj.NewMapXmlSeq で読んだ要素1つ分。
// 属性は "#attr" に、子要素の出現順は "#seq" に入っている。
type element struct {
	name string
	body map[string]any
}

// parseDocument はXML文書を読み、ルート要素を返す。
// ルート要素の前後には空白とコメント、処理命令(前だけはDOCTYPEも)しか置けない。
func parseDocument(data []byte) (element, error) {
	var r io.Reader = bytes.NewReader(data)
	for {
		doc, err := mxj.NewMapXmlSeqReader(r)
		switch {
		case err == nil:
			if err := checkTrailing(r); err != nil {
				return element{}, err
			}
			for name, v := range doc {
				return element{name: name, body: asElement(v)}, nil
			}
			return element{}, errors.Wrap(ErrParse, "ルート要素がありません")
		case errors.Is(err, mxj.NoRoot):
			// ルート要素より前のDOCTYPEやコメント。XML宣言の encoding は以降の読み込みに引き継ぐ。
			if r, err = withDeclaredCharset(r, doc); err != nil {
				return element{}, errors.Wrapf(ErrParse, "文字コードを扱えません: %v", err)
			}
		case errors.Is(err, io.EOF):
			return element{}, errors.Wrap(ErrParse, "要素が閉じられないまま入力が終わりました")
		default:
			return element{}, errors.Wrapf(ErrParse, "XMLのパースに失敗しました: %v", err)
		}
	}
}

// withDeclaredCharset は読み飛ばしたのがXML宣言なら、その encoding で r を読み直すようにする。
// mxj は呼び出しごとにデコーダを作り直すため、宣言を見たデコーダの文字コード切り替えは次に残らない。
func withDeclaredCharset(r io.Reader, doc mxj.Map) (io.Reader, error) {
	pi, ok := doc["#procinst"].(map[string]any)
	if !ok || pi["#target"] != "xml" {
		return r, nil
	}
	inst, _ := pi["#inst"].(string)
	m := reXMLEncoding.FindStringSubmatch(inst)
	if m == nil || strings.EqualFold(m[1], "utf-8") {
		return r, nil
	}
	return charset.NewReaderLabel(m[1], r)
}

// checkTrailing はルート要素の後ろに別の要素や文字が続いていないことを確かめる。
func checkTrailing(r io.Reader) error {
	d := xml.NewDecoder(r)
	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.Wrapf(ErrParse, "ルート要素の後ろを読めません: %v", err)
		}
		switch t := tok.(type) {
		case xml.Comment, xml.ProcInst:
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.Wrapf(ErrParse, "ルート要素の後ろに文字があります: %q", bytes.TrimSpace(t))
			}
		default:
			return errors.Wrap(ErrParse, "ルート要素の後ろに別の要素があります")
		}
	}
}

// asElement はmxjの値を要素の中身として扱う。ルートの空要素は空文字列になっている。
func asElement(v any) map[string]any {
	if body, ok := v.(map[string]any); ok {
		return body
	}
	return map[string]any{}
}

func (e element) seq() int {
	n, _ := e.body["#seq"].(int)
	return n
}

// children は子要素を文書順に返す。
func (e element) children() []element {
	var out []element
	for k, v := range e.body {
		if strings.HasPrefix(k, "#") {
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			out = append(out, element{name: k, body: t})
		case []any:
			for _, item := range t {
				if body, ok := item.(map[string]any); ok {
					out = append(out, element{name: k, body: body})
				}
			}
		}
	}
	slices.SortFunc(out, func(a, b element) int { return cmp.Compare(a.seq(), b.seq()) })
	return out
}

// descendants は子孫から name の要素を文書順(深さ優先の行きがけ順)に集める。
func (e element) descendants(name string) []element {
	var out []element
	for _, c := range e.children() {
		if c.name == name {
			out = append(out, c)
		}
		out = append(out, c.descendants(name)...)
	}
	return out
}

// first は自身を含めて文書順で最初の name 要素を返す。
func (e element) first(name string) (element, bool) {
	if e.name == name {
		return e, true
	}
	for _, c := range e.children() {
		if found, ok := c.first(name); ok {
			return found, true
		}
	}
	return element{}, false
}

func (e element) attr(name string) (string, bool) {
	attrs, _ := e.body["#attr"].(map[string]any)
	a, ok := attrs[name].(map[string]any)
	if !ok {
		return "", false
	}
	s, ok := a["#text"].(string)
	return s, ok
}

func (e element) attrString(name string) string {
	s, _ := e.attr(name)
	return s
}
