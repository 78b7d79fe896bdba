package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/quick"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/xcd0/psych2cne/internal/character"
)

// 色付け出力の設定。
const (
	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

// 入力を読み込む。BOMを取り除き、UTF-16ならUTF-8に変換する。
func readInput(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, errors.Errorf("入力の読み込みに失敗しました: %v", err)
	}
	return data, nil
}

// 変換方向を決める。フラグ、拡張子、内容の先頭文字の順に判定する。
func detectDirection(path string, data []byte, toXML, toJSON bool) (character.Direction, error) {
	switch {
	case toXML:
		return character.DirectionPsychToCNE, nil
	case toJSON:
		return character.DirectionCNEToPsych, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return character.DirectionPsychToCNE, nil
	case ".xml":
		return character.DirectionCNEToPsych, nil
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '{':
			return character.DirectionPsychToCNE, nil
		case '<':
			return character.DirectionCNEToPsych, nil
		}
	}
	return 0, errors.New("変換方向を判定できません。--to-xml か --to-json を指定してください")
}

// 変換方向と入力ファイルの拡張子が食い違っていないか確認する。
func checkExtension(path string, d character.Direction) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case d == character.DirectionPsychToCNE && ext == ".xml":
		return errors.Errorf("拡張子が不正です。.json ファイルを指定してください: %s", path)
	case d == character.DirectionCNEToPsych && ext == ".json":
		return errors.Errorf("拡張子が不正です。.xml ファイルを指定してください: %s", path)
	}
	return nil
}

// 入力ファイルと同じディレクトリの converted_<名前>.<拡張子> を返す。
func outputPathFor(input string, d character.Direction) string {
	return filepath.Join(filepath.Dir(input), "converted_"+GetFileNameWithoutExt(input)+"."+extensionFor(d))
}

func extensionFor(d character.Direction) string {
	if d == character.DirectionPsychToCNE {
		return "xml"
	}
	return "json"
}

// --char-tag、--player、設定ファイルの順に <character> タグの属性を決める。
func charTagFor(a Args, fallback string) string {
	switch {
	case a.CharTag != "":
		return a.CharTag
	case a.Player:
		return `isPlayer="true"`
	}
	return fallback
}

func convert(m *character.Mapper, data []byte, d character.Direction, charTag string) (string, error) {
	switch d {
	case character.DirectionPsychToCNE:
		return m.PsychToCNE(data, charTag)
	case character.DirectionCNEToPsych:
		return m.CNEToPsych(data)
	}
	return "", errors.Errorf("未対応の変換方向です: %v", d)
}

// 変換結果を書き出す。color の場合は端末向けに色付けする。
func writeOutput(w io.Writer, text string, d character.Direction, crlf, color bool) error {
	text += "\n"
	if crlf {
		text = normalizeNewlinesToCRLF(text)
	}
	if color {
		if err := quick.Highlight(w, text, extensionFor(d), highlightFormatter, highlightStyle); err != nil {
			return errors.Errorf("出力の色付けに失敗しました: %v", err)
		}
		return nil
	}
	if _, err := io.WriteString(w, text); err != nil {
		return errors.Errorf("出力の書き込みに失敗しました: %v", err)
	}
	return nil
}

// 改行コードをCRLFに統一する関数
func normalizeNewlinesToCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}
