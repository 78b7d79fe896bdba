package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

// コマンドライン引数の構造体。
type Args struct {
	File       string `arg:"positional"         help:"入力ファイルパス（拡張子で変換方向を判定し converted_<名前> に出力する）" placeholder:"FILE"`
	InputFile  string `arg:"-i,--input-file"    help:"入力ファイルパス（省略時は標準入力）"                              placeholder:"SRC"`
	OutputFile string `arg:"-o,--output-file"   help:"出力ファイルパス（省略時は標準出力）"                            placeholder:"DST"`
	ToXML      bool   `arg:"-x,--to-xml"        help:"Psych(JSON)からCNE(XML)への変換モード"`
	ToJSON     bool   `arg:"-j,--to-json"       help:"CNE(XML)からPsych(JSON)への変換モード"`
	CharTag    string `arg:"-t,--char-tag"      help:"<character> タグに追加する属性（例: isPlayer=\"true\"）"           placeholder:"ATTRS"`
	Player     bool   `arg:"-p,--player"        help:"--char-tag 省略時に isPlayer=\"true\" を使う"`
	CRLF       bool   `arg:"--crlf"             help:"改行コードをCRLFにする"`
	Color      bool   `arg:"-c,--color"         help:"標準出力への出力を色付けする"`
	Config     string `arg:"--config,env:PSYCH2CNE_CONFIG" help:"設定ファイルパス"                                     placeholder:"FILE"`
	Debug      bool   `arg:"-d,--debug"         help:"デバッグ出力を有効にする"`
}

func (Args) Version() string {
	return GetVersion()
}

func (Args) Description() string {
	return "Psych Engine のキャラクターJSONと Codename Engine のキャラクターXMLを相互に変換する。"
}

// グローバル変数。
var (
	args   Args
	parser *arg.Parser // ShowHelp() で使う
)

// コマンドライン引数の解析。
func ParseArgs(argv []string) {
	var err error
	parser, err = arg.NewParser(arg.Config{Program: GetFileNameWithoutExt(os.Args[0]), IgnoreEnv: false}, &args)
	if err != nil {
		ShowHelp(fmt.Sprintf("%v", errors.Errorf("%v", err)))
		os.Exit(1)
	}

	err = parser.Parse(argv)
	switch {
	case err == arg.ErrHelp:
		ShowHelp("")
		os.Exit(1)
	case err == arg.ErrVersion:
		ShowVersion()
		os.Exit(0)
	case err != nil:
		ShowHelp(fmt.Sprintf("%v", err))
		os.Exit(1)
	}

	if args.ToXML && args.ToJSON {
		ShowHelp("--to-xml と --to-json は同時に指定できません。")
		os.Exit(1)
	}
	if args.File != "" && args.InputFile != "" {
		ShowHelp("入力ファイルは位置引数か --input-file のどちらかで指定してください。")
		os.Exit(1)
	}
}
