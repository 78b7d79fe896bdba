package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/xcd0/psych2cne/internal/character"
)

// New はコンソール向けのロガーを作る。level が不正なら info になる。
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: noColor}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Observer は変換の途中経過を zerolog に書き出す。
type Observer struct {
	logger zerolog.Logger
}

// NewObserver は Observer を作る。
func NewObserver(logger zerolog.Logger) *Observer {
	return &Observer{logger: logger}
}

var _ character.Observer = (*Observer)(nil)

func (o *Observer) Start(d character.Direction) {
	o.logger.Info().Str("direction", d.String()).Msg("変換を開始します")
}

func (o *Observer) Field(name string, value any) {
	o.logger.Debug().Str("field", name).Interface("value", value).Msg("項目を変換しました")
}

func (o *Observer) Animation(index int, name string) {
	o.logger.Debug().Int("index", index).Str("name", name).Msg("アニメーションを変換しました")
}

func (o *Observer) Warn(msg string) {
	o.logger.Warn().Msg(msg)
}

func (o *Observer) Complete(d character.Direction) {
	o.logger.Info().Str("direction", d.String()).Bool("success", true).Msg("変換が完了しました")
}

func (o *Observer) Error(d character.Direction, err error) {
	o.logger.Error().Err(err).Str("direction", d.String()).Msg("変換に失敗しました")
}
