package character

// DefaultWatermark は出力に埋め込む変換元の目印。
const DefaultWatermark = "Converted using Psych2CNE hackx2.github.io/psych2cne"

// DefaultIndent は整形時の1段分のインデント。
const DefaultIndent = "  "

// Options は Mapper の設定。
type Options struct {
	// Watermark はXMLではコメント、JSONでは "__converter__" として出力される。空なら出力しない。
	Watermark string
	Indent    string
	Observer  Observer
}

// DefaultOptions は元のツールと同じ出力になる設定を返す。
func DefaultOptions() Options {
	return Options{Watermark: DefaultWatermark, Indent: DefaultIndent}
}

// Mapper はPsych(JSON)とCNE(XML)の相互変換を行う。
// 状態を持たないため、複数のゴルーチンから同時に使ってよい。
type Mapper struct {
	watermark string
	indent    string
	observer  Observer
}

// NewMapper は Mapper を作る。
func NewMapper(opts Options) *Mapper {
	m := &Mapper{
		watermark: opts.Watermark,
		indent:    opts.Indent,
		observer:  opts.Observer,
	}
	if m.indent == "" {
		m.indent = DefaultIndent
	}
	if m.observer == nil {
		m.observer = NopObserver{}
	}
	return m
}

// PsychToCNE はPsychのJSONをCNEのXMLに変換する。
// charTag は <character> タグにそのまま埋め込まれる。
func (m *Mapper) PsychToCNE(data []byte, charTag string) (string, error) {
	m.observer.Start(DirectionPsychToCNE)
	c, err := m.DecodePsych(data)
	if err != nil {
		m.observer.Error(DirectionPsychToCNE, err)
		return "", err
	}
	out := m.EncodeCNE(c, charTag)
	m.observer.Complete(DirectionPsychToCNE)
	return out, nil
}

// CNEToPsych はCNEのXMLをPsychのJSONに変換する。
func (m *Mapper) CNEToPsych(xmlText []byte) (string, error) {
	m.observer.Start(DirectionCNEToPsych)
	c, err := m.DecodeCNE(xmlText)
	if err != nil {
		m.observer.Error(DirectionCNEToPsych, err)
		return "", err
	}
	out, err := m.EncodePsych(c)
	if err != nil {
		m.observer.Error(DirectionCNEToPsych, err)
		return "", err
	}
	m.observer.Complete(DirectionCNEToPsych)
	return out, nil
}
