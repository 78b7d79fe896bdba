package character

// Direction は変換の向き。
type Direction int

const (
	DirectionPsychToCNE Direction = iota
	DirectionCNEToPsych
)

func (d Direction) String() string {
	switch d {
	case DirectionPsychToCNE:
		return "psych2cne"
	case DirectionCNEToPsych:
		return "cne2psych"
	}
	return "unknown"
}

// Observer は変換の途中経過を受け取る。
// 変換結果は Observer の有無や挙動に左右されない。
type Observer interface {
	Start(d Direction)
	Field(name string, value any)
	Animation(index int, name string)
	Warn(msg string)
	Complete(d Direction)
	Error(d Direction, err error)
}

// NopObserver は何もしない Observer。
type NopObserver struct{}

func (NopObserver) Start(Direction)        {}
func (NopObserver) Field(string, any)      {}
func (NopObserver) Animation(int, string)  {}
func (NopObserver) Warn(string)            {}
func (NopObserver) Complete(Direction)     {}
func (NopObserver) Error(Direction, error) {}
