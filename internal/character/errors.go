package character

import "github.com/pkg/errors"

// 変換1回分を失敗させるエラーの種類。errors.Is で判定する。
var (
	ErrParse           = errors.New("入力を解析できません")
	ErrMissingElement  = errors.New("<character> 要素が見つかりません")
	ErrMalformedRecord = errors.New("キャラクター定義の形式が不正です")
)
