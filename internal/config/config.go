package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/xcd0/psych2cne/internal/character"
)

// ConfigName は設定ファイル名(拡張子なし)。
const ConfigName = "psych2cne.cfg"

// Settings は変換ツールの設定。
type Settings struct {
	LogLevel  string `json:"logLevel" mapstructure:"logLevel"`
	CharTag   string `json:"charTag" mapstructure:"charTag"`
	Indent    string `json:"indent" mapstructure:"indent"`
	Watermark string `json:"watermark" mapstructure:"watermark"`
	CRLF      bool   `json:"crlf" mapstructure:"crlf"`
}

// Load は既定値を設定し、設定ファイルがあれば読み込む。
// configFile が空なら configDirs から psych2cne.cfg.json を探し、見つからなくてもエラーにしない。
// 環境変数 PSYCH2CNE_<KEY> で上書きできる。
func Load(configFile string, configDirs ...string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("charTag", `isPlayer="false"`)
	viper.SetDefault("indent", character.DefaultIndent)
	viper.SetDefault("watermark", character.DefaultWatermark)
	viper.SetDefault("crlf", false)

	viper.SetEnvPrefix("PSYCH2CNE")
	viper.AutomaticEnv()
	viper.SetConfigType("json")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errors.Errorf("error reading config file: %v", err)
		}
		return nil
	}

	viper.SetConfigName(ConfigName)
	for _, dir := range configDirs {
		if dir != "" {
			viper.AddConfigPath(dir)
		}
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Errorf("error reading config file: %v", err)
	}
	return nil
}

// Current は現在の設定値を返す。
func Current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return s, errors.Wrap(err, "設定値を読み取れません")
	}
	return s, nil
}

// MapperOptions は設定から変換器のオプションを作る。
func (s Settings) MapperOptions(obs character.Observer) character.Options {
	return character.Options{
		Watermark: s.Watermark,
		Indent:    s.Indent,
		Observer:  obs,
	}
}
