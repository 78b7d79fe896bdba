package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/xcd0/psych2cne/internal/character"
	"github.com/xcd0/psych2cne/internal/config"
	"github.com/xcd0/psych2cne/internal/logging"
)

func main() {
	ParseArgs(os.Args[1:])
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.Load(args.Config, GetCurrentDir(), GetExecutableDir()); err != nil {
		return err
	}
	settings, err := config.Current()
	if err != nil {
		return err
	}
	level := settings.LogLevel
	if args.Debug {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level)
	mapper := character.NewMapper(settings.MapperOptions(logging.NewObserver(logger)))

	inputPath := args.InputFile
	if args.File != "" {
		inputPath = args.File
	}

	var input []byte
	if inputPath == "" {
		// 標準入力から読み取る。
		input, err = readInput(os.Stdin)
	} else {
		input, err = readFile(inputPath)
	}
	if err != nil {
		return err
	}

	direction, err := detectDirection(inputPath, input, args.ToXML, args.ToJSON)
	if err != nil {
		return err
	}
	if inputPath != "" {
		if err := checkExtension(inputPath, direction); err != nil {
			return err
		}
	}
	logger.Debug().
		Str("input", inputPath).
		Str("output", args.OutputFile).
		Stringer("direction", direction).
		Msg("引数を解析しました")

	result, err := convert(mapper, input, direction, charTagFor(args, settings.CharTag))
	if err != nil {
		return err
	}

	outputPath := args.OutputFile
	if outputPath == "" && args.File != "" {
		outputPath = outputPathFor(args.File, direction)
	}

	var output io.Writer = os.Stdout
	color := args.Color
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return errors.Errorf("出力ファイルを作成できません: %v", err)
		}
		defer file.Close()
		output = file
		color = false
	}

	if err := writeOutput(output, result, direction, args.CRLF || settings.CRLF, color); err != nil {
		return err
	}
	if outputPath != "" {
		logger.Info().Str("path", outputPath).Msg("出力ファイルを書き出しました")
	}
	return nil
}

func readFile(path string) ([]byte, error) {
	input, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("入力ファイルを開けません: %v", err)
	}
	defer input.Close()
	return readInput(input)
}
