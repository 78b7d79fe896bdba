package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xcd0/psych2cne/internal/character"
)

func TestReadInput_StripsBOM(t *testing.T) {
	data, err := readInput(strings.NewReader("\xef\xbb\xbf{\"a\": 1}"))
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, string(data))

	// UTF-16LE(BOM付き)はUTF-8に変換される
	data, err = readInput(bytes.NewReader([]byte{0xff, 0xfe, '<', 0, 'a', 0, '/', 0, '>', 0}))
	require.NoError(t, err)
	assert.Equal(t, `<a/>`, string(data))
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		data   string
		toXML  bool
		toJSON bool
		want   character.Direction
	}{
		{"flag to xml", "bf.xml", "", true, false, character.DirectionPsychToCNE},
		{"flag to json", "bf.json", "", false, true, character.DirectionCNEToPsych},
		{"json extension", "chars/bf.JSON", "", false, false, character.DirectionPsychToCNE},
		{"xml extension", "bf.xml", "", false, false, character.DirectionCNEToPsych},
		{"sniff json", "", "  \n{}", false, false, character.DirectionPsychToCNE},
		{"sniff xml", "", "<character/>", false, false, character.DirectionCNEToPsych},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detectDirection(tt.path, []byte(tt.data), tt.toXML, tt.toJSON)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := detectDirection("", []byte("hello"), false, false)
	assert.Error(t, err)
}

func TestCheckExtension(t *testing.T) {
	assert.NoError(t, checkExtension("bf.json", character.DirectionPsychToCNE))
	assert.NoError(t, checkExtension("bf.xml", character.DirectionCNEToPsych))
	assert.NoError(t, checkExtension("bf.txt", character.DirectionCNEToPsych))

	err := checkExtension("bf.xml", character.DirectionPsychToCNE)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")

	err = checkExtension("bf.JSON", character.DirectionCNEToPsych)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".xml")
}

func TestOutputPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("chars", "converted_bf.xml"), outputPathFor(filepath.Join("chars", "bf.json"), character.DirectionPsychToCNE))
	assert.Equal(t, "converted_dad.json", outputPathFor("dad.xml", character.DirectionCNEToPsych))
}

func TestCharTagFor(t *testing.T) {
	assert.Equal(t, `isPlayer="false"`, charTagFor(Args{}, `isPlayer="false"`))
	assert.Equal(t, `isPlayer="true"`, charTagFor(Args{Player: true}, `isPlayer="false"`))
	assert.Equal(t, `gameOverChar="bf-dead"`, charTagFor(Args{CharTag: `gameOverChar="bf-dead"`, Player: true}, ""))
}

func TestConvert(t *testing.T) {
	m := character.NewMapper(character.Options{})

	out, err := convert(m, []byte(`<character icon="dad"/>`), character.DirectionCNEToPsych, "")
	require.NoError(t, err)
	assert.Contains(t, out, `"healthicon": "dad"`)

	_, err = convert(m, []byte(`{}`), character.Direction(42), "")
	assert.Error(t, err)
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeOutput(&buf, "<a>\n  <b/>\n</a>", character.DirectionPsychToCNE, false, false))
	assert.Equal(t, "<a>\n  <b/>\n</a>\n", buf.String())

	buf.Reset()
	require.NoError(t, writeOutput(&buf, "<a>\n  <b/>\n</a>", character.DirectionPsychToCNE, true, false))
	assert.Equal(t, "<a>\r\n  <b/>\r\n</a>\r\n", buf.String())

	buf.Reset()
	require.NoError(t, writeOutput(&buf, `{"a": 1}`, character.DirectionCNEToPsych, false, true))
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestNormalizeNewlinesToCRLF(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\nc\r\n", normalizeNewlinesToCRLF("a\nb\r\nc\r"))
}
