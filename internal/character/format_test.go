package character

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatXML(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		indent string
		want   string
	}{
		{
			name:   "nested self-closing",
			in:     `<a><b/></a>`,
			indent: "  ",
			want:   "<a>\n  <b/>\n</a>",
		},
		{
			name:   "deeper",
			in:     `<a><b><c/></b><d x="1" /></a>`,
			indent: "  ",
			want:   "<a>\n  <b>\n    <c/>\n  </b>\n  <d x=\"1\" />\n</a>",
		},
		{
			name:   "whitespace between tags",
			in:     "<a>\n   <b/>  </a>\n",
			indent: "\t",
			want:   "<a>\n\t<b/>\n</a>",
		},
		{
			name:   "doctype and comment",
			in:     `<!DOCTYPE x><!-- note --><a><b/></a>`,
			indent: "  ",
			want:   "<!DOCTYPE x>\n<!-- note -->\n<a>\n  <b/>\n</a>",
		},
		{
			name:   "unbalanced closing",
			in:     `</a></a><b/>`,
			indent: "  ",
			want:   "</a>\n</a>\n<b/>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatXML(tt.in, tt.indent))
		})
	}
}
