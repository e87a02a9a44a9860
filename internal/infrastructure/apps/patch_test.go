package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceOrAppendLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "--theme=\"Nord\"\n"},
		{name: "replace", content: "--theme=\"base16\"\n", want: "--theme=\"Nord\"\n"},
		{name: "drop duplicates", content: "--theme=\"a\"\n--italic-text=always\n--theme=\"b\"\n", want: "--theme=\"Nord\"\n--italic-text=always\n"},
		{name: "append trims blank lines", content: "--style=full\n\n\n", want: "--style=full\n--theme=\"Nord\"\n"},
		{name: "no trailing newline", content: "--style=full", want: "--style=full\n--theme=\"Nord\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replaceOrAppendLine(tt.content, batThemeLine, `--theme="Nord"`)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, replaceOrAppendLine(got, batThemeLine, `--theme="Nord"`))
		})
	}
}

func TestReplaceOrInsertTopLevel(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "only tables",
			content: "[editor]\nmouse = false\n",
			want:    "theme = \"nord\"\n\n[editor]\nmouse = false\n",
		},
		{
			name:    "keeps root keys",
			content: "# my config\nfoo = 1\n[editor]\nmouse = false\n",
			want:    "# my config\nfoo = 1\ntheme = \"nord\"\n\n[editor]\nmouse = false\n",
		},
		{
			name:    "ignores theme-like keys inside tables",
			content: "theme = \"x\"\n[keys.normal]\ntheme = \"other\"\n",
			want:    "theme = \"nord\"\n\n[keys.normal]\ntheme = \"other\"\n",
		},
		{
			name:    "no tables",
			content: "theme = \"x\"\n",
			want:    "theme = \"nord\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := replaceOrInsertTopLevel(tt.content, helixThemeLine, `theme = "nord"`)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, replaceOrInsertTopLevel(got, helixThemeLine, `theme = "nord"`))
		})
	}
}
