package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain text", raw: "Water the rice twice a day", want: "Water the rice twice a day"},
		{name: "newlines become breaks", raw: "line1\nline2", want: "line1<br>line2"},
		{name: "bold markers are stripped not wrapped", raw: "**bold**", want: "bold"},
		{name: "headings lose hashes", raw: "## Pest control\nUse neem oil", want: " Pest control<br>Use neem oil"},
		{name: "bullets lose asterisks", raw: "* urea\n* potash", want: " urea<br> potash"},
		{name: "trailing newline", raw: "done\n", want: "done<br>"},
		{name: "empty input", raw: "", want: ""},
		{name: "non ascii text", raw: "**धान** की फसल\nपानी", want: "धान की फसल<br>पानी"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw))
		})
	}
}

func TestFormat_NeverEmitsStrongOrListItems(t *testing.T) {
	out := Format("**Tip:** rotate crops\n* maize\n* beans")

	assert.NotContains(t, out, "<strong>")
	assert.NotContains(t, out, "<li")
	assert.Equal(t, "Tip: rotate crops<br> maize<br> beans", out)
}

func TestFormat_IsDeterministic(t *testing.T) {
	inputs := []string{"", "a\nb", "**x** * y\n# z", "no markup"}
	for _, in := range inputs {
		assert.Equal(t, Format(in), Format(in))
	}
}
