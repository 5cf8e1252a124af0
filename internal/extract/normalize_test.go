package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_StripsMarkup(t *testing.T) {
	assert.Equal(t, "Hello world", CleanText("<p>Hello <b>world</b></p>"))
}

func TestCleanText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a \n\n b\t\t c  "))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n  "))
}

func TestCleanText_PlainText(t *testing.T) {
	assert.Equal(t, "no markup here", CleanText("no markup here"))
}

func TestCleanText_NestedTags(t *testing.T) {
	raw := `<div><span>Acme</span> is a <a href="/x">multinational</a>
	corporation</div>`
	assert.Equal(t, "Acme is a multinational corporation", CleanText(raw))
}
