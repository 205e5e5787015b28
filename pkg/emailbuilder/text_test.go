package emailbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextVersion(t *testing.T) {
	html := `<html>
<head><style>p { color: red; }</style></head>
<body>
  <p>Hello Ada,</p>

  <p>See <a href="https://example.com/sale">our sale</a> today.</p>
</body>
</html>`

	text := TextVersion(html)

	assert.Contains(t, text, "Hello Ada,")
	assert.Contains(t, text, "our sale (https://example.com/sale)")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "<p>")
}

func TestTextVersionSkipsAnchorsWithoutDestination(t *testing.T) {
	html := `<body><a href="#top">back to top</a> and <a href="">blank</a></body>`

	text := TextVersion(html)

	assert.Contains(t, text, "back to top")
	assert.NotContains(t, text, "(#top)")
	assert.NotContains(t, text, "()")
}

func TestTextVersionCollapsesWhitespace(t *testing.T) {
	html := `<body>
	<p>one</p>



	<p>two</p>
</body>`

	text := TextVersion(html)

	assert.Equal(t, "one\n\ntwo", text)
}

func TestTextVersionEmptyInput(t *testing.T) {
	assert.Equal(t, "", TextVersion(""))
}
