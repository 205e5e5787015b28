package emailbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockValidate(t *testing.T) {
	tests := []struct {
		name    string
		block   Block
		wantErr string
	}{
		{"valid text", Block{Kind: BlockText, Content: "<p>hi</p>"}, ""},
		{"text without content", Block{Kind: BlockText}, "requires content"},
		{"valid button", Block{Kind: BlockButton, Label: "Go", URL: "https://example.com"}, ""},
		{"button without label", Block{Kind: BlockButton, URL: "https://example.com"}, "requires a label"},
		{"button without url", Block{Kind: BlockButton, Label: "Go"}, "requires a url"},
		{"valid image", Block{Kind: BlockImage, Src: "https://example.com/x.png"}, ""},
		{"image without src", Block{Kind: BlockImage}, "requires a src"},
		{"divider", Block{Kind: BlockDivider}, ""},
		{"spacer", Block{Kind: BlockSpacer}, ""},
		{"unknown kind", Block{Kind: "video"}, "unknown block kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.block.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestBlocksValidate(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		err := Blocks{}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one block")
	})

	t.Run("reports block index", func(t *testing.T) {
		blocks := Blocks{
			{Kind: BlockText, Content: "ok"},
			{Kind: BlockImage},
		}
		err := blocks.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "block 1")
	})
}

func TestParseBlocks(t *testing.T) {
	raw := `[
		{"kind": "text", "content": "<p>Hello {{name}}</p>"},
		{"kind": "button", "label": "Shop", "url": "https://example.com"},
		{"kind": "spacer", "height": "30px"}
	]`

	blocks, err := ParseBlocks([]byte(raw))
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, BlockText, blocks[0].Kind)
	assert.Equal(t, "Shop", blocks[1].Label)
	assert.Equal(t, "30px", blocks[2].Height)
}

func TestParseBlocksInvalidJSON(t *testing.T) {
	_, err := ParseBlocks([]byte(`{"kind": "text"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse template blocks")
}

func TestBlocksValueScan(t *testing.T) {
	original := Blocks{
		{Kind: BlockText, Content: "<p>hi</p>"},
		{Kind: BlockDivider},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned Blocks
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	t.Run("nil value", func(t *testing.T) {
		var b Blocks
		assert.NoError(t, b.Scan(nil))
		assert.Nil(t, b)
	})

	t.Run("wrong type", func(t *testing.T) {
		var b Blocks
		assert.Error(t, b.Scan(42))
	})
}
