package emailbuilder

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BlockKind identifies the type of a template block.
type BlockKind string

const (
	BlockText    BlockKind = "text"
	BlockButton  BlockKind = "button"
	BlockImage   BlockKind = "image"
	BlockDivider BlockKind = "divider"
	BlockSpacer  BlockKind = "spacer"
)

// Block is a single unit of a block-based template body. The set of
// populated fields depends on Kind: text carries Content (HTML with
// optional Liquid markup), button carries Label and URL, image carries
// Src/Alt/Width, spacer carries Height, divider stands alone.
type Block struct {
	Kind    BlockKind `json:"kind"`
	Content string    `json:"content,omitempty"`
	Label   string    `json:"label,omitempty"`
	URL     string    `json:"url,omitempty"`
	Src     string    `json:"src,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Width   string    `json:"width,omitempty"`
	Height  string    `json:"height,omitempty"`
}

// Validate checks that the block carries the fields its kind requires.
func (b Block) Validate() error {
	switch b.Kind {
	case BlockText:
		if b.Content == "" {
			return fmt.Errorf("text block requires content")
		}
	case BlockButton:
		if b.Label == "" {
			return fmt.Errorf("button block requires a label")
		}
		if b.URL == "" {
			return fmt.Errorf("button block requires a url")
		}
	case BlockImage:
		if b.Src == "" {
			return fmt.Errorf("image block requires a src")
		}
	case BlockDivider, BlockSpacer:
		// no required fields
	default:
		return fmt.Errorf("unknown block kind: %s", b.Kind)
	}
	return nil
}

// Blocks is an ordered template body, stored as JSONB on the template row.
type Blocks []Block

// Validate checks every block in order and reports the first invalid one.
func (b Blocks) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("template requires at least one block")
	}
	for i, block := range b {
		if err := block.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}

// Value implements the driver.Valuer interface for database storage
func (b Blocks) Value() (driver.Value, error) {
	return json.Marshal(b)
}

// Scan implements the sql.Scanner interface for database retrieval
func (b *Blocks) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	v, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("type assertion to []byte failed for Blocks")
	}

	return json.Unmarshal(v, b)
}

// ParseBlocks decodes a JSON block list as stored on a template row.
func ParseBlocks(raw []byte) (Blocks, error) {
	var blocks Blocks
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil, fmt.Errorf("failed to parse template blocks: %w", err)
	}
	return blocks, nil
}
