package layout

import (
	"encoding/json"
	"fmt"

	"github.com/jsamuelsen11/quick-node-clone/internal/domain/entity"
)

// EncodeBlock serializes a block content entity for storage in a
// component's block_serialized configuration.
func EncodeBlock(block *entity.Entity) (string, error) {
	b, err := json.Marshal(block.ToSnapshot())
	if err != nil {
		return "", fmt.Errorf("encoding block %s: %w", block.UUID(), err)
	}
	return string(b), nil
}

// DecodeBlock parses a serialized block. Corrupt or empty input yields
// (nil, false).
func DecodeBlock(raw any) (*entity.Entity, bool) {
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}

	var snap entity.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, false
	}
	if snap.Kind != entity.KindBlockContent {
		return nil, false
	}
	return entity.FromSnapshot(snap)
}
