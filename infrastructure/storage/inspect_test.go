package storage

import (
	"encoding/json"
	"testing"
	"time"

	"partyline/domain/persona"

	"github.com/stretchr/testify/require"
)

func TestInspectMapper(t *testing.T) {
	req := require.New(t)
	c := newCall("call-1", time.Now(), persona.Nerd, persona.Chef)
	raw, err := json.Marshal(c)
	req.NoError(err)

	row := InspectMapper("call:call-1", raw)
	req.Equal("CALL", row.Type)
	req.Equal("https://example.com | 2 persona(s) | en", row.Detail)

	row = InspectMapper("idx:call:created:0001:call-1", nil)
	req.Equal("INDEX", row.Type)

	row = InspectMapper("call:broken", []byte("{"))
	req.Equal("Error: unmarshal failed", row.Detail)
}
