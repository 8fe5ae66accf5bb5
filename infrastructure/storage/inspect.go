package storage

import (
	"encoding/json"
	"fmt"
	"strings"

	"partyline/domain/call"

	"github.com/mama165/sdk-go/database"
)

// InspectMapper describes a raw badger entry for the debug inspector.
func InspectMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	if strings.HasPrefix(key, "idx:") {
		row.Type = "INDEX"
		return row
	}

	var c call.Call
	if err := json.Unmarshal(val, &c); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = "CALL"
	row.Detail = fmt.Sprintf("%s | %d persona(s) | %s", c.URL, len(c.Personas), c.Language)
	return row
}
