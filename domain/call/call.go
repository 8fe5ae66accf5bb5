// Package call contains the backend view of a party line call: who is in it,
// which page it is about and the summary the personas talk over.
package call

import (
	"time"

	"partyline/domain/persona"

	"github.com/samber/lo"
)

type ID string

// Call is stored as a whole; membership has set semantics.
type Call struct {
	ID        ID           `json:"id"`
	URL       string       `json:"url"`
	Personas  []persona.ID `json:"personas"`
	Content   string       `json:"content"`
	Language  string       `json:"language,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (c Call) Has(id persona.ID) bool {
	return lo.Contains(c.Personas, id)
}

// Join adds a persona and reports whether membership changed.
func (c *Call) Join(id persona.ID, at time.Time) bool {
	if c.Has(id) {
		return false
	}
	c.Personas = append(c.Personas, id)
	c.UpdatedAt = at
	return true
}

// Leave removes a persona and reports whether membership changed.
func (c *Call) Leave(id persona.ID, at time.Time) bool {
	if !c.Has(id) {
		return false
	}
	c.Personas = lo.Without(c.Personas, id)
	c.UpdatedAt = at
	return true
}
