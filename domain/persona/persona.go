// Package persona defines the fixed list of conversational identities a user
// can invite to a party line call.
package persona

import (
	"fmt"

	"partyline/errors"

	"github.com/samber/lo"
)

type ID string

// Persona is immutable once registered in a Catalog.
type Persona struct {
	ID           ID
	Emoji        string
	Description  string
	SystemPrompt string
	Voice        string
}

// Catalog keeps personas in their declaration order, which is also the order
// used when a call is created.
type Catalog struct {
	personas []Persona
	index    map[ID]int
}

func NewCatalog(personas ...Persona) (*Catalog, error) {
	c := &Catalog{index: make(map[ID]int, len(personas))}
	for _, p := range personas {
		if p.ID == "" {
			return nil, fmt.Errorf("persona with empty id")
		}
		if _, ok := c.index[p.ID]; ok {
			return nil, fmt.Errorf("duplicate persona %q", p.ID)
		}
		c.index[p.ID] = len(c.personas)
		c.personas = append(c.personas, p)
	}
	return c, nil
}

func (c *Catalog) Get(id ID) (Persona, error) {
	i, ok := c.index[id]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %s", errors.ErrUnknownPersona, id)
	}
	return c.personas[i], nil
}

func (c *Catalog) Contains(id ID) bool {
	_, ok := c.index[id]
	return ok
}

func (c *Catalog) All() []Persona {
	return append([]Persona(nil), c.personas...)
}

func (c *Catalog) IDs() []ID {
	return lo.Map(c.personas, func(p Persona, _ int) ID { return p.ID })
}

// Prompts returns the system prompts of the given personas in catalog order.
// Unknown ids are skipped.
func (c *Catalog) Prompts(ids []ID) []string {
	wanted := lo.Keyify(ids)
	return lo.FilterMap(c.personas, func(p Persona, _ int) (string, bool) {
		_, ok := wanted[p.ID]
		return p.SystemPrompt, ok
	})
}

// Validate checks that every id is known and that the list is not empty.
func (c *Catalog) Validate(ids []ID) error {
	if len(ids) == 0 {
		return errors.ErrInvalidCallRequest
	}
	for _, id := range ids {
		if !c.Contains(id) {
			return fmt.Errorf("%w: %s", errors.ErrUnknownPersona, id)
		}
	}
	return nil
}
