package call

import (
	"partyline/domain/persona"
)

type Command interface {
	Name() string
}

type CreateCallCommand struct {
	URL      string       `validate:"required,http_url"`
	Personas []persona.ID `validate:"required,min=1,dive,required"`
}

// MembershipCommand adds or removes one persona of an existing call.
type MembershipCommand struct {
	CallID  ID         `validate:"required"`
	Persona persona.ID `validate:"required"`
}

func (CreateCallCommand) Name() string { return "create_call" }

func (MembershipCommand) Name() string { return "membership" }
