package callapi

import (
	"fmt"
	"time"

	"partyline/domain/call"
	"partyline/domain/persona"
	pErrors "partyline/errors"

	"github.com/samber/lo"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldID        = "id"
	fieldURL       = "url"
	fieldPersona   = "persona"
	fieldPersonas  = "personas"
	fieldContent   = "content"
	fieldLanguage  = "language"
	fieldCreatedAt = "created_at"
	fieldUpdatedAt = "updated_at"
	fieldCalls     = "calls"
	fieldLimit     = "limit"
)

func CreateCallRequest(cmd call.CreateCallCommand) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldURL:      structpb.NewStringValue(cmd.URL),
		fieldPersonas: personaList(cmd.Personas),
	}}
}

func ParseCreateCallRequest(s *structpb.Struct) call.CreateCallCommand {
	return call.CreateCallCommand{
		URL:      s.GetFields()[fieldURL].GetStringValue(),
		Personas: parsePersonas(s.GetFields()[fieldPersonas]),
	}
}

func MembershipRequest(cmd call.MembershipCommand) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldID:      structpb.NewStringValue(string(cmd.CallID)),
		fieldPersona: structpb.NewStringValue(string(cmd.Persona)),
	}}
}

func ParseMembershipRequest(s *structpb.Struct) call.MembershipCommand {
	return call.MembershipCommand{
		CallID:  call.ID(s.GetFields()[fieldID].GetStringValue()),
		Persona: persona.ID(s.GetFields()[fieldPersona].GetStringValue()),
	}
}

func GetCallRequest(id call.ID) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldID: structpb.NewStringValue(string(id)),
	}}
}

func ParseGetCallRequest(s *structpb.Struct) call.ID {
	return call.ID(s.GetFields()[fieldID].GetStringValue())
}

func ListCallsRequest(limit int) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldLimit: structpb.NewNumberValue(float64(limit)),
	}}
}

func ParseListCallsRequest(s *structpb.Struct) int {
	return int(s.GetFields()[fieldLimit].GetNumberValue())
}

func EncodeCall(c call.Call) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldID:        structpb.NewStringValue(string(c.ID)),
		fieldURL:       structpb.NewStringValue(c.URL),
		fieldPersonas:  personaList(c.Personas),
		fieldContent:   structpb.NewStringValue(c.Content),
		fieldLanguage:  structpb.NewStringValue(c.Language),
		fieldCreatedAt: structpb.NewStringValue(c.CreatedAt.Format(time.RFC3339Nano)),
		fieldUpdatedAt: structpb.NewStringValue(c.UpdatedAt.Format(time.RFC3339Nano)),
	}}
}

func DecodeCall(s *structpb.Struct) (call.Call, error) {
	fields := s.GetFields()
	id := fields[fieldID].GetStringValue()
	if id == "" {
		return call.Call{}, fmt.Errorf("%w: call without id", pErrors.ErrInvalidPayload)
	}
	createdAt, err := parseTime(fields[fieldCreatedAt])
	if err != nil {
		return call.Call{}, err
	}
	updatedAt, err := parseTime(fields[fieldUpdatedAt])
	if err != nil {
		return call.Call{}, err
	}
	return call.Call{
		ID:        call.ID(id),
		URL:       fields[fieldURL].GetStringValue(),
		Personas:  parsePersonas(fields[fieldPersonas]),
		Content:   fields[fieldContent].GetStringValue(),
		Language:  fields[fieldLanguage].GetStringValue(),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func EncodeCalls(calls []call.Call) *structpb.Struct {
	values := lo.Map(calls, func(c call.Call, _ int) *structpb.Value {
		return structpb.NewStructValue(EncodeCall(c))
	})
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldCalls: structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

func DecodeCalls(s *structpb.Struct) ([]call.Call, error) {
	values := s.GetFields()[fieldCalls].GetListValue().GetValues()
	calls := make([]call.Call, 0, len(values))
	for _, v := range values {
		c, err := DecodeCall(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}

func personaList(ids []persona.ID) *structpb.Value {
	values := lo.Map(ids, func(id persona.ID, _ int) *structpb.Value {
		return structpb.NewStringValue(string(id))
	})
	return structpb.NewListValue(&structpb.ListValue{Values: values})
}

func parsePersonas(v *structpb.Value) []persona.ID {
	return lo.FilterMap(v.GetListValue().GetValues(), func(item *structpb.Value, _ int) (persona.ID, bool) {
		id := item.GetStringValue()
		return persona.ID(id), id != ""
	})
}

func parseTime(v *structpb.Value) (time.Time, error) {
	raw := v.GetStringValue()
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidPayload, err)
	}
	return t, nil
}
