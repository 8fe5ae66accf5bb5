package panel

import (
	"fmt"

	"partyline/domain/persona"
)

type ButtonMode string

const (
	ButtonCall    ButtonMode = "call"
	ButtonCalling ButtonMode = "calling"
	ButtonReset   ButtonMode = "reset"
)

type Button struct {
	Mode    ButtonMode `json:"mode"`
	Label   string     `json:"label"`
	Enabled bool       `json:"enabled"`
}

// Card is the visible state of one persona.
type Card struct {
	ID             persona.ID `json:"id"`
	Emoji          string     `json:"emoji"`
	Description    string     `json:"description"`
	Checked        bool       `json:"checked"`
	ActionsVisible bool       `json:"actions_visible"`
	AddVisible     bool       `json:"add_visible"`
	HangupVisible  bool       `json:"hangup_visible"`
	Pending        bool       `json:"pending"`
}

// View is everything a renderer needs; it is always derived from a State.
type View struct {
	URL                 string   `json:"url"`
	Button              Button   `json:"button"`
	CallControlsVisible bool     `json:"call_controls_visible"`
	CallID              string   `json:"call_id,omitempty"`
	Cards               []Card   `json:"cards"`
	Alert               string   `json:"alert,omitempty"`
	Announcements       []string `json:"announcements,omitempty"`
}

func Render(s State) View {
	v := View{
		URL:                 s.URL,
		Button:              button(s),
		CallControlsVisible: s.HasSession(),
		CallID:              s.CallID,
		Alert:               s.Alert,
	}
	for _, p := range s.Personas {
		checked := s.IsSelected(p.ID)
		card := Card{
			ID:          p.ID,
			Emoji:       p.Emoji,
			Description: p.Description,
			Checked:     checked,
			Pending:     s.IsPending(p.ID),
		}
		if s.HasSession() {
			card.ActionsVisible = true
			card.HangupVisible = checked
			card.AddVisible = !checked
		}
		v.Cards = append(v.Cards, card)
	}
	for _, a := range s.Announcements {
		v.Announcements = append(v.Announcements, a.Message)
	}
	return v
}

// Card looks a persona up by id.
func (v View) Card(id persona.ID) (Card, bool) {
	for _, c := range v.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

func button(s State) Button {
	switch {
	case s.Calling:
		return Button{Mode: ButtonCalling, Label: "Calling...", Enabled: false}
	case s.HasSession():
		return Button{Mode: ButtonReset, Label: "Reset Call", Enabled: true}
	default:
		return Button{
			Mode:    ButtonCall,
			Label:   CallButtonLabel(len(s.Selected)),
			Enabled: s.URL != "" && len(s.Selected) > 0,
		}
	}
}

func CallButtonLabel(selected int) string {
	noun := "personas"
	if selected == 1 {
		noun = "persona"
	}
	return fmt.Sprintf("Call the Party Line (%d %s)", selected, noun)
}
