package panel

import (
	"testing"

	"partyline/domain/persona"

	"github.com/stretchr/testify/require"
)

func TestRender_Call_Button_Enabled_Iff_URL_And_Selection(t *testing.T) {
	req := require.New(t)
	for _, url := range []string{"", "https://x"} {
		for _, selected := range [][]persona.ID{nil, {persona.Nerd}, {persona.Nerd, persona.Chef}} {
			s := Reduce(newState(), URLChanged{URL: url})
			for _, id := range selected {
				s = Reduce(s, PersonaToggled{Persona: id})
			}
			v := Render(s)
			req.Equal(url != "" && len(selected) > 0, v.Button.Enabled, "url=%q selected=%v", url, selected)
			req.Equal(ButtonCall, v.Button.Mode)
		}
	}
}

func TestRender_Call_Button_Label(t *testing.T) {
	req := require.New(t)
	req.Equal("Call the Party Line (0 personas)", CallButtonLabel(0))
	req.Equal("Call the Party Line (1 persona)", CallButtonLabel(1))
	req.Equal("Call the Party Line (3 personas)", CallButtonLabel(3))
}

func TestRender_No_Actions_Without_Session(t *testing.T) {
	req := require.New(t)
	s := apply(newState(), URLChanged{URL: "https://x"}, PersonaToggled{Persona: persona.Nerd})

	v := Render(s)

	req.False(v.CallControlsVisible)
	for _, c := range v.Cards {
		req.False(c.ActionsVisible, c.ID)
		req.False(c.AddVisible, c.ID)
		req.False(c.HangupVisible, c.ID)
	}
	card, ok := v.Card(persona.Nerd)
	req.True(ok)
	req.True(card.Checked)
}

func TestRender_Calling(t *testing.T) {
	req := require.New(t)
	s := apply(newState(), URLChanged{URL: "https://x"}, PersonaToggled{Persona: persona.Nerd}, CallRequested{})

	v := Render(s)

	req.Equal(Button{Mode: ButtonCalling, Label: "Calling...", Enabled: false}, v.Button)
}

func TestRender_Start_Call_Shows_Hangup_For_Selected(t *testing.T) {
	req := require.New(t)

	// Given URL="https://x" and personas {A,B} selected, when the call starts
	v := Render(activeCall(persona.CoolDude, persona.Nerd))

	// Then a session exists and A and B show Hangup but not Add
	req.True(v.CallControlsVisible)
	req.Equal("call-1", v.CallID)
	req.Equal(Button{Mode: ButtonReset, Label: "Reset Call", Enabled: true}, v.Button)
	for _, id := range []persona.ID{persona.CoolDude, persona.Nerd} {
		card, _ := v.Card(id)
		req.True(card.HangupVisible, id)
		req.False(card.AddVisible, id)
	}
	// And the others can be added
	card, _ := v.Card(persona.Chef)
	req.True(card.ActionsVisible)
	req.True(card.AddVisible)
	req.False(card.HangupVisible)
}

func TestRender_Remove_Shows_Add(t *testing.T) {
	req := require.New(t)
	s := activeCall(persona.CoolDude)

	s = Reduce(s, MembershipConfirmed{CallID: "call-1", Persona: persona.CoolDude, Op: OpRemove})
	card, _ := Render(s).Card(persona.CoolDude)

	req.False(card.Checked)
	req.True(card.AddVisible)
	req.False(card.HangupVisible)
}

func TestRender_Reset(t *testing.T) {
	req := require.New(t)
	s := Reduce(activeCall(persona.CoolDude, persona.Nerd), CallReset{})

	v := Render(s)

	req.False(v.CallControlsVisible)
	req.Empty(v.CallID)
	req.Equal(Button{Mode: ButtonCall, Label: "Call the Party Line (0 personas)", Enabled: false}, v.Button)
	for _, c := range v.Cards {
		req.False(c.Checked)
		req.False(c.ActionsVisible)
	}
	// And the view is the initial one
	req.Equal(Render(newState()), v)
}
