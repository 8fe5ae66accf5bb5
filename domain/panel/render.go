package panel

import (
	"fmt"
	"strconv"
	"strings"
)

// Change is one property of one element that differs between two views.
// Element names follow the page ids: "call-button", "url-input",
// "call-controls", "call-id", "alert", "status", "persona:<id>:<part>".
type Change struct {
	Element  string `json:"element"`
	Property string `json:"property"`
	Value    string `json:"value"`
}

func (c Change) String() string {
	return fmt.Sprintf("%s.%s=%s", c.Element, c.Property, c.Value)
}

// Diff lists the changes needed to turn prev into next. The order is stable:
// global elements first, then cards in catalog order.
func Diff(prev, next View) []Change {
	var changes []Change
	add := func(element, property string, before, after string) {
		if before != after {
			changes = append(changes, Change{Element: element, Property: property, Value: after})
		}
	}
	flag := strconv.FormatBool

	add("url-input", "value", prev.URL, next.URL)
	add("call-button", "label", prev.Button.Label, next.Button.Label)
	add("call-button", "disabled", flag(!prev.Button.Enabled), flag(!next.Button.Enabled))
	add("call-button", "mode", string(prev.Button.Mode), string(next.Button.Mode))
	add("call-controls", "visible", flag(prev.CallControlsVisible), flag(next.CallControlsVisible))
	add("call-id", "text", prev.CallID, next.CallID)
	add("alert", "text", prev.Alert, next.Alert)
	add("status", "text", strings.Join(prev.Announcements, "\n"), strings.Join(next.Announcements, "\n"))

	for _, card := range next.Cards {
		before, _ := prev.Card(card.ID)
		prefix := "persona:" + string(card.ID)
		add(prefix+":checkbox", "checked", flag(before.Checked), flag(card.Checked))
		add(prefix+":actions", "visible", flag(before.ActionsVisible), flag(card.ActionsVisible))
		add(prefix+":add", "visible", flag(before.AddVisible), flag(card.AddVisible))
		add(prefix+":hangup", "visible", flag(before.HangupVisible), flag(card.HangupVisible))
		add(prefix+":actions", "busy", flag(before.Pending), flag(card.Pending))
	}
	return changes
}
