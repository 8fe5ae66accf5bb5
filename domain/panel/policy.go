package panel

import "fmt"

// TogglePolicy decides what a checkbox toggle means while a call is active.
type TogglePolicy string

const (
	// ToggleLocal only changes the local selection; the backend is not told.
	ToggleLocal TogglePolicy = "local"
	// ToggleSync turns the toggle into an add or remove request and only
	// changes the checkbox once the backend acknowledged it.
	ToggleSync TogglePolicy = "sync"
)

func ParseTogglePolicy(s string) (TogglePolicy, error) {
	switch TogglePolicy(s) {
	case ToggleLocal, "":
		return ToggleLocal, nil
	case ToggleSync:
		return ToggleSync, nil
	default:
		return "", fmt.Errorf("unknown in-call toggle policy %q", s)
	}
}
