// Package profile holds the built-in quiz profiles. History is keyed
// by profile name, so the set is fixed and ordered.
package profile

import (
	"image/color"

	"github.com/arima/quizdeck/internal/ui/theme"
)

// Names lists the available profiles in display order.
var Names = []string{"monika", "geoff"}

// Default is the profile selected when none is given.
const Default = "monika"

// ChangedMsg announces a profile switch so the app header can track it.
type ChangedMsg struct {
	Name string
}

// Valid reports whether name is a known profile.
func Valid(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Next returns the profile after name, wrapping around.
func Next(name string) string {
	for i, n := range Names {
		if n == name {
			return Names[(i+1)%len(Names)]
		}
	}
	return Names[0]
}

// Color returns the accent color for a profile name.
func Color(name string) color.Color {
	switch name {
	case "geoff":
		return theme.ProfileGeoff
	default:
		return theme.ProfileMonika
	}
}
