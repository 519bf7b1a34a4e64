package journey

import (
	"github.com/alexisbeaulieu97/themekit/internal/store"
)

// Fixed hues that do not follow the theme.
const (
	dangerColor  = "#ef4444"
	alertColor   = "#dc2626"
	successColor = "#22c55e"
	winTextColor = "#16a34a"
	mutedColor   = "#9ca3af"
)

// Colors are the theme values the journey paints with.
type Colors struct {
	Primary         string
	PrimaryLifted   string
	Secondary       string
	SecondaryLifted string
	Accent          string
	AccentLifted    string
	AccentSoft      string
	Background      string
}

// DefaultColors is used for any variable the store does not hold.
var DefaultColors = Colors{
	Primary:         "#1a365d",
	PrimaryLifted:   "#4a6fa5",
	Secondary:       "#115e59",
	SecondaryLifted: "#2d8a84",
	Accent:          "#d97706",
	AccentLifted:    "#fbbf24",
	AccentSoft:      "#f87171",
	Background:      "#faf5f0",
}

// ColorsFrom reads the journey palette from st, falling back per variable.
func ColorsFrom(st *store.Store) Colors {
	return Colors{
		Primary:         store.Lookup(st, "color-primary", DefaultColors.Primary),
		PrimaryLifted:   store.Lookup(st, "color-primary-lifted", DefaultColors.PrimaryLifted),
		Secondary:       store.Lookup(st, "color-secondary", DefaultColors.Secondary),
		SecondaryLifted: store.Lookup(st, "color-secondary-lifted", DefaultColors.SecondaryLifted),
		Accent:          store.Lookup(st, "color-accent", DefaultColors.Accent),
		AccentLifted:    store.Lookup(st, "color-accent-lifted", DefaultColors.AccentLifted),
		AccentSoft:      store.Lookup(st, "color-accent-soft", DefaultColors.AccentSoft),
		Background:      store.Lookup(st, "color-background", DefaultColors.Background),
	}
}

// Role names where an element takes its color from.
type Role int

const (
	RolePrimary Role = iota
	RoleSecondary
	RoleSecondaryLifted
	RoleAccent
	RoleAccentLifted
	RoleAccentSoft
	RoleDanger
	RoleAlert
	RoleSuccess
	RoleWin
	RoleMuted
)

// Resolve returns the color for role.
func (c Colors) Resolve(role Role) string {
	switch role {
	case RolePrimary:
		return c.Primary
	case RoleSecondary:
		return c.Secondary
	case RoleSecondaryLifted:
		return c.SecondaryLifted
	case RoleAccent:
		return c.Accent
	case RoleAccentLifted:
		return c.AccentLifted
	case RoleAccentSoft:
		return c.AccentSoft
	case RoleDanger:
		return dangerColor
	case RoleAlert:
		return alertColor
	case RoleSuccess:
		return successColor
	case RoleWin:
		return winTextColor
	default:
		return mutedColor
	}
}
