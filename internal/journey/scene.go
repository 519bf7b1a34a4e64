package journey

// Kind is the sort of visual element.
type Kind int

const (
	KindPath Kind = iota
	KindMarker
	KindZone
	KindCoach
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindMarker:
		return "marker"
	case KindZone:
		return "zone"
	case KindCoach:
		return "coach"
	default:
		return "unknown"
	}
}

// Element is one row of the scene table. Optional phases use NotStarted for
// "none".
type Element struct {
	ID    string
	Kind  Kind
	Label string
	Role  Role
	// From is the first phase the element is visible in.
	From Phase
	// Until is the last phase it is visible in; it fades out during that phase.
	Until Phase
	// FlyIn is the phase in which the element animates in.
	FlyIn Phase
	// DimFrom is the phase from which the element is shown dimmed.
	DimFrom Phase
}

// VisibleAt reports whether the element is on screen during p.
func (e Element) VisibleAt(p Phase) bool {
	if p < e.From {
		return false
	}
	return e.Until == NotStarted || p <= e.Until
}

// Render is how a visible element is drawn.
type Render int

const (
	Steady Render = iota
	Entering
	Fading
	Dimmed
)

func (r Render) String() string {
	switch r {
	case Entering:
		return "entering"
	case Fading:
		return "fading"
	case Dimmed:
		return "dimmed"
	default:
		return "steady"
	}
}

// Visible is an element together with its render state for a phase.
type Visible struct {
	Element
	Render Render
}

func always(id string, kind Kind, label string, role Role, from Phase) Element {
	return Element{ID: id, Kind: kind, Label: label, Role: role, From: from, Until: NotStarted, FlyIn: NotStarted, DimFrom: NotStarted}
}

func coach(id string, at Phase) Element {
	e := always(id, KindCoach, "C", RoleSecondary, at)
	e.FlyIn = at
	return e
}

// scene lists elements in paint order.
var scene = []Element{
	{ID: "valley-zone", Kind: KindZone, Label: "THE VALLEY", Role: RoleDanger, From: Valley, Until: WithCoaching, FlyIn: NotStarted, DimFrom: NotStarted},
	always("path-start-valley", KindPath, "", RolePrimary, Begins),
	always("start", KindMarker, "Initial Excitement", RoleAccentLifted, Begins),
	{ID: "valley", Kind: KindMarker, Label: "", Role: RoleDanger, From: Valley, Until: NotStarted, FlyIn: NotStarted, DimFrom: FirstWin},
	{ID: "quit-path", Kind: KindPath, Label: "Without coaching: quit", Role: RoleDanger, From: WithoutCoaching, Until: WithCoaching, FlyIn: NotStarted, DimFrom: NotStarted},
	coach("coach-valley", WithCoaching),
	always("path-valley-win1", KindPath, "", RoleSuccess, FirstWin),
	always("win1", KindMarker, "First Win", RoleSuccess, FirstWin),
	always("path-win1-dip2", KindPath, "", RoleSuccess, SecondSetback),
	always("dip2", KindMarker, "", RoleAccent, SecondSetback),
	coach("coach-dip2", CoachingAgain),
	always("path-dip2-win2", KindPath, "", RoleSuccess, BuildingMomentum),
	always("win2", KindMarker, "", RoleSuccess, BuildingMomentum),
	always("path-win2-dip3", KindPath, "", RoleSuccess, AnotherWobble),
	always("dip3", KindMarker, "", RoleAccent, AnotherWobble),
	coach("coach-dip3", CoachingSupport),
	always("path-dip3-fluency", KindPath, "", RoleSuccess, SelfSustaining),
	always("fluency", KindMarker, "Fluency", RoleSecondaryLifted, SelfSustaining),
	always("path-fluency-mastery", KindPath, "", RoleSuccess, SelfSustaining),
	always("mastery", KindMarker, "AI-First Mindset", RoleSuccess, SelfSustaining),
}

// Elements returns the scene table in paint order.
func Elements() []Element {
	return append([]Element(nil), scene...)
}

// Scene returns the elements visible during p in paint order.
func Scene(p Phase) []Visible {
	var out []Visible
	for _, e := range scene {
		if !e.VisibleAt(p) {
			continue
		}
		out = append(out, Visible{Element: e, Render: renderAt(e, p)})
	}
	return out
}

func renderAt(e Element, p Phase) Render {
	switch {
	case e.Until != NotStarted && p == e.Until:
		return Fading
	case e.DimFrom != NotStarted && p >= e.DimFrom:
		return Dimmed
	case p == e.From || p == e.FlyIn:
		return Entering
	default:
		return Steady
	}
}
