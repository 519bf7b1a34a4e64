package journey

// Caption is the text shown under the scene.
type Caption struct {
	Title  string
	Detail string
	Role   Role
}

var idleCaption = Caption{Title: "Press play to see the AI adoption journey", Role: RoleMuted}

var captions = [...]Caption{
	Begins:           {"Everyone starts excited. The potential feels real.", `"AI will change everything!"`, RolePrimary},
	Valley:           {"Then you hit The Valley. Outputs aren't working. It feels slow.", `"I could have done this myself faster."`, RoleAlert},
	WithoutCoaching:  {"Without support, people rationally quit.", `Back to old ways. "I'll try again later." They never do.`, RoleAlert},
	WithCoaching:     {"But with coaching at the friction point...", "Accountability. Encouragement. Someone who helps you push through.", RoleSecondary},
	FirstWin:         {"You get your first real win.", `"Wait... that actually worked." The effort starts to feel worth it.`, RoleWin},
	SecondSetback:    {"But then another setback. Progress plateaus.", `"I'm in a rut. Same prompts, same results."`, RoleAccent},
	CoachingAgain:    {"Coaching again, expanding your approach.", "New use cases. New workflows. Breaking through the plateau.", RoleSecondary},
	BuildingMomentum: {"Another breakthrough. Momentum is building.", "You're starting to see opportunities everywhere.", RoleWin},
	AnotherWobble:    {"A smaller wobble. But you're more resilient now.", "The setbacks get smaller. The recoveries get faster.", RoleAccent},
	CoachingSupport:  {"Light-touch coaching. You're almost there.", "Less intervention needed. The skill is becoming yours.", RoleSecondary},
	SelfSustaining:   {"Self-sustaining. Wins drive practice. Practice drives wins.", "The value is self-evident. This is just how you work now.", RoleWin},
}

// CaptionFor returns the caption for p; NotStarted gets the idle prompt.
func CaptionFor(p Phase) Caption {
	if !p.Valid() {
		return idleCaption
	}
	return captions[p]
}

// Panel is one half of the closing insight.
type Panel struct {
	Heading string
	Body    string
	Role    Role
}

// Insight returns the closing panels, shown once playback has finished.
func Insight(s State) ([]Panel, bool) {
	if !s.Finished() {
		return nil, false
	}
	return []Panel{
		{
			Heading: "Why Training Doesn't Work",
			Body:    "Training is knowledge transfer, one-time and front-loaded. But the problem isn't knowledge. It's sustained practice through a period where it doesn't feel worth it yet.",
			Role:    RoleAccentSoft,
		},
		{
			Heading: "Why Coaching Works",
			Body:    "Coaching keeps you in practice long enough to become someone who sees the value. It's the bridge that sustains practice until the value becomes self-evident.",
			Role:    RoleAccent,
		},
	}, true
}

// ActionLabel is the text of the play control, empty while playing.
func ActionLabel(s State) string {
	switch {
	case s.Playing:
		return ""
	case s.Played:
		return "Replay the Journey"
	default:
		return "Watch the Journey"
	}
}
