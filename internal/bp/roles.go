// Package bp holds the fixed British Parliamentary format tables: the eight
// speaker roles, the four teams, and the two benches. Everything here is
// immutable configuration: lookups never fail into errors, they fall back to
// zero values the callers treat as "unknown".
package bp

// Role is one of the eight BP speaker codes.
type Role string

const (
	PM  Role = "PM"  // Prime Minister
	DPM Role = "DPM" // Deputy Prime Minister
	MG  Role = "MG"  // Member of Government
	GW  Role = "GW"  // Government Whip
	LO  Role = "LO"  // Leader of Opposition
	DLO Role = "DLO" // Deputy Leader of Opposition
	MO  Role = "MO"  // Member of Opposition
	OW  Role = "OW"  // Opposition Whip
)

// Team is one of the four BP teams.
type Team string

const (
	OG Team = "OG" // Opening Government
	OO Team = "OO" // Opening Opposition
	CG Team = "CG" // Closing Government
	CO Team = "CO" // Closing Opposition
)

// Side is a bench: the two government teams or the two opposition teams.
type Side string

const (
	Government Side = "Government"
	Opposition Side = "Opposition"
)

// SpeakingOrder is the fixed order speeches are delivered in a BP round.
var SpeakingOrder = []Role{PM, LO, DPM, DLO, MG, MO, GW, OW}

// Teams in scoring/insertion order. Ranking ties resolve in this order.
var Teams = []Team{OG, OO, CG, CO}

var roleToTeam = map[Role]Team{
	PM: OG, DPM: OG,
	LO: OO, DLO: OO,
	MG: CG, GW: CG,
	MO: CO, OW: CO,
}

var roleNames = map[Role]string{
	PM:  "Prime Minister",
	DPM: "Deputy Prime Minister",
	MG:  "Member of Government",
	GW:  "Government Whip",
	LO:  "Leader of Opposition",
	DLO: "Deputy Leader of Opposition",
	MO:  "Member of Opposition",
	OW:  "Opposition Whip",
}

var teamNames = map[Team]string{
	OG: "Opening Government",
	OO: "Opening Opposition",
	CG: "Closing Government",
	CO: "Closing Opposition",
}

var opposingTeam = map[Team]Team{
	OG: OO, OO: OG,
	CG: CO, CO: CG,
}

// Valid reports whether r is one of the eight known role codes.
func (r Role) Valid() bool {
	_, ok := roleToTeam[r]
	return ok
}

// Team returns the team a role speaks for. Unknown roles default to OG, the
// same fallback the rest of the pipeline uses for malformed input.
func (r Role) Team() Team {
	if t, ok := roleToTeam[r]; ok {
		return t
	}
	return OG
}

// Name returns the human-readable role name, or the raw code if unknown.
func (r Role) Name() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return string(r)
}

// Side returns the bench a role argues for.
func (r Role) Side() Side {
	switch r.Team() {
	case OG, CG:
		return Government
	default:
		return Opposition
	}
}

// IsGovernment reports whether the role sits on the government bench.
func (r Role) IsGovernment() bool {
	return r.Side() == Government
}

// Name returns the human-readable team name.
func (t Team) Name() string {
	if n, ok := teamNames[t]; ok {
		return n
	}
	return "Unknown Team"
}

// Opposing returns the team directly across the house (OG-OO, CG-CO).
func (t Team) Opposing() Team {
	if o, ok := opposingTeam[t]; ok {
		return o
	}
	return OO
}

// Side returns the bench a team belongs to.
func (t Team) Side() Side {
	if t == OG || t == CG {
		return Government
	}
	return Opposition
}

// GovernmentRoles and OppositionRoles partition the eight roles by bench,
// in speaking order.
var (
	GovernmentRoles = []Role{PM, DPM, MG, GW}
	OppositionRoles = []Role{LO, DLO, MO, OW}
)

// RolesFor returns the roles on a side, in speaking order.
func RolesFor(s Side) []Role {
	if s == Government {
		return GovernmentRoles
	}
	return OppositionRoles
}

// SameTeamBench reports whether two roles share a bench.
func SameTeamBench(a, b Role) bool {
	return a.Side() == b.Side()
}

// AllRoles returns the eight role codes in speaking order. Callers that need
// to enumerate accepted roles (validation messages) use this.
func AllRoles() []Role {
	out := make([]Role, len(SpeakingOrder))
	copy(out, SpeakingOrder)
	return out
}
