package dkg

import "threshold.network/frost-ecgfp5/frost"

// group tracks which participants of a dealer-free key generation run are
// still operating, generalizing the teacher's gjkr group bookkeeping from a
// fixed uint16 member index to frost.Identifier.
type group struct {
	groupSize int

	allIdentifiers          []frost.Identifier
	inactiveIdentifiers     []frost.Identifier
	disqualifiedIdentifiers []frost.Identifier
}

func newGroup(identifiers []frost.Identifier) *group {
	all := make([]frost.Identifier, len(identifiers))
	copy(all, identifiers)

	return &group{
		groupSize:               len(identifiers),
		allIdentifiers:          all,
		inactiveIdentifiers:     []frost.Identifier{},
		disqualifiedIdentifiers: []frost.Identifier{},
	}
}

// markInactive adds id to the list of inactive participants, unless it is
// not part of the group or already marked inactive or disqualified.
func (g *group) markInactive(id frost.Identifier) {
	if g.isOperating(id) {
		g.inactiveIdentifiers = append(g.inactiveIdentifiers, id)
	}
}

// markDisqualified adds id to the list of disqualified participants, unless
// it is not part of the group or already marked inactive or disqualified.
func (g *group) markDisqualified(id frost.Identifier) {
	if g.isOperating(id) {
		g.disqualifiedIdentifiers = append(g.disqualifiedIdentifiers, id)
	}
}

// isOperating reports whether id belongs to the group and has not been
// marked inactive or disqualified.
func (g *group) isOperating(id frost.Identifier) bool {
	return g.isInGroup(id) && !g.isInactive(id) && !g.isDisqualified(id)
}

func (g *group) isInGroup(id frost.Identifier) bool {
	for _, member := range g.allIdentifiers {
		if member == id {
			return true
		}
	}
	return false
}

func (g *group) isInactive(id frost.Identifier) bool {
	for _, inactive := range g.inactiveIdentifiers {
		if inactive == id {
			return true
		}
	}
	return false
}

func (g *group) isDisqualified(id frost.Identifier) bool {
	for _, disqualified := range g.disqualifiedIdentifiers {
		if disqualified == id {
			return true
		}
	}
	return false
}

// findInactive returns the identifiers from expected that are absent from
// present, mirroring the teacher's gjkr.findInactive but keyed by
// frost.Identifier instead of a session-scoped message list.
func findInactive(expected, present []frost.Identifier) []frost.Identifier {
	seen := make(map[frost.Identifier]bool, len(present))
	for _, id := range present {
		seen[id] = true
	}

	inactive := make([]frost.Identifier, 0)
	for _, id := range expected {
		if !seen[id] {
			inactive = append(inactive, id)
		}
	}
	return inactive
}
