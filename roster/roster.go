package roster

import (
	"fmt"
	"strings"

	"github.com/hupe1980/llmcouncil/core"
	"github.com/samber/lo"
)

// Roster is the fixed set of participants of every discussion.
type Roster struct {
	Chairman core.Agent
	Members  []core.Agent
}

// New validates and assembles a roster. Member order is preserved.
func New(chairman core.Agent, members ...core.Agent) (*Roster, error) {
	if chairman == nil || len(members) == 0 {
		return nil, core.ErrEmptyRoster
	}
	if err := validateNames(chairman.Name(), lo.Map(members, func(m core.Agent, _ int) string { return m.Name() })); err != nil {
		return nil, err
	}
	return &Roster{Chairman: chairman, Members: members}, nil
}

// Info lists every participant, chairman first.
func (r *Roster) Info() []core.AgentInfo {
	return append(
		[]core.AgentInfo{core.InfoOf(r.Chairman)},
		lo.Map(r.Members, func(m core.Agent, _ int) core.AgentInfo { return core.InfoOf(m) })...,
	)
}

// validateNames enforces non-empty, distinct participant names, chairman
// included. Members may not use the chairman's response label, which would
// collide within a round.
func validateNames(chairman string, members []string) error {
	if strings.TrimSpace(chairman) == "" {
		return fmt.Errorf("%w: chairman name must not be empty", core.ErrEmptyRoster)
	}
	for i, name := range members {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: member %d has no name", core.ErrEmptyRoster, i+1)
		}
		if name == core.ChairmanLabel {
			return fmt.Errorf("%w: %q is reserved for the chairman", core.ErrDuplicateParticipant, name)
		}
	}
	if dups := lo.FindDuplicates(append([]string{chairman}, members...)); len(dups) > 0 {
		return fmt.Errorf("%w: %s", core.ErrDuplicateParticipant, strings.Join(dups, ", "))
	}
	return nil
}
