package game

import (
	"testing"

	"github.com/lox/draftforbots/draft"
)

func TestCoversFixedOnly(t *testing.T) {
	t.Parallel()
	fixed := draft.NewResources(draft.Steel, draft.Steel, draft.Timber)
	if !covers(fixed, nil, draft.Of(draft.Steel, 2)) {
		t.Error("two steel should be covered")
	}
	if covers(fixed, nil, draft.Of(draft.Steel, 3)) {
		t.Error("three steel should not be covered")
	}
	if !covers(fixed, nil, draft.Resources{}) {
		t.Error("an empty need is always covered")
	}
}

func TestCoversSingleChoice(t *testing.T) {
	t.Parallel()
	choices := [][]draft.Resources{
		{draft.Of(draft.Steel, 1), draft.Of(draft.Timber, 1)},
	}
	if !covers(draft.Resources{}, choices, draft.Of(draft.Steel, 1)) {
		t.Error("choice should supply steel")
	}
	if !covers(draft.Resources{}, choices, draft.Of(draft.Timber, 1)) {
		t.Error("choice should supply timber")
	}
	if covers(draft.Resources{}, choices, draft.NewResources(draft.Steel, draft.Timber)) {
		t.Error("one card cannot supply both options at once")
	}
}

func TestCoversChainsChoices(t *testing.T) {
	t.Parallel()
	// Forcing the chain: the first group must give steel so the second can
	// give timber.
	choices := [][]draft.Resources{
		{draft.Of(draft.Steel, 1), draft.Of(draft.Timber, 1)},
		{draft.Of(draft.Timber, 1), draft.Of(draft.Concrete, 1)},
	}
	if !covers(draft.Resources{}, choices, draft.NewResources(draft.Steel, draft.Timber)) {
		t.Error("steel from the first group, timber from the second")
	}
	if !covers(draft.Resources{}, choices, draft.NewResources(draft.Timber, draft.Timber)) {
		t.Error("both groups can give timber")
	}
	if covers(draft.Resources{}, choices, draft.NewResources(draft.Steel, draft.Concrete, draft.Timber)) {
		t.Error("three goods from two groups")
	}
}

func TestCoversSkipsUselessGroups(t *testing.T) {
	t.Parallel()
	// The media group contributes nothing toward the need; the search must
	// still find the cover behind it.
	choices := [][]draft.Resources{
		{draft.Of(draft.Media, 1), draft.Of(draft.Software, 1)},
		{draft.Of(draft.Steel, 1)},
	}
	if !covers(draft.Of(draft.Timber, 1), choices, draft.NewResources(draft.Timber, draft.Steel)) {
		t.Error("irrelevant group blocked the search")
	}
}

func TestCoversMixesFixedAndChoices(t *testing.T) {
	t.Parallel()
	fixed := draft.Of(draft.Concrete, 2)
	choices := [][]draft.Resources{
		{draft.Of(draft.Concrete, 1), draft.Of(draft.Silicon, 1)},
	}
	if !covers(fixed, choices, draft.Of(draft.Concrete, 3)) {
		t.Error("fixed plus choice should reach three concrete")
	}
	if !covers(fixed, choices, draft.NewResources(draft.Concrete, draft.Concrete, draft.Silicon)) {
		t.Error("choice should top up with silicon instead")
	}
	if covers(fixed, choices, draft.Of(draft.Concrete, 4)) {
		t.Error("four concrete is out of reach")
	}
}

func TestCoversMultiUnitOption(t *testing.T) {
	t.Parallel()
	// A single option may carry more than one unit.
	choices := [][]draft.Resources{
		{draft.Of(draft.Timber, 2), draft.Of(draft.Steel, 1)},
	}
	if !covers(draft.Resources{}, choices, draft.Of(draft.Timber, 2)) {
		t.Error("double output not applied")
	}
}
