package routing

import (
	"unicode/utf8"

	statex "github.com/promotor-ai/promotor/agent/state"
)

// shortQueryLimit is the character count under which a query may drop to
// the cheap tier when the task is not in the always-expensive set. Counted
// in runes so Korean queries are measured the same as English ones.
const shortQueryLimit = 50

// tierFreeTasks need no model at all: pure data lookups answered straight
// from provider output.
var tierFreeTasks = map[statex.TaskType]struct{}{
	statex.TaskInventoryMonitoring: {},
	statex.TaskChannelStatus:       {},
}

// tierCheapTasks are routine enough for the mini model.
var tierCheapTasks = map[statex.TaskType]struct{}{
	statex.TaskPriceMonitoring:     {},
	statex.TaskChecklistValidation: {},
}

// alwaysFullTasks never drop to the cheap tier on query length alone.
var alwaysFullTasks = map[statex.TaskType]struct{}{
	statex.TaskPromotionPlanning: {},
	statex.TaskMultiDivision:     {},
}

// SelectTier picks the model cost tier for a request. Rules are checked in
// order and the first match wins; there are no overrides or feedback loops.
func SelectTier(task statex.TaskType, query string) statex.Tier {
	if _, ok := tierFreeTasks[task]; ok {
		return statex.TierFree
	}
	if _, ok := tierCheapTasks[task]; ok {
		return statex.TierCheap
	}
	if utf8.RuneCountInString(query) < shortQueryLimit {
		if _, ok := alwaysFullTasks[task]; !ok {
			return statex.TierCheap
		}
	}
	return statex.TierFull
}
