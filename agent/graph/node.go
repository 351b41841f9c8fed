package graph

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

// NodeID identifies one node of the orchestration graph. The set is closed:
// the transition function can only ever name these nodes, so the graph
// cannot wander into an undeclared state.
type NodeID int

const (
	NodeCoordinator NodeID = iota
	NodeStrategicPlanning
	NodeMarketIntelligence
	NodeChannelManagement
	NodeAnalytics
	NodeOperations
	NodeAggregator
	NodeError
	NodeEnd
)

func (n NodeID) String() string {
	switch n {
	case NodeCoordinator:
		return "coordinator"
	case NodeStrategicPlanning:
		return "strategic_planning"
	case NodeMarketIntelligence:
		return "market_intelligence"
	case NodeChannelManagement:
		return "channel_management"
	case NodeAnalytics:
		return "analytics"
	case NodeOperations:
		return "operations"
	case NodeAggregator:
		return "aggregator"
	case NodeError:
		return "error"
	case NodeEnd:
		return "end"
	default:
		return "unknown"
	}
}

var divisionNodes = map[statex.Division]NodeID{
	statex.DivisionStrategicPlanning:  NodeStrategicPlanning,
	statex.DivisionMarketIntelligence: NodeMarketIntelligence,
	statex.DivisionChannelManagement:  NodeChannelManagement,
	statex.DivisionAnalytics:          NodeAnalytics,
	statex.DivisionOperations:         NodeOperations,
}

var nodeDivisions = map[NodeID]statex.Division{
	NodeStrategicPlanning:  statex.DivisionStrategicPlanning,
	NodeMarketIntelligence: statex.DivisionMarketIntelligence,
	NodeChannelManagement:  statex.DivisionChannelManagement,
	NodeAnalytics:          statex.DivisionAnalytics,
	NodeOperations:         statex.DivisionOperations,
}

func nodeForDivision(d statex.Division) (NodeID, bool) {
	n, ok := divisionNodes[d]
	return n, ok
}

func divisionForNode(n NodeID) (statex.Division, bool) {
	d, ok := nodeDivisions[n]
	return d, ok
}
