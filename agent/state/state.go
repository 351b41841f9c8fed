package state

import (
	"strings"
	"time"
)

// Division is one of the fixed organizational groupings. The declaration
// order here is the canonical ordering used by routing tables and by the
// aggregator when rendering sections.
type Division string

const (
	DivisionStrategicPlanning  Division = "strategic_planning"
	DivisionMarketIntelligence Division = "market_intelligence"
	DivisionChannelManagement  Division = "channel_management"
	DivisionAnalytics          Division = "analytics"
	DivisionOperations         Division = "operations"
)

// AllDivisions returns every division in declaration order.
func AllDivisions() []Division {
	return []Division{
		DivisionStrategicPlanning,
		DivisionMarketIntelligence,
		DivisionChannelManagement,
		DivisionAnalytics,
		DivisionOperations,
	}
}

// Title renders the division name for user-facing section headers,
// e.g. "strategic_planning" -> "Strategic Planning".
func (d Division) Title() string {
	parts := strings.Split(string(d), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// TaskType is the classified intent of a user query. Closed set; one per
// distinct business capability.
type TaskType string

const (
	// Strategic Planning
	TaskPromotionPlanning  TaskType = "promotion_planning"
	TaskTimelineManagement TaskType = "timeline_management"
	TaskBudgetAllocation   TaskType = "budget_allocation"

	// Market Intelligence
	TaskNewsScouting       TaskType = "news_scouting"
	TaskCompetitorAnalysis TaskType = "competitor_analysis"
	TaskIngredientTrends   TaskType = "ingredient_trends"
	TaskSeasonalAnalysis   TaskType = "seasonal_analysis"

	// Channel Management
	TaskChannelStatus  TaskType = "channel_status"
	TaskPriceSync      TaskType = "price_sync"
	TaskInventoryCheck TaskType = "inventory_check"
	TaskCrossChannel   TaskType = "cross_channel"

	// Analytics
	TaskSentimentAnalysis  TaskType = "sentiment_analysis"
	TaskPromotionReview    TaskType = "promotion_review"
	TaskBundleAnalysis     TaskType = "bundle_analysis"
	TaskMarginCalculation  TaskType = "margin_calculation"
	TaskStockoutPrediction TaskType = "stockout_prediction"
	TaskInfluencerROI      TaskType = "influencer_roi"
	TaskAttribution        TaskType = "attribution"

	// Operations
	TaskInventoryMonitoring TaskType = "inventory_monitoring"
	TaskPriceMonitoring     TaskType = "price_monitoring"
	TaskChecklistValidation TaskType = "checklist_validation"

	// General
	TaskGeneralQuery  TaskType = "general_query"
	TaskMultiDivision TaskType = "multi_division"
)

// Tier is the model cost tier chosen for a request.
type Tier string

const (
	TierFree  Tier = "tier1_free"  // no LLM call at all
	TierCheap Tier = "tier2_cheap" // mini model
	TierFull  Tier = "tier3_full"  // full model
)

// Channel is an e-commerce sales channel.
type Channel string

const (
	ChannelOliveyoung Channel = "oliveyoung"
	ChannelCoupang    Channel = "coupang"
	ChannelNaver      Channel = "naver"
	ChannelKakao      Channel = "kakao"
)

// DefaultChannels returns the channel set assumed when a request does not
// name its active channels.
func DefaultChannels() []Channel {
	return []Channel{ChannelOliveyoung, ChannelCoupang, ChannelNaver, ChannelKakao}
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ToolResult is the outcome of one external data-provider call. A failed
// call carries Error and degrades the agent's answer instead of aborting
// the request.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// DivisionResult is one division's contribution to the final response.
type DivisionResult struct {
	Division    Division     `json:"division"`
	AgentName   string       `json:"agent_name"`
	Summary     string       `json:"summary"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
	Success     bool         `json:"success"`
	Error       string       `json:"error,omitempty"`
	Timestamp   time.Time    `json:"timestamp"`
}

// ProcessingState is the per-request record threaded through the
// orchestration graph. It is treated as an immutable value: every update
// goes through a With* method that returns a copy, so two graph steps can
// never observe each other's partial writes.
type ProcessingState struct {
	UserID         string
	BrandID        string
	ActiveChannels []Channel

	Messages []Message

	TaskType TaskType
	Tier     Tier
	CacheKey string

	NextDivisions      []Division
	CompletedDivisions []Division
	Results            map[Division]DivisionResult

	CurrentDivision Division
	CurrentAgent    string

	Err        string
	RetryCount int
}

// NewProcessingState builds the initial state for one request turn.
func NewProcessingState(userID, brandID string, channels []Channel, query string) ProcessingState {
	if strings.TrimSpace(userID) == "" {
		userID = "default_user"
	}
	if strings.TrimSpace(brandID) == "" {
		brandID = "default_brand"
	}
	if len(channels) == 0 {
		channels = DefaultChannels()
	}

	st := ProcessingState{
		UserID:         userID,
		BrandID:        brandID,
		ActiveChannels: append([]Channel(nil), channels...),
		TaskType:       TaskGeneralQuery,
		Tier:           TierFull,
		Results:        map[Division]DivisionResult{},
	}
	if strings.TrimSpace(query) != "" {
		st.Messages = []Message{{Role: RoleUser, Content: query}}
	}
	return st
}

// WithHistory prepends prior conversation messages before the current turn.
func (s ProcessingState) WithHistory(history []Message) ProcessingState {
	out := s.clone()
	merged := make([]Message, 0, len(history)+len(s.Messages))
	merged = append(merged, history...)
	merged = append(merged, s.Messages...)
	out.Messages = merged
	return out
}

// WithMessage appends a message to the conversation log.
func (s ProcessingState) WithMessage(m Message) ProcessingState {
	out := s.clone()
	out.Messages = append(out.Messages, m)
	return out
}

// WithRouting records the coordinator's routing decision.
func (s ProcessingState) WithRouting(task TaskType, tier Tier, cacheKey string, divisions []Division) ProcessingState {
	out := s.clone()
	out.TaskType = task
	out.Tier = tier
	out.CacheKey = cacheKey
	out.NextDivisions = append([]Division(nil), divisions...)
	return out
}

// WithResult records a division's result and marks the division completed.
// A division joins CompletedDivisions at most once.
func (s ProcessingState) WithResult(d Division, r DivisionResult) ProcessingState {
	out := s.clone()
	out.Results[d] = r
	out.CurrentDivision = d
	out.CurrentAgent = r.AgentName
	for _, done := range out.CompletedDivisions {
		if done == d {
			return out
		}
	}
	out.CompletedDivisions = append(out.CompletedDivisions, d)
	return out
}

// WithError sets the request-level error that sends the graph to the error
// terminal.
func (s ProcessingState) WithError(msg string) ProcessingState {
	out := s.clone()
	out.Err = msg
	return out
}

// WithRetry increments the retry counter.
func (s ProcessingState) WithRetry() ProcessingState {
	out := s.clone()
	out.RetryCount++
	return out
}

// WithCurrentAgent records the unit currently handling the request.
func (s ProcessingState) WithCurrentAgent(name string) ProcessingState {
	out := s.clone()
	out.CurrentAgent = name
	return out
}

// LastUserMessage returns the content of the most recent user message.
func (s ProcessingState) LastUserMessage() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleUser {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// LastAssistantMessage returns the content of the most recent assistant
// message, normally the aggregated response.
func (s ProcessingState) LastAssistantMessage() (string, bool) {
	for i := len(s.Messages) - 1; i >= 0; i-- {
		if s.Messages[i].Role == RoleAssistant {
			return s.Messages[i].Content, true
		}
	}
	return "", false
}

// PendingDivisions returns the routed divisions not yet completed, in
// routing order.
func (s ProcessingState) PendingDivisions() []Division {
	var pending []Division
	for _, d := range s.NextDivisions {
		if !s.Completed(d) {
			pending = append(pending, d)
		}
	}
	return pending
}

// Completed reports whether the division already finished processing.
func (s ProcessingState) Completed(d Division) bool {
	for _, done := range s.CompletedDivisions {
		if done == d {
			return true
		}
	}
	return false
}

// DivisionsUsed lists completed divisions as strings, in completion order.
func (s ProcessingState) DivisionsUsed() []string {
	out := make([]string, 0, len(s.CompletedDivisions))
	for _, d := range s.CompletedDivisions {
		out = append(out, string(d))
	}
	return out
}

func (s ProcessingState) clone() ProcessingState {
	out := s
	out.ActiveChannels = append([]Channel(nil), s.ActiveChannels...)
	out.Messages = append([]Message(nil), s.Messages...)
	out.NextDivisions = append([]Division(nil), s.NextDivisions...)
	out.CompletedDivisions = append([]Division(nil), s.CompletedDivisions...)
	results := make(map[Division]DivisionResult, len(s.Results)+1)
	for k, v := range s.Results {
		results[k] = v
	}
	out.Results = results
	return out
}
