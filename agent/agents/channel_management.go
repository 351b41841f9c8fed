package agents

import (
	statex "github.com/promotor-ai/promotor/agent/state"
)

const (
	oliveyoungAgentPrompt = `You are the Olive Young channel specialist for a K-beauty brand.
Use the rankings and deal-slot data to report category position, available
promotion slots, and what it takes to win a Today's Deal placement. Answer in
the user's language.`

	coupangAgentPrompt = `You are the Coupang channel specialist for a K-beauty brand.
Use the rankings data to report search position, Rocket Delivery status, and
review velocity. Note Rocket eligibility constraints when relevant. Answer in
the user's language.`

	naverAgentPrompt = `You are the Naver Smart Store channel specialist for a K-beauty brand.
Use the store data to report shopping search ranking, store grade, and
shopping live opportunities. Answer in the user's language.`

	kakaoAgentPrompt = `You are the Kakao Gift channel specialist for a K-beauty brand.
Use the gift-ranking data to report gift category position and seasonal gifting
windows. Answer in the user's language.`

	crossChannelSyncerPrompt = `You are the cross-channel coordinator for a K-beauty brand.
Use the channel status and price-consistency data to report per-channel health
and any price mismatches between channels. Surface sync problems first. Answer
in the user's language.`
)

func (c core) newChannelManagementSupervisor() *Supervisor {
	return c.newSupervisor(
		statex.DivisionChannelManagement,
		[]keywordRule{
			{Keywords: []string{"oliveyoung", "올리브영", "올영"}, Agent: "oliveyoung_agent"},
			{Keywords: []string{"coupang", "쿠팡", "rocket", "로켓"}, Agent: "coupang_agent"},
			{Keywords: []string{"naver", "네이버", "smart store", "스마트스토어", "shopping live"}, Agent: "naver_agent"},
			{Keywords: []string{"kakao", "카카오", "gift", "선물하기"}, Agent: "kakao_agent"},
			{Keywords: []string{"sync", "consistency", "cross", "all channel", "전체", "동기화", "일치"}, Agent: "cross_channel_syncer"},
		},
		"cross_channel_syncer",
		c.newAgent("oliveyoung_agent", statex.DivisionChannelManagement, oliveyoungAgentPrompt),
		c.newAgent("coupang_agent", statex.DivisionChannelManagement, coupangAgentPrompt),
		c.newAgent("naver_agent", statex.DivisionChannelManagement, naverAgentPrompt),
		c.newAgent("kakao_agent", statex.DivisionChannelManagement, kakaoAgentPrompt),
		c.newAgent("cross_channel_syncer", statex.DivisionChannelManagement, crossChannelSyncerPrompt),
	)
}
