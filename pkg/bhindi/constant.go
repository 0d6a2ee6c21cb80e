package bhindi

import "time"

const (
	DefaultBaseURL        = "https://api.bhindi.io"
	DefaultChatTimeout    = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second

	// SearchAgentID is the agent enabled before every search.
	SearchAgentID = "perplexity"

	pathChat           = "/chat"
	pathAddAgent       = "/agents/add"
	pathCreateSchedule = "/scheduler/create"

	searchPrefix = "Search for: "

	LogPrefixSearch = "pkg.bhindi.Search"
)
