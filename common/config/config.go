package config

import (
	"github.com/ZiadElshayeb/workky/common/env"
)

var (
	// Upstream completion service. The API key is required; its absence is a
	// configuration error surfaced to the caller as a 500.
	LLMBaseURL = env.String("LLM_BASE_URL", "https://api.openai.com/v1")
	LLMAPIKey  = env.String("LLM_API_KEY", "")

	// Best-effort status push to the dashboard backend.
	AgentLogURL = env.String("AGENT_LOG_URL", "http://localhost:5000/api/agent-log")

	// Seconds to pause after the waiting message is committed, so the voice
	// consumer's TTS can start speaking before the answer stream arrives.
	TTSStallSeconds = env.Int("TTS_STALL_SECONDS", 3)

	// Offset of the business's local timezone from UTC, consumed by the
	// calendar collaborator for business-hours math.
	LocalUTCOffsetHours = env.Int("LOCAL_UTC_OFFSET_HOURS", 2)

	// Shared volume holding token.json and business_config.json.
	DataDir = env.String("DATA_DIR", "./data")

	DebugEnabled = env.Bool("DEBUG", false)

	// RelayTimeout limits a whole upstream call in seconds; 0 means no limit,
	// which streaming requests rely on.
	RelayTimeout = env.Int("RELAY_TIMEOUT", 0)
)
