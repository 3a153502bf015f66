package memory

// Log prefixes
const (
	LogPrefixRecordUser = "internal.assistant.memory.RecordUserTurn"
)
