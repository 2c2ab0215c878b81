package domain

// Source tags where a result came from. Fallback data is shaped exactly like
// server data; the tag is the only way for a caller to tell them apart.
type Source string

const (
	SourceServer   Source = "server"
	SourceFallback Source = "fallback"
)
