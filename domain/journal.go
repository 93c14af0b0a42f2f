package domain

import "time"

// Sentiment labels assigned by the analyzer.
const (
	SentimentPositive = "Positive"
	SentimentNeutral  = "Neutral"
	SentimentNegative = "Negative"
)

// Defaults applied when the analyzer is unreachable. Journal writes are never
// blocked on analyzer availability.
const (
	FallbackMoodScore = 5
	FallbackSentiment = SentimentNeutral
)

// JournalEntry represents a free-text journal record. MoodScore and
// SentimentLabel are assigned once at creation by the sentiment analyzer and
// are immutable afterwards.
type JournalEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Content        string    `json:"content"`
	MoodScore      int       `json:"mood_score"`
	SentimentLabel string    `json:"sentiment_label"`
	Date           time.Time `json:"date"`
}
