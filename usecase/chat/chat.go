package chat

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aadarsh726/smart-life/domain"
)

const defaultReply = "I'm not sure I understand. Try asking about your 'tasks', 'priority', or for 'motivation'!"

var motivationQuotes = []string{
	"The only way to do great work is to love what you do.",
	"It always seems impossible until it's done.",
	"Don't watch the clock; do what it does. Keep going.",
	"Believe you can and you're halfway there.",
	"Your future is created by what you do today, not tomorrow.",
}

// Keyword sets tested in fixed priority order.
var (
	taskWords       = []string{"task", "list", "what"}
	priorityWords   = []string{"priority", "important", "first"}
	motivationWords = []string{"motivation", "inspired"}
	greetingWords   = []string{"hello", "hi"}
)

// Respond is the pure rule-based responder: lower-case substring matching
// against the keyword sets, first hit wins. It holds no state between calls;
// the injected rand source makes the motivation branch reproducible in tests.
func Respond(message string, pending []domain.Task, rng *rand.Rand) string {
	lower := strings.ToLower(message)

	switch {
	case matchesAny(lower, taskWords):
		return taskListReply(pending)
	case matchesAny(lower, priorityWords):
		return priorityReply(pending)
	case matchesAny(lower, motivationWords):
		return motivationQuotes[rng.Intn(len(motivationQuotes))] + " 💪"
	case matchesAny(lower, greetingWords):
		return "Hello! I've read your task list. Ask me 'What should I do?' or 'What is my priority?'."
	default:
		return defaultReply
	}
}

func taskListReply(pending []domain.Task) string {
	if len(pending) == 0 {
		return "You have no pending tasks. Great job! 🎉"
	}

	const limit = 3
	top := pending
	if len(top) > limit {
		top = top[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d pending tasks. Here are the top ones:", len(pending))
	for _, t := range top {
		fmt.Fprintf(&b, "\n• %s (%s)", t.Title, t.Priority)
	}
	if len(pending) > limit {
		fmt.Fprintf(&b, "\n...and %d more.", len(pending)-limit)
	}
	return b.String()
}

func priorityReply(pending []domain.Task) string {
	for _, t := range pending {
		if t.Priority == domain.PriorityHigh {
			return fmt.Sprintf("🚨 Focal Point: **%s** is your highest priority right now!", t.Title)
		}
	}
	if len(pending) > 0 {
		return fmt.Sprintf("You don't have any 'High' priority tasks, but you should start with **%s**.", pending[0].Title)
	}
	return "No urgent tasks found. Time to relax? ☕"
}

func matchesAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// TaskSource provides the caller's pending tasks for the responder.
type TaskSource interface {
	PendingTasks(ctx context.Context, callerID string) ([]domain.Task, error)
}

type UseCase struct {
	tasks  TaskSource
	rng    *rand.Rand
	mu     sync.Mutex
	logger *zap.Logger
}

func New(tasks TaskSource, rng *rand.Rand, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		rng:    rng,
		logger: logger,
	}
}

// Chat answers one message against the caller's current pending-task snapshot.
func (uc *UseCase) Chat(ctx context.Context, callerID, message string) (string, error) {
	if message == "" {
		return "", domain.NewError(domain.ErrCodeInvalid, "message is required")
	}
	pending, err := uc.tasks.PendingTasks(ctx, callerID)
	if err != nil {
		return "", err
	}

	// rand.Rand is not safe for concurrent use; serialize draws across
	// simultaneous chat requests.
	uc.mu.Lock()
	reply := Respond(message, pending, uc.rng)
	uc.mu.Unlock()
	return reply, nil
}
