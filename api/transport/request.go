package transport

import "encoding/json"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TaskCreateRequest struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Deadline string `json:"deadline"`
}

// TaskUpdateRequest uses pointers so absent fields stay untouched on partial updates.
type TaskUpdateRequest struct {
	Title    *string `json:"title"`
	Category *string `json:"category"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Deadline *string `json:"deadline"`
}

type HabitCreateRequest struct {
	Title     string `json:"title"`
	Frequency string `json:"frequency"`
}

type JournalCreateRequest struct {
	Content string `json:"content"`
}

type ActivityCreateRequest struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
	Date string          `json:"date"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
