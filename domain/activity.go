package domain

import (
	"encoding/json"
	"time"
)

// Activity types.
const (
	ActivityMeal        = "MEAL"
	ActivityWorkout     = "WORKOUT"
	ActivityWorkSession = "WORK_SESSION"
)

// ActivityLog represents one logged life event. Data is a tagged variant: its
// shape is fixed by Type and validated on create.
type ActivityLog struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	Date      time.Time       `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

// MealData is the payload shape for MEAL activities.
type MealData struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Macros   struct {
		Protein int `json:"p"`
		Carbs   int `json:"c"`
		Fat     int `json:"f"`
	} `json:"macros"`
}

// WorkoutData is the payload shape for WORKOUT activities.
type WorkoutData struct {
	Kind           string `json:"type"`
	DurationMin    int    `json:"duration"`
	CaloriesBurned int    `json:"caloriesBurned"`
}

// WorkSessionData is the payload shape for WORK_SESSION activities.
type WorkSessionData struct {
	DurationMin int    `json:"duration"`
	FocusScore  int    `json:"focusScore"`
	Output      string `json:"output"`
}

// ValidActivityType reports whether t is one of the known activity types.
func ValidActivityType(t string) bool {
	switch t {
	case ActivityMeal, ActivityWorkout, ActivityWorkSession:
		return true
	}
	return false
}

// ValidateActivityData checks that raw decodes into the shape required by the
// activity type. Unknown types and malformed payloads yield ErrInvalidPayload.
func ValidateActivityData(activityType string, raw json.RawMessage) error {
	if len(raw) == 0 {
		return ErrInvalidPayload
	}
	var err error
	switch activityType {
	case ActivityMeal:
		var d MealData
		err = json.Unmarshal(raw, &d)
	case ActivityWorkout:
		var d WorkoutData
		err = json.Unmarshal(raw, &d)
	case ActivityWorkSession:
		var d WorkSessionData
		err = json.Unmarshal(raw, &d)
	default:
		return ErrInvalidPayload
	}
	if err != nil {
		return WrapError(ErrCodeInvalid, "malformed activity data", err)
	}
	return nil
}
