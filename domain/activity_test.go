package domain

import (
	"encoding/json"
	"testing"
)

func TestValidateActivityData(t *testing.T) {
	cases := []struct {
		name    string
		typ     string
		data    string
		wantErr bool
	}{
		{"meal", ActivityMeal, `{"name":"Lunch","calories":600,"macros":{"p":20,"c":50,"f":15}}`, false},
		{"workout", ActivityWorkout, `{"type":"Running","duration":30,"caloriesBurned":300}`, false},
		{"work session", ActivityWorkSession, `{"duration":120,"focusScore":8,"output":"Coding"}`, false},
		{"unknown type", "SLEEP", `{}`, true},
		{"malformed", ActivityMeal, `{"calories":"six hundred"}`, true},
		{"empty", ActivityWorkout, ``, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateActivityData(tc.typ, json.RawMessage(tc.data))
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %s", tc.name)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
