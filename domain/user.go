package domain

import "time"

// User represents an authenticated identity in the platform. Level and XP
// track the gamified progress awarded on task completion.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// XPPerTask is the fixed reward for completing a task.
const XPPerTask = 50

// AwardXP adds the given amount and applies the level-up rule. Leftover XP
// carries over into the new level instead of resetting to zero, so a user at
// level 1 with 60 XP who earns 50 ends at level 2 with 10 XP.
func (u *User) AwardXP(amount int) {
	if u == nil || amount <= 0 {
		return
	}
	u.XP += amount
	for u.XP >= u.Level*100 {
		u.XP -= u.Level * 100
		u.Level++
	}
}
