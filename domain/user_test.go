package domain

import "testing"

func TestAwardXPCarryOver(t *testing.T) {
	u := &User{Level: 1, XP: 60}
	u.AwardXP(50)

	if u.Level != 2 {
		t.Errorf("expected level 2, got %d", u.Level)
	}
	if u.XP != 10 {
		t.Errorf("expected 10 XP carried over, got %d", u.XP)
	}
}

func TestAwardXPNoLevelUp(t *testing.T) {
	u := &User{Level: 2, XP: 100}
	u.AwardXP(50)

	if u.Level != 2 {
		t.Errorf("expected level 2, got %d", u.Level)
	}
	if u.XP != 150 {
		t.Errorf("expected 150 XP, got %d", u.XP)
	}
}

func TestAwardXPMultipleLevels(t *testing.T) {
	// 1*100 + 2*100 = 300 needed to reach level 3 from zero.
	u := &User{Level: 1, XP: 290}
	u.AwardXP(50)

	if u.Level != 3 {
		t.Errorf("expected level 3, got %d", u.Level)
	}
	if u.XP != 40 {
		t.Errorf("expected 40 XP, got %d", u.XP)
	}
}

func TestAwardXPIgnoresNonPositive(t *testing.T) {
	u := &User{Level: 1, XP: 60}
	u.AwardXP(0)
	u.AwardXP(-50)

	if u.Level != 1 || u.XP != 60 {
		t.Errorf("expected unchanged user, got level=%d xp=%d", u.Level, u.XP)
	}
}
