package swordrush

import "testing"

func TestRankBoundaries(t *testing.T) {
	tests := []struct {
		combo int
		want  Rank
	}{
		{0, RankD},
		{1, RankD},
		{2, RankC},
		{3, RankC},
		{4, RankB},
		{6, RankB},
		{7, RankA},
		{9, RankA},
		{10, RankS},
		{15, RankSS},
		{19, RankSS},
		{20, RankSSS},
		{500, RankSSS},
		{-3, RankD},
	}
	for _, tt := range tests {
		if got := RankOf(tt.combo); got != tt.want {
			t.Errorf("RankOf(%d) = %v, want %v", tt.combo, got, tt.want)
		}
	}
}

func TestRankMonotonic(t *testing.T) {
	prev := RankOf(0)
	for c := 1; c <= 100; c++ {
		r := RankOf(c)
		if r < prev {
			t.Fatalf("rank decreased at combo %d: %v -> %v", c, prev, r)
		}
		if r < RankD || r > RankSSS {
			t.Fatalf("RankOf(%d) = %d out of range", c, r)
		}
		prev = r
	}
}

func TestRankTable(t *testing.T) {
	tests := []struct {
		rank     Rank
		name     string
		mult     int
		interval int64
		top      bool
	}{
		{RankD, "D", 1, 1500, false},
		{RankC, "C", 1, 1350, false},
		{RankB, "B", 1, 1200, false},
		{RankA, "A", 2, 1000, false},
		{RankS, "S", 3, 850, true},
		{RankSS, "SS", 4, 700, true},
		{RankSSS, "SSS", 5, 600, true},
	}
	for _, tt := range tests {
		if tt.rank.String() != tt.name {
			t.Errorf("%d.String() = %q, want %q", tt.rank, tt.rank.String(), tt.name)
		}
		if tt.rank.Multiplier() != tt.mult {
			t.Errorf("%s multiplier = %d, want %d", tt.name, tt.rank.Multiplier(), tt.mult)
		}
		if tt.rank.SpawnInterval() != tt.interval {
			t.Errorf("%s interval = %d, want %d", tt.name, tt.rank.SpawnInterval(), tt.interval)
		}
		if tt.rank.TopTier() != tt.top {
			t.Errorf("%s TopTier = %v, want %v", tt.name, tt.rank.TopTier(), tt.top)
		}
	}
}

func TestComboKillScoresAfterIncrement(t *testing.T) {
	var c Combo
	want := []int{1, 1, 1, 1, 1, 1, 2, 2, 2, 3}
	for i, w := range want {
		if got := c.Kill(int64(i * 100)); got != w {
			t.Errorf("kill %d scored %d, want %d", i+1, got, w)
		}
	}
	if c.Count != len(want) {
		t.Errorf("Count = %d, want %d", c.Count, len(want))
	}
	if c.LastKill != 900 {
		t.Errorf("LastKill = %d, want 900", c.LastKill)
	}
}

func TestComboExpire(t *testing.T) {
	c := Combo{Count: 5, LastKill: 1000}

	if c.Expire(4000, 3000) {
		t.Fatal("combo expired at exactly the window")
	}
	if !c.Expire(4001, 3000) {
		t.Fatal("combo did not expire past the window")
	}
	if c.Count != 0 {
		t.Errorf("Count = %d after expiry", c.Count)
	}
	if c.Expire(10000, 3000) {
		t.Error("empty combo reported an expiry")
	}
}
