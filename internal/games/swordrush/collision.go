package swordrush

// resolveCollisions runs the three overlap passes in their fixed order:
// blade vs enemies, body vs enemies, body vs projectiles. Entities hit in an
// earlier pass are skipped by later ones, and removals are applied after
// each scan.
func (s *Sim) resolveCollisions(now int64, ev *Events) {
	removed := make([]bool, len(s.enemies))

	if s.weapon.DamageActive() {
		blade := s.weapon.Hitbox(s.player)
		for i := range s.enemies {
			if blade.Intersects(s.enemies[i].Rect()) {
				removed[i] = true
				s.score += s.combo.Kill(now)
				s.stats.Kills++
				ev.Kills++
			}
		}
	}

	body := s.player.Rect()
	for i := range s.enemies {
		if s.gameOver {
			break
		}
		if removed[i] || !body.Intersects(s.enemies[i].Rect()) {
			continue
		}
		removed[i] = true
		s.damage(ev)
	}
	s.enemies = compact(s.enemies, removed)

	hitProjectiles := make([]bool, len(s.projectiles))
	for i := range s.projectiles {
		if s.gameOver {
			break
		}
		if !body.Intersects(s.projectiles[i].Rect()) {
			continue
		}
		hitProjectiles[i] = true
		s.damage(ev)
	}
	s.projectiles = compact(s.projectiles, hitProjectiles)
}

// damage applies one hit to the player: a life is lost and the combo breaks.
// Reaching zero lives ends the run exactly once.
func (s *Sim) damage(ev *Events) {
	ev.Hits++
	if s.player.Lives > 0 {
		s.player.Lives--
	}
	if s.combo.Count > 0 {
		ev.ComboLost = true
	}
	s.combo.Break()
	if s.player.Lives == 0 && !s.gameOver {
		s.gameOver = true
		ev.GameOver = true
	}
}
