package rules

// checkForDeath looks at the cell the snake head is about to enter and
// returns why entering it would kill the snake, or "" when the move is legal.
// Possible causes are wall collision and snake body collision.
func checkForDeath(grid Grid, s *Snake, head Point) string {
	if deathByOutOfBounds(head, grid) {
		return DeathCauseWallCollision
	}
	for _, b := range s.Body {
		if deathByBodyCollision(head, b.Point) {
			return DeathCauseSnakeSelfCollision
		}
	}
	return ""
}

func deathByBodyCollision(head, body Point) bool {
	return head.Equal(body)
}

func deathByOutOfBounds(head Point, grid Grid) bool {
	return !grid.Contains(head.X, head.Y)
}
