package game

// Snapshot captures the observable engine state for determinism tests.
type Snapshot struct {
	State     State
	Count     int
	Score     int
	HighScore int
	Length    int
	HeadX     int
	HeadY     int
	DirX      int
	DirY      int
	FruitX    int
	FruitY    int
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Count:     g.count,
		Score:     g.score,
		HighScore: g.highScore,
		Length:    g.snake.length,
		HeadX:     g.snake.head.X,
		HeadY:     g.snake.head.Y,
		DirX:      g.snake.dir.X,
		DirY:      g.snake.dir.Y,
		FruitX:    g.fruit.pos.X,
		FruitY:    g.fruit.pos.Y,
	}
}
