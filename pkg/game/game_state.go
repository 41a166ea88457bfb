package game

// RoundOutcome 一局游戏的结果
type RoundOutcome int

const (
	RoundPlaying RoundOutcome = iota
	RoundWon
	RoundLost
)

func (o RoundOutcome) String() string {
	switch o {
	case RoundPlaying:
		return "playing"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	}
	return "unknown"
}

// GameState 存储一局游戏的分数和结果
//
// 由 World 持有，开局时创建，只有重新启动程序才会重置。
// 分数没有上下限，可以为负。
type GameState struct {
	Score   int
	Outcome RoundOutcome
}

// NewGameState 以初始分数开局
func NewGameState(initialScore int) *GameState {
	return &GameState{Score: initialScore, Outcome: RoundPlaying}
}

// AddScore 调整分数（delta 可为负）
func (gs *GameState) AddScore(delta int) {
	gs.Score += delta
}

// IsTerminal 是否已分出胜负
func (gs *GameState) IsTerminal() bool {
	return gs.Outcome != RoundPlaying
}

// Won 是否胜利
func (gs *GameState) Won() bool { return gs.Outcome == RoundWon }

// Lost 是否失败
func (gs *GameState) Lost() bool { return gs.Outcome == RoundLost }

// Finish 设置本局结果
//
// 先到先得：已经有结果时忽略，返回 false。
func (gs *GameState) Finish(outcome RoundOutcome) bool {
	if gs.IsTerminal() || outcome == RoundPlaying {
		return false
	}
	gs.Outcome = outcome
	return true
}
