package game

import "github.com/decker502/frogger/pkg/config"

// EndPhase 结束画面的阶段
type EndPhase int

const (
	// EndPhaseDeadFrog 失败后先在地图上显示死亡青蛙
	EndPhaseDeadFrog EndPhase = iota
	// EndPhaseBanner 胜负横幅
	EndPhaseBanner
	// EndPhaseDone 播放完毕，应当退出
	EndPhaseDone
)

func (p EndPhase) String() string {
	switch p {
	case EndPhaseDeadFrog:
		return "deadFrog"
	case EndPhaseBanner:
		return "banner"
	case EndPhaseDone:
		return "done"
	}
	return "unknown"
}

// EndSequence 一局结束后的计时
//
// 失败：死亡青蛙停留 LoseDelay 秒，然后横幅停留 BannerHold 秒；
// 胜利：直接显示横幅 BannerHold 秒。
// 两个前端（Ebitengine 和终端）共用这一计时。
type EndSequence struct {
	outcome RoundOutcome
	timing  config.EndScreenConfig
	elapsed float64
}

// NewEndSequence 开始结束画面计时
func NewEndSequence(outcome RoundOutcome, timing config.EndScreenConfig) *EndSequence {
	return &EndSequence{outcome: outcome, timing: timing}
}

// Outcome 本局结果
func (e *EndSequence) Outcome() RoundOutcome {
	return e.outcome
}

// Advance 累计时间并返回新的阶段
func (e *EndSequence) Advance(deltaTime float64) EndPhase {
	e.elapsed += deltaTime
	return e.Phase()
}

// Phase 当前阶段
func (e *EndSequence) Phase() EndPhase {
	bannerStart := 0.0
	if e.outcome == RoundLost {
		if e.elapsed < e.timing.LoseDelay {
			return EndPhaseDeadFrog
		}
		bannerStart = e.timing.LoseDelay
	}
	if e.elapsed < bannerStart+e.timing.BannerHold {
		return EndPhaseBanner
	}
	return EndPhaseDone
}

// Title 横幅标题
func (e *EndSequence) Title() string {
	if e.outcome == RoundWon {
		return "You Win!"
	}
	return "You Lose!"
}
