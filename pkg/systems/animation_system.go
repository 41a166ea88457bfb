package systems

import (
	"github.com/decker502/frogger/pkg/components"
	"github.com/decker502/frogger/pkg/ecs"
)

// AnimationSystem 管理青蛙的跳跃帧动画
//
// 一次方向键按下触发一轮动画：持续 CycleSteps 个逻辑帧，
// 期间距上次换帧超过 FrameSpeed 秒就前进一帧（末帧后回到第 0 帧）。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

func (s *AnimationSystem) animations() []*components.AnimationComponent {
	ids := ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager)
	anims := make([]*components.AnimationComponent, 0, len(ids))
	for _, id := range ids {
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
			anims = append(anims, anim)
		}
	}
	return anims
}

// Trigger 开始（或继续）一轮动画
func (s *AnimationSystem) Trigger(id ecs.EntityID) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok {
		return
	}
	anim.Active = true
}

// BeginStep 在每个逻辑帧开始时推进活动动画的步数，满 CycleSteps 后停止
func (s *AnimationSystem) BeginStep() {
	for _, anim := range s.animations() {
		if !anim.Active {
			continue
		}
		anim.StepCount++
		if anim.StepCount >= anim.CycleSteps {
			anim.StepCount = 0
			anim.Active = false
		}
	}
}

// Update 在逻辑帧末尾推进帧游标
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, anim := range s.animations() {
		if !anim.Active || anim.FrameCount == 0 {
			continue
		}

		anim.FrameCounter += deltaTime
		if anim.FrameCounter > anim.FrameSpeed {
			anim.FrameCounter = 0
			anim.CurrentFrame = (anim.CurrentFrame + 1) % anim.FrameCount
		}
	}
}
