package components

// AnimationComponent 管理基于 spritesheet 的帧动画（青蛙跳跃）
//
// 只保存帧游标和计时状态，帧图片由渲染端按 SpriteComponent 的分组查表，
// 因此模拟层不依赖任何图像资源。
type AnimationComponent struct {
	FrameCount   int     // 动画帧数
	CurrentFrame int     // 当前显示的帧索引(0-based)
	FrameSpeed   float64 // 帧切换的最小间隔(秒)
	FrameCounter float64 // 距上次切换累计的时间(秒)

	// 一次按键触发一轮动画，持续 CycleSteps 个逻辑帧后自动停止
	Active     bool
	StepCount  int
	CycleSteps int
}
