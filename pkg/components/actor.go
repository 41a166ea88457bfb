package components

// ActorKind 实体种类标签
type ActorKind int

const (
	KindGrass ActorKind = iota
	KindRoad
	KindWater
	KindVehicle
	KindLog
	KindBrush
	KindGoal
	KindPlayer
)

var actorKindNames = [...]string{
	KindGrass:   "grass",
	KindRoad:    "road",
	KindWater:   "water",
	KindVehicle: "vehicle",
	KindLog:     "log",
	KindBrush:   "brush",
	KindGoal:    "goal",
	KindPlayer:  "player",
}

func (k ActorKind) String() string {
	if k < 0 || int(k) >= len(actorKindNames) {
		return "unknown"
	}
	return actorKindNames[k]
}

// IsObstacle 车辆和木头是会移动的障碍物
func (k ActorKind) IsObstacle() bool {
	return k == KindVehicle || k == KindLog
}

// ActorComponent 所有游戏实体共有的种类标签
type ActorComponent struct {
	Kind ActorKind
	// Lane 所在车道下标（自底向上），玩家为 -1
	Lane int
}
