package game

import "github.com/decker502/frogger/pkg/ecs"

// TerrainKind 车道地形
type TerrainKind int

const (
	TerrainGrass TerrainKind = iota
	TerrainRoad
	TerrainWater
	TerrainGoal
)

func (t TerrainKind) String() string {
	switch t {
	case TerrainGrass:
		return "grass"
	case TerrainRoad:
		return "road"
	case TerrainWater:
		return "water"
	case TerrainGoal:
		return "goal"
	}
	return "unknown"
}

// Lane 地图中的一行
type Lane struct {
	Index   int
	Y       float64 // 顶边 Y 坐标
	Terrain TerrainKind
	// Tiles 背景格子实体，从左到右
	Tiles []ecs.EntityID
	// Obstacles 公路上的车辆或河道上的木头
	Obstacles []ecs.EntityID
}

// Map 自底（下标 0，草地）向顶（终点行）排列的车道
type Map struct {
	Lanes []Lane
}

// LaneCount 车道数量
func (m *Map) LaneCount() int {
	return len(m.Lanes)
}

// Lane 返回第 i 条车道，越界返回 nil
func (m *Map) Lane(i int) *Lane {
	if i < 0 || i >= len(m.Lanes) {
		return nil
	}
	return &m.Lanes[i]
}

// CountTerrain 统计某种地形的车道数
func (m *Map) CountTerrain(t TerrainKind) int {
	n := 0
	for _, l := range m.Lanes {
		if l.Terrain == t {
			n++
		}
	}
	return n
}
