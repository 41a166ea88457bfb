package utils

import "math"

// CellOf 将像素坐标转换为网格坐标
// 参数:
//   - x, y: 像素坐标
//   - cellW, cellH: 每格宽高
//
// 返回:
//   - col, row: 所在格子（不做越界检查，负坐标得到负下标）
func CellOf(x, y, cellW, cellH float64) (col, row int) {
	return int(math.Floor(x / cellW)), int(math.Floor(y / cellH))
}

// CellSpan 返回像素区间 [x0, x1) 覆盖的列范围 [from, to)
// 部分覆盖的格子也算在内
func CellSpan(x0, x1, cellW float64) (from, to int) {
	return int(math.Floor(x0 / cellW)), int(math.Ceil(x1 / cellW))
}
