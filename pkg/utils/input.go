// Package utils 提供通用工具函数
package utils

import "image"

// PointInRect 点是否落在矩形内（含左上边缘，不含右下边缘）
func PointInRect(x, y int, r image.Rectangle) bool {
	return image.Pt(x, y).In(r)
}
