package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseUintParam 解析路径中的数字 ID。
func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 0 {
		return 0, false
	}
	return uint(id), true
}

// parsePagination 解析 skip/limit 并夹取到 [1, maxLimit]，越界回落默认值。
func parsePagination(ctx *gin.Context, defaultLimit, maxLimit int) (skip, limit int) {
	skip = 0
	if v, err := strconv.Atoi(ctx.DefaultQuery("skip", "0")); err == nil && v >= 0 {
		skip = v
	}

	limit = defaultLimit
	if v, err := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultLimit))); err == nil {
		if v >= 1 && v <= maxLimit {
			limit = v
		}
	}
	return skip, limit
}
