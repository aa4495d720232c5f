package controllers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Pagination struct {
	TotalRows  int64 `json:"totalRows"`
	Page       int   `json:"page"`
	TotalPages int   `json:"totalPages"`
	PageSize   int   `json:"pageSize"`
}

func parsePagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

func paginate(totalRows int64, page, limit int) Pagination {
	return Pagination{
		TotalRows:  totalRows,
		Page:       page,
		TotalPages: int(math.Ceil(float64(totalRows) / float64(limit))),
		PageSize:   limit,
	}
}
