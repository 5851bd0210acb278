package handlers

import (
	"strconv"

	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/gin-gonic/gin"
)

func pagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return utils.GetPaginationParams(page, limit)
}
