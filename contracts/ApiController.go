package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	LoadAction(c *gin.Context)
	QueryCellAction(c *gin.Context)
	UpdateCellAction(c *gin.Context)
	RemoveCellAction(c *gin.Context)
	DumpAction(c *gin.Context)
	ClearAction(c *gin.Context)
}
