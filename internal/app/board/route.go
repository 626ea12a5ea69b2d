package board

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.POST("/boards", handler.CreateBoard)
	rg.GET("/boards", handler.ListBoards)
	rg.GET("/boards/:id", handler.GetBoardByID)
	rg.PATCH("/boards/:id", handler.UpdateBoard)
	rg.DELETE("/boards/:id", handler.DeleteBoard)
}
