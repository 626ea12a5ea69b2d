package task

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg gin.IRoutes, handler Handler) {
	rg.GET("/tasks/:board_id", handler.ListTasksByBoardID)
	rg.POST("/tasks", handler.CreateTask)
	rg.PATCH("/tasks/status/:id", handler.UpdateTaskStatus)
	rg.PATCH("/tasks/:id", handler.UpdateTask)
	rg.DELETE("/tasks/:id", handler.DeleteTask)
}
