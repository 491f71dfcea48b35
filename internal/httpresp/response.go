package httpresp

import "github.com/gin-gonic/gin"

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// Envelope para operações que podem concluir com avisos (ex.: a escrita
// local venceu mas o espelho no POS ficou divergente).
type ResultResponse struct {
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Result(c *gin.Context, status int, data any, warnings []string) {
	c.JSON(status, ResultResponse{
		Data:     data,
		Warnings: warnings,
	})
}
