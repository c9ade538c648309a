package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rankeval/rankeval/internal/apperr"
	"github.com/rankeval/rankeval/internal/eval/metrics"
)

// APRouter exposes the average precision computation over HTTP for callers
// that already hold rank positions and relevance counts.
type APRouter struct {
	e *echo.Echo
}

func NewAPRouter(e *echo.Echo) *APRouter {
	return &APRouter{e: e}
}

func (r *APRouter) Bind() {
	r.e.POST("/api/v1/ap", r.apHandler)
}

type apRequest struct {
	Queries []apQuery `json:"queries"`
}

type apQuery struct {
	ID            string `json:"id"`
	Ranks         []int  `json:"ranks"`
	TotalRelevant int    `json:"total_relevant"`
}

type apResponse struct {
	Results []apResult `json:"results"`
}

type apResult struct {
	ID string  `json:"id"`
	AP float64 `json:"ap"`
}

func (r *APRouter) apHandler(c echo.Context) error {
	var req apRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Queries) == 0 {
		return apperr.NewValidation("queries must not be empty")
	}

	results := make([]apResult, 0, len(req.Queries))
	for _, q := range req.Queries {
		ap, err := metrics.AveragePrecision(q.Ranks, q.TotalRelevant)
		if err != nil {
			return err
		}
		results = append(results, apResult{ID: q.ID, AP: ap})
	}

	return c.JSON(http.StatusOK, apResponse{Results: results})
}
