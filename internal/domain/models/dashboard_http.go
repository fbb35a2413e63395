package models

// ChartsRequest is the query of GET /api/charts. Zero means the configured window.
type ChartsRequest struct {
	Window int `query:"window" validate:"omitempty,min=1,max=365"`
}
