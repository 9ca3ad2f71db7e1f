package http

// Trace / impact query request. Depth is optional; the handler default
// applies when it is omitted (0 is a meaningful value: root only).
type TraceRequest struct {
	Field string `json:"field"`           // required
	Depth *int   `json:"depth,omitempty"` // optional
}

type PathsRequest struct {
	Field string `json:"field"` // required
}

type PathsResponse struct {
	Field string     `json:"field"`
	Paths [][]string `json:"paths"`
}
