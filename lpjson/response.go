package lpjson

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/osuushi/graphlp/advanced"
)

type Response struct {
	Status      advanced.Status `json:"status"`
	ValidPoints [][2]float64    `json:"valid_points"`

	// Null when infeasible
	BestMinPoint *[2]float64 `json:"best_min_point"`
	BestMinValue *float64    `json:"best_min_value"`
	BestMaxPoint *[2]float64 `json:"best_max_point"`
	BestMaxValue *float64    `json:"best_max_value"`

	// Only present when the request selected a direction
	BestPoint *[2]float64 `json:"best_point,omitempty"`
	BestValue *float64    `json:"best_value,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Build the response for a result. If sense is non-nil, the optimum in that
// direction is repeated as best_point/best_value.
func NewResponse(result *advanced.Result, sense *advanced.Sense) *Response {
	resp := &Response{
		Status:      result.Status,
		ValidPoints: make([][2]float64, len(result.Vertices)),
	}
	for i, v := range result.Vertices {
		resp.ValidPoints[i] = pair(v)
	}
	if !result.IsOptimal() {
		return resp
	}

	resp.BestMinPoint, resp.BestMinValue = optimumFields(result.Min)
	resp.BestMaxPoint, resp.BestMaxValue = optimumFields(result.Max)
	if sense != nil {
		resp.BestPoint, resp.BestValue = optimumFields(result.Best(*sense))
	}
	return resp
}

func optimumFields(opt *advanced.Optimum) (*[2]float64, *float64) {
	point := pair(opt.Point)
	value := opt.Value
	return &point, &value
}

func pair(p advanced.Point) [2]float64 {
	return [2]float64{p.X, p.Y}
}

type HandleOptions struct {
	Solver advanced.Options
	// Overrides the request's type selector when set.
	Sense *advanced.Sense
	// Indent the output.
	Pretty bool
}

// Decode a request from r, solve it and write the response to w. A malformed
// request writes an ErrorResponse instead, and the returned error wraps
// ErrMalformedRequest. Nothing is written if r fails to read. The result is
// returned for callers that want to do more with it, like drawing the region.
func Handle(r io.Reader, w io.Writer, opts HandleOptions) (*advanced.Result, error) {
	problem, err := decodeProblem(r)
	if err != nil {
		if !errors.Is(err, ErrMalformedRequest) {
			return nil, err
		}
		if encodeErr := Encode(w, ErrorResponse{Error: err.Error()}, opts.Pretty); encodeErr != nil {
			return nil, encodeErr
		}
		return nil, err
	}

	sense := problem.Sense
	if opts.Sense != nil {
		sense = opts.Sense
	}
	result := advanced.SolveWithOptions(problem.Constraints, problem.Objective, opts.Solver)
	return result, Encode(w, NewResponse(result, sense), opts.Pretty)
}

func decodeProblem(r io.Reader) (*Problem, error) {
	req, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return req.Problem()
}

func Encode(w io.Writer, v interface{}, pretty bool) error {
	encoder := json.NewEncoder(w)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return errors.Wrap(encoder.Encode(v), "encoding response")
}
