// Package lpjson is the JSON wire format for solving requests: a request names
// the constraints as [a, b, c] triples and the objective as a [p, q] pair, and
// the response lists the feasible vertices and the optimal points.
package lpjson

import (
	"bytes"
	"io"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/osuushi/graphlp/advanced"
)

// Every decoding or validation failure wraps this, so a caller can tell a bad
// request from an I/O failure with errors.Is. A failure to read the request
// does not wrap it.
var ErrMalformedRequest = errors.New("malformed request")

type Request struct {
	Constraints [][]float64 `json:"constraints"`
	Objective   []float64   `json:"objective"`
	// Optional: "min" or "max".
	Type string `json:"type,omitempty"`
}

// A request converted to solver types.
type Problem struct {
	Constraints []advanced.Constraint
	Objective   advanced.Objective
	// Nil when the request had no type selector.
	Sense *advanced.Sense
}

func Decode(r io.Reader) (*Request, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading request")
	}

	var req Request
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return nil, errors.Wrapf(ErrMalformedRequest, "decoding request: %v", err)
	}
	return &req, nil
}

// Check the shape of the request and convert it.
func (req *Request) Problem() (*Problem, error) {
	if req.Objective == nil {
		return nil, malformedf("missing objective")
	}
	if len(req.Objective) != 2 {
		return nil, malformedf("objective must have 2 coefficients, got %d", len(req.Objective))
	}
	if req.Constraints == nil {
		return nil, malformedf("missing constraints")
	}

	problem := &Problem{
		Constraints: make([]advanced.Constraint, len(req.Constraints)),
		Objective:   advanced.Objective{P: req.Objective[0], Q: req.Objective[1]},
	}
	for i, row := range req.Constraints {
		if len(row) != 3 {
			return nil, malformedf("constraint %d must have 3 coefficients, got %d", i, len(row))
		}
		problem.Constraints[i] = advanced.Constraint{A: row[0], B: row[1], C: row[2]}
	}

	if req.Type != "" {
		sense, err := advanced.ParseSense(req.Type)
		if err != nil {
			return nil, errors.Wrap(ErrMalformedRequest, err.Error())
		}
		problem.Sense = &sense
	}

	if err := advanced.Validate(problem.Constraints, problem.Objective); err != nil {
		return nil, errors.Wrap(ErrMalformedRequest, err.Error())
	}
	return problem, nil
}

func malformedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrMalformedRequest, format, args...)
}
