package kernelexec

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/pensaer/geokernel/quantize"
	"github.com/pensaer/geokernel/topology"
)

// ExecutorOption configures an Executor before use.
type ExecutorOption func(*Executor)

// WithLogger installs a structured logger; commands log one Debug event on
// success and one Warn event on failure. Defaults to zerolog.Nop(), so the
// executor is silent unless a host wires a logger in.
func WithLogger(logger zerolog.Logger) ExecutorOption {
	return func(e *Executor) { e.logger = logger }
}

// WithHandler registers (or overrides) the handler for method.
func WithHandler(method string, h handlerFunc) ExecutorOption {
	return func(e *Executor) { e.dispatch[method] = h }
}

// Executor is the single write path into a topology.Graph: the only code
// in this module that calls a Graph mutator.
type Executor struct {
	graph    *topology.Graph
	dispatch map[string]handlerFunc
	logger   zerolog.Logger
}

// NewExecutor wraps g with the default dispatch table (add_wall, move_node,
// delete_element, solve_joins).
func NewExecutor(g *topology.Graph, opts ...ExecutorOption) *Executor {
	e := &Executor{
		graph:    g,
		dispatch: defaultDispatch(),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs one command end to end: quantize params, dispatch, heal,
// canonicalize. This is the only entry point that mutates the wrapped
// graph.
func (e *Executor) Execute(method string, rawParams []byte) Response {
	handler, ok := e.dispatch[method]
	if !ok {
		e.logger.Warn().Str("method", method).Msg("kernelexec: unknown method")
		return Response{Success: false, Error: fmt.Errorf("%w: %q", ErrUnknownMethod, method).Error()}
	}

	generic, err := quantize.UnmarshalCanonical(rawParams)
	if err != nil {
		e.logger.Warn().Str("method", method).Err(err).Msg("kernelexec: invalid params")
		return Response{Success: false, Error: err.Error()}
	}
	params, _ := generic.(map[string]interface{})
	if params == nil {
		params = map[string]interface{}{}
	}

	e.graph.Lock()
	defer e.graph.Unlock()

	delta, data, err := handler(e.graph, params)
	if err != nil {
		e.logger.Warn().Str("method", method).Err(err).Msg("kernelexec: command failed")
		return Response{Success: false, Error: err.Error()}
	}

	healDelta := e.graph.Heal(delta.AffectedNodes)
	delta.Merge(healDelta)

	e.logger.Debug().Str("method", method).
		Int("created", len(delta.Created)).
		Int("modified", len(delta.Modified)).
		Int("deleted", len(delta.Deleted)).
		Msg("kernelexec: command applied")

	return Response{Success: true, Delta: &delta, Data: data}
}

// ExecuteJSON runs Execute over a Command decoded from raw JSON and
// canonicalizes the returned Response before marshaling it, per spec §4.G's
// byte-exact property.
func (e *Executor) ExecuteJSON(raw []byte) ([]byte, error) {
	var cmd Command
	if err := gojson.Unmarshal(raw, &cmd); err != nil {
		return nil, err
	}
	resp := e.Execute(cmd.Method, cmd.Params)
	return quantize.MarshalCanonical(resp)
}
