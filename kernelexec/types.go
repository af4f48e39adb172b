package kernelexec

import (
	gojson "github.com/goccy/go-json"

	"github.com/pensaer/geokernel/topology"
)

// Command is a single entry point into the model: a method name and its
// JSON parameters.
type Command struct {
	Method string          `json:"method"`
	Params gojson.RawMessage `json:"params"`
}

// Response is the shape every Execute call returns (spec §6).
type Response struct {
	Success bool           `json:"success"`
	Delta   *topology.Delta `json:"delta,omitempty"`
	Data    interface{}    `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// handlerFunc performs one structural mutation against g (which the caller
// has already locked) and returns the delta describing what changed, plus
// optional extra response data.
type handlerFunc func(g *topology.Graph, params map[string]interface{}) (topology.Delta, interface{}, error)
