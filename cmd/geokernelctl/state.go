package main

import (
	"encoding/json"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/pensaer/geokernel/kernelexec"
	"github.com/pensaer/geokernel/topology"
)

// historyEntry is one previously applied mutating command, replayed in
// order to rebuild a Graph from a state file. The model has no durable
// on-disk representation of its own (topology.Graph's indices and mutex are
// unexported by design), so the CLI treats the command log itself as the
// source of truth, the way kernelexec.Executor already treats each command
// as the unit of change.
type historyEntry struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// loadHistory reads path's command log, or returns an empty log if path
// does not exist yet (a fresh model).
func loadHistory(path string) ([]historyEntry, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var history []historyEntry
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// saveHistory writes history back to path as indented JSON.
func saveHistory(path string, history []historyEntry) error {
	raw, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// rebuildGraph replays history against a fresh Graph and returns both the
// graph and the executor used to replay it, so a caller mutating further
// can keep using the same executor.
func rebuildGraph(history []historyEntry, logger zerolog.Logger) (*topology.Graph, *kernelexec.Executor, error) {
	g := topology.NewGraph()
	ex := kernelexec.NewExecutor(g, kernelexec.WithLogger(logger))
	for _, entry := range history {
		resp := ex.Execute(entry.Method, entry.Params)
		if !resp.Success {
			return nil, nil, replayError(entry, resp.Error)
		}
	}
	return g, ex, nil
}

func replayError(entry historyEntry, msg string) error {
	return &replayFailure{method: entry.Method, reason: msg}
}

type replayFailure struct {
	method string
	reason string
}

func (e *replayFailure) Error() string {
	return "geokernelctl: replaying " + e.method + " from state file: " + e.reason
}

// runCommand replays history, executes method/params against the resulting
// graph, appends the command to history on success, and returns the
// response alongside the rebuilt graph (export commands need the latter).
func runCommand(statePath, method string, params interface{}, logger zerolog.Logger) (kernelexec.Response, *topology.Graph, error) {
	history, err := loadHistory(statePath)
	if err != nil {
		return kernelexec.Response{}, nil, err
	}
	g, ex, err := rebuildGraph(history, logger)
	if err != nil {
		return kernelexec.Response{}, nil, err
	}

	rawParams, err := gojson.Marshal(params)
	if err != nil {
		return kernelexec.Response{}, nil, err
	}

	resp := ex.Execute(method, rawParams)
	if resp.Success {
		history = append(history, historyEntry{Method: method, Params: rawParams})
		if err := saveHistory(statePath, history); err != nil {
			return resp, g, err
		}
	}
	return resp, g, nil
}

// loadGraph replays history only, for read-only commands (export-obj,
// export-ifc) that must not grow the log.
func loadGraph(statePath string, logger zerolog.Logger) (*topology.Graph, error) {
	history, err := loadHistory(statePath)
	if err != nil {
		return nil, err
	}
	g, _, err := rebuildGraph(history, logger)
	return g, err
}
