package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	pkgLog "assistant-tools/pkg/log"
	"assistant-tools/pkg/response"
)

// HandlerFunc executes one named function.
type HandlerFunc func(ctx context.Context, args Args) response.Envelope

// Param describes one argument for tool listings.
type Param struct {
	Name        string
	Type        string // "string", "boolean" or "number"
	Description string
	Required    bool
}

// Function is a named operation exposed over the wire.
type Function struct {
	Name        string
	Description string
	Params      []Param
	Handler     HandlerFunc
}

// Registry maps function names to handlers.
type Registry struct {
	l     pkgLog.Logger
	funcs map[string]Function
}

// NewRegistry creates an empty registry.
func NewRegistry(l pkgLog.Logger) *Registry {
	return &Registry{
		l:     l,
		funcs: make(map[string]Function),
	}
}

// Register adds functions, replacing any with the same name.
func (r *Registry) Register(fns ...Function) {
	for _, fn := range fns {
		r.funcs[fn.Name] = fn
	}
}

// Get retrieves a function by name.
func (r *Registry) Get(name string) (Function, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// List returns all registered functions sorted by name.
func (r *Registry) List() []Function {
	fns := make([]Function, 0, len(r.funcs))
	for _, fn := range r.funcs {
		fns = append(fns, fn)
	}
	sort.Slice(fns, func(i, j int) bool { return fns[i].Name < fns[j].Name })
	return fns
}

// Call runs the named function. Unknown names and handler panics become
// error envelopes.
func (r *Registry) Call(ctx context.Context, name string, args Args) (env response.Envelope) {
	fn, ok := r.funcs[name]
	if !ok {
		r.l.Warnf(ctx, "rpc.Call: unknown function %q", name)
		return response.Failf("Unknown function: %s", name)
	}
	if args == nil {
		args = Args{}
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.l.Errorf(ctx, "rpc.Call %s: recovered panic: %v", name, rec)
			env = response.Failf("%v", rec)
		}
	}()

	r.l.Debugf(ctx, "rpc.Call: %s", name)
	return fn.Handler(ctx, args)
}

// Handle decodes one request envelope and dispatches it.
func (r *Registry) Handle(ctx context.Context, raw []byte) response.Envelope {
	name, args, err := DecodeRequest(raw)
	if err != nil {
		r.l.Warnf(ctx, "rpc.Handle: %v", err)
		if errors.Is(err, ErrNotObject) || errors.Is(err, ErrArgsNotObject) {
			return response.FromError(err)
		}
		return response.InvalidJSON()
	}
	return r.Call(ctx, name, args)
}

// DecodeRequest parses {"function": ..., "args": {...}}.
func DecodeRequest(raw []byte) (string, Args, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var probe any
		if json.Unmarshal(raw, &probe) == nil {
			return "", nil, ErrNotObject
		}
		return "", nil, fmt.Errorf("decode request: %w", err)
	}
	if fields == nil {
		return "", nil, ErrNotObject
	}

	var name string
	if rawName, ok := fields["function"]; ok {
		var v any
		if err := decodeNumbers(rawName, &v); err != nil {
			return "", nil, fmt.Errorf("decode function: %w", err)
		}
		if v != nil {
			name = fmt.Sprint(v)
		}
	}

	args := Args{}
	if rawArgs := bytes.TrimSpace(fields["args"]); len(rawArgs) > 0 && string(rawArgs) != "null" {
		if rawArgs[0] != '{' {
			return "", nil, ErrArgsNotObject
		}
		if err := decodeNumbers(rawArgs, &args); err != nil {
			return "", nil, fmt.Errorf("decode args: %w", err)
		}
	}

	return name, args, nil
}

func decodeNumbers(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}
