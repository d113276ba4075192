package rpc_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"assistant-tools/internal/rpc"
	pkgLog "assistant-tools/pkg/log"
)

func TestServerServe(t *testing.T) {
	in := strings.Join([]string{
		`{"function":"echo","args":{"x":"y"}}`,
		`not json`,
		`{"function":"missing"}`,
		`{"function":"echo","args":{}}`, // final line without newline
	}, "\n")

	var out bytes.Buffer
	srv := rpc.NewServer(pkgLog.NewNop(), newTestRegistry(), strings.NewReader(in), &out)

	if err := srv.Serve(context.Background()); err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 response lines, got %d: %q", len(lines), out.String())
	}

	wantStatus := []string{"success", "error", "error", "success"}
	for i, line := range lines {
		var env map[string]any
		if err := json.Unmarshal([]byte(line), &env); err != nil {
			t.Fatalf("line %d is not JSON: %v", i, err)
		}
		if env["status"] != wantStatus[i] {
			t.Errorf("line %d status = %v, want %v", i, env["status"], wantStatus[i])
		}
	}
	if !strings.Contains(lines[1], "Invalid JSON") {
		t.Errorf("expected Invalid JSON for malformed line, got %s", lines[1])
	}
}

func TestServerStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	srv := rpc.NewServer(pkgLog.NewNop(), newTestRegistry(), strings.NewReader(`{"function":"echo"}`+"\n"), &out)

	if err := srv.Serve(ctx); err == nil {
		t.Fatalf("expected context error")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
