package rpc

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"

	pkgLog "assistant-tools/pkg/log"
)

// Server reads one request per line and writes one response per line.
type Server struct {
	l        pkgLog.Logger
	registry *Registry
	reader   *bufio.Reader
	writer   io.Writer
}

// NewServer creates a line server over r and w.
func NewServer(l pkgLog.Logger, registry *Registry, r io.Reader, w io.Writer) *Server {
	return &Server{
		l:        l,
		registry: registry,
		reader:   bufio.NewReader(r),
		writer:   w,
	}
}

// Serve blocks until EOF, a read/write failure or ctx cancellation.
// Requests are handled strictly one at a time.
func (s *Server) Serve(ctx context.Context) error {
	s.l.Infof(ctx, "rpc.Serve: ready, %d functions registered", len(s.registry.List()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read request: %w", err)
		}
		if line != "" {
			if werr := s.respond(ctx, line); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			s.l.Info(ctx, "rpc.Serve: EOF received, shutting down")
			return nil
		}
	}
}

func (s *Server) respond(ctx context.Context, line string) error {
	env := s.registry.Handle(ctx, []byte(line))

	out, err := json.Marshal(env)
	if err != nil {
		s.l.Errorf(ctx, "rpc.respond: marshal response: %v", err)
		out, _ = json.Marshal(responseMarshalFailure(err))
	}
	out = append(out, '\n')

	if _, err := s.writer.Write(out); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if f, ok := s.writer.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush response: %w", err)
		}
	}
	return nil
}
