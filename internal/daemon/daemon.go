// Package daemon exposes the analyser over a local TCP socket so editors
// and scripts can request sheets without paying process startup per palette.
// The protocol is one command line per connection:
//
//	analyse <scheme>://<data> <output-path>
//
// where scheme selects the palette source (hex, file or img). The reply is
// a single OK or ERR line; diagnostics go to the error log only.
package daemon

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/hashicorp/go-hclog"

	"palspect/internal/analyse"
	"palspect/internal/colour"
	"palspect/internal/loader"
)

// ErrBadCommand reports a request line the daemon could not parse.
var ErrBadCommand = errors.New("bad daemon command")

// Server serves analyse requests over TCP.
type Server struct {
	render analyse.Renderer
	log    hclog.Logger
}

// New returns a Server rendering through r.
func New(r analyse.Renderer, log hclog.Logger) *Server {
	return &Server{render: r, log: log}
}

// ListenAndServe binds the loopback interface on port and serves until ctx
// is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return fmt.Errorf("binding daemon socket: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. Each connection
// runs a full analysis pipeline in its own goroutine.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.log.Info("daemon listening", "addr", ln.Addr().String())
	go func() {
		<-ctx.Done()
		ln.Close()
	}()
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("accepting connection: %w", err)
		}
		go s.handle(ctx, conn)
	}
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		s.log.Error("reading command", "error", err)
		return
	}
	cmd, err := parseCommand(strings.TrimRight(line, "\r\n"))
	if err != nil {
		s.reply(conn, err)
		return
	}
	s.log.Debug("command accepted", "scheme", cmd.Scheme, "out", cmd.Out)

	colours, err := load(ctx, cmd)
	if err == nil {
		err = loader.Validate(colours)
	}
	if err == nil {
		err = analyse.Run(ctx, analyse.Request{Colours: colours}, s.render, cmd.Out, s.log)
	}
	s.reply(conn, err)
}

// reply writes the protocol answer: the literal OK or ERR line and nothing
// else. Failure detail goes to the error log only, never to the connection.
func (s *Server) reply(conn net.Conn, err error) {
	if err == nil {
		fmt.Fprint(conn, "OK\n")
		return
	}
	s.log.Error("command failed", "error", err)
	fmt.Fprint(conn, "ERR\n")
}

type command struct {
	Scheme string
	Data   string
	Out    string
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 || fields[0] != "analyse" {
		return command{}, fmt.Errorf("%w: want %q", ErrBadCommand,
			"analyse <scheme>://<data> <output-path>")
	}
	scheme, data, ok := strings.Cut(fields[1], "://")
	if !ok {
		return command{}, fmt.Errorf("%w: source %q has no scheme", ErrBadCommand, fields[1])
	}
	switch scheme {
	case "hex", "file", "img":
	default:
		return command{}, fmt.Errorf("%w: unknown scheme %q", ErrBadCommand, scheme)
	}
	out := fields[2]
	if !strings.HasSuffix(out, ".png") {
		out += ".png"
	}
	return command{Scheme: scheme, Data: data, Out: out}, nil
}

func load(ctx context.Context, cmd command) ([]colour.RGB255, error) {
	switch cmd.Scheme {
	case "hex":
		return loader.FromHexList(cmd.Data)
	case "file":
		return loader.FromHexFile(cmd.Data)
	default:
		return loader.FromImage(cmd.Data)
	}
}
