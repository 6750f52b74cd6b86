// Package serve runs a scanner.Core as a long-lived NDJSON server: one
// request per input line, one response per output line.
package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/praetorian-inc/wgrep"
	"github.com/praetorian-inc/wgrep/pkg/scanner"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server manages the streaming scanner
type Server struct {
	core    *scanner.Core
	pattern string
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(core *scanner.Core, pattern string, in io.Reader, out io.Writer) *Server {
	return &Server{
		core:    core,
		pattern: pattern,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

type decoded struct {
	req Request
	err error
}

// Run answers requests until the input ends, a close request arrives or ctx
// is cancelled. Requests are answered in input order.
func (s *Server) Run(ctx context.Context) error {
	s.sendReady()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// a single channel keeps requests and the terminating error ordered
	reqs := make(chan decoded, 1)
	go func() {
		for {
			var d decoded
			d.err = s.decoder.Decode(&d.req)
			select {
			case reqs <- d:
			case <-ctx.Done():
				return
			}
			if d.err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-reqs:
			if d.err != nil {
				if !errors.Is(d.err, io.EOF) {
					s.sendError("decode", d.err)
				}
				return nil
			}
			if s.processRequest(ctx, d.req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(ctx context.Context, req Request) bool {
	var (
		result interface{}
		err    error
	)

	switch req.Type {
	case RequestScan:
		var p ScanPayload
		if err = json.Unmarshal(req.Payload, &p); err == nil {
			result, err = s.core.Scan(p.Content, p.Source)
		}
	case RequestScanFile:
		var p ScanFilePayload
		if err = json.Unmarshal(req.Payload, &p); err == nil {
			result, err = s.core.ScanFile(ctx, p.Path)
		}
	case RequestScanBatch:
		var p ScanBatchPayload
		if err = json.Unmarshal(req.Payload, &p); err == nil {
			result, err = s.core.ScanBatch(p.Items)
		}
	case RequestClose:
		return true
	default:
		s.sendError("unknown", errors.New("unknown request type: "+req.Type))
		return false
	}

	if err != nil {
		s.sendError(req.Type, err)
		return false
	}
	s.send(req.Type, result)
	return false
}

func (s *Server) sendReady() {
	s.send("ready", ReadyData{Version: Version, Pattern: s.pattern})
}

func (s *Server) send(respType string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendError(respType, err)
		return
	}
	s.encoder.Encode(Response{
		Success: true,
		Type:    respType,
		Data:    data,
	})
}

func (s *Server) sendError(respType string, err error) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    respType,
		Error:   err.Error(),
		Kind:    kindName(err),
	})
}

// kindName names the error kind of a failed search, or "" for other errors.
func kindName(err error) string {
	switch wgrep.Classify(err) {
	case wgrep.ErrConfiguration:
		return "configuration"
	case wgrep.ErrIO:
		return "io"
	case wgrep.ErrDecoding:
		return "decoding"
	default:
		return ""
	}
}
