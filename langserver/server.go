// Package langserver implements a Language Server Protocol server that
// republishes lexical and parse errors as diagnostics on every change
// to an open document.
package langserver

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dhamidi/tinyc/lexer"
	"github.com/dhamidi/tinyc/parser"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "tinyc"

type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string, debug bool) *Server {
	ls := &Server{
		version: version,
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, debug)

	return ls
}

func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.publish(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.publish(ctx, params.TextDocument.URI, []byte(whole.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.publish(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) publish(ctx *glsp.Context, uri string, content []byte) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnostics(content, uriToPath(uri)),
	})
}

// Diagnostics lexes and parses content and converts any error into LSP
// diagnostics. A lexical error stops the pipeline; a well-lexed but
// malformed document produces a single parse diagnostic.
func Diagnostics(content []byte, path string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	tokens, err := lexer.Scan(content, path)
	if err != nil {
		var lexErr *lexer.Error
		if errors.As(err, &lexErr) {
			diagnostics = append(diagnostics, makeDiagnostic(pointRange(lexErr.Pos), err.Error()))
		} else {
			diagnostics = append(diagnostics, makeDiagnostic(pointRange(lexer.Position{Line: 1, Column: 1}), err.Error()))
		}
		return diagnostics
	}

	if _, err := parser.Parse(tokens); err != nil {
		diagnostics = append(diagnostics, makeDiagnostic(parseErrorRange(err, tokens), err.Error()))
	}
	return diagnostics
}

func makeDiagnostic(rng protocol.Range, message string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}

// parseErrorRange points at the offending token, or just past the last
// token when input was exhausted.
func parseErrorRange(err error, tokens []lexer.Token) protocol.Range {
	var parseErr *parser.Error
	if errors.As(err, &parseErr) && parseErr.Got != nil {
		return spanRange(parseErr.Got.Span)
	}
	if len(tokens) > 0 {
		return pointRange(tokens[len(tokens)-1].Span.End)
	}
	return pointRange(lexer.Position{Line: 1, Column: 1})
}

func spanRange(span lexer.Span) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(span.Start),
		End:   toProtocolPosition(span.End),
	}
}

func pointRange(pos lexer.Position) protocol.Range {
	p := toProtocolPosition(pos)
	return protocol.Range{Start: p, End: p}
}

// LSP positions are zero-based, lexer positions one-based.
func toProtocolPosition(pos lexer.Position) protocol.Position {
	line := pos.Line - 1
	col := pos.Column - 1
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(col)}
}

func uriToPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		if parsed, err := url.Parse(uri); err == nil {
			return filepath.Clean(parsed.Path)
		}
	}
	return uri
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
