package main

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/jparse/internal/diagnostic"
	"github.com/dhamidi/jparse/internal/javaparser"
)

const lsName = "jparse"

// langServer is structured the way dhamidi-sai's java/codebase.LSPServer
// is: a protocol.Handler whose methods are bound as struct fields, backed
// by a *server.Server started over stdio. Where the teacher's server
// scans a whole codebase into a symbol index for completion, this one
// reparses a single open document on every change and republishes its
// diagnostics — the LSP surface spec §11 calls for over this parser.
type langServer struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

func newLangServer(version string) *langServer {
	ls := &langServer{version: version, docs: make(map[protocol.DocumentUri]string)}

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

	ls.server = server.NewServer(&ls.handler, lsName, false)
	return ls
}

func (ls *langServer) runStdio() error {
	return ls.server.RunStdio()
}

func (ls *langServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save:      &protocol.SaveOptions{IncludeText: boolPtr(true)},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *langServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *langServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *langServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

func (ls *langServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.setDoc(params.TextDocument.URI, params.TextDocument.Text)
	ls.publish(ctx, params.TextDocument.URI)
	return nil
}

func (ls *langServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if full, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			ls.setDoc(params.TextDocument.URI, full.Text)
		}
	}
	ls.publish(ctx, params.TextDocument.URI)
	return nil
}

func (ls *langServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.docs, params.TextDocument.URI)
	ls.mu.Unlock()
	return nil
}

func (ls *langServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.setDoc(params.TextDocument.URI, *params.Text)
	}
	ls.publish(ctx, params.TextDocument.URI)
	return nil
}

func (ls *langServer) setDoc(uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.docs[uri] = text
	ls.mu.Unlock()
}

// publish reparses the document and republishes its full diagnostic set,
// replacing whatever was previously published for this URI — the LSP
// model is always a full refresh of a document's diagnostics, never a
// delta.
func (ls *langServer) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	ls.mu.Lock()
	text := ls.docs[uri]
	ls.mu.Unlock()

	_, diags := javaparser.Parse(text, javaparser.WithFile(string(uri)))

	lspDiags := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		lspDiags = append(lspDiags, toLSPDiagnostic(d))
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: lspDiags,
	})
}

func toLSPDiagnostic(d diagnostic.Diagnostic) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityWarning
	if d.Kind.Fatal() {
		severity = protocol.DiagnosticSeverityError
	}
	line := protocol.UInteger(0)
	if d.Line > 0 {
		line = protocol.UInteger(d.Line - 1)
	}
	col := protocol.UInteger(0)
	if d.Column > 0 {
		col = protocol.UInteger(d.Column - 1)
	}
	source := lsName
	message := d.Message
	sev := severity
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: &sev,
		Source:   &source,
		Message:  message,
	}
}

func boolPtr(b bool) *bool { return &b }

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind { return &k }
