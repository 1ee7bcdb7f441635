package workspace

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf16"

	"github.com/dhamidi/tagcheck/markup"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "tagcheck"

// LSPServer publishes tag-balance diagnostics for the documents an editor
// opens, edits and saves.
type LSPServer struct {
	workspace *Workspace
	handler   protocol.Handler
	server    *server.Server
	version   string
	include   []string
	opts      []markup.Option
}

func NewLSPServer(version string, include []string, opts ...markup.Option) *LSPServer {
	ls := &LSPServer{
		workspace: New(".", include, opts...),
		version:   version,
		include:   include,
		opts:      opts,
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

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	}

	ls.workspace = New(rootDir, ls.include, ls.opts...)
	log.Infof("workspace root %s", rootDir)

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

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	if err := ls.workspace.LoadAll(); err != nil {
		log.Warningf("scan workspace: %s", err)
	}
	for _, path := range ls.workspace.Paths() {
		ls.publish(ctx, pathToURI(path), ls.workspace.Get(path))
	}
	return nil
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	doc := ls.workspace.Update(path, []byte(params.TextDocument.Text))
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		doc := ls.workspace.Update(path, []byte(textChange.Text))
		ls.publish(ctx, params.TextDocument.URI, doc)
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.workspace.Remove(path)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}

	var doc *Document
	if params.Text != nil {
		doc = ls.workspace.Update(path, []byte(*params.Text))
	} else if doc, err = ls.workspace.Load(path); err != nil {
		log.Warningf("load %s: %s", path, err)
		return nil
	}
	ls.publish(ctx, params.TextDocument.URI, doc)
	return nil
}

func (ls *LSPServer) publish(ctx *glsp.Context, uri protocol.DocumentUri, doc *Document) {
	if doc == nil {
		return
	}
	if doc.Err != nil {
		ctx.Notify(protocol.ServerWindowShowMessage, protocol.ShowMessageParams{
			Type:    protocol.MessageTypeError,
			Message: fmt.Sprintf("%s: %s", doc.Path, doc.Err),
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}

// diagnostics converts a document's findings to LSP diagnostics. LSP
// characters are UTF-16 code units, markup columns are bytes.
func diagnostics(doc *Document) []protocol.Diagnostic {
	diags := make([]protocol.Diagnostic, 0, len(doc.Result.Errors))
	lines := strings.Split(string(doc.Content), "\n")
	severity := protocol.DiagnosticSeverityError
	source := lsName

	for _, e := range doc.Result.Errors {
		line := e.Line - 1
		char := 0
		if line >= 0 && line < len(lines) {
			char = utf16Column(lines[line], e.Column-1)
		}

		width := 1
		if e.Rule == markup.UnclosedComment {
			width = len("<!--")
		}

		diags = append(diags, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)},
				End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char + width)},
			},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: string(e.Rule)},
			Source:   &source,
			Message:  e.Text,
		})
	}
	return diags
}

func utf16Column(line string, byteCol int) int {
	byteCol = min(max(byteCol, 0), len(line))
	n := 0
	for _, r := range line[:byteCol] {
		n += utf16.RuneLen(r)
	}
	return n
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(path)}).String()
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
