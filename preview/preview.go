// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preview

import (
	"errors"
	"mime"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// PDFContentType is the only upload type accepted.
const PDFContentType = "application/pdf"

var (
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("uploaded file is empty")
	ErrNoDocument          = errors.New("no document loaded")
)

// UnsupportedFileMessage is shown when an upload is rejected by type.
const UnsupportedFileMessage = "Only PDF files are supported"

// Document is an accepted upload. It lives only in memory.
type Document struct {
	ID          string
	Name        string
	ContentType string
	Data        []byte
}

// State is a snapshot of the preview pane.
type State struct {
	HasDocument bool
	ID          string
	Name        string
	Size        int
	SizeLabel   string
	NumPages    int
	Page        int
	Error       string
}

// Preview holds the current document and its pagination. Safe for
// concurrent use.
type Preview struct {
	viewer Viewer

	mu       sync.Mutex
	doc      *Document
	numPages int
	page     int
	loadErr  string
}

// New returns an empty Preview. A nil viewer uses PageCounter.
func New(viewer Viewer) *Preview {
	if viewer == nil {
		viewer = PageCounter{}
	}
	return &Preview{viewer: viewer}
}

// IsPDF reports whether a declared content type is application/pdf.
// Parameters such as charset are ignored.
func IsPDF(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == PDFContentType
}

// Load replaces the current document. Uploads not declared as PDF are
// rejected with ErrUnsupportedFileType and leave the state unchanged.
// A PDF the viewer cannot read is still accepted; the failure is kept as
// the preview error.
func (p *Preview) Load(name, contentType string, data []byte) error {
	if !IsPDF(contentType) {
		return ErrUnsupportedFileType
	}
	if len(data) == 0 {
		return ErrEmptyFile
	}

	doc := &Document{
		ID:          uuid.NewString(),
		Name:        name,
		ContentType: PDFContentType,
		Data:        data,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.doc = doc
	p.render()
	return nil
}

// render counts pages for the held document and resets to page 1.
// Must be called with mu held.
func (p *Preview) render() {
	p.page = 1
	p.loadErr = ""

	n, err := p.viewer.PageCount(p.doc.Data)
	if err != nil {
		p.numPages = 0
		p.loadErr = err.Error()
		return
	}
	p.numPages = n
}

// Remove drops the current document.
func (p *Preview) Remove() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.doc = nil
	p.numPages = 0
	p.page = 0
	p.loadErr = ""
}

// Retry clears the last error, goes back to page 1 and renders the held
// document again without a new upload.
func (p *Preview) Retry() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc == nil {
		return ErrNoDocument
	}
	p.render()
	return nil
}

// GoTo moves to page n, clamped to [1, NumPages], and returns the new page.
func (p *Preview) GoTo(n int) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc == nil {
		return 0, ErrNoDocument
	}
	p.page = clamp(n, p.numPages)
	return p.page, nil
}

// Next moves one page forward, stopping at the last page.
func (p *Preview) Next() (int, error) {
	p.mu.Lock()
	page := p.page
	p.mu.Unlock()
	return p.GoTo(page + 1)
}

// Prev moves one page back, stopping at page 1.
func (p *Preview) Prev() (int, error) {
	p.mu.Lock()
	page := p.page
	p.mu.Unlock()
	return p.GoTo(page - 1)
}

func clamp(n, numPages int) int {
	if n > numPages {
		n = numPages
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Document returns the current document.
func (p *Preview) Document() (Document, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc == nil {
		return Document{}, false
	}
	return *p.doc, true
}

// State returns a snapshot for display.
func (p *Preview) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doc == nil {
		return State{}
	}
	return State{
		HasDocument: true,
		ID:          p.doc.ID,
		Name:        p.doc.Name,
		Size:        len(p.doc.Data),
		SizeLabel:   humanize.Bytes(uint64(len(p.doc.Data))),
		NumPages:    p.numPages,
		Page:        p.page,
		Error:       p.loadErr,
	}
}
