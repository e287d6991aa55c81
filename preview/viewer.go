// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package preview

import (
	"bytes"
	"errors"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog/log"
)

// Viewer reports the page count of a PDF payload or why it cannot be shown.
type Viewer interface {
	PageCount(data []byte) (int, error)
}

// ErrLoadFailed matches the message the browser viewer shows.
var ErrLoadFailed = errors.New("Failed to load PDF file.")

var disableConfigDir sync.Once

// PageCounter reads the document structure with pdfcpu and reports the
// page count of the page tree. It does not render.
type PageCounter struct{}

func (PageCounter) PageCount(data []byte) (int, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return 0, ErrLoadFailed
	}

	// pdfcpu would otherwise create a config directory under the user's home.
	disableConfigDir.Do(api.DisableConfigDir)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		log.Debug().Err(err).Msg("pdf page count failed")
		return 0, ErrLoadFailed
	}
	if n == 0 {
		return 0, ErrLoadFailed
	}
	return n, nil
}
