package site2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTOCPath    = errors.New("toc path cannot be empty")
	ErrNilSite         = errors.New("site cannot be nil")
	ErrEmptyBaseURL    = errors.New("site base URL cannot be empty")
	ErrTOCNotFound     = errors.New("toc file not found")
	ErrTOCParse        = errors.New("failed to parse toc")
	ErrUnknownDocument = errors.New("document reference not under site root")
	ErrReadPage        = errors.New("failed to read rendered page")
	ErrRenderPage      = errors.New("markdown rendering failed")
	ErrWriteOutput     = errors.New("failed to write merged document")

	// PDF stage errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
