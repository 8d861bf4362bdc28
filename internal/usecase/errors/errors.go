package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInternalError = errors.New("internal server error")
)

// Meeting errors
var (
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrMeetingAlreadyExists = errors.New("meeting already exists")
)

// Spreadsheet errors
var (
	ErrInvalidWorkbook     = errors.New("file is not a valid workbook")
	ErrWorkbookWriteFailed = errors.New("failed to write workbook")
)

// Acquisition errors
var (
	ErrFetchFailed       = errors.New("failed to fetch file from URL")
	ErrUnsupportedUpload = errors.New("unsupported upload file type")
	ErrUploadTooLarge    = errors.New("uploaded file exceeds the size limit")
)
