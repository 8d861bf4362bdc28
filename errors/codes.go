package errors

// ErrorCode identifies an application error category in responses and logs
type ErrorCode int32

const (
	ErrorCode_UNKNOWN          ErrorCode = 0
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003

	ErrorCode_MEETING_NOT_FOUND      ErrorCode = 2000
	ErrorCode_MEETING_ALREADY_EXISTS ErrorCode = 2001

	ErrorCode_IMPORT_INVALID_WORKBOOK ErrorCode = 3000
	ErrorCode_IMPORT_FETCH_FAILED     ErrorCode = 3001
	ErrorCode_IMPORT_UPLOAD_INVALID   ErrorCode = 3002
	ErrorCode_EXPORT_FAILED           ErrorCode = 3003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:          "UNKNOWN",
	ErrorCode_HTTP_OK:          "HTTP_OK",
	ErrorCode_INTERNAL:         "INTERNAL",
	ErrorCode_INVALID_ARGUMENT: "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:        "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:   "ALREADY_EXISTS",

	ErrorCode_MEETING_NOT_FOUND:      "MEETING_NOT_FOUND",
	ErrorCode_MEETING_ALREADY_EXISTS: "MEETING_ALREADY_EXISTS",

	ErrorCode_IMPORT_INVALID_WORKBOOK: "IMPORT_INVALID_WORKBOOK",
	ErrorCode_IMPORT_FETCH_FAILED:     "IMPORT_FETCH_FAILED",
	ErrorCode_IMPORT_UPLOAD_INVALID:   "IMPORT_UPLOAD_INVALID",
	ErrorCode_EXPORT_FAILED:           "EXPORT_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
