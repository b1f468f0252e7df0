package regtext

const (
	// ============================================================================
	// Export framing
	// ============================================================================

	// RegFileHeader is the header regedit writes for version 5.00 exports.
	RegFileHeader = "Windows Registry Editor Version 5.00"

	// RegFileHeaderPrefix matches any regedit header version.
	RegFileHeaderPrefix = "Windows Registry Editor"

	// Regedit4Header is the header of legacy ANSI exports.
	Regedit4Header = "REGEDIT4"

	// ============================================================================
	// Delimiters and Structural Tokens
	// ============================================================================

	// KeyOpenBracket marks the start of a registry key path
	KeyOpenBracket = "["

	// KeyCloseBracket marks the end of a registry key path
	KeyCloseBracket = "]"

	// ValueAssignment separates value names from their data
	ValueAssignment = "="

	// DefaultValuePrefix marks the default (unnamed) value
	DefaultValuePrefix = "@="

	// CommentPrefix marks a comment line
	CommentPrefix = ";"

	// LineContinuation ends a line whose value continues on the next one
	LineContinuation = "\\"

	// ============================================================================
	// Quote and Escape Characters
	// ============================================================================

	// Quote is the double-quote character for value names and string data
	Quote = "\""

	// Backslash is used for escaping and path separators
	Backslash = "\\"

	// EscapedQuote is the escaped double-quote sequence
	EscapedQuote = "\\\""

	// EscapedBackslash is the escaped backslash sequence
	EscapedBackslash = "\\\\"

	// PathSeparator separates segments of a key path
	PathSeparator = "\\"

	// ============================================================================
	// Line Endings
	// ============================================================================

	// CR is the carriage return character
	CR = "\r"

	// ============================================================================
	// Buffer Sizes
	// ============================================================================

	// ScannerInitialBufferSize is the initial buffer size for the export scanner
	ScannerInitialBufferSize = 64 * 1024 // 64KB

	// ScannerMaxLineSize is the maximum line size for the export scanner
	ScannerMaxLineSize = 1024 * 1024 // 1MB
)

var (
	// UTF16LEBOM is the byte order mark for UTF-16 little-endian
	UTF16LEBOM = []byte{0xFF, 0xFE}

	// UTF8BOM is the byte order mark for UTF-8
	UTF8BOM = []byte{0xEF, 0xBB, 0xBF}
)
