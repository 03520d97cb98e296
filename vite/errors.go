package vite

type Error string

func (e Error) Error() string {
	return string(e)
}

// Resolution failures. They are wrapped with the offending path, so match
// them with errors.Is.
var (
	ErrUnknownEntry        = Error("unknown entry")
	ErrDanglingReference   = Error("dangling import")
	ErrInvalidServerOrigin = Error("invalid dev server origin")
	ErrInvalidMode         = Error("invalid mode")
)
