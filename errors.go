package fit

import (
	"errors"
	"fmt"
)

// Fatal decode errors. These are returned from Decode/DecodeHeader and halt
// decoding; any messages already emitted on the iterator remain valid.
var (
	// ErrUnexpectedEOF is returned when the byte reader runs out of data
	// before a read can be satisfied.
	ErrUnexpectedEOF = errors.New("fit: unexpected end of file")

	// ErrInvalidSignature is returned when the file header does not
	// contain the ".FIT" signature.
	ErrInvalidSignature = errors.New("fit: invalid file signature")

	// ErrInvalidEndianness is returned when a definition record's
	// architecture byte is neither 0 (little) nor 1 (big).
	ErrInvalidEndianness = errors.New("fit: invalid endianness byte in definition record")
)

// MissingDefinitionError is returned when a data record references a local
// message number for which no definition has been seen yet.
type MissingDefinitionError struct {
	LocalMesgNum uint8
}

func (e *MissingDefinitionError) Error() string {
	return fmt.Sprintf("fit: missing definition for local message number %d", e.LocalMesgNum)
}

// FormatError reports a structurally malformed FIT stream that is not one
// of the other named fatal kinds (an unsupported file header size, a base
// type with an unsupported element size). Named the way
// tormoder/gofit's FormatError works.
type FormatError string

func (e FormatError) Error() string { return "fit: " + string(e) }
