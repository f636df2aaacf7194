package source

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Kind classifies why acquisition failed.
type Kind int

const (
	FileError Kind = iota
	ParseError
	NetworkError
)

func (k Kind) String() string {
	switch k {
	case FileError:
		return "file"
	case ParseError:
		return "parse"
	case NetworkError:
		return "network"
	default:
		return "unknown"
	}
}

// Origin names where the records were being read from.
type Origin int

const (
	OriginFile Origin = iota
	OriginServer
)

// AcquisitionError is the single error type returned by the acquisition
// stage. Err carries a stack trace recorded where the failure was classified;
// format with %+v to print it.
type AcquisitionError struct {
	Kind   Kind
	Origin Origin
	Source string // file path or endpoint
	Err    error
}

func newError(kind Kind, origin Origin, src string, err error) *AcquisitionError {
	return &AcquisitionError{
		Kind:   kind,
		Origin: origin,
		Source: src,
		Err:    errors.WithStack(err),
	}
}

func (e *AcquisitionError) Error() string {
	if e.Origin == OriginFile {
		return "Error reading data from file. Error: " + errors.Cause(e.Err).Error()
	}
	return "Error reading data from API endpoint. Error: " + errors.Cause(e.Err).Error()
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Format implements fmt.Formatter. %+v appends the recorded stack trace.
func (e *AcquisitionError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			_, _ = fmt.Fprintf(s, "\nkind=%s source=%q\n%+v", e.Kind, e.Source, e.Err)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// KindOf reports the Kind of err if it is, or wraps, an AcquisitionError.
func KindOf(err error) (Kind, bool) {
	var ae *AcquisitionError
	if !errors.As(err, &ae) {
		return 0, false
	}
	return ae.Kind, true
}
