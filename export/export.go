// Package export encodes a computed profile for consumption outside the UI.
// JSON is the default; MessagePack is available for compact binary output.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/drake/rainwater/water"
)

// Format selects the encoding used by Write.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatMsgPack
)

// ErrUnknownFormat is returned by ParseFormat for unrecognised names.
var ErrUnknownFormat = errors.New("unknown export format")

// String returns the flag name of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgPack:
		return "msgpack"
	default:
		return "text"
	}
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "msgpack", "mpk":
		return FormatMsgPack, nil
	}
	return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Record is the exported shape of a computation.
type Record struct {
	Heights []int `json:"heights" msgpack:"heights"`
	WaterAt []int `json:"waterAt" msgpack:"waterAt"`
	Total   int64 `json:"total" msgpack:"total"`
}

// NewRecord pairs heights with their profile.
func NewRecord(heights []int, p water.Profile) Record {
	if heights == nil {
		heights = []int{}
	}
	return Record{Heights: heights, WaterAt: p.WaterAt, Total: p.Total}
}

// Write encodes the record for heights and p in the given format.
func Write(w io.Writer, format Format, heights []int, p water.Profile) error {
	rec := NewRecord(heights, p)

	var err error
	switch format {
	case FormatJSON:
		err = json.NewEncoder(w).Encode(rec)
	case FormatMsgPack:
		err = msgpack.NewEncoder(w).Encode(rec)
	default:
		_, err = fmt.Fprintf(w, "total=%d water=%v\n", rec.Total, rec.WaterAt)
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	return nil
}
