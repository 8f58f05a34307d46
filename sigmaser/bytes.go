package sigmaser

import (
	"bytes"
	"io"
)

// WriteBytes encodes b as len:vlq followed by the raw bytes (§4.3).
func WriteBytes(w io.Writer, b []byte) error {
	if err := WriteVLQ(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadBytes decodes a length-prefixed byte array from r.
func ReadBytes(r *bytes.Reader) ([]byte, error) {
	n, err := ReadVLQ(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &TruncatedInputError{Context: "byte array payload"}
	}
	return buf, nil
}
