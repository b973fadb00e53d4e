package serialization

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/nrgnet/nrgd/domain/consensus/model/externalapi"
	"github.com/pkg/errors"
)

// errNoEncodingForType signifies that there's no encoding for the given type.
var errNoEncodingForType = errors.New("there's no encoding for this type")

var errMalformed = errors.New("errMalformed")

// MaxVarBytesLength caps the length of any variable length byte field read by
// ReadVarBytes. Larger claims are rejected before allocating.
const MaxVarBytesLength = 1 << 20

// WriteElement writes the little endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case int32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(e))
		return write(w, buf[:4])

	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], e)
		return write(w, buf[:4])

	case int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(e))
		return write(w, buf[:])

	case uint64:
		binary.LittleEndian.PutUint64(buf[:], e)
		return write(w, buf[:])

	case uint8:
		buf[0] = e
		return write(w, buf[:1])

	case externalapi.DomainHash:
		return write(w, e.ByteSlice())

	case *externalapi.DomainHash:
		return write(w, e.ByteSlice())
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to write type %T", element)
}

// WriteElements writes multiple items to w. It is equivalent to multiple
// calls to writeElement.
func WriteElements(w io.Writer, elements ...interface{}) error {
	for _, element := range elements {
		err := WriteElement(w, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadElement reads the next sequence of bytes from r using little endian
// depending on the concrete type of element pointed to.
func ReadElement(r io.Reader, element interface{}) error {
	var buf [8]byte
	switch e := element.(type) {
	case *int32:
		if err := read(r, buf[:4]); err != nil {
			return err
		}
		*e = int32(binary.LittleEndian.Uint32(buf[:4]))
		return nil

	case *uint32:
		if err := read(r, buf[:4]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint32(buf[:4])
		return nil

	case *int64:
		if err := read(r, buf[:]); err != nil {
			return err
		}
		*e = int64(binary.LittleEndian.Uint64(buf[:]))
		return nil

	case *uint64:
		if err := read(r, buf[:]); err != nil {
			return err
		}
		*e = binary.LittleEndian.Uint64(buf[:])
		return nil

	case *uint8:
		if err := read(r, buf[:1]); err != nil {
			return err
		}
		*e = buf[0]
		return nil

	case *externalapi.DomainHash:
		var hashBytes [externalapi.DomainHashSize]byte
		if err := read(r, hashBytes[:]); err != nil {
			return err
		}
		*e = *externalapi.NewDomainHashFromByteArray(&hashBytes)
		return nil
	}

	return errors.Wrapf(errNoEncodingForType, "couldn't find a way to read type %T", element)
}

// ReadElements reads multiple items from r. It is equivalent to multiple
// calls to ReadElement.
func ReadElements(r io.Reader, elements ...interface{}) error {
	for _, element := range elements {
		err := ReadElement(r, element)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteVarInt serializes val to w using the compact size encoding: one byte
// below 0xfd, otherwise a marker byte followed by a 2, 4 or 8 byte little
// endian integer.
func WriteVarInt(w io.Writer, val uint64) error {
	switch {
	case val < 0xfd:
		return WriteElement(w, uint8(val))

	case val <= math.MaxUint16:
		var buf [3]byte
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:], uint16(val))
		return write(w, buf[:])

	case val <= math.MaxUint32:
		if err := WriteElement(w, uint8(0xfe)); err != nil {
			return err
		}
		return WriteElement(w, uint32(val))

	default:
		if err := WriteElement(w, uint8(0xff)); err != nil {
			return err
		}
		return WriteElement(w, val)
	}
}

// ReadVarInt reads a compact size integer from r. Non-canonical encodings
// are rejected.
func ReadVarInt(r io.Reader) (uint64, error) {
	var discriminant uint8
	if err := ReadElement(r, &discriminant); err != nil {
		return 0, err
	}

	var rv, min uint64
	switch discriminant {
	case 0xff:
		if err := ReadElement(r, &rv); err != nil {
			return 0, err
		}
		min = math.MaxUint32 + 1

	case 0xfe:
		var value uint32
		if err := ReadElement(r, &value); err != nil {
			return 0, err
		}
		rv = uint64(value)
		min = math.MaxUint16 + 1

	case 0xfd:
		var buf [2]byte
		if err := read(r, buf[:]); err != nil {
			return 0, err
		}
		rv = uint64(binary.LittleEndian.Uint16(buf[:]))
		min = 0xfd

	default:
		return uint64(discriminant), nil
	}

	if rv < min {
		return 0, errors.Wrapf(errMalformed, "non-canonical varint %x - discriminant %x must "+
			"encode a value greater than %x", rv, discriminant, min)
	}
	return rv, nil
}

// WriteVarBytes writes a compact size length followed by the bytes.
func WriteVarBytes(w io.Writer, bytes []byte) error {
	err := WriteVarInt(w, uint64(len(bytes)))
	if err != nil {
		return err
	}
	return write(w, bytes)
}

// ReadVarBytes reads a length prefixed byte slice written by WriteVarBytes.
// fieldName is used in error messages.
func ReadVarBytes(r io.Reader, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r)
	if err != nil {
		return nil, err
	}
	if count > MaxVarBytesLength {
		return nil, errors.Wrapf(errMalformed, "%s is larger than the max allowed size "+
			"[count %d, max %d]", fieldName, count, MaxVarBytesLength)
	}

	bytes := make([]byte, count)
	if err := read(r, bytes); err != nil {
		return nil, err
	}
	return bytes, nil
}

// IsMalformedError returns whether the error indicates a malformed data source
func IsMalformedError(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) || errors.Is(err, errMalformed)
}

func write(w io.Writer, bytes []byte) error {
	_, err := w.Write(bytes)
	return errors.WithStack(err)
}

func read(r io.Reader, bytes []byte) error {
	_, err := io.ReadFull(r, bytes)
	return errors.WithStack(err)
}
