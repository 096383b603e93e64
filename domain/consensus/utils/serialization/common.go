// Package serialization implements the wire encoding of this core's
// domain types. The format is big-endian throughout.
package serialization

import (
	"io"

	"github.com/pkg/errors"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/utils/binaryserializer"
)

var errNoEncodingForType = errors.New("there's no encoding for this type")

// WriteElement writes the big-endian representation of element to w.
func WriteElement(w io.Writer, element interface{}) error {
	switch e := element.(type) {
	case uint8:
		return binaryserializer.PutUint8(w, e)

	case uint64:
		return binaryserializer.PutUint64(w, e)

	case bool:
		var v uint8
		if e {
			v = 1
		}
		return binaryserializer.PutUint8(w, v)

	case externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case *externalapi.DomainHash:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case externalapi.BlindingFactor:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case *externalapi.BlindingFactor:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case externalapi.Commitment:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case *externalapi.Commitment:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case externalapi.Signature:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case *externalapi.Signature:
		_, err := w.Write(e.ByteSlice())
		return errors.WithStack(err)

	case []byte:
		if err := WriteElement(w, uint64(len(e))); err != nil {
			return err
		}
		_, err := w.Write(e)
		return errors.WithStack(err)
	}

	return errors.WithStack(errNoEncodingForType)
}

// ReadElement reads the big-endian representation of element from r.
// element must be a pointer to a supported type.
func ReadElement(r io.Reader, element interface{}) error {
	switch e := element.(type) {
	case *uint8:
		v, err := binaryserializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = v
		return nil

	case *uint64:
		v, err := binaryserializer.Uint64(r)
		if err != nil {
			return err
		}
		*e = v
		return nil

	case *bool:
		v, err := binaryserializer.Uint8(r)
		if err != nil {
			return err
		}
		*e = v != 0
		return nil

	case *externalapi.DomainHash:
		buf := make([]byte, externalapi.DomainHashSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.WithStack(err)
		}
		copy(e[:], buf)
		return nil

	case *externalapi.BlindingFactor:
		buf := make([]byte, externalapi.BlindingFactorSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.WithStack(err)
		}
		copy(e[:], buf)
		return nil

	case *externalapi.Commitment:
		buf := make([]byte, externalapi.CommitmentSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.WithStack(err)
		}
		copy(e[:], buf)
		return nil

	case *externalapi.Signature:
		buf := make([]byte, externalapi.SignatureSize)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.WithStack(err)
		}
		copy(e[:], buf)
		return nil

	case *[]byte:
		var length uint64
		if err := ReadElement(r, &length); err != nil {
			return err
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(r, buf); err != nil {
			return errors.WithStack(err)
		}
		*e = buf
		return nil
	}

	return errors.WithStack(errNoEncodingForType)
}
