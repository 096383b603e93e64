package serialization

import (
	"io"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

// SerializeBlockHeader writes header's wire encoding to w, in the
// field order declared on BlockHeader.
func SerializeBlockHeader(w io.Writer, header *externalapi.BlockHeader) error {
	if err := WriteElement(w, header.Height); err != nil {
		return err
	}
	if err := WriteElement(w, header.PreviousHash); err != nil {
		return err
	}
	if err := WriteElement(w, header.TotalDifficulty); err != nil {
		return err
	}
	if err := WriteElement(w, header.TotalKernelOffset); err != nil {
		return err
	}
	if err := WriteElement(w, header.OutputRoot); err != nil {
		return err
	}
	if err := WriteElement(w, header.RangeProofRoot); err != nil {
		return err
	}
	return WriteElement(w, header.KernelRoot)
}

// DeserializeBlockHeader reads a BlockHeader from r.
func DeserializeBlockHeader(r io.Reader) (*externalapi.BlockHeader, error) {
	header := &externalapi.BlockHeader{}

	if err := ReadElement(r, &header.Height); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.PreviousHash); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.TotalDifficulty); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.TotalKernelOffset); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.OutputRoot); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.RangeProofRoot); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &header.KernelRoot); err != nil {
		return nil, err
	}

	return header, nil
}

// SerializeFullBlock writes block's wire encoding to w: its header
// followed by its body. The validation cache flag is not part of the
// wire format.
func SerializeFullBlock(w io.Writer, block *externalapi.FullBlock) error {
	if err := SerializeBlockHeader(w, block.Header); err != nil {
		return err
	}
	return SerializeTransactionBody(w, block.Body)
}

// DeserializeFullBlock reads a FullBlock from r. The result is
// unvalidated.
func DeserializeFullBlock(r io.Reader) (*externalapi.FullBlock, error) {
	header, err := DeserializeBlockHeader(r)
	if err != nil {
		return nil, err
	}

	body, err := DeserializeTransactionBody(r)
	if err != nil {
		return nil, err
	}

	return externalapi.NewFullBlock(header, body), nil
}
