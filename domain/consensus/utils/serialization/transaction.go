package serialization

import (
	"bytes"
	"io"

	"github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"
)

// SerializeTransactionInput writes input's wire encoding to w: one
// feature byte followed by the 33-byte commitment.
func SerializeTransactionInput(w io.Writer, input *externalapi.TransactionInput) error {
	if err := WriteElement(w, uint8(input.Features)); err != nil {
		return err
	}
	return WriteElement(w, input.Commitment)
}

// DeserializeTransactionInput reads a TransactionInput from r.
func DeserializeTransactionInput(r io.Reader) (*externalapi.TransactionInput, error) {
	var features uint8
	if err := ReadElement(r, &features); err != nil {
		return nil, err
	}

	var commitment externalapi.Commitment
	if err := ReadElement(r, &commitment); err != nil {
		return nil, err
	}

	return &externalapi.TransactionInput{
		Features:   externalapi.InputFeature(features),
		Commitment: commitment,
	}, nil
}

// SerializeTransactionOutput writes output's wire encoding to w: one
// feature byte, the 33-byte commitment, and the length-prefixed range
// proof.
func SerializeTransactionOutput(w io.Writer, output *externalapi.TransactionOutput) error {
	if err := WriteElement(w, uint8(output.Features)); err != nil {
		return err
	}
	if err := WriteElement(w, output.Commitment); err != nil {
		return err
	}
	return WriteElement(w, output.RangeProof)
}

// DeserializeTransactionOutput reads a TransactionOutput from r.
func DeserializeTransactionOutput(r io.Reader) (*externalapi.TransactionOutput, error) {
	var features uint8
	if err := ReadElement(r, &features); err != nil {
		return nil, err
	}

	var commitment externalapi.Commitment
	if err := ReadElement(r, &commitment); err != nil {
		return nil, err
	}

	var rangeProof []byte
	if err := ReadElement(r, &rangeProof); err != nil {
		return nil, err
	}

	return &externalapi.TransactionOutput{
		Features:   externalapi.OutputFeature(features),
		Commitment: commitment,
		RangeProof: rangeProof,
	}, nil
}

// SerializeTransactionKernel writes kernel's wire encoding to w.
func SerializeTransactionKernel(w io.Writer, kernel *externalapi.TransactionKernel) error {
	if err := WriteElement(w, uint8(kernel.Features)); err != nil {
		return err
	}
	if err := WriteElement(w, kernel.Fee); err != nil {
		return err
	}
	if err := WriteElement(w, kernel.LockHeight); err != nil {
		return err
	}
	if err := WriteElement(w, kernel.Excess); err != nil {
		return err
	}
	return WriteElement(w, kernel.ExcessSig)
}

// DeserializeTransactionKernel reads a TransactionKernel from r.
func DeserializeTransactionKernel(r io.Reader) (*externalapi.TransactionKernel, error) {
	var features uint8
	if err := ReadElement(r, &features); err != nil {
		return nil, err
	}

	var fee, lockHeight uint64
	if err := ReadElement(r, &fee); err != nil {
		return nil, err
	}
	if err := ReadElement(r, &lockHeight); err != nil {
		return nil, err
	}

	var excess externalapi.Commitment
	if err := ReadElement(r, &excess); err != nil {
		return nil, err
	}

	var excessSig externalapi.Signature
	if err := ReadElement(r, &excessSig); err != nil {
		return nil, err
	}

	return &externalapi.TransactionKernel{
		Features:   externalapi.KernelFeature(features),
		Fee:        fee,
		LockHeight: lockHeight,
		Excess:     excess,
		ExcessSig:  excessSig,
	}, nil
}

// SerializeTransactionBody writes body's wire encoding to w: the three
// sequences, each as a count followed by that many elements, in the
// order inputs, outputs, kernels. Sequences are written in whatever
// order body currently holds them; callers that require sortedness
// enforce it before serializing.
func SerializeTransactionBody(w io.Writer, body *externalapi.TransactionBody) error {
	if err := WriteElement(w, uint64(len(body.Inputs))); err != nil {
		return err
	}
	for _, input := range body.Inputs {
		if err := SerializeTransactionInput(w, input); err != nil {
			return err
		}
	}

	if err := WriteElement(w, uint64(len(body.Outputs))); err != nil {
		return err
	}
	for _, output := range body.Outputs {
		if err := SerializeTransactionOutput(w, output); err != nil {
			return err
		}
	}

	if err := WriteElement(w, uint64(len(body.Kernels))); err != nil {
		return err
	}
	for _, kernel := range body.Kernels {
		if err := SerializeTransactionKernel(w, kernel); err != nil {
			return err
		}
	}

	return nil
}

// DeserializeTransactionBody reads a TransactionBody from r.
func DeserializeTransactionBody(r io.Reader) (*externalapi.TransactionBody, error) {
	var inputCount uint64
	if err := ReadElement(r, &inputCount); err != nil {
		return nil, err
	}
	inputs := make([]*externalapi.TransactionInput, inputCount)
	for i := range inputs {
		input, err := DeserializeTransactionInput(r)
		if err != nil {
			return nil, err
		}
		inputs[i] = input
	}

	var outputCount uint64
	if err := ReadElement(r, &outputCount); err != nil {
		return nil, err
	}
	outputs := make([]*externalapi.TransactionOutput, outputCount)
	for i := range outputs {
		output, err := DeserializeTransactionOutput(r)
		if err != nil {
			return nil, err
		}
		outputs[i] = output
	}

	var kernelCount uint64
	if err := ReadElement(r, &kernelCount); err != nil {
		return nil, err
	}
	kernels := make([]*externalapi.TransactionKernel, kernelCount)
	for i := range kernels {
		kernel, err := DeserializeTransactionKernel(r)
		if err != nil {
			return nil, err
		}
		kernels[i] = kernel
	}

	return &externalapi.TransactionBody{
		Inputs:  inputs,
		Outputs: outputs,
		Kernels: kernels,
	}, nil
}

// KernelSigningMessage returns the byte string a kernel's ExcessSig is
// computed over: its features byte, fee, and lock height, in wire
// order. It deliberately excludes Excess itself, which is the public
// key the signature verifies against, not part of the signed message.
func KernelSigningMessage(kernel *externalapi.TransactionKernel) []byte {
	var buf bytes.Buffer
	buf.WriteByte(byte(kernel.Features))
	_ = WriteElement(&buf, kernel.Fee)
	_ = WriteElement(&buf, kernel.LockHeight)
	return buf.Bytes()
}
