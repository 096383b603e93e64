package externalapi

// TransactionInput carries the commitment being spent plus the feature
// flags that identify whether it spends a coinbase output.
type TransactionInput struct {
	Features   InputFeature
	Commitment Commitment
}

// If this doesn't compile, the type definition has changed and Clone/Equal
// need to be updated accordingly.
var _ = TransactionInput{0, Commitment{}}

// Clone returns a clone of this TransactionInput.
func (input *TransactionInput) Clone() *TransactionInput {
	if input == nil {
		return nil
	}
	return &TransactionInput{
		Features:   input.Features,
		Commitment: input.Commitment,
	}
}

// Equal returns whether input equals to other.
func (input *TransactionInput) Equal(other *TransactionInput) bool {
	if input == nil || other == nil {
		return input == other
	}
	return input.Features == other.Features && input.Commitment == other.Commitment
}

// TransactionOutput carries a commitment and the range proof that binds
// to it, proving 0 <= v < 2^64 for the hidden value v.
type TransactionOutput struct {
	Features    OutputFeature
	Commitment  Commitment
	RangeProof  []byte
}

var _ = TransactionOutput{0, Commitment{}, nil}

// Clone returns a clone of this TransactionOutput.
func (output *TransactionOutput) Clone() *TransactionOutput {
	if output == nil {
		return nil
	}
	rangeProofClone := make([]byte, len(output.RangeProof))
	copy(rangeProofClone, output.RangeProof)
	return &TransactionOutput{
		Features:   output.Features,
		Commitment: output.Commitment,
		RangeProof: rangeProofClone,
	}
}

// Equal returns whether output equals to other.
func (output *TransactionOutput) Equal(other *TransactionOutput) bool {
	if output == nil || other == nil {
		return output == other
	}
	if output.Features != other.Features || output.Commitment != other.Commitment {
		return false
	}
	if len(output.RangeProof) != len(other.RangeProof) {
		return false
	}
	for i, b := range output.RangeProof {
		if b != other.RangeProof[i] {
			return false
		}
	}
	return true
}

// TransactionKernel is the proof of a transaction's balance: the
// excess commitment is a public key whose private counterpart signs
// over the kernel's own features, fee, and lock height.
type TransactionKernel struct {
	Features   KernelFeature
	Fee        uint64
	LockHeight uint64
	Excess     Commitment
	ExcessSig  Signature
}

var _ = TransactionKernel{0, 0, 0, Commitment{}, Signature{}}

// Clone returns a clone of this TransactionKernel.
func (kernel *TransactionKernel) Clone() *TransactionKernel {
	if kernel == nil {
		return nil
	}
	clone := *kernel
	return &clone
}

// Equal returns whether kernel equals to other.
func (kernel *TransactionKernel) Equal(other *TransactionKernel) bool {
	if kernel == nil || other == nil {
		return kernel == other
	}
	return *kernel == *other
}

// TransactionBody is the ordered triple (inputs, outputs, kernels)
// that makes up a transaction or an aggregated block body.
type TransactionBody struct {
	Inputs  []*TransactionInput
	Outputs []*TransactionOutput
	Kernels []*TransactionKernel
}

var _ = TransactionBody{nil, nil, nil}

// Clone returns a clone of this TransactionBody.
func (body *TransactionBody) Clone() *TransactionBody {
	if body == nil {
		return nil
	}
	inputs := make([]*TransactionInput, len(body.Inputs))
	for i, input := range body.Inputs {
		inputs[i] = input.Clone()
	}
	outputs := make([]*TransactionOutput, len(body.Outputs))
	for i, output := range body.Outputs {
		outputs[i] = output.Clone()
	}
	kernels := make([]*TransactionKernel, len(body.Kernels))
	for i, kernel := range body.Kernels {
		kernels[i] = kernel.Clone()
	}
	return &TransactionBody{Inputs: inputs, Outputs: outputs, Kernels: kernels}
}

// Equal returns whether body equals to other.
func (body *TransactionBody) Equal(other *TransactionBody) bool {
	if body == nil || other == nil {
		return body == other
	}
	if len(body.Inputs) != len(other.Inputs) ||
		len(body.Outputs) != len(other.Outputs) ||
		len(body.Kernels) != len(other.Kernels) {
		return false
	}
	for i, input := range body.Inputs {
		if !input.Equal(other.Inputs[i]) {
			return false
		}
	}
	for i, output := range body.Outputs {
		if !output.Equal(other.Outputs[i]) {
			return false
		}
	}
	for i, kernel := range body.Kernels {
		if !kernel.Equal(other.Kernels[i]) {
			return false
		}
	}
	return true
}

// InputCommitments returns the commitments of all inputs in this body.
func (body *TransactionBody) InputCommitments() []Commitment {
	commitments := make([]Commitment, len(body.Inputs))
	for i, input := range body.Inputs {
		commitments[i] = input.Commitment
	}
	return commitments
}

// OutputCommitments returns the commitments of all outputs in this body.
func (body *TransactionBody) OutputCommitments() []Commitment {
	commitments := make([]Commitment, len(body.Outputs))
	for i, output := range body.Outputs {
		commitments[i] = output.Commitment
	}
	return commitments
}
