package model

import "github.com/gn0uchat/GrinPlusPlus/domain/consensus/model/externalapi"

// TransactionBodyValidator runs the structural and cryptographic checks
// that apply to any ordered (inputs, outputs, kernels) triple, whether
// it is a standalone transaction or an aggregated block body.
type TransactionBodyValidator interface {
	Validate(body *externalapi.TransactionBody, withCutThrough bool) error
}
