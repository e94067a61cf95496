package public

import "github.com/chainlabs/chainsim/business/sys/validate"

// submitTx is what clients post to queue a transfer.
type submitTx struct {
	From  string  `json:"from" validate:"required"`
	To    string  `json:"to" validate:"required"`
	Value float64 `json:"value" validate:"required,gt=0"`
}

// Validate checks the data in the model is considered clean.
func (app submitTx) Validate() error {
	return validate.Check(app)
}

// newContract is what clients post to deploy a smart contract.
type newContract struct {
	Creator string  `json:"creator" validate:"required"`
	Code    string  `json:"code" validate:"required"`
	Value   float64 `json:"value" validate:"gte=0"`
}

// Validate checks the data in the model is considered clean.
func (app newContract) Validate() error {
	return validate.Check(app)
}

// executeContract is what clients post to call a deployed contract.
type executeContract struct {
	ContractID string   `json:"contract_id" validate:"required"`
	Function   string   `json:"function" validate:"required"`
	Args       []string `json:"args"`
}

// Validate checks the data in the model is considered clean.
func (app executeContract) Validate() error {
	return validate.Check(app)
}

// storeData is what clients post to write a payload on the chain. The
// data rides as base64 in the JSON document.
type storeData struct {
	Sender string `json:"sender" validate:"required"`
	Data   []byte `json:"data" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (app storeData) Validate() error {
	return validate.Check(app)
}

// stakeValidator is what clients post to join or leave the validator set.
type stakeValidator struct {
	Account string  `json:"account" validate:"required"`
	Stake   float64 `json:"stake" validate:"gte=0"`
}

// Validate checks the data in the model is considered clean.
func (app stakeValidator) Validate() error {
	return validate.Check(app)
}
