package models

// OperatorClaims is what the gate token carries. Operators are not real
// accounts, just a display name vouched for by the shared access pin.
type OperatorClaims struct {
	OperatorName string `json:"operator_name"`
}

type GateLoginPayload struct {
	OperatorName string `json:"operator_name" validate:"required,min=2,max=100"`
	Pin          string `json:"pin" validate:"required"`
}
