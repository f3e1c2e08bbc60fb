package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload of the collect payment route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas. The body
// may also be the bare Mercado Pago payload.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
