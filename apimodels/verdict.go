package apimodels

import (
	"encoding/json"
)

const (
	VerdictLikelyTrue  = "likely_true"
	VerdictLikelyFalse = "likely_false"
)

// VerdictResponse is the verification API's answer to a Query.
type VerdictResponse struct {
	// Verdict is the categorical outcome, e.g. "likely_true"
	Verdict string `json:"decision_verdict"`

	// Confidence is the API's certainty in Verdict, in [0,1]
	Confidence float64 `json:"decision_confidence"`

	// Raw is the full payload as received, including fields this client does not model
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the modelled fields and keeps a copy of data in Raw.
func (v *VerdictResponse) UnmarshalJSON(data []byte) error {
	type plain VerdictResponse
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*v = VerdictResponse(p)
	v.Raw = append(json.RawMessage(nil), data...)
	return nil
}
