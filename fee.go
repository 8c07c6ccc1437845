package helius

import "context"

// PriorityLevel names the fee percentile buckets recognized by the fee
// estimation service.
type PriorityLevel string

// Supported priority levels.
const (
	PriorityLevelMin       PriorityLevel = "Min"
	PriorityLevelLow       PriorityLevel = "Low"
	PriorityLevelMedium    PriorityLevel = "Medium"
	PriorityLevelHigh      PriorityLevel = "High"
	PriorityLevelVeryHigh  PriorityLevel = "VeryHigh"
	PriorityLevelUnsafeMax PriorityLevel = "UnsafeMax"
	PriorityLevelDefault   PriorityLevel = "Default"
)

// GetPriorityFeeEstimateRequest scopes a fee estimate to either a
// serialized transaction or the account keys it will touch.
type GetPriorityFeeEstimateRequest struct {
	Transaction string                      `json:"transaction,omitempty"` // Serialized transaction to estimate for
	AccountKeys []string                    `json:"accountKeys,omitempty"` // Account keys the transaction will touch
	Options     *PriorityFeeEstimateOptions `json:"options,omitempty"`
}

// PriorityFeeEstimateOptions tunes how the estimate is computed and
// reported.
type PriorityFeeEstimateOptions struct {
	PriorityLevel               PriorityLevel `json:"priorityLevel,omitempty"`
	IncludeAllPriorityFeeLevels bool          `json:"includeAllPriorityFeeLevels,omitempty"`
	TransactionEncoding         string        `json:"transactionEncoding,omitempty"`
	LookbackSlots               int           `json:"lookbackSlots,omitempty"`
	Recommended                 bool          `json:"recommended,omitempty"`
}

// PriorityFeeLevels breaks an estimate down per priority level, in
// micro-lamports per compute unit.
type PriorityFeeLevels struct {
	Min       float64 `json:"min"`
	Low       float64 `json:"low"`
	Medium    float64 `json:"medium"`
	High      float64 `json:"high"`
	VeryHigh  float64 `json:"veryHigh"`
	UnsafeMax float64 `json:"unsafeMax"`
}

// GetPriorityFeeEstimateResponse carries either a single estimate or the
// full per-level breakdown, depending on the request options.
type GetPriorityFeeEstimateResponse struct {
	PriorityFeeEstimate float64            `json:"priorityFeeEstimate,omitempty"`
	PriorityFeeLevels   *PriorityFeeLevels `json:"priorityFeeLevels,omitempty"`
}

// GetPriorityFeeEstimate estimates the priority fee a transaction needs to
// land, based on recent cluster activity. The request travels as a
// single-element positional array, which is the parameter shape the service
// expects for this method.
//
// Parameters:
//   - ctx: context for cancellation and timeout control.
//   - req: estimate scope and options.
//
// Returns:
//   - *GetPriorityFeeEstimateResponse: the estimate, with the per-level
//     breakdown when requested.
//   - error: a RemoteCallError when the call fails or the service reports
//     an error.
func (c *Client) GetPriorityFeeEstimate(ctx context.Context, req GetPriorityFeeEstimateRequest) (*GetPriorityFeeEstimateResponse, error) {
	return rpcCall[*GetPriorityFeeEstimateResponse](ctx, c, "getPriorityFeeEstimate", []GetPriorityFeeEstimateRequest{req})
}
