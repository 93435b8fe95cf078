package models

import (
	"fmt"
	"math"
)

// ChargeBreakdown groups the charge components that make up a bilty total.
type ChargeBreakdown struct {
	Freight float64
	Other   float64
	GST     float64
}

func (c ChargeBreakdown) Total() float64 {
	return c.Freight + c.Other + c.GST
}

func (c ChargeBreakdown) validate() error {
	for name, v := range map[string]float64{
		"freightAmount": c.Freight,
		"otherCharges":  c.Other,
		"gstAmount":     c.GST,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewValidationError(fmt.Sprintf("%s must be a finite number", name))
		}
		if v < 0 {
			return NewValidationError(fmt.Sprintf("%s cannot be negative", name))
		}
	}
	return nil
}

// ComputeTotal derives a bilty's total from its charge components. Missing
// other/GST charges count as zero. Non-finite inputs are rejected outright:
// the old clients sometimes coerced NaN from bad form input to zero, which
// silently wrote wrong totals. Policy here is reject, never coerce.
func ComputeTotal(freight float64, other, gst *float64) (float64, error) {
	breakdown := ChargeBreakdown{Freight: freight}
	if other != nil {
		breakdown.Other = *other
	}
	if gst != nil {
		breakdown.GST = *gst
	}

	if err := breakdown.validate(); err != nil {
		return 0, err
	}
	return breakdown.Total(), nil
}
