package render

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/sozercan/verdict/apimodels"
)

// Accent is the colour role a panel element is drawn with.
type Accent string

const (
	AccentGreen Accent = "green"
	AccentRed   Accent = "red"
	AccentAmber Accent = "amber"
	AccentError Accent = "error"
)

// CSSVar names the stylesheet custom property for the accent.
func (a Accent) CSSVar() string {
	return "var(--accent-" + string(a) + ")"
}

const (
	LabelLikelyTrue  = "likely True"
	LabelLikelyFalse = "likely False"
	LabelUnsure      = "confusing and is unsure"
)

// Classify maps a verdict onto its display label and accent. Unrecognised
// verdicts are reported as unsure rather than echoed back.
func Classify(verdict string) (string, Accent) {
	switch verdict {
	case apimodels.VerdictLikelyTrue:
		return LabelLikelyTrue, AccentGreen
	case apimodels.VerdictLikelyFalse:
		return LabelLikelyFalse, AccentRed
	default:
		return LabelUnsure, AccentAmber
	}
}

// Percent formats a [0,1] confidence as a percentage with one decimal.
func Percent(confidence float64) string {
	return fixed1(confidence*100) + "%"
}

// fixed1 formats x with one decimal, rounding the exact binary value and
// breaking ties away from zero, so 99.25 becomes "99.3" rather than "99.2".
func fixed1(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}

	sign := ""
	if x < 0 {
		sign = "-"
		x = -x
	}

	// 128 bits hold x*10 exactly
	scaled := new(big.Float).SetPrec(128).SetFloat64(x)
	scaled.Mul(scaled, big.NewFloat(10))

	n, _ := scaled.Int(nil)
	frac := new(big.Float).SetPrec(128).Sub(scaled, new(big.Float).SetInt(n))
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	whole, tenth := new(big.Int).QuoRem(n, big.NewInt(10), new(big.Int))
	return fmt.Sprintf("%s%d.%d", sign, whole, tenth)
}
