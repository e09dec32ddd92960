package nps

import (
	"math"
	"strconv"

	"github.com/NextMind-AI/nps-dashboard-go/crm"
)

// scoreFieldKey is the upstream custom-field entry holding the survey score.
const scoreFieldKey = "nps"

// EffectiveScore resolves the score for a contact fetched under bucket.
// The custom field may arrive as a number or a numeric string; anything
// that does not resolve to a finite non-zero number falls back to the
// bucket value the contact was fetched under. Zero counts as unset
// because the upstream serializes empty score fields as 0.
func EffectiveScore(contact crm.Contact, bucket int) float64 {
	raw, ok := contact.CustomFields[scoreFieldKey]
	if !ok {
		return float64(bucket)
	}

	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return float64(bucket)
		}
		value = parsed
	default:
		return float64(bucket)
	}

	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return float64(bucket)
	}

	return value
}
