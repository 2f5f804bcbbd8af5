package grid

import (
	"encoding/json"
	"fmt"
	"math"
)

// isMissing reports whether a field is absent or explicitly nil.
func isMissing(value any, present bool) bool {
	return !present || value == nil
}

// toFloat converts any Go numeric kind (and json.Number) to float64.
// Booleans and strings are not numbers.
//
//nolint:cyclop // One branch per numeric kind.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// compareNumbers returns the sign of a-b. NaN sorts after every other number.
func compareNumbers(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareValues applies the default comparison to two field values and the requested
// direction. Missing values always sort last: that placement is decided before the
// direction is applied and is never negated.
func (e *SortEngine) compareValues(aValue any, aPresent bool, bValue any, bPresent bool, order Order) int {
	aMissing, bMissing := isMissing(aValue, aPresent), isMissing(bValue, bPresent)
	switch {
	case aMissing && bMissing:
		return 0
	case aMissing:
		return 1
	case bMissing:
		return -1
	}

	var result int
	aStr, aIsStr := aValue.(string)
	bStr, bIsStr := bValue.(string)
	aNum, aIsNum := toFloat(aValue)
	bNum, bIsNum := toFloat(bValue)

	switch {
	case aIsStr && bIsStr:
		result = e.collator.CompareString(aStr, bStr)
	case aIsNum && bIsNum:
		result = compareNumbers(aNum, bNum)
	default:
		result = e.collator.CompareString(fmt.Sprint(aValue), fmt.Sprint(bValue))
	}

	if order == OrderDesc {
		return -result
	}
	return result
}
