package ebay

import "strings"

// conditionMap enumerates the Sell API condition values accepted for
// inventory items. Identity mappings, but the table is the contract:
// anything outside it falls back to NEW.
var conditionMap = map[string]string{
	"NEW":                      "NEW",
	"LIKE_NEW":                 "LIKE_NEW",
	"NEW_OTHER":                "NEW_OTHER",
	"NEW_WITH_DEFECTS":         "NEW_WITH_DEFECTS",
	"MANUFACTURER_REFURBISHED": "MANUFACTURER_REFURBISHED",
	"CERTIFIED_REFURBISHED":    "CERTIFIED_REFURBISHED",
	"EXCELLENT_REFURBISHED":    "EXCELLENT_REFURBISHED",
	"VERY_GOOD_REFURBISHED":    "VERY_GOOD_REFURBISHED",
	"GOOD_REFURBISHED":         "GOOD_REFURBISHED",
	"SELLER_REFURBISHED":       "SELLER_REFURBISHED",
	"USED_EXCELLENT":           "USED_EXCELLENT",
	"USED_VERY_GOOD":           "USED_VERY_GOOD",
	"USED_GOOD":                "USED_GOOD",
	"USED_ACCEPTABLE":          "USED_ACCEPTABLE",
	"FOR_PARTS_OR_NOT_WORKING": "FOR_PARTS_OR_NOT_WORKING",
}

// MapCondition normalizes a product condition string to a Sell API condition
// enum. Unrecognized values map to NEW.
func MapCondition(condition string) string {
	if c, ok := conditionMap[strings.ToUpper(strings.TrimSpace(condition))]; ok {
		return c
	}
	return "NEW"
}
