package model

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hangxie/parquet-go/v2/parquet"
	"github.com/hangxie/parquet-go/v2/types"
)

// maxValueRunes bounds the rendered length of a single cell before the
// viewport applies its own width-based truncation
const maxValueRunes = 200

// FormatValue renders one cell value for display, applying logical and
// converted type conversions when schema information is available.
func FormatValue(val any, typ parquet.Type, schemaElem *parquet.SchemaElement) string {
	if val == nil {
		// Parquet readers return nil for zero-length BYTE_ARRAY string values
		if schemaElem != nil && schemaElem.LogicalType != nil && schemaElem.LogicalType.IsSetSTRING() {
			return ""
		}
		return "NULL"
	}

	// repeated fields arrive as one slice per row
	if list, ok := val.([]any); ok {
		parts := make([]string, len(list))
		for i, v := range list {
			parts[i] = FormatValue(v, typ, schemaElem)
		}
		return truncateDisplay("[" + strings.Join(parts, ", ") + "]")
	}

	if str, ok := val.(string); ok && str == "" {
		return ""
	}

	decoded := decodeValue(val, typ, schemaElem)

	if bytes, ok := decoded.([]byte); ok {
		decoded = renderBinary(bytes)
	}

	return truncateDisplay(fmt.Sprintf("%v", decoded))
}

// truncateDisplay caps a rendered value at maxValueRunes
func truncateDisplay(s string) string {
	if utf8.RuneCountInString(s) > maxValueRunes {
		runes := []rune(s)
		return string(runes[:maxValueRunes]) + "..."
	}
	return s
}

// decodeValue converts a raw reader value to its logical representation
//
//nolint:gocognit // dispatch over the full set of parquet logical types
func decodeValue(val any, typ parquet.Type, schemaElem *parquet.SchemaElement) any {
	if val == nil {
		return val
	}

	// INT96 timestamps arrive as strings from the reader
	if typ == parquet.Type_INT96 {
		if strVal, ok := val.(string); ok {
			return types.INT96ToTime(strVal)
		}
		return val
	}

	if schemaElem == nil || (schemaElem.LogicalType == nil && schemaElem.ConvertedType == nil) {
		// Untyped byte arrays: show printable text as-is, otherwise base64
		if typ == parquet.Type_BYTE_ARRAY || typ == parquet.Type_FIXED_LEN_BYTE_ARRAY {
			if strVal, ok := val.(string); ok && !isMostlyPrintable(strVal) {
				return base64.StdEncoding.EncodeToString([]byte(strVal))
			}
		}
		return val
	}

	lt := schemaElem.LogicalType
	if lt != nil {
		switch {
		case lt.IsSetDECIMAL():
			return types.ConvertDecimalValue(val, &typ, decimalPrecision(schemaElem), decimalScale(schemaElem))
		case lt.IsSetDATE():
			return types.ConvertDateLogicalValue(val)
		case lt.IsSetTIME():
			return types.ConvertTimeLogicalValue(val, lt.GetTIME())
		case lt.IsSetTIMESTAMP():
			if i64Val, ok := val.(int64); ok {
				switch {
				case lt.TIMESTAMP.Unit.IsSetMILLIS():
					return types.TIMESTAMP_MILLISToISO8601(i64Val, false)
				case lt.TIMESTAMP.Unit.IsSetMICROS():
					return types.TIMESTAMP_MICROSToISO8601(i64Val, false)
				default:
					return types.TIMESTAMP_NANOSToISO8601(i64Val, false)
				}
			}
			return val
		case lt.IsSetUUID():
			return types.ConvertUUIDValue(val)
		case lt.IsSetBSON():
			return types.ConvertBSONLogicalValue(val)
		case lt.IsSetFLOAT16():
			return types.ConvertFloat16LogicalValue(val)
		}
	}

	if schemaElem.ConvertedType != nil {
		switch *schemaElem.ConvertedType {
		case parquet.ConvertedType_DECIMAL:
			return types.ConvertDecimalValue(val, &typ, decimalPrecision(schemaElem), decimalScale(schemaElem))
		case parquet.ConvertedType_DATE:
			return types.ConvertDateLogicalValue(val)
		case parquet.ConvertedType_TIME_MICROS, parquet.ConvertedType_TIME_MILLIS:
			if lt != nil && lt.TIME != nil {
				return types.ConvertTimeLogicalValue(val, lt.GetTIME())
			}
			return val
		case parquet.ConvertedType_TIMESTAMP_MICROS, parquet.ConvertedType_TIMESTAMP_MILLIS:
			return types.ConvertTimestampValue(val, *schemaElem.ConvertedType)
		case parquet.ConvertedType_INTERVAL:
			if strVal, ok := val.(string); ok {
				return types.IntervalToString([]byte(strVal))
			}
			return val
		case parquet.ConvertedType_BSON:
			return types.ConvertBSONLogicalValue(val)
		}
	}

	return val
}

func decimalPrecision(schemaElem *parquet.SchemaElement) int {
	if schemaElem.Precision != nil {
		return int(*schemaElem.Precision)
	}
	return 10
}

func decimalScale(schemaElem *parquet.SchemaElement) int {
	if schemaElem.Scale != nil {
		return int(*schemaElem.Scale)
	}
	return 0
}

// renderBinary renders raw bytes: printable text directly, small blobs as hex,
// anything else as a size marker
func renderBinary(b []byte) string {
	str := string(b)
	if isMostlyPrintable(str) {
		return str
	}
	if len(b) <= 32 {
		return fmt.Sprintf("0x%X", b)
	}
	return fmt.Sprintf("<binary:%d bytes>", len(b))
}

// isMostlyPrintable reports whether s is valid UTF-8 with at least 80%
// printable characters
func isMostlyPrintable(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	printable := 0
	total := 0
	for _, r := range s {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}

	return total > 0 && (printable*100/total >= 80)
}

// formatLogicalType formats the logical type for display
func formatLogicalType(logicalType *parquet.LogicalType) string {
	if logicalType == nil {
		return "-"
	}

	switch {
	case logicalType.IsSetSTRING():
		return "STRING"
	case logicalType.IsSetMAP():
		return "MAP"
	case logicalType.IsSetLIST():
		return "LIST"
	case logicalType.IsSetENUM():
		return "ENUM"
	case logicalType.IsSetDECIMAL():
		decimal := logicalType.DECIMAL
		return fmt.Sprintf("DECIMAL(%d,%d)", decimal.Precision, decimal.Scale)
	case logicalType.IsSetDATE():
		return "DATE"
	case logicalType.IsSetTIME():
		return fmt.Sprintf("TIME(%s)", formatTimeUnit(logicalType.TIME.Unit))
	case logicalType.IsSetTIMESTAMP():
		return fmt.Sprintf("TIMESTAMP(%s)", formatTimeUnit(logicalType.TIMESTAMP.Unit))
	case logicalType.IsSetINTEGER():
		integer := logicalType.INTEGER
		sign := "signed"
		if !integer.IsSigned {
			sign = "unsigned"
		}
		return fmt.Sprintf("INTEGER(%d,%s)", integer.BitWidth, sign)
	case logicalType.IsSetJSON():
		return "JSON"
	case logicalType.IsSetBSON():
		return "BSON"
	case logicalType.IsSetUUID():
		return "UUID"
	case logicalType.IsSetFLOAT16():
		return "FLOAT16"
	}

	return "-"
}

// formatTimeUnit formats a TimeUnit to a clean string representation
func formatTimeUnit(unit *parquet.TimeUnit) string {
	if unit == nil {
		return "unknown"
	}
	switch {
	case unit.IsSetMILLIS():
		return "MILLIS"
	case unit.IsSetMICROS():
		return "MICROS"
	case unit.IsSetNANOS():
		return "NANOS"
	}
	return "unknown"
}
