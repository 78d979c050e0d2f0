package eclair

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/hyp3rd/ewrap"
)

// nullToken is rendered in place of nil arguments, nil results and nil
// supplier products.
const nullToken = "null"

// DefaultPrinter returns the built-in printer. It renders primitives
// directly, honours fmt.Stringer and error, and falls back to %+v. It is
// used for every directive without an explicit printer and as the safety
// net when a configured printer fails.
func DefaultPrinter() Printer {
	return toStringPrinter{}
}

type toStringPrinter struct{}

func (toStringPrinter) Print(value any) (string, error) {
	return formatValue(value), nil
}

// formatValue renders a single value for message assembly. It never fails.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return nullToken
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case time.Time:
		return v.Format(time.RFC3339)
	case time.Duration:
		return v.String()
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}

// render applies printer to value, falling back to the built-in rendering
// when the printer is nil, returns an error, or panics. Fallbacks are
// counted so misbehaving printers stay visible.
func (l *CallLogger) render(printer Printer, value any) string {
	if printer == nil {
		return formatValue(value)
	}

	text, err := safePrint(printer, value)
	if err != nil {
		l.metrics.recordPrinterFallback()

		return formatValue(value)
	}

	return text
}

// isNilValue treats typed nils (a nil *T boxed into an interface) the same
// as a plain nil, so both render as the null token.
func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

func safePrint(printer Printer, value any) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ewrap.New(fmt.Sprintf("printer panicked: %v", r))
		}
	}()

	return printer.Print(value)
}
