package vector

import (
	"fmt"
	"reflect"
	"strings"
)

// Render returns the textual form "⟨x, y⟩", where x and y use the canonical
// fmt representation of T (as fmt.Sprint would print them). Floats therefore
// drop a trailing ".0": New(2.0, 8.0).Render() is "⟨2, 8⟩".
func (v Vector2[T]) Render() string {
	return Format(v)
}

// String implements fmt.Stringer with the same text as Render.
func (v Vector2[T]) String() string {
	return v.Render()
}

// Format renders v using the given options on top of the defaults.
// Format(v) with no options is identical to v.Render().
func Format[T any](v Vector2[T], opts ...Option) string {
	o := gatherOptions(opts...)

	var sb strings.Builder
	sb.WriteString(o.open)
	sb.WriteString(formatComponent(v.X, o.precision))
	sb.WriteString(o.separator)
	sb.WriteString(formatComponent(v.Y, o.precision))
	sb.WriteString(o.close)

	return sb.String()
}

// formatComponent renders one component. A non-negative precision applies to
// float kinds only.
func formatComponent(x any, precision int) string {
	if precision >= 0 && x != nil {
		switch reflect.ValueOf(x).Kind() {
		case reflect.Float32, reflect.Float64:
			return fmt.Sprintf("%.*f", precision, x)
		}
	}
	return fmt.Sprint(x)
}
