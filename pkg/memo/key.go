package memo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Key derives a canonical cache key from a prop map. Names are sorted
// alphabetically and joined as name:value pairs separated by pipes, so two
// maps with the same set pairs always produce the same key regardless of
// insertion order.
//
// Nil values and empty strings mark unset props and are skipped. Strings,
// booleans and numbers encode directly; any other value is JSON-encoded,
// which keeps map-valued props (such as responsive spacing) deterministic
// because encoding/json sorts map keys.
func Key(props map[string]any) string {
	names := make([]string, 0, len(props))
	for name, value := range props {
		if isUnset(value) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(encodeValue(props[name]))
	}
	return b.String()
}

func isUnset(value any) bool {
	if value == nil {
		return true
	}
	s, ok := value.(string)
	return ok && s == ""
}

func encodeValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}
