package binding

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 若 data 为空或路径不存在，则保留原占位符。
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		path, ok := placeholderPath(match)
		if !ok {
			return match
		}
		if val, ok := Lookup(data, path); ok {
			return format(val)
		}
		return match
	})
}

// Missing returns the placeholder paths of text that data cannot resolve.
func Missing(text string, data any) []string {
	var out []string
	for _, match := range exprPattern.FindAllString(text, -1) {
		path, ok := placeholderPath(match)
		if !ok {
			continue
		}
		if _, found := Lookup(data, path); !found {
			out = append(out, path)
		}
	}
	return out
}

// HasPlaceholders reports whether text contains any ${...} expression.
func HasPlaceholders(text string) bool {
	return exprPattern.MatchString(text)
}

func placeholderPath(match string) (string, bool) {
	groups := exprPattern.FindStringSubmatch(match)
	if len(groups) < 2 {
		return "", false
	}
	path := strings.TrimSpace(groups[1])
	return path, path != ""
}

// Lookup resolves a dotted path such as `items[0].name` against data.
// Maps with string keys, slices and arrays are walked, pointers followed.
func Lookup(data any, path string) (any, bool) {
	steps, ok := parsePath(path)
	if !ok || data == nil {
		return nil, false
	}
	current := reflect.ValueOf(data)
	for _, st := range steps {
		current = indirect(current)
		if !current.IsValid() {
			return nil, false
		}
		if current, ok = st.apply(current); !ok {
			return nil, false
		}
	}
	current = indirect(current)
	if !current.IsValid() {
		return nil, true
	}
	return current.Interface(), true
}

// step is one `.key` or `[index]` of a path.
type step struct {
	key   string
	index int // -1 for keys
}

func (s step) apply(v reflect.Value) (reflect.Value, bool) {
	if s.index < 0 {
		if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, false
		}
		val := v.MapIndex(reflect.ValueOf(s.key).Convert(v.Type().Key()))
		return val, val.IsValid()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if s.index >= v.Len() {
			return reflect.Value{}, false
		}
		return v.Index(s.index), true
	}
	return reflect.Value{}, false
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// parsePath splits `a.b[0][1].c` into steps.
func parsePath(path string) ([]step, bool) {
	var steps []step
	for _, segment := range strings.Split(path, ".") {
		key, rest, _ := strings.Cut(segment, "[")
		if key == "" && rest == "" {
			return nil, false
		}
		if key != "" {
			steps = append(steps, step{key: key, index: -1})
		}
		if rest == "" {
			continue
		}
		for _, idx := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
			n, err := strconv.Atoi(idx)
			if err != nil || n < 0 {
				return nil, false
			}
			steps = append(steps, step{index: n})
		}
		if !strings.HasSuffix(rest, "]") {
			return nil, false
		}
	}
	return steps, len(steps) > 0
}

func format(v any) string {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}
