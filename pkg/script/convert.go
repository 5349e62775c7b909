package script

import "github.com/Shopify/go-lua"

// optionalTable reads the table argument at index, tolerating a missing one.
func optionalTable(state *lua.State, index int) map[string]any {
	if state.IsNoneOrNil(index) {
		return map[string]any{}
	}
	lua.CheckType(state, index, lua.TypeTable)
	return tableToMap(state, index)
}

// tableToMap converts the string-keyed pairs of the table at index.
func tableToMap(state *lua.State, index int) map[string]any {
	out := map[string]any{}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			out[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return out
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return value
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo converts a table to a []any when it is a dense 1..n sequence,
// and to a map[string]any otherwise.
func tableToGo(state *lua.State, index int) any {
	index = state.AbsIndex(index)

	count, maxIndex := 0, 0
	sequence := true
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) != lua.TypeNumber {
			sequence = false
		} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
			count++
			if idx > maxIndex {
				maxIndex = idx
			}
		} else {
			sequence = false
		}
		state.Pop(1)
	}

	if sequence && count > 0 && maxIndex == count {
		out := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			out = append(out, luaToGo(state, -1))
			state.Pop(1)
		}
		return out
	}
	return tableToMap(state, index)
}

func optString(opts map[string]any, key string) string {
	s, _ := opts[key].(string)
	return s
}

func optNumber(opts map[string]any, key string) float64 {
	f, _ := opts[key].(float64)
	return f
}

func optInt(opts map[string]any, key string) int {
	return int(optNumber(opts, key))
}

func optBool(opts map[string]any, key string) bool {
	b, _ := opts[key].(bool)
	return b
}

func optStrings(opts map[string]any, key string) []string {
	raw, _ := opts[key].([]any)
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func optMap(opts map[string]any, key string) map[string]any {
	m, _ := opts[key].(map[string]any)
	return m
}
