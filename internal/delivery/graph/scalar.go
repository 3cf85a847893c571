package graph

import (
	"fmt"
	"strconv"
)

// Int64 is a GraphQL scalar for 64-bit integers. The built-in Int is 32-bit,
// which is too small for epoch seconds past 2038 and for long durations.
type Int64 int64

func (Int64) ImplementsGraphQLType(name string) bool {
	return name == "Int64"
}

func (i *Int64) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case int32:
		*i = Int64(v)
	case int64:
		*i = Int64(v)
	case int:
		*i = Int64(v)
	case float64:
		*i = Int64(v)
		if float64(*i) != v {
			return fmt.Errorf("not a 64-bit integer: %v", input)
		}
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("not a 64-bit integer: %q", v)
		}
		*i = Int64(parsed)
	default:
		return fmt.Errorf("wrong type for Int64: %T", input)
	}
	return nil
}

func (i Int64) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(i), 10), nil
}
