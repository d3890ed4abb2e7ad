package wire

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// FromReply converts a RESP2 reply as produced by go-redis (nil, int64, string, []byte, []any) into a Value tree. An
// error reply nested anywhere inside the tree is returned as an error. RESP3-only reply types are rejected except for
// doubles and booleans, which are folded into their RESP2 renditions.
func FromReply(reply any) (Value, error) {
	switch typedReply := reply.(type) {
	case nil:
		return Nil(), nil

	case int64:
		return Int(typedReply), nil

	case string:
		return String(typedReply), nil

	case []byte:
		return Data(typedReply), nil

	case float64:
		return String(strconv.FormatFloat(typedReply, 'g', -1, 64)), nil

	case bool:
		if typedReply {
			return Int(1), nil
		}

		return Int(0), nil

	case []any:
		elements := make([]Value, len(typedReply))

		for idx, element := range typedReply {
			if value, err := FromReply(element); err != nil {
				return Value{}, err
			} else {
				elements[idx] = value
			}
		}

		return Array(elements...), nil

	case error:
		return Value{}, typedReply

	default:
		return Value{}, fmt.Errorf("unsupported reply type %T", reply)
	}
}

// IsNilReply returns true if the error reports an absent reply rather than a failure.
func IsNilReply(err error) bool {
	return errors.Is(err, redis.Nil)
}
