package pointer

import "strconv"

// ParseIndex parses an array reference token. The token must be a run of
// decimal digits without a leading zero (other than "0" itself) and the
// resulting index must be below limit. AppendToken is not accepted here;
// callers that allow appending check for it first.
func ParseIndex(token string, limit int) (int, error) {
	if token == "" || (token[0] == '0' && len(token) != 1) {
		return 0, ErrInvalidPointer
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return 0, ErrInvalidPointer
		}
	}
	u64, err := strconv.ParseUint(token, 10, 64)
	if err != nil || u64 >= uint64(limit) {
		return 0, ErrInvalidPointer
	}
	return int(u64), nil
}
