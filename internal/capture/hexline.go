package capture

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseReport converts one hex payload line into raw report bytes. Both the
// colon-separated form tshark emits ("00:00:15:00:00:00:00:00") and the
// contiguous form ("0000150000000000") are accepted. Length is not checked
// here; the decoder owns that invariant.
func ParseReport(line string) ([]byte, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, fmt.Errorf("empty payload line")
	}
	if strings.Contains(line, ":") {
		parts := strings.Split(line, ":")
		buf := make([]byte, 0, len(parts))
		for _, p := range parts {
			b, err := strconv.ParseUint(p, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid hex byte %q: %w", p, err)
			}
			buf = append(buf, byte(b))
		}
		return buf, nil
	}
	if len(line)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex payload (%d digits)", len(line))
	}
	buf, err := hex.DecodeString(line)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload: %w", err)
	}
	return buf, nil
}
