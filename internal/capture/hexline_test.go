package capture_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m31r0n/usb2text/internal/capture"
)

func TestParseReport(t *testing.T) {
	type testCase struct {
		name     string
		line     string
		expected []byte
		wantErr  bool
	}

	cases := []testCase{
		{
			name:     "colon separated",
			line:     "00:00:15:00:00:00:00:00",
			expected: []byte{0x00, 0x00, 0x15, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:     "contiguous",
			line:     "2000041a00000000",
			expected: []byte{0x20, 0x00, 0x04, 0x1a, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:     "surrounding whitespace",
			line:     "  02:00:1e:00:00:00:00:00\n",
			expected: []byte{0x02, 0x00, 0x1e, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:     "short payload parses, length is the decoder's concern",
			line:     "00:00:04",
			expected: []byte{0x00, 0x00, 0x04},
		},
		{name: "empty line", line: "   ", wantErr: true},
		{name: "odd digit count", line: "00004", wantErr: true},
		{name: "non-hex colon part", line: "00:zz:04:00:00:00:00:00", wantErr: true},
		{name: "non-hex contiguous", line: "00xx150000000000", wantErr: true},
		{name: "colon byte out of range", line: "1ff:00:15", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := capture.ParseReport(tc.line)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
