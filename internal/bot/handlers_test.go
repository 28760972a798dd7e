package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReferralArg(t *testing.T) {
	tests := []struct {
		name string
		args string
		want *int64
	}{
		{name: "valid", args: "ref12345", want: ptr(int64(12345))},
		{name: "empty", args: "", want: nil},
		{name: "no prefix", args: "12345", want: nil},
		{name: "not a number", args: "refabc", want: nil},
		{name: "prefix only", args: "ref", want: nil},
		{name: "negative id", args: "ref-77", want: ptr(int64(-77))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseReferralArg(tc.args)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func ptr[T any](v T) *T { return &v }
