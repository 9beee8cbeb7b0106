package nftd

import (
	"fmt"
	"strings"
	"testing"

	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenInitOptions(t *testing.T) {
	cases := []struct {
		args []string
		cur  string
		addr string
	}{
		{nil, "IOV", ""},
		{[]string{"ONE"}, "ONE", ""},
		{[]string{"TWO", "1234567890"}, "TWO", "1234567890"},
		{[]string{"THR", "5238975983695", "FOO"}, "THR", "5238975983695"},
	}

	for i, tc := range cases {
		t.Run(fmt.Sprintf("case-%d", i), func(t *testing.T) {
			val, err := GenInitOptions(tc.args)
			assert.Nil(t, err)

			cc := fmt.Sprintf(`"ticker": "%s"`, tc.cur)
			assert.Equal(t, true, strings.Contains(string(val), cc))

			cm := fmt.Sprintf(`"minter": "%s"`, tc.addr)
			if tc.addr == "" {
				// we just know there is a minter, not who it is
				cm = cm[:len(cm)-1]
			}
			assert.Equal(t, true, strings.Contains(string(val), cm))
		})
	}
}

func TestGenInitOptionsRejectsBadTicker(t *testing.T) {
	if _, err := GenInitOptions([]string{"not-a-ticker"}); err == nil {
		t.Fatal("expected an error for a malformed ticker")
	}
}
