package nft

import (
	"strings"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestValidateRegexp(t *testing.T) {
	cases := map[string]struct {
		Rx      string
		WantErr *errors.Error
	}{
		"valid": {
			Rx: `^[a-z0-9]{4,16}$`,
		},
		"empty": {
			Rx:      "",
			WantErr: errors.ErrEmpty,
		},
		"missing beginning": {
			Rx:      `[a-z0-9]{4,16}$`,
			WantErr: errors.ErrInput,
		},
		"missing ending": {
			Rx:      `^[a-z0-9]{4,16}`,
			WantErr: errors.ErrInput,
		},
		"not a regular expression": {
			Rx:      `^[abc$`,
			WantErr: errors.ErrInput,
		},
		"too long": {
			Rx:      "^" + strings.Repeat("a", 1024) + "$",
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := validateRegexp(tc.Rx); !tc.WantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestConfigurationValidate(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Conf Configuration
		Errs map[string]*errors.Error
	}{
		"valid": {
			Conf: Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        addr,
				Minter:       addr,
				ValidTokenId: `^[a-z]+$`,
			},
			Errs: map[string]*errors.Error{
				"Metadata":     nil,
				"Owner":        nil,
				"Minter":       nil,
				"ValidTokenId": nil,
			},
		},
		"missing minter": {
			Conf: Configuration{
				Metadata:     &weave.Metadata{Schema: 1},
				Owner:        addr,
				ValidTokenId: `^[a-z]+$`,
			},
			Errs: map[string]*errors.Error{
				"Minter": errors.ErrEmpty,
			},
		},
		"missing token ID rule": {
			Conf: Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
				Minter:   addr,
			},
			Errs: map[string]*errors.Error{
				"ValidTokenId": errors.ErrEmpty,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Conf.Validate()
			for field, wantErr := range tc.Errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}
