package nft

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestOperatorGrantActive(t *testing.T) {
	cases := map[string]struct {
		ExpiresAt int64
		Height    int64
		Want      bool
	}{
		"zero expiration never expires": {
			ExpiresAt: 0,
			Height:    1e12,
			Want:      true,
		},
		"active below the expiration height": {
			ExpiresAt: 100,
			Height:    99,
			Want:      true,
		},
		"expired at the expiration height": {
			ExpiresAt: 100,
			Height:    100,
			Want:      false,
		},
		"expired above the expiration height": {
			ExpiresAt: 100,
			Height:    101,
			Want:      false,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			g := OperatorGrant{ExpiresAt: tc.ExpiresAt}
			if got := g.Active(tc.Height); got != tc.Want {
				t.Fatalf("want %v, got %v", tc.Want, got)
			}
		})
	}
}

func TestGrantKey(t *testing.T) {
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	key := grantKey(alice, bob)
	assert.Equal(t, len(alice)+len(bob), len(key))
	if !bytes.HasPrefix(key, alice) {
		t.Fatal("key must start with the owner address")
	}
	if bytes.Equal(grantKey(alice, bob), grantKey(bob, alice)) {
		t.Fatal("keys of mirrored pairs must differ")
	}
}

func TestTokenInfoValidate(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Token TokenInfo
		Errs  map[string]*errors.Error
	}{
		"valid token without an approval": {
			Token: TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
			},
			Errs: map[string]*errors.Error{
				"Metadata": nil,
				"Owner":    nil,
				"Approved": nil,
			},
		},
		"valid token with an approval": {
			Token: TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
				Approved: addr,
			},
			Errs: map[string]*errors.Error{
				"Approved": nil,
			},
		},
		"missing metadata": {
			Token: TokenInfo{
				Owner: addr,
			},
			Errs: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
			},
		},
		"missing owner": {
			Token: TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
			},
			Errs: map[string]*errors.Error{
				"Owner": errors.ErrEmpty,
			},
		},
		"malformed approval": {
			Token: TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    addr,
				Approved: []byte("too-short"),
			},
			Errs: map[string]*errors.Error{
				"Approved": errors.ErrInput,
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.Token.Validate()
			for field, wantErr := range tc.Errs {
				assert.FieldError(t, err, field, wantErr)
			}
		})
	}
}

func TestAddTokenCount(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	counter := NewCounterBucket()

	// The counter is created on first use.
	assert.Nil(t, addTokenCount(db, counter, 1))
	n, err := NumTokens(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), n)

	assert.Nil(t, addTokenCount(db, counter, 2))
	assert.Nil(t, addTokenCount(db, counter, -1))

	n, err = NumTokens(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), n)
}
