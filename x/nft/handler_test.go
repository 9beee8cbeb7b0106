package nft

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x"
)

func newTestDB(t testing.TB, minter weave.Address) weave.CacheableKVStore {
	t.Helper()

	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	config := Configuration{
		Metadata:     &weave.Metadata{Schema: 1},
		Owner:        minter,
		Minter:       minter,
		ValidTokenId: `^[a-z0-9\-]{3,64}$`,
	}
	if err := gconf.Save(db, "nft", &config); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}
	return db
}

func TestIssueTokenHandler(t *testing.T) {
	var (
		minterCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"minter can issue a token": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "fresh-token",
				Owner:    aliceCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: minterCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				owner, err := OwnerOf(db, "fresh-token")
				assert.Nil(t, err)
				assert.Equal(t, aliceCond.Address(), owner)

				n, err := NumTokens(db)
				assert.Nil(t, err)
				assert.Equal(t, int64(1), n)
			},
		},
		"only the minter can issue": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "fresh-token",
				Owner:    aliceCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"token ID must match the configured rule": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "NOT-ALLOWED",
				Owner:    aliceCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: minterCond},
			WantCheckErr:   errors.ErrInput,
			WantDeliverErr: errors.ErrInput,
		},
		"token ID cannot be registered twice": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "existing-token",
				Owner:    aliceCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: minterCond},
			WantCheckErr:   errors.ErrDuplicate,
			WantDeliverErr: errors.ErrDuplicate,
		},
		"burned token ID cannot be issued again": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "burned-token",
				Owner:    aliceCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: minterCond},
			WantCheckErr:   errors.ErrState,
			WantDeliverErr: errors.ErrState,
		},
		"message must contain metadata": {
			Tx: &weavetest.Tx{Msg: &IssueTokenMsg{
				TokenId: "fresh-token",
				Owner:   aliceCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: minterCond},
			WantCheckErr:   errors.ErrMetadata,
			WantDeliverErr: errors.ErrMetadata,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			tokens := NewTokenBucket()
			_, err := tokens.Put(db, []byte("existing-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
			})
			assert.Nil(t, err)

			burned := NewBurnedBucket()
			_, err = burned.Put(db, []byte("burned-token"), &BurnRecord{
				Metadata: &weave.Metadata{Schema: 1},
				Height:   5,
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestTransferTokenHandler(t *testing.T) {
	var (
		minterCond     = weavetest.NewCondition()
		aliceCond      = weavetest.NewCondition()
		bobCond        = weavetest.NewCondition()
		operatorCond   = weavetest.NewCondition()
		expiringOpCond = weavetest.NewCondition()
		strangerCond   = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		Height         int64
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"owner can transfer": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				owner, err := OwnerOf(db, "alice-token")
				assert.Nil(t, err)
				assert.Equal(t, bobCond.Address(), owner)
			},
		},
		"approved spender can transfer": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: bobCond},
		},
		"operator can transfer": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: operatorCond},
		},
		"operator grant is honored right before its expiration height": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth:   &weavetest.Auth{Signer: expiringOpCond},
			Height: 99,
		},
		"operator grant is void at its expiration height": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: expiringOpCond},
			Height:         100,
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"stranger cannot transfer": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: strangerCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: strangerCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown token cannot be transferred": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "no-such-token",
				Recipient: bobCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
		"transfer clears the spender approval": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: bobCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				approved, err := ApprovalOf(db, "alice-token")
				assert.Nil(t, err)
				if len(approved) != 0 {
					t.Fatalf("approval was not cleared: %q", approved)
				}
			},
		},
		"self transfer clears the spender approval as well": {
			Tx: &weavetest.Tx{Msg: &TransferTokenMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				TokenId:   "alice-token",
				Recipient: aliceCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				owner, err := OwnerOf(db, "alice-token")
				assert.Nil(t, err)
				assert.Equal(t, aliceCond.Address(), owner)

				approved, err := ApprovalOf(db, "alice-token")
				assert.Nil(t, err)
				if len(approved) != 0 {
					t.Fatalf("approval was not cleared: %q", approved)
				}
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			tokens := NewTokenBucket()
			_, err := tokens.Put(db, []byte("alice-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: bobCond.Address(),
			})
			assert.Nil(t, err)

			operators := NewOperatorBucket()
			grants := []OperatorGrant{
				{
					Metadata: &weave.Metadata{Schema: 1},
					Owner:    aliceCond.Address(),
					Operator: operatorCond.Address(),
				},
				{
					Metadata:  &weave.Metadata{Schema: 1},
					Owner:     aliceCond.Address(),
					Operator:  expiringOpCond.Address(),
					ExpiresAt: 100,
				},
			}
			for i := range grants {
				g := grants[i]
				_, err := operators.Put(db, grantKey(g.Owner, g.Operator), &g)
				assert.Nil(t, err)
			}

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			height := tc.Height
			if height == 0 {
				height = 100
			}
			ctx := weave.WithHeight(context.Background(), height)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestBurnTokenHandler(t *testing.T) {
	var (
		minterCond   = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
		bobCond      = weavetest.NewCondition()
		operatorCond = weavetest.NewCondition()
		strangerCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"owner can burn": {
			Tx: &weavetest.Tx{Msg: &BurnTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				if _, err := OwnerOf(db, "alice-token"); !errors.ErrNotFound.Is(err) {
					t.Fatalf("token was not removed: %+v", err)
				}

				var record BurnRecord
				err := NewBurnedBucket().One(db, []byte("alice-token"), &record)
				assert.Nil(t, err)
				assert.Equal(t, int64(100), record.Height)

				n, err := NumTokens(db)
				assert.Nil(t, err)
				assert.Equal(t, int64(0), n)
			},
		},
		"approved spender can burn": {
			Tx: &weavetest.Tx{Msg: &BurnTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth: &weavetest.Auth{Signer: bobCond},
		},
		"operator can burn": {
			Tx: &weavetest.Tx{Msg: &BurnTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth: &weavetest.Auth{Signer: operatorCond},
		},
		"stranger cannot burn": {
			Tx: &weavetest.Tx{Msg: &BurnTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth:           &weavetest.Auth{Signer: strangerCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown token cannot be burned": {
			Tx: &weavetest.Tx{Msg: &BurnTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "no-such-token",
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			tokens := NewTokenBucket()
			_, err := tokens.Put(db, []byte("alice-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: bobCond.Address(),
			})
			assert.Nil(t, err)
			err = addTokenCount(db, NewCounterBucket(), 1)
			assert.Nil(t, err)

			operators := NewOperatorBucket()
			_, err = operators.Put(db, grantKey(aliceCond.Address(), operatorCond.Address()), &OperatorGrant{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Operator: operatorCond.Address(),
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestApproveTokenHandler(t *testing.T) {
	var (
		minterCond   = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
		bobCond      = weavetest.NewCondition()
		operatorCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"owner can approve a spender": {
			Tx: &weavetest.Tx{Msg: &ApproveTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
				Spender:  bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				approved, err := ApprovalOf(db, "alice-token")
				assert.Nil(t, err)
				assert.Equal(t, bobCond.Address(), approved)
			},
		},
		"a new approval replaces the previous one": {
			Tx: &weavetest.Tx{Msg: &ApproveTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "approved-token",
				Spender:  operatorCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				approved, err := ApprovalOf(db, "approved-token")
				assert.Nil(t, err)
				assert.Equal(t, operatorCond.Address(), approved)
			},
		},
		"operator cannot manage approvals": {
			Tx: &weavetest.Tx{Msg: &ApproveTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
				Spender:  operatorCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: operatorCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"approved spender cannot manage approvals": {
			Tx: &weavetest.Tx{Msg: &ApproveTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "approved-token",
				Spender:  operatorCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: bobCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"unknown token cannot be approved": {
			Tx: &weavetest.Tx{Msg: &ApproveTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "no-such-token",
				Spender:  bobCond.Address(),
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrNotFound,
			WantDeliverErr: errors.ErrNotFound,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			tokens := NewTokenBucket()
			_, err := tokens.Put(db, []byte("alice-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
			})
			assert.Nil(t, err)
			_, err = tokens.Put(db, []byte("approved-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: bobCond.Address(),
			})
			assert.Nil(t, err)

			operators := NewOperatorBucket()
			_, err = operators.Put(db, grantKey(aliceCond.Address(), operatorCond.Address()), &OperatorGrant{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Operator: operatorCond.Address(),
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestRevokeTokenHandler(t *testing.T) {
	var (
		minterCond   = weavetest.NewCondition()
		aliceCond    = weavetest.NewCondition()
		bobCond      = weavetest.NewCondition()
		operatorCond = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"owner can revoke": {
			Tx: &weavetest.Tx{Msg: &RevokeTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				approved, err := ApprovalOf(db, "alice-token")
				assert.Nil(t, err)
				if len(approved) != 0 {
					t.Fatalf("approval was not cleared: %q", approved)
				}
			},
		},
		"approved spender cannot revoke": {
			Tx: &weavetest.Tx{Msg: &RevokeTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth:           &weavetest.Auth{Signer: bobCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
		"operator cannot revoke": {
			Tx: &weavetest.Tx{Msg: &RevokeTokenMsg{
				Metadata: &weave.Metadata{Schema: 1},
				TokenId:  "alice-token",
			}},
			Auth:           &weavetest.Auth{Signer: operatorCond},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			tokens := NewTokenBucket()
			_, err := tokens.Put(db, []byte("alice-token"), &TokenInfo{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Approved: bobCond.Address(),
			})
			assert.Nil(t, err)

			operators := NewOperatorBucket()
			_, err = operators.Put(db, grantKey(aliceCond.Address(), operatorCond.Address()), &OperatorGrant{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Operator: operatorCond.Address(),
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestApproveAllHandler(t *testing.T) {
	var (
		minterCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
		bobCond    = weavetest.NewCondition()
		oldOpCond  = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"grant without an expiration": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				ok, err := IsOperator(db, aliceCond.Address(), bobCond.Address(), 1e9)
				assert.Nil(t, err)
				assert.Equal(t, true, ok)
			},
		},
		"grant with a future expiration": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Operator:  bobCond.Address(),
				ExpiresAt: 101,
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				ok, err := IsOperator(db, aliceCond.Address(), bobCond.Address(), 100)
				assert.Nil(t, err)
				assert.Equal(t, true, ok)

				ok, err = IsOperator(db, aliceCond.Address(), bobCond.Address(), 101)
				assert.Nil(t, err)
				assert.Equal(t, false, ok)
			},
		},
		"a new grant replaces the previous one": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: oldOpCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				ok, err := IsOperator(db, aliceCond.Address(), oldOpCond.Address(), 1e9)
				assert.Nil(t, err)
				assert.Equal(t, true, ok)
			},
		},
		"expiration at the current height is rejected": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Operator:  bobCond.Address(),
				ExpiresAt: 100,
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrExpired,
			WantDeliverErr: errors.ErrExpired,
		},
		"expiration in the past is rejected": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Operator:  bobCond.Address(),
				ExpiresAt: 7,
			}},
			Auth:           &weavetest.Auth{Signer: aliceCond},
			WantCheckErr:   errors.ErrExpired,
			WantDeliverErr: errors.ErrExpired,
		},
		"message must be signed": {
			Tx: &weavetest.Tx{Msg: &ApproveAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: bobCond.Address(),
			}},
			Auth:           &weavetest.Auth{},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			operators := NewOperatorBucket()
			_, err := operators.Put(db, grantKey(aliceCond.Address(), oldOpCond.Address()), &OperatorGrant{
				Metadata:  &weave.Metadata{Schema: 1},
				Owner:     aliceCond.Address(),
				Operator:  oldOpCond.Address(),
				ExpiresAt: 50,
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func TestRevokeAllHandler(t *testing.T) {
	var (
		minterCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
		bobCond    = weavetest.NewCondition()
	)

	cases := map[string]struct {
		Tx             weave.Tx
		Auth           x.Authenticator
		WantCheckErr   *errors.Error
		WantDeliverErr *errors.Error
		AfterTest      func(t *testing.T, db weave.KVStore)
	}{
		"existing grant is removed": {
			Tx: &weavetest.Tx{Msg: &RevokeAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: bobCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				ok, err := IsOperator(db, aliceCond.Address(), bobCond.Address(), 100)
				assert.Nil(t, err)
				assert.Equal(t, false, ok)
			},
		},
		"removing a grant that does not exist is a noop": {
			Tx: &weavetest.Tx{Msg: &RevokeAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: aliceCond.Address(),
			}},
			Auth: &weavetest.Auth{Signer: aliceCond},
		},
		"message must be signed": {
			Tx: &weavetest.Tx{Msg: &RevokeAllMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Operator: bobCond.Address(),
			}},
			Auth:           &weavetest.Auth{},
			WantCheckErr:   errors.ErrUnauthorized,
			WantDeliverErr: errors.ErrUnauthorized,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := newTestDB(t, minterCond.Address())

			operators := NewOperatorBucket()
			_, err := operators.Put(db, grantKey(aliceCond.Address(), bobCond.Address()), &OperatorGrant{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    aliceCond.Address(),
				Operator: bobCond.Address(),
			})
			assert.Nil(t, err)

			rt := app.NewRouter()
			RegisterRoutes(rt, tc.Auth)

			ctx := weave.WithHeight(context.Background(), 100)

			cache := db.CacheWrap()
			if _, err := rt.Check(ctx, cache, tc.Tx); !tc.WantCheckErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()
			if _, err := rt.Deliver(ctx, db, tc.Tx); !tc.WantDeliverErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

// TestBurnedTokenCannotBeReissued walks a token through its full life and
// ensures the ID is retired forever afterwards.
func TestBurnedTokenCannotBeReissued(t *testing.T) {
	var (
		minterCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
	)

	db := newTestDB(t, minterCond.Address())
	auth := &weavetest.Auth{Signers: []weave.Condition{minterCond, aliceCond}}
	rt := app.NewRouter()
	RegisterRoutes(rt, auth)

	ctx := weave.WithHeight(context.Background(), 44)

	issue := &weavetest.Tx{Msg: &IssueTokenMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TokenId:  "one-shot",
		Owner:    aliceCond.Address(),
	}}
	if _, err := rt.Deliver(ctx, db, issue); err != nil {
		t.Fatalf("cannot issue: %+v", err)
	}

	burn := &weavetest.Tx{Msg: &BurnTokenMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TokenId:  "one-shot",
	}}
	if _, err := rt.Deliver(ctx, db, burn); err != nil {
		t.Fatalf("cannot burn: %+v", err)
	}

	if _, err := rt.Deliver(ctx, db, issue); !errors.ErrState.Is(err) {
		t.Fatalf("want a state error when reissuing a burned ID, got %+v", err)
	}

	n, err := NumTokens(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n)
}

// TestApprovalIsConsumedByTransfer walks a token from mint through a
// transfer executed by the approved spender and ensures that single
// transfer uses the approval up.
func TestApprovalIsConsumedByTransfer(t *testing.T) {
	var (
		minterCond = weavetest.NewCondition()
		aliceCond  = weavetest.NewCondition()
		bobCond    = weavetest.NewCondition()
		carolCond  = weavetest.NewCondition()
	)

	db := newTestDB(t, minterCond.Address())
	auth := &weavetest.CtxAuth{Key: "auth"}
	rt := app.NewRouter()
	RegisterRoutes(rt, auth)

	ctx := weave.WithHeight(context.Background(), 55)

	issue := &weavetest.Tx{Msg: &IssueTokenMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TokenId:  "artifact-9",
		Owner:    aliceCond.Address(),
	}}
	if _, err := rt.Deliver(auth.SetConditions(ctx, minterCond), db, issue); err != nil {
		t.Fatalf("cannot issue: %+v", err)
	}

	approve := &weavetest.Tx{Msg: &ApproveTokenMsg{
		Metadata: &weave.Metadata{Schema: 1},
		TokenId:  "artifact-9",
		Spender:  bobCond.Address(),
	}}
	if _, err := rt.Deliver(auth.SetConditions(ctx, aliceCond), db, approve); err != nil {
		t.Fatalf("cannot approve: %+v", err)
	}

	transfer := &weavetest.Tx{Msg: &TransferTokenMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		TokenId:   "artifact-9",
		Recipient: carolCond.Address(),
	}}
	if _, err := rt.Deliver(auth.SetConditions(ctx, bobCond), db, transfer); err != nil {
		t.Fatalf("spender cannot transfer: %+v", err)
	}

	owner, err := OwnerOf(db, "artifact-9")
	assert.Nil(t, err)
	assert.Equal(t, carolCond.Address(), owner)

	approved, err := ApprovalOf(db, "artifact-9")
	assert.Nil(t, err)
	assert.Equal(t, 0, len(approved))

	// The approval was spent together with the transfer, so the old
	// spender has no power over the token anymore.
	if _, err := rt.Deliver(auth.SetConditions(ctx, bobCond), db, transfer); !errors.ErrUnauthorized.Is(err) {
		t.Fatalf("want an unauthorized error for a second transfer, got %+v", err)
	}
}
