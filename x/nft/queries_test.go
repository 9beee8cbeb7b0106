package nft

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestOwnerOfAndApprovalOf(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	tokens := NewTokenBucket()
	_, err := tokens.Put(db, []byte("plain"), &TokenInfo{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice,
	})
	assert.Nil(t, err)
	_, err = tokens.Put(db, []byte("approved"), &TokenInfo{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    alice,
		Approved: bob,
	})
	assert.Nil(t, err)

	owner, err := OwnerOf(db, "plain")
	assert.Nil(t, err)
	assert.Equal(t, alice, owner)

	if _, err := OwnerOf(db, "no-such-token"); !errors.ErrNotFound.Is(err) {
		t.Fatalf("want a not found error, got %+v", err)
	}

	approved, err := ApprovalOf(db, "plain")
	assert.Nil(t, err)
	if len(approved) != 0 {
		t.Fatalf("no approval was set: %q", approved)
	}

	approved, err = ApprovalOf(db, "approved")
	assert.Nil(t, err)
	assert.Equal(t, bob, approved)
}

func TestNumTokensOnEmptyStore(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	n, err := NumTokens(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), n)
}

func TestTokensOfPagination(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	tokens := NewTokenBucket()
	for i := 1; i <= 25; i++ {
		id := fmt.Sprintf("alice-%02d", i)
		_, err := tokens.Put(db, []byte(id), &TokenInfo{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    alice,
		})
		assert.Nil(t, err)
	}
	for i := 1; i <= 6; i++ {
		id := fmt.Sprintf("bob-%02d", i)
		_, err := tokens.Put(db, []byte(id), &TokenInfo{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    bob,
		})
		assert.Nil(t, err)
	}

	// Zero limit applies the default page size.
	page, err := TokensOf(db, alice, "", 0)
	assert.Nil(t, err)
	assert.Equal(t, defaultPageSize, len(page))

	// The limit is capped.
	page, err = TokensOf(db, alice, "", 1000)
	assert.Nil(t, err)
	assert.Equal(t, 25, len(page))

	// Walking pages with an exclusive cursor enumerates every token
	// exactly once, in order.
	var all []string
	cursor := ""
	for {
		page, err := TokensOf(db, alice, cursor, 7)
		assert.Nil(t, err)
		if len(page) == 0 {
			break
		}
		all = append(all, page...)
		cursor = page[len(page)-1]
	}
	assert.Equal(t, 25, len(all))
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("ids are not strictly ascending: %q before %q", all[i-1], all[i])
		}
	}

	// Owner separation.
	page, err = TokensOf(db, bob, "", 30)
	assert.Nil(t, err)
	assert.Equal(t, 6, len(page))
}

func TestAllTokensPagination(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	owner := weavetest.NewCondition().Address()

	tokens := NewTokenBucket()
	for i := 1; i <= 31; i++ {
		id := fmt.Sprintf("token-%02d", i)
		_, err := tokens.Put(db, []byte(id), &TokenInfo{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    owner,
		})
		assert.Nil(t, err)
	}

	// A single page can never exceed the cap.
	page, err := AllTokens(db, "", 1000)
	assert.Nil(t, err)
	assert.Equal(t, maxPageSize, len(page))

	// The cursor is exclusive and continues without gaps.
	first, err := AllTokens(db, "", 10)
	assert.Nil(t, err)
	assert.Equal(t, 10, len(first))
	assert.Equal(t, "token-01", first[0])

	second, err := AllTokens(db, first[len(first)-1], 10)
	assert.Nil(t, err)
	assert.Equal(t, 10, len(second))
	assert.Equal(t, "token-11", second[0])

	// Exhausting the collection returns a short page.
	last, err := AllTokens(db, "token-30", 10)
	assert.Nil(t, err)
	assert.Equal(t, []string{"token-31"}, last)
}

func TestOperatorQueries(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	alice := weavetest.NewCondition().Address()
	ops := []*OperatorGrant{
		{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    alice,
			Operator: weavetest.NewCondition().Address(),
		},
		{
			Metadata:  &weave.Metadata{Schema: 1},
			Owner:     alice,
			Operator:  weavetest.NewCondition().Address(),
			ExpiresAt: 200,
		},
		{
			Metadata:  &weave.Metadata{Schema: 1},
			Owner:     alice,
			Operator:  weavetest.NewCondition().Address(),
			ExpiresAt: 50,
		},
	}
	operators := NewOperatorBucket()
	for _, g := range ops {
		_, err := operators.Put(db, grantKey(g.Owner, g.Operator), g)
		assert.Nil(t, err)
	}

	ok, err := IsOperator(db, alice, ops[0].Operator, 1e9)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	// The grant expiring at 50 is void from height 50 on.
	ok, err = IsOperator(db, alice, ops[2].Operator, 49)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)
	ok, err = IsOperator(db, alice, ops[2].Operator, 50)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	ok, err = IsOperator(db, alice, weavetest.NewCondition().Address(), 100)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	// At height 100 only two grants are active. They are returned ordered
	// by the operator address.
	active, err := OperatorsOf(db, alice, nil, 0, 100)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(active))
	if bytes.Compare(active[0].Operator, active[1].Operator) >= 0 {
		t.Fatal("grants are not ordered by operator address")
	}

	// The cursor is exclusive.
	rest, err := OperatorsOf(db, alice, active[0].Operator, 0, 100)
	assert.Nil(t, err)
	assert.Equal(t, 1, len(rest))
	assert.Equal(t, active[1].Operator, rest[0].Operator)
}
