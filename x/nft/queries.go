package nft

import (
	"bytes"
	"sort"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
)

const (
	// defaultPageSize is the number of entries a listing returns when no
	// limit was requested.
	defaultPageSize = 10
	// maxPageSize is the most entries a single listing can return.
	maxPageSize = 30
)

func normalizePageSize(limit int) int {
	switch {
	case limit <= 0:
		return defaultPageSize
	case limit > maxPageSize:
		return maxPageSize
	}
	return limit
}

// OwnerOf returns the address currently holding the token.
func OwnerOf(db weave.ReadOnlyKVStore, tokenID string) (weave.Address, error) {
	var token TokenInfo
	if err := NewTokenBucket().One(db, []byte(tokenID), &token); err != nil {
		return nil, errors.Wrap(err, "cannot get token from database")
	}
	return token.Owner, nil
}

// ApprovalOf returns the approved spender of the token, or nil if no
// approval is set.
func ApprovalOf(db weave.ReadOnlyKVStore, tokenID string) (weave.Address, error) {
	var token TokenInfo
	if err := NewTokenBucket().One(db, []byte(tokenID), &token); err != nil {
		return nil, errors.Wrap(err, "cannot get token from database")
	}
	return token.Approved, nil
}

// NumTokens returns the number of tokens currently registered. Burned
// tokens are not counted.
func NumTokens(db weave.ReadOnlyKVStore) (int64, error) {
	var cnt TokenCounter
	switch err := NewCounterBucket().One(db, counterKey, &cnt); {
	case err == nil:
		return cnt.Count, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load token counter")
	}
}

// TokensOf returns a page of token IDs held by the owner, ordered by ID.
// Enumeration is resumed by passing the last ID of the previous page as
// startAfter. The cursor is exclusive.
func TokensOf(db weave.ReadOnlyKVStore, owner weave.Address, startAfter string, limit int) ([]string, error) {
	var tokens []*TokenInfo
	keys, err := NewTokenBucket().ByIndex(db, "owner", owner, &tokens)
	if err != nil {
		return nil, errors.Wrap(err, "cannot query owner index")
	}
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, string(key))
	}
	sort.Strings(ids)
	return paginate(ids, startAfter, limit), nil
}

// AllTokens returns a page of all registered token IDs, ordered by ID. The
// startAfter cursor is exclusive.
func AllTokens(db weave.ReadOnlyKVStore, startAfter string, limit int) ([]string, error) {
	limit = normalizePageSize(limit)
	prefix := []byte("tokens:")
	start, end := prefixRange(prefix)
	if startAfter != "" {
		start = make([]byte, 0, len(prefix)+len(startAfter)+1)
		start = append(start, prefix...)
		start = append(start, startAfter...)
		// A zero byte moves the start right behind the cursor token,
		// making the bound exclusive.
		start = append(start, 0)
	}
	it, err := db.Iterator(start, end)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	defer it.Release()

	ids := make([]string, 0, limit)
	for len(ids) < limit {
		key, _, err := it.Next()
		switch {
		case err == nil:
			ids = append(ids, string(key[len(prefix):]))
		case errors.ErrIteratorDone.Is(err):
			return ids, nil
		default:
			return nil, errors.Wrap(err, "iterator")
		}
	}
	return ids, nil
}

// IsOperator returns true if the operator holds a grant over all tokens of
// the owner that is active at the given block height.
func IsOperator(db weave.ReadOnlyKVStore, owner, operator weave.Address, height int64) (bool, error) {
	var grant OperatorGrant
	switch err := NewOperatorBucket().One(db, grantKey(owner, operator), &grant); {
	case err == nil:
		return grant.Active(height), nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load operator grant")
	}
}

// OperatorsOf returns a page of operator grants of the owner that are
// active at the given block height, ordered by operator address. The
// startAfter cursor is exclusive.
func OperatorsOf(db weave.ReadOnlyKVStore, owner weave.Address, startAfter weave.Address, limit int, height int64) ([]*OperatorGrant, error) {
	var grants []*OperatorGrant
	if _, err := NewOperatorBucket().ByIndex(db, "owner", owner, &grants); err != nil {
		return nil, errors.Wrap(err, "cannot query owner index")
	}
	sort.Slice(grants, func(i, j int) bool {
		return bytes.Compare(grants[i].Operator, grants[j].Operator) < 0
	})

	limit = normalizePageSize(limit)
	res := make([]*OperatorGrant, 0, limit)
	for _, g := range grants {
		if len(startAfter) != 0 && bytes.Compare(g.Operator, startAfter) <= 0 {
			continue
		}
		if !g.Active(height) {
			continue
		}
		res = append(res, g)
		if len(res) == limit {
			break
		}
	}
	return res, nil
}

// paginate cuts a single page out of a sorted ID list, starting right
// behind the startAfter cursor.
func paginate(ids []string, startAfter string, limit int) []string {
	limit = normalizePageSize(limit)
	res := make([]string, 0, limit)
	for _, id := range ids {
		if startAfter != "" && id <= startAfter {
			continue
		}
		res = append(res, id)
		if len(res) == limit {
			break
		}
	}
	return res
}

// prefixRange turns a prefix into a (start, end) key range that covers
// exactly all keys with that prefix.
func prefixRange(prefix []byte) ([]byte, []byte) {
	if len(prefix) == 0 {
		return nil, nil
	}
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return prefix, end[:i+1]
		}
	}
	return prefix, nil
}
