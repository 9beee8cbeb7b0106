package nft

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial token info from genesis and save it to
// the database
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
	}
	switch err := gconf.InitConfig(kv, opts, "nft", &conf); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		// Without a configuration this functionality is not used.
		return nil
	default:
		return errors.Wrap(err, "cannot initialize gconf based configuration")
	}

	var input struct {
		Tokens []struct {
			ID    string        `json:"id"`
			Owner weave.Address `json:"owner"`
		} `json:"tokens"`
	}
	if err := opts.ReadOptions("nft", &input); err != nil {
		return errors.Wrap(err, "cannot load tokens")
	}

	tokens := NewTokenBucket()
	for i, t := range input.Tokens {
		token := TokenInfo{
			Metadata: &weave.Metadata{Schema: 1},
			Owner:    t.Owner,
		}
		if _, err := tokens.Put(kv, []byte(t.ID), &token); err != nil {
			return errors.Wrapf(err, "cannot store %d token", i)
		}
	}
	if n := len(input.Tokens); n != 0 {
		if err := addTokenCount(kv, NewCounterBucket(), int64(n)); err != nil {
			return err
		}
	}
	return nil
}
