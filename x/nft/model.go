package nft

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &TokenInfo{}, migration.NoModification)
	migration.MustRegister(1, &OperatorGrant{}, migration.NoModification)
	migration.MustRegister(1, &BurnRecord{}, migration.NoModification)
	migration.MustRegister(1, &TokenCounter{}, migration.NoModification)
}

var _ orm.Model = (*TokenInfo)(nil)

func (t *TokenInfo) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", t.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", t.Owner.Validate())
	if len(t.Approved) != 0 {
		errs = errors.AppendField(errs, "Approved", t.Approved.Validate())
	}
	return errs
}

func NewTokenBucket() orm.ModelBucket {
	b := orm.NewModelBucket("tokens", &TokenInfo{},
		orm.WithNativeIndex("owner", tokenOwner))
	return migration.NewModelBucket("nft", b)
}

func tokenOwner(o orm.Object) ([][]byte, error) {
	t, ok := o.Value().(*TokenInfo)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not a TokenInfo")
	}
	return [][]byte{t.Owner}, nil
}

var _ orm.Model = (*OperatorGrant)(nil)

func (g *OperatorGrant) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", g.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", g.Owner.Validate())
	errs = errors.AppendField(errs, "Operator", g.Operator.Validate())
	if g.ExpiresAt < 0 {
		errs = errors.AppendField(errs, "ExpiresAt", errors.Wrap(errors.ErrInput, "must be non negative"))
	}
	return errs
}

// Active returns true if the grant authorizes the operator at the given
// block height. A grant expires at the very block of its expiration
// height. Zero expiration means the grant never expires.
func (g *OperatorGrant) Active(height int64) bool {
	return g.ExpiresAt == 0 || height < g.ExpiresAt
}

func NewOperatorBucket() orm.ModelBucket {
	b := orm.NewModelBucket("operators", &OperatorGrant{},
		orm.WithNativeIndex("owner", grantOwner))
	return migration.NewModelBucket("nft", b)
}

func grantOwner(o orm.Object) ([][]byte, error) {
	g, ok := o.Value().(*OperatorGrant)
	if !ok {
		return nil, errors.Wrap(errors.ErrType, "not an OperatorGrant")
	}
	return [][]byte{g.Owner}, nil
}

// grantKey returns a bucket wide unique operator grant key. Addresses have
// a fixed length so plain concatenation cannot collide.
func grantKey(owner, operator weave.Address) []byte {
	key := make([]byte, 0, len(owner)+len(operator))
	key = append(key, owner...)
	key = append(key, operator...)
	return key
}

var _ orm.Model = (*BurnRecord)(nil)

func (b *BurnRecord) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	if b.Height < 0 {
		errs = errors.AppendField(errs, "Height", errors.Wrap(errors.ErrInput, "must be non negative"))
	}
	return errs
}

func NewBurnedBucket() orm.ModelBucket {
	b := orm.NewModelBucket("burned", &BurnRecord{})
	return migration.NewModelBucket("nft", b)
}

var _ orm.Model = (*TokenCounter)(nil)

func (c *TokenCounter) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if c.Count < 0 {
		errs = errors.AppendField(errs, "Count", errors.Wrap(errors.ErrState, "must be non negative"))
	}
	return errs
}

func NewCounterBucket() orm.ModelBucket {
	b := orm.NewModelBucket("tokenstats", &TokenCounter{})
	return migration.NewModelBucket("nft", b)
}

// counterKey is the only key used within the counter bucket.
var counterKey = []byte("tokens")

// addTokenCount updates the registered token counter by delta, creating the
// counter on first use.
func addTokenCount(db weave.KVStore, b orm.ModelBucket, delta int64) error {
	var cnt TokenCounter
	switch err := b.One(db, counterKey, &cnt); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		cnt = TokenCounter{Metadata: &weave.Metadata{Schema: 1}}
	default:
		return errors.Wrap(err, "cannot load token counter")
	}
	cnt.Count += delta
	if _, err := b.Put(db, counterKey, &cnt); err != nil {
		return errors.Wrap(err, "cannot store token counter")
	}
	return nil
}
