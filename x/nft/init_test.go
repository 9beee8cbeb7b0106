package nft

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
)

func TestGenesisInitialization(t *testing.T) {
	admin := weavetest.NewCondition().Address()
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	genesis := fmt.Sprintf(`{
		"conf": {
			"nft": {
				"owner": %q,
				"minter": %q,
				"valid_token_id": "^[a-z0-9\\-]{3,64}$"
			}
		},
		"nft": {
			"tokens": [
				{"id": "first-token", "owner": %q},
				{"id": "second-token", "owner": %q}
			]
		}
	}`, admin, admin, alice, bob)

	var opts weave.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	migration.MustInitPkg(db, "nft")

	var ini Initializer
	if err := ini.FromGenesis(opts, weave.GenesisParams{}, db); err != nil {
		t.Fatalf("cannot load genesis: %+v", err)
	}

	conf, err := loadConf(db)
	assert.Nil(t, err)
	assert.Equal(t, admin, conf.Minter)

	owner, err := OwnerOf(db, "first-token")
	assert.Nil(t, err)
	assert.Equal(t, alice, owner)

	n, err := NumTokens(db)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), n)
}
