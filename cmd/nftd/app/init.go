package nftd

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/collectibles/x/nft"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich account, to
// use for dev mode.
//
// The first argument is the ticker of the development currency, the second
// one an optional hex address of the account that becomes the minter and
// configuration admin. If no address is provided one is generated and its
// key material printed out.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, fmt.Errorf("invalid ticker %s", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the key material
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(keys)
	}

	opts := fmt.Sprintf(`
	  {
	    "cash": [
	      {
	        "address": "%s",
	        "coins": [
	          {"whole": 123456789, "ticker": "%s"}
	        ]
	      }
	    ],
	    "conf": {
	      "cash": {
	        "collector_address": "%s",
	        "minimal_fee": {}
	      },
	      "migration": {
	        "admin": "%s"
	      },
	      "nft": {
	        "owner": "%s",
	        "minter": "%s",
	        "valid_token_id": "^[a-z0-9\\-]{3,64}$"
	      }
	    },
	    "initialize_schema": [
	      {"pkg": "cash", "ver": 1},
	      {"pkg": "sigs", "ver": 1},
	      {"pkg": "nft", "ver": 1}
	    ]
	  }
	`, addr, ticker, addr, addr, addr, addr)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "nft.db")
	}

	stack := Stack()
	application, err := Application("nftd", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}

	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&nft.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a public key, along with a json
// representation of the keys. You can give coins to this address and
// import the keys in a client to use them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()
	addr := pubKey.Address()

	out := output{Pubkey: pubKey, Secret: privKey}
	keys, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, "", err
	}

	return addr, string(keys), nil
}
