package configs

import "time"

// Chain configures the RPC connection, the deployed contract addresses and
// the signing key used for writes.
type Chain struct {
	// RPCURL is the JSON-RPC endpoint of the node.
	RPCURL string `env:"RPC_URL" envDefault:"https://sepolia.base.org"`
	// ID is the only chain the service accepts. Dial fails when the node
	// reports a different id and requests carrying another id get 409.
	ID uint64 `env:"ID" envDefault:"84532"`

	CrowdFundingAddress string `env:"CROWDFUNDING_ADDRESS" envDefault:"0x1A8DA2385043aDDA13Afa12772e8D8cbCdd3B367"`
	TokenAddress        string `env:"TOKEN_ADDRESS" envDefault:"0xA7781a2D948303809355f958027a750eFe8e71CB"`

	// PrivateKey is the hex key writes are signed with. Writes are disabled
	// when it is empty.
	PrivateKey string `env:"PRIVATE_KEY"`

	// ConfirmTimeout bounds how long a broadcast transaction is tracked.
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"2m"`
	// BatchConcurrency caps parallel calls in one batched read.
	BatchConcurrency int `env:"BATCH_CONCURRENCY" envDefault:"8"`
}
