package configs

// IPFS configures image pinning and the public gateway used to build image
// URLs.
type IPFS struct {
	GatewayURL string `env:"GATEWAY_URL" envDefault:"https://gateway.pinata.cloud"`
	// PinataJWT authorises uploads. Uploads are disabled when it is empty.
	PinataJWT      string `env:"PINATA_JWT"`
	PinataEndpoint string `env:"PINATA_ENDPOINT" envDefault:"https://api.pinata.cloud/pinning/pinFileToIPFS"`
}
