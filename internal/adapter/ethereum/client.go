// Package ethereum is the outbound adapter for the crowdfunding and token
// contracts. It binds both ABIs with go-ethereum and implements the chain
// ports of the application.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"sedulur-fund/internal/config/configs"
	"sedulur-fund/internal/core/domain"
)

var errEmptyOutput = errors.New("empty call output")

// Backend is what the adapter needs from a node connection. ethclient.Client
// satisfies it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Client implements port.CampaignChain and port.TokenChain.
type Client struct {
	backend Backend

	crowdFundingAddr common.Address
	tokenAddr        common.Address

	crowdFundingABI abi.ABI
	tokenABI        abi.ABI

	crowdFunding *bind.BoundContract
	token        *bind.BoundContract
}

// NewClient binds both contracts on backend.
func NewClient(backend Backend, crowdFunding, token common.Address) (*Client, error) {
	cfABI, err := abi.JSON(strings.NewReader(crowdFundingABI))
	if err != nil {
		return nil, fmt.Errorf("parse crowdfunding abi: %w", err)
	}
	tkABI, err := abi.JSON(strings.NewReader(tokenABI))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	return &Client{
		backend:          backend,
		crowdFundingAddr: crowdFunding,
		tokenAddr:        token,
		crowdFundingABI:  cfABI,
		tokenABI:         tkABI,
		crowdFunding:     bind.NewBoundContract(crowdFunding, cfABI, backend, backend, backend),
		token:            bind.NewBoundContract(token, tkABI, backend, backend, backend),
	}, nil
}

// Dial connects to the configured RPC endpoint and refuses to continue
// when the node serves a different chain than configured. The caller must
// close the returned ethclient.Client.
func Dial(ctx context.Context, cfg configs.Chain) (*Client, *ethclient.Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rpc: %w", err)
	}

	ctxID, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	chainID, err := eth.ChainID(ctxID)
	if err != nil {
		eth.Close()
		return nil, nil, fmt.Errorf("read chain id: %w", err)
	}
	if !chainID.IsUint64() || chainID.Uint64() != cfg.ID {
		eth.Close()
		return nil, nil, fmt.Errorf("%w: rpc serves chain %s, want %d", domain.ErrWrongNetwork, chainID, cfg.ID)
	}

	c, err := NewClient(eth, common.HexToAddress(cfg.CrowdFundingAddress), common.HexToAddress(cfg.TokenAddress))
	if err != nil {
		eth.Close()
		return nil, nil, err
	}
	return c, eth, nil
}

// CrowdFundingAddress is the spender used for token allowances.
func (c *Client) CrowdFundingAddress() common.Address {
	return c.crowdFundingAddr
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, args ...any) ([]any, error) {
	var out []any
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, args...); err != nil {
		return nil, fmt.Errorf("call %s: %w", method, c.decodeRevert(err))
	}
	return out, nil
}

func (c *Client) decodeRevert(err error) error {
	return decodeRevert(err, c.crowdFundingABI, c.tokenABI)
}

func idArg(id uint64) *big.Int {
	return new(big.Int).SetUint64(id)
}

func (c *Client) GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	out, err := c.call(ctx, c.crowdFunding, "getCampaign", idArg(id))
	if err != nil {
		return domain.Campaign{}, err
	}
	return decodeCampaign(out)
}

func (c *Client) GetCampaigns(ctx context.Context, start, limit uint64) ([]domain.Campaign, error) {
	out, err := c.call(ctx, c.crowdFunding, "getCampaigns", idArg(start), idArg(limit))
	if err != nil {
		return nil, err
	}
	return decodeCampaigns(out)
}

func (c *Client) GetCampaignCount(ctx context.Context) (uint64, error) {
	out, err := c.call(ctx, c.crowdFunding, "getCampaignCount")
	if err != nil {
		return 0, err
	}
	return decodeUint64(out)
}

func (c *Client) GetCampaignsByCategory(ctx context.Context, category domain.Category) ([]uint64, error) {
	out, err := c.call(ctx, c.crowdFunding, "getCampaignsByCategory", uint8(category))
	if err != nil {
		return nil, err
	}
	return decodeIDs(out)
}

func (c *Client) GetDonators(ctx context.Context, id uint64) ([]common.Address, error) {
	out, err := c.call(ctx, c.crowdFunding, "getDonators", idArg(id))
	if err != nil {
		return nil, err
	}
	return decodeAddresses(out)
}

func (c *Client) GetDonation(ctx context.Context, id uint64, donor common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.crowdFunding, "getDonation", idArg(id), donor)
	if err != nil {
		return nil, err
	}
	return decodeBig(out)
}

func (c *Client) IsCampaignActive(ctx context.Context, id uint64) (bool, error) {
	out, err := c.call(ctx, c.crowdFunding, "isCampaignActive", idArg(id))
	if err != nil {
		return false, err
	}
	return decodeBool(out)
}

func (c *Client) IsCampaignSuccessful(ctx context.Context, id uint64) (bool, error) {
	out, err := c.call(ctx, c.crowdFunding, "isCampaignSuccessful", idArg(id))
	if err != nil {
		return false, err
	}
	return decodeBool(out)
}

func (c *Client) GetActiveCampaignCount(ctx context.Context, creator common.Address) (uint64, error) {
	out, err := c.call(ctx, c.crowdFunding, "getActiveCampaignCount", creator)
	if err != nil {
		return 0, err
	}
	return decodeUint64(out)
}

func (c *Client) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.token, "balanceOf", account)
	if err != nil {
		return nil, err
	}
	return decodeBig(out)
}

func (c *Client) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.token, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return decodeBig(out)
}

func (c *Client) LastClaimTime(ctx context.Context, account common.Address) (uint64, error) {
	out, err := c.call(ctx, c.token, "getLastClaimTime", account)
	if err != nil {
		return 0, err
	}
	return decodeUint64(out)
}

func (c *Client) FaucetAmount(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.token, "FAUCET_AMOUNT")
	if err != nil {
		return nil, err
	}
	return decodeBig(out)
}

func (c *Client) FaucetCooldown(ctx context.Context) (time.Duration, error) {
	out, err := c.call(ctx, c.token, "FAUCET_COOLDOWN")
	if err != nil {
		return 0, err
	}
	secs, err := decodeUint64(out)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}
