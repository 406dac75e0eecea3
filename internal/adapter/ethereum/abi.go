package ethereum

// crowdFundingABI is the subset of the crowdfunding contract this service
// calls, plus its custom errors so reverts can be decoded by selector.
const crowdFundingABI = `[
	{"type":"function","name":"getCampaign","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"creator","type":"address"},{"name":"paymentType","type":"uint8"},{"name":"claimed","type":"bool"},{"name":"cancelled","type":"bool"},{"name":"category","type":"uint8"},{"name":"targetAmount","type":"uint128"},{"name":"amountCollected","type":"uint128"},{"name":"deadline","type":"uint64"},{"name":"title","type":"string"},{"name":"description","type":"string"},{"name":"imageCID","type":"string"}]}],"stateMutability":"view"},
	{"type":"function","name":"getCampaigns","inputs":[{"name":"start","type":"uint256"},{"name":"limit","type":"uint256"}],"outputs":[{"name":"campaigns","type":"tuple[]","components":[{"name":"creator","type":"address"},{"name":"paymentType","type":"uint8"},{"name":"claimed","type":"bool"},{"name":"cancelled","type":"bool"},{"name":"category","type":"uint8"},{"name":"targetAmount","type":"uint128"},{"name":"amountCollected","type":"uint128"},{"name":"deadline","type":"uint64"},{"name":"title","type":"string"},{"name":"description","type":"string"},{"name":"imageCID","type":"string"}]}],"stateMutability":"view"},
	{"type":"function","name":"getCampaignCount","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getCampaignsByCategory","inputs":[{"name":"category","type":"uint8"}],"outputs":[{"name":"campaignIds","type":"uint256[]"}],"stateMutability":"view"},
	{"type":"function","name":"getDonators","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[{"name":"","type":"address[]"}],"stateMutability":"view"},
	{"type":"function","name":"getDonation","inputs":[{"name":"campaignId","type":"uint256"},{"name":"donator","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"isCampaignActive","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"isCampaignSuccessful","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"getActiveCampaignCount","inputs":[{"name":"creator","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"createCampaign","inputs":[{"name":"title","type":"string"},{"name":"description","type":"string"},{"name":"targetAmount","type":"uint128"},{"name":"duration","type":"uint64"},{"name":"imageCID","type":"string"},{"name":"paymentType","type":"uint8"},{"name":"category","type":"uint8"}],"outputs":[{"name":"campaignId","type":"uint256"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"updateCampaign","inputs":[{"name":"campaignId","type":"uint256"},{"name":"newDescription","type":"string"},{"name":"newImageCID","type":"string"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"extendDeadline","inputs":[{"name":"campaignId","type":"uint256"},{"name":"additionalDuration","type":"uint64"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"cancelCampaign","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"donateETH","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"donateToken","inputs":[{"name":"campaignId","type":"uint256"},{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdraw","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"refund","inputs":[{"name":"campaignId","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"CampaignCreated","anonymous":false,"inputs":[{"name":"campaignId","type":"uint256","indexed":true},{"name":"creator","type":"address","indexed":true},{"name":"paymentType","type":"uint8","indexed":false},{"name":"category","type":"uint8","indexed":false},{"name":"targetAmount","type":"uint128","indexed":false},{"name":"deadline","type":"uint64","indexed":false}]},
	{"type":"error","name":"CrowdFunding__CampaignNotFound","inputs":[]},
	{"type":"error","name":"CrowdFunding__InvalidDeadline","inputs":[]},
	{"type":"error","name":"CrowdFunding__InvalidTargetAmount","inputs":[]},
	{"type":"error","name":"CrowdFunding__CampaignEnded","inputs":[]},
	{"type":"error","name":"CrowdFunding__CampaignNotEnded","inputs":[]},
	{"type":"error","name":"CrowdFunding__NotCreator","inputs":[]},
	{"type":"error","name":"CrowdFunding__TargetNotReached","inputs":[]},
	{"type":"error","name":"CrowdFunding__AlreadyClaimed","inputs":[]},
	{"type":"error","name":"CrowdFunding__NoDonationToRefund","inputs":[]},
	{"type":"error","name":"CrowdFunding__TargetReached","inputs":[]},
	{"type":"error","name":"CrowdFunding__InvalidDonationAmount","inputs":[]},
	{"type":"error","name":"CrowdFunding__WrongPaymentType","inputs":[]},
	{"type":"error","name":"CrowdFunding__TransferFailed","inputs":[]},
	{"type":"error","name":"CrowdFunding__EmptyTitle","inputs":[]},
	{"type":"error","name":"CrowdFunding__CampaignCancelled","inputs":[]},
	{"type":"error","name":"CrowdFunding__CannotCancelWithDonations","inputs":[]},
	{"type":"error","name":"CrowdFunding__MaxCampaignsReached","inputs":[]},
	{"type":"error","name":"CrowdFunding__DonationTooLow","inputs":[]},
	{"type":"error","name":"CrowdFunding__ExtensionTooLong","inputs":[]}
]`

// tokenABI is the subset of the SDT token contract used for balances,
// allowances and the faucet.
const tokenABI = `[
	{"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"allowance","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"FAUCET_AMOUNT","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"FAUCET_COOLDOWN","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"claimFaucet","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"getLastClaimTime","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"error","name":"SedulurToken__CooldownNotExpired","inputs":[]},
	{"type":"error","name":"SedulurToken__InvalidAddress","inputs":[]}
]`
