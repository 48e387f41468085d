package domain

type Table string

const (
	TableOracles         Table = "oracles"
	TablePriceFeeds      Table = "price_feeds"
	TableEngines         Table = "auction_engines"
	TableAuctions        Table = "auctions"
	TableBids            Table = "auction_bids"
	TablePendingReturns  Table = "pending_returns"
	TableDeployerNonces  Table = "deployer_nonces"
	TableFactories       Table = "factories"
	TableFactoryListings Table = "factory_listings"
	TableRegistryEntries Table = "registry_entries"
	TableBalances        Table = "balances"
	TableBankAccounts    Table = "bank_accounts"
	TableNftHoldings     Table = "nft_holdings"
	TableNftOperators    Table = "nft_operators"
	TableEvents          Table = "events"
)
