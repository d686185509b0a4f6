package domain

const (
	TableMarketplaces = Table("marketplaces")
	TableListings     = Table("listings")
	TableAuctions     = Table("auctions")
	TableEscrows      = Table("escrows")
	TableWallets      = Table("wallets")
	TableItemHoldings = Table("item_holdings")
	TableItemMetadata = Table("item_metadata")
	TableActivities   = Table("activities")
)
