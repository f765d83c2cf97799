package models

// SystemState is the current operational state of the exchange.
type SystemState struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// BBO is the best bid and offer of a market orderbook.
type BBO struct {
	Market        string  `json:"market"`
	SeqNo         int64   `json:"seq_no"`
	Ask           float64 `json:"ask"`
	AskSize       float64 `json:"ask_size"`
	Bid           float64 `json:"bid"`
	BidSize       float64 `json:"bid_size"`
	LastUpdatedAt int64   `json:"last_updated_at"`
}

// Trade is a completed trade on the exchange.
type Trade struct {
	ID        string  `json:"id"`
	Market    string  `json:"market"`
	Side      string  `json:"side"`
	Size      float64 `json:"size"`
	Price     float64 `json:"price"`
	CreatedAt int64   `json:"created_at"`
	TradeType string  `json:"trade_type"`
}

// Position is an open or closed trading position.
type Position struct {
	ID                           string  `json:"id"`
	Account                      string  `json:"account"`
	Market                       string  `json:"market"`
	Status                       string  `json:"status"`
	Side                         string  `json:"side"`
	Size                         float64 `json:"size"`
	AverageEntryPrice            float64 `json:"average_entry_price"`
	AverageEntryPriceUSD         float64 `json:"average_entry_price_usd"`
	AverageExitPrice             float64 `json:"average_exit_price"`
	UnrealizedPnl                float64 `json:"unrealized_pnl"`
	UnrealizedFundingPnl         float64 `json:"unrealized_funding_pnl"`
	Cost                         float64 `json:"cost"`
	CostUSD                      float64 `json:"cost_usd"`
	CachedFundingIndex           float64 `json:"cached_funding_index"`
	LastUpdatedAt                int64   `json:"last_updated_at"`
	LastFillID                   string  `json:"last_fill_id"`
	SeqNo                        int64   `json:"seq_no"`
	LiquidationPrice             string  `json:"liquidation_price"`
	Leverage                     float64 `json:"leverage"`
	RealizedPositionalPnl        float64 `json:"realized_positional_pnl"`
	CreatedAt                    int64   `json:"created_at"`
	ClosedAt                     int64   `json:"closed_at"`
	RealizedPositionalFundingPnl string  `json:"realized_positional_funding_pnl"`
}

// Fill is one trade fill of an order.
type Fill struct {
	ID              string  `json:"id"`
	Side            string  `json:"side"`
	Liquidity       string  `json:"liquidity"`
	Market          string  `json:"market"`
	OrderID         string  `json:"order_id"`
	Price           float64 `json:"price"`
	Size            float64 `json:"size"`
	Fee             float64 `json:"fee"`
	FeeCurrency     string  `json:"fee_currency"`
	CreatedAt       int64   `json:"created_at"`
	RemainingSize   float64 `json:"remaining_size"`
	ClientID        string  `json:"client_id"`
	FillType        string  `json:"fill_type"`
	RealizedPnl     float64 `json:"realized_pnl"`
	RealizedFunding float64 `json:"realized_funding"`
	Account         string  `json:"account"`
	UnderlyingPrice string  `json:"underlying_price"`
}

// Transaction is a settled account transaction.
type Transaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Hash        string `json:"hash"`
	State       string `json:"state"`
	CreatedAt   int64  `json:"created_at"`
	CompletedAt int64  `json:"completed_at"`
}

// OrderState is the current state of an order.
type OrderState struct {
	ID            string   `json:"id"`
	Account       string   `json:"account"`
	Market        string   `json:"market"`
	Side          string   `json:"side"`
	Type          string   `json:"type"`
	Size          float64  `json:"size"`
	RemainingSize float64  `json:"remaining_size"`
	Price         float64  `json:"price"`
	Status        string   `json:"status"`
	CreatedAt     int64    `json:"created_at"`
	LastUpdatedAt int64    `json:"last_updated_at"`
	Timestamp     int64    `json:"timestamp"`
	CancelReason  string   `json:"cancel_reason"`
	ClientID      string   `json:"client_id"`
	SeqNo         int64    `json:"seq_no"`
	Instruction   string   `json:"instruction"`
	AvgFillPrice  string   `json:"avg_fill_price"`
	STP           string   `json:"stp"`
	ReceivedAt    int64    `json:"received_at"`
	PublishedAt   int64    `json:"published_at"`
	Flags         []string `json:"flags"`
	TriggerPrice  string   `json:"trigger_price"`
}

// Vault is a trading vault.
type Vault struct {
	Address         string   `json:"address"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	OwnerAccount    string   `json:"owner_account"`
	OperatorAccount string   `json:"operator_account"`
	Strategies      []string `json:"strategies"`
	TokenAddress    string   `json:"token_address"`
	Status          string   `json:"status"`
	Kind            string   `json:"kind"`
	ProfitShare     int64    `json:"profit_share"`
	LockupPeriod    int64    `json:"lockup_period"`
	MaxTVL          int64    `json:"max_tvl"`
	CreatedAt       int64    `json:"created_at"`
	LastUpdatedAt   int64    `json:"last_updated_at"`
}

// VaultBalance is the settlement-token balance of a vault.
type VaultBalance struct {
	Token         string `json:"token"`
	Size          string `json:"size"`
	LastUpdatedAt int64  `json:"last_updated_at"`
}

// VaultSummary is the performance summary of a vault. Monetary and ratio
// fields are string-encoded decimals as served upstream; use the query
// package's to_number coercion for numeric ordering.
type VaultSummary struct {
	Address        string `json:"address"`
	OwnerEquity    string `json:"owner_equity"`
	VTokenSupply   string `json:"vtoken_supply"`
	VTokenPrice    string `json:"vtoken_price"`
	TVL            string `json:"tvl"`
	NetDeposits    string `json:"net_deposits"`
	TotalROI       string `json:"total_roi"`
	ROI24h         string `json:"roi_24h"`
	ROI7d          string `json:"roi_7d"`
	ROI30d         string `json:"roi_30d"`
	LastMonthReturn string `json:"last_month_return"`
	TotalPnl       string `json:"total_pnl"`
	Pnl24h         string `json:"pnl_24h"`
	Pnl7d          string `json:"pnl_7d"`
	Pnl30d         string `json:"pnl_30d"`
	MaxDrawdown    string `json:"max_drawdown"`
	MaxDrawdown24h string `json:"max_drawdown_24h"`
	MaxDrawdown7d  string `json:"max_drawdown_7d"`
	MaxDrawdown30d string `json:"max_drawdown_30d"`
	Volume         string `json:"volume"`
	Volume24h      string `json:"volume_24h"`
	Volume7d       string `json:"volume_7d"`
	Volume30d      string `json:"volume_30d"`
	NumDepositors  int64  `json:"num_depositors"`
}

// VaultAccountSummary is one user's stake in a vault.
type VaultAccountSummary struct {
	Address         string `json:"address"`
	DepositedAmount string `json:"deposited_amount"`
	VTokenAmount    string `json:"vtoken_amount"`
	TotalROI        string `json:"total_roi"`
	TotalPnl        string `json:"total_pnl"`
	CreatedAt       int64  `json:"created_at"`
}

// Greeks are the option greeks of a market.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
	Vanna float64 `json:"vanna"`
	Volga float64 `json:"volga"`
}

// MarketSummary is the rolling summary of one market.
type MarketSummary struct {
	Symbol              string `json:"symbol"`
	MarkPrice           string `json:"mark_price"`
	Delta               string `json:"delta"`
	Greeks              Greeks `json:"greeks"`
	LastTradedPrice     string `json:"last_traded_price"`
	Bid                 string `json:"bid"`
	Ask                 string `json:"ask"`
	Volume24h           string `json:"volume_24h"`
	TotalVolume         string `json:"total_volume"`
	CreatedAt           int64  `json:"created_at"`
	UnderlyingPrice     string `json:"underlying_price"`
	OpenInterest        string `json:"open_interest"`
	FundingRate         string `json:"funding_rate"`
	PriceChangeRate24h  string `json:"price_change_rate_24h"`
}

// MarketDetails is the static configuration of one market.
type MarketDetails struct {
	Symbol                 string                        `json:"symbol"`
	BaseCurrency           string                        `json:"base_currency"`
	QuoteCurrency          string                        `json:"quote_currency"`
	SettlementCurrency     string                        `json:"settlement_currency"`
	OrderSizeIncrement     string                        `json:"order_size_increment"`
	PriceTickSize          float64                       `json:"price_tick_size"`
	MinNotional            float64                       `json:"min_notional"`
	OpenAt                 int64                         `json:"open_at"`
	ExpiryAt               int64                         `json:"expiry_at"`
	AssetKind              string                        `json:"asset_kind"`
	MarketKind             string                        `json:"market_kind"`
	PositionLimit          float64                       `json:"position_limit"`
	PriceBandsWidth        float64                       `json:"price_bands_width"`
	MaxOpenOrders          int64                         `json:"max_open_orders"`
	MaxFundingRate         float64                       `json:"max_funding_rate"`
	Delta1CrossMarginParams map[string]float64           `json:"delta1_cross_margin_params"`
	OptionCrossMarginParams map[string]map[string]float64 `json:"option_cross_margin_params"`
	PriceFeedID            string                        `json:"price_feed_id"`
	OracleEwmaFactor       float64                       `json:"oracle_ewma_factor"`
	MaxOrderSize           float64                       `json:"max_order_size"`
	MaxFundingRateChange   float64                       `json:"max_funding_rate_change"`
	MaxTobSpread           float64                       `json:"max_tob_spread"`
	InterestRate           float64                       `json:"interest_rate"`
	ClampRate              float64                       `json:"clamp_rate"`
	FundingPeriodHours     int64                         `json:"funding_period_hours"`
	Tags                   []string                      `json:"tags"`
	OptionType             string                        `json:"option_type"`
	StrikePrice            float64                       `json:"strike_price"`
	IVBandsWidth           float64                       `json:"iv_bands_width"`
}

// AccountSummary is the margin summary of a trading account.
type AccountSummary struct {
	Account                      string `json:"account"`
	AccountValue                 string `json:"account_value"`
	FreeCollateral               string `json:"free_collateral"`
	InitialMarginRequirement     string `json:"initial_margin_requirement"`
	MaintenanceMarginRequirement string `json:"maintenance_margin_requirement"`
	MarginCushion                string `json:"margin_cushion"`
	SeqNo                        int64  `json:"seq_no"`
	SettlementAsset              string `json:"settlement_asset"`
	Status                       string `json:"status"`
	TotalCollateral              string `json:"total_collateral"`
	UpdatedAt                    int64  `json:"updated_at"`
}
