package models

import "github.com/sv/mcp-paradex-go/record"

// req declares a mandatory schema field.
func req(name string, kind record.Kind) record.Field {
	return record.Field{Name: name, Kind: kind, Required: true}
}

// opt declares an optional schema field with an explicit default.
func opt(name string, kind record.Kind, def any) record.Field {
	return record.Field{Name: name, Kind: kind, Default: def}
}

// SystemStateSchema describes SystemState.
var SystemStateSchema = record.MustNew("SystemState",
	req("status", record.KindString),
	opt("timestamp", record.KindInteger, 0),
)

// BBOSchema describes BBO.
var BBOSchema = record.MustNew("BBO",
	req("market", record.KindString),
	req("seq_no", record.KindInteger),
	req("ask", record.KindNumber),
	req("ask_size", record.KindNumber),
	req("bid", record.KindNumber),
	req("bid_size", record.KindNumber),
	req("last_updated_at", record.KindInteger),
)

// TradeSchema describes Trade.
var TradeSchema = record.MustNew("Trade",
	req("id", record.KindString),
	req("market", record.KindString),
	req("side", record.KindString),
	req("size", record.KindNumber),
	req("price", record.KindNumber),
	req("created_at", record.KindInteger),
	req("trade_type", record.KindString),
)

// PositionSchema describes Position.
var PositionSchema = record.MustNew("Position",
	req("id", record.KindString),
	req("account", record.KindString),
	req("market", record.KindString),
	req("status", record.KindString),
	req("side", record.KindString),
	req("size", record.KindNumber),
	req("average_entry_price", record.KindNumber),
	req("average_entry_price_usd", record.KindNumber),
	req("average_exit_price", record.KindNumber),
	req("unrealized_pnl", record.KindNumber),
	req("unrealized_funding_pnl", record.KindNumber),
	req("cost", record.KindNumber),
	req("cost_usd", record.KindNumber),
	req("cached_funding_index", record.KindNumber),
	req("last_updated_at", record.KindInteger),
	req("last_fill_id", record.KindString),
	req("seq_no", record.KindInteger),
	opt("liquidation_price", record.KindString, ""),
	opt("leverage", record.KindNumber, 0.0),
	opt("realized_positional_pnl", record.KindNumber, 0.0),
	opt("created_at", record.KindInteger, 0),
	opt("closed_at", record.KindInteger, 0),
	opt("realized_positional_funding_pnl", record.KindString, ""),
)

// FillSchema describes Fill.
var FillSchema = record.MustNew("Fill",
	req("id", record.KindString),
	req("side", record.KindString),
	req("liquidity", record.KindString),
	req("market", record.KindString),
	req("order_id", record.KindString),
	req("price", record.KindNumber),
	req("size", record.KindNumber),
	req("fee", record.KindNumber),
	req("fee_currency", record.KindString),
	req("created_at", record.KindInteger),
	req("remaining_size", record.KindNumber),
	req("client_id", record.KindString),
	req("fill_type", record.KindString),
	req("realized_pnl", record.KindNumber),
	req("realized_funding", record.KindNumber),
	opt("account", record.KindString, ""),
	opt("underlying_price", record.KindString, ""),
)

// TransactionSchema describes Transaction.
var TransactionSchema = record.MustNew("Transaction",
	req("id", record.KindString),
	req("type", record.KindString),
	req("hash", record.KindString),
	req("state", record.KindString),
	req("created_at", record.KindInteger),
	req("completed_at", record.KindInteger),
)

// OrderStateSchema describes OrderState.
var OrderStateSchema = record.MustNew("OrderState",
	req("id", record.KindString),
	req("account", record.KindString),
	req("market", record.KindString),
	req("side", record.KindString),
	req("type", record.KindString),
	req("size", record.KindNumber),
	req("remaining_size", record.KindNumber),
	req("price", record.KindNumber),
	req("status", record.KindString),
	req("created_at", record.KindInteger),
	req("last_updated_at", record.KindInteger),
	req("timestamp", record.KindInteger),
	req("cancel_reason", record.KindString),
	req("client_id", record.KindString),
	req("seq_no", record.KindInteger),
	req("instruction", record.KindString),
	req("avg_fill_price", record.KindString),
	req("stp", record.KindString),
	req("received_at", record.KindInteger),
	req("published_at", record.KindInteger),
	req("flags", record.KindArray),
	req("trigger_price", record.KindString),
)

// VaultSchema describes Vault.
var VaultSchema = record.MustNew("Vault",
	req("address", record.KindString),
	req("name", record.KindString),
	req("description", record.KindString),
	req("owner_account", record.KindString),
	req("operator_account", record.KindString),
	req("strategies", record.KindArray),
	req("token_address", record.KindString),
	req("status", record.KindString),
	req("kind", record.KindString),
	req("profit_share", record.KindInteger),
	req("lockup_period", record.KindInteger),
	req("max_tvl", record.KindInteger),
	req("created_at", record.KindInteger),
	req("last_updated_at", record.KindInteger),
)

// VaultBalanceSchema describes VaultBalance.
var VaultBalanceSchema = record.MustNew("VaultBalance",
	req("token", record.KindString),
	req("size", record.KindString),
	req("last_updated_at", record.KindInteger),
)

// VaultSummarySchema describes VaultSummary.
var VaultSummarySchema = record.MustNew("VaultSummary",
	req("address", record.KindString),
	req("owner_equity", record.KindString),
	req("vtoken_supply", record.KindString),
	req("vtoken_price", record.KindString),
	req("tvl", record.KindString),
	req("net_deposits", record.KindString),
	req("total_roi", record.KindString),
	req("roi_24h", record.KindString),
	req("roi_7d", record.KindString),
	req("roi_30d", record.KindString),
	req("last_month_return", record.KindString),
	req("total_pnl", record.KindString),
	req("pnl_24h", record.KindString),
	req("pnl_7d", record.KindString),
	req("pnl_30d", record.KindString),
	req("max_drawdown", record.KindString),
	req("max_drawdown_24h", record.KindString),
	req("max_drawdown_7d", record.KindString),
	req("max_drawdown_30d", record.KindString),
	req("volume", record.KindString),
	req("volume_24h", record.KindString),
	req("volume_7d", record.KindString),
	req("volume_30d", record.KindString),
	req("num_depositors", record.KindInteger),
)

// VaultAccountSummarySchema describes VaultAccountSummary.
var VaultAccountSummarySchema = record.MustNew("VaultAccountSummary",
	req("address", record.KindString),
	req("deposited_amount", record.KindString),
	req("vtoken_amount", record.KindString),
	req("total_roi", record.KindString),
	req("total_pnl", record.KindString),
	req("created_at", record.KindInteger),
)

// GreeksSchema describes Greeks.
var GreeksSchema = record.MustNew("Greeks",
	opt("delta", record.KindNumber, 0.0),
	opt("gamma", record.KindNumber, 0.0),
	opt("vega", record.KindNumber, 0.0),
	opt("rho", record.KindNumber, 0.0),
	opt("vanna", record.KindNumber, 0.0),
	opt("volga", record.KindNumber, 0.0),
)

// MarketSummarySchema describes MarketSummary.
var MarketSummarySchema = record.MustNew("MarketSummary",
	req("symbol", record.KindString),
	req("mark_price", record.KindString),
	opt("delta", record.KindString, ""),
	opt("greeks", record.KindObject, nil),
	req("last_traded_price", record.KindString),
	req("bid", record.KindString),
	req("ask", record.KindString),
	req("volume_24h", record.KindString),
	req("total_volume", record.KindString),
	req("created_at", record.KindInteger),
	req("underlying_price", record.KindString),
	req("open_interest", record.KindString),
	req("funding_rate", record.KindString),
	req("price_change_rate_24h", record.KindString),
)

// MarketDetailsSchema describes MarketDetails.
var MarketDetailsSchema = record.MustNew("MarketDetails",
	req("symbol", record.KindString),
	req("base_currency", record.KindString),
	req("quote_currency", record.KindString),
	req("settlement_currency", record.KindString),
	req("order_size_increment", record.KindString),
	req("price_tick_size", record.KindNumber),
	req("min_notional", record.KindNumber),
	req("open_at", record.KindInteger),
	req("expiry_at", record.KindInteger),
	req("asset_kind", record.KindString),
	req("market_kind", record.KindString),
	req("position_limit", record.KindNumber),
	req("price_bands_width", record.KindNumber),
	req("max_open_orders", record.KindInteger),
	req("max_funding_rate", record.KindNumber),
	opt("delta1_cross_margin_params", record.KindObject, nil),
	opt("option_cross_margin_params", record.KindObject, nil),
	req("price_feed_id", record.KindString),
	req("oracle_ewma_factor", record.KindNumber),
	req("max_order_size", record.KindNumber),
	req("max_funding_rate_change", record.KindNumber),
	req("max_tob_spread", record.KindNumber),
	req("interest_rate", record.KindNumber),
	req("clamp_rate", record.KindNumber),
	req("funding_period_hours", record.KindInteger),
	req("tags", record.KindArray),
	opt("option_type", record.KindString, ""),
	opt("strike_price", record.KindNumber, 0.0),
	opt("iv_bands_width", record.KindNumber, 0.0),
)

// AccountSummarySchema describes AccountSummary.
var AccountSummarySchema = record.MustNew("AccountSummary",
	req("account", record.KindString),
	req("account_value", record.KindString),
	req("free_collateral", record.KindString),
	req("initial_margin_requirement", record.KindString),
	req("maintenance_margin_requirement", record.KindString),
	req("margin_cushion", record.KindString),
	req("seq_no", record.KindInteger),
	req("settlement_asset", record.KindString),
	req("status", record.KindString),
	req("total_collateral", record.KindString),
	req("updated_at", record.KindInteger),
)
