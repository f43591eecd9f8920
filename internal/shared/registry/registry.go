// Package registry は銘柄シンボルと表示名・外部プロバイダIDの静的な対応表を提供します。
package registry

import "strings"

// Descriptor は1つの暗号通貨銘柄の静的な参照情報です。
// ビルド時に組み込まれ、実行時には変更されません。
type Descriptor struct {
	Symbol     string // ティッカーシンボル（大文字、例: "BTC"）
	Name       string // 表示名（例: "Bitcoin"）
	ProviderID string // 外部API（CoinGecko）がこの銘柄を識別するID
}

// descriptors は既知銘柄の一覧です。順序がそのままワークリストの順序になります。
var descriptors = []Descriptor{
	{Symbol: "BTC", Name: "Bitcoin", ProviderID: "bitcoin"},
	{Symbol: "ETH", Name: "Ethereum", ProviderID: "ethereum"},
	{Symbol: "XRP", Name: "Ripple", ProviderID: "ripple"},
	{Symbol: "LTC", Name: "Litecoin", ProviderID: "litecoin"},
	{Symbol: "BCH", Name: "Bitcoin Cash", ProviderID: "bitcoin-cash"},
	{Symbol: "ADA", Name: "Cardano", ProviderID: "cardano"},
	{Symbol: "DOT", Name: "Polkadot", ProviderID: "polkadot"},
	{Symbol: "LINK", Name: "Chainlink", ProviderID: "chainlink"},
	{Symbol: "BNB", Name: "Binance Coin", ProviderID: "binancecoin"},
	{Symbol: "XLM", Name: "Stellar", ProviderID: "stellar"},
}

// Resolve はシンボルに対応するDescriptorを返します。
// 既知の銘柄であれば true、未知の銘柄であればフォールバック値と false を返します。
// フォールバック: 表示名はシンボルそのまま、プロバイダIDはシンボルの小文字。
func Resolve(symbol string) (Descriptor, bool) {
	s := strings.ToUpper(symbol)
	for _, d := range descriptors {
		if d.Symbol == s {
			return d, true
		}
	}
	return Descriptor{
		Symbol:     symbol,
		Name:       symbol,
		ProviderID: strings.ToLower(symbol),
	}, false
}

// DisplayName はシンボルの表示名を返します。未知の銘柄でも失敗しません。
func DisplayName(symbol string) string {
	d, _ := Resolve(symbol)
	return d.Name
}

// ProviderID はシンボルに対応する外部プロバイダIDを返します。未知の銘柄でも失敗しません。
func ProviderID(symbol string) string {
	d, _ := Resolve(symbol)
	return d.ProviderID
}

// Symbols は既知銘柄のティッカーを定義順で返します。
// 管理者向けスナップショット更新のワークリストとして使われます。
func Symbols() []string {
	out := make([]string, len(descriptors))
	for i, d := range descriptors {
		out[i] = d.Symbol
	}
	return out
}
