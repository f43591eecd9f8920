package registry

import "testing"

func TestResolve_KnownSymbols(t *testing.T) {
	t.Parallel()

	tests := []struct {
		symbol         string
		wantName       string
		wantProviderID string
	}{
		{"BTC", "Bitcoin", "bitcoin"},
		{"ETH", "Ethereum", "ethereum"},
		{"XRP", "Ripple", "ripple"},
		{"LTC", "Litecoin", "litecoin"},
		{"BCH", "Bitcoin Cash", "bitcoin-cash"},
		{"ADA", "Cardano", "cardano"},
		{"DOT", "Polkadot", "polkadot"},
		{"LINK", "Chainlink", "chainlink"},
		{"BNB", "Binance Coin", "binancecoin"},
		{"XLM", "Stellar", "stellar"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			d, known := Resolve(tt.symbol)
			if !known {
				t.Fatalf("expected %s to be known", tt.symbol)
			}
			if d.Name != tt.wantName {
				t.Errorf("name: got %q, want %q", d.Name, tt.wantName)
			}
			if d.ProviderID != tt.wantProviderID {
				t.Errorf("provider id: got %q, want %q", d.ProviderID, tt.wantProviderID)
			}
		})
	}
}

func TestResolve_UnknownSymbolFallsBack(t *testing.T) {
	t.Parallel()

	d, known := Resolve("FOO")
	if known {
		t.Fatal("expected FOO to be unknown")
	}
	// フォールバック: 表示名はシンボルそのまま、プロバイダIDは小文字
	if d.Name != "FOO" {
		t.Errorf("name: got %q, want FOO", d.Name)
	}
	if d.ProviderID != "foo" {
		t.Errorf("provider id: got %q, want foo", d.ProviderID)
	}
}

func TestResolve_IsCaseInsensitive(t *testing.T) {
	t.Parallel()

	d, known := Resolve("btc")
	if !known {
		t.Fatal("expected lookup to be case-insensitive")
	}
	if d.Name != "Bitcoin" {
		t.Errorf("name: got %q, want Bitcoin", d.Name)
	}
}

func TestDisplayNameAndProviderID_NeverFail(t *testing.T) {
	t.Parallel()

	if got := DisplayName("DOGE"); got != "DOGE" {
		t.Errorf("DisplayName fallback: got %q, want DOGE", got)
	}
	if got := ProviderID("DOGE"); got != "doge" {
		t.Errorf("ProviderID fallback: got %q, want doge", got)
	}
}

func TestSymbols_ReturnsWorklistInOrder(t *testing.T) {
	t.Parallel()

	got := Symbols()
	want := []string{"BTC", "ETH", "XRP", "LTC", "BCH", "ADA", "DOT", "LINK", "BNB", "XLM"}
	if len(got) != len(want) {
		t.Fatalf("length: got %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbols[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
}
