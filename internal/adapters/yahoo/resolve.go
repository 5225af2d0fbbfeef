package yahoo

import (
	"context"
	"strings"
)

// Resolve maps a bare ticker to its tradable Yahoo symbol. Indian tickers
// are listed as SYMBOL.NS (NSE) or SYMBOL.BO (BSE); when enabled, a symbol
// without an exchange suffix is probed against NSE first, then BSE. The
// symbol is returned unchanged when it already carries a suffix, when
// resolution is disabled, or when neither probe matches (US tickers fall
// through here).
func (c *Client) Resolve(ctx context.Context, symbol string) string {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if !c.cfg.ResolveIndianSymbols || strings.Contains(symbol, ".") {
		return symbol
	}

	for _, suffix := range []string{".NS", ".BO"} {
		candidate := symbol + suffix
		if c.probe(ctx, candidate) {
			c.log.Debugw("resolved symbol", "input", symbol, "resolved", candidate)
			return candidate
		}
	}
	return symbol
}
