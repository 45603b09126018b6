//go:build tools

// Package tools pins mockgen, which regenerates mocks/ through the
// //go:generate directives on the contract and repository interfaces.
package channel_relay

import (
	_ "go.uber.org/mock/mockgen"
)
