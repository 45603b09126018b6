package errors

import "fmt"

var (
	ErrMalformedConfig    = fmt.Errorf("malformed forwarding config")
	ErrInvalidRule        = fmt.Errorf("invalid forwarding rule")
	ErrChannelNotInGuild  = fmt.Errorf("channel does not belong to guild")
	ErrMissingToken       = fmt.Errorf("missing bot token")
	ErrUnknownInteraction = fmt.Errorf("unknown interaction handle")
)
