package order

import (
	"errors"
	"fmt"
	"strings"
)

// Channel is the order placement/fulfillment mode.
type Channel string

const (
	ChannelDineIn   Channel = "dine-in"
	ChannelTakeout  Channel = "takeout"
	ChannelDelivery Channel = "delivery"
	ChannelCatering Channel = "catering"
)

var ErrInvalidChannel = errors.New("invalid channel")

// Channels returns the fixed channel enumeration in canonical order. Report
// sections that break ties or emit per-channel rows follow this order.
func Channels() []Channel {
	return []Channel{ChannelDineIn, ChannelTakeout, ChannelDelivery, ChannelCatering}
}

// ParseChannel validates a raw query/provider value against the enumeration.
func ParseChannel(value string) (Channel, error) {
	switch ch := Channel(strings.ToLower(strings.TrimSpace(value))); ch {
	case ChannelDineIn, ChannelTakeout, ChannelDelivery, ChannelCatering:
		return ch, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidChannel, value)
	}
}
