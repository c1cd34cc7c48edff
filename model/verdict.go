package model

// Verdict is the quantization diagnosis of one channel.
type Verdict struct {
	Channel     uint8    `json:"channel"`
	BaseUnit    uint32   `json:"base_unit"`
	IsQuantized bool     `json:"is_quantized"`
	GCD         uint32   `json:"gcd"`
	Deltas      []uint32 `json:"deltas"`

	// NOTE: set when the channel has no deltas above 1
	Err error `json:"-"`
}

type ChannelToVerdict = map[uint8]Verdict
