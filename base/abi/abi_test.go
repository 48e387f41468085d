package abi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestABIMethods(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		methods []string
	}{
		{name: "erc721", methods: []string{"supportsInterface", "ownerOf", "getApproved", "isApprovedForAll"}},
		{name: "chainlink", methods: []string{"decimals", "description", "latestRoundData"}},
		{name: "erc1271", methods: []string{"isValidSignature"}},
	}
	abis := map[string]func(string) bool{
		"erc721":    func(m string) bool { _, ok := ERC721TokenABI.Methods[m]; return ok },
		"chainlink": func(m string) bool { _, ok := ChainlinkFeedABI.Methods[m]; return ok },
		"erc1271":   func(m string) bool { _, ok := ERC1271ABI.Methods[m]; return ok },
	}
	for _, tt := range tests {
		for _, m := range tt.methods {
			req.True(abis[tt.name](m), "%s.%s", tt.name, m)
		}
	}

	out := ChainlinkFeedABI.Methods["latestRoundData"].Outputs
	req.Len(out, 5)
	req.Equal("answer", out[1].Name)
}
