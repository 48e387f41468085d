// Package abi holds the contract interfaces the service reads through eth_call.
// Only the view functions in use are declared.
package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var (
	// ERC721TokenABI covers ERC-165 detection and the approval getters
	ERC721TokenABI = mustParse("erc721", erc721ABIJson)
	// ChainlinkFeedABI covers the read side of an AggregatorV3Interface
	ChainlinkFeedABI = mustParse("chainlink", chainlinkFeedABIJson)
	// ERC1271ABI is the contract wallet signature check
	ERC1271ABI = mustParse("erc1271", erc1271ABIJson)
)

func mustParse(name, def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic("failed to parse " + name + " ABI: " + err.Error())
	}
	return parsed
}

const erc721ABIJson = `[
  {"type":"function","name":"supportsInterface","stateMutability":"view","inputs":[{"type":"bytes4","name":"interfaceId"}],"outputs":[{"type":"bool"}]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},
  {"type":"function","name":"getApproved","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]},
  {"type":"function","name":"isApprovedForAll","stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool"}]}
]`

const chainlinkFeedABIJson = `[
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"type":"uint8","name":""}]},
  {"type":"function","name":"description","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]},
  {"type":"function","name":"latestRoundData","stateMutability":"view","inputs":[],"outputs":[
    {"type":"uint80","name":"roundId"},
    {"type":"int256","name":"answer"},
    {"type":"uint256","name":"startedAt"},
    {"type":"uint256","name":"updatedAt"},
    {"type":"uint80","name":"answeredInRound"}
  ]}
]`

const erc1271ABIJson = `[
  {"type":"function","name":"isValidSignature","stateMutability":"view","inputs":[{"type":"bytes32","name":"_hash"},{"type":"bytes","name":"_signature"}],"outputs":[{"type":"bytes4","name":"magicValue"}]}
]`
