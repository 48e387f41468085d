package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) SetupTest() {
}

func (s *ValidatorTestSuite) TearDownTest() {
}

func (s *ValidatorTestSuite) SetupSuite() {
}

func (s *ValidatorTestSuite) TearDownSuite() {
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "invalid address",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "valid address - real address",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestCustomTags() {
	type params struct {
		Address string `validate:"eth_address"`
		Amount  string `validate:"uint256"`
	}
	v := NewCustomValidator(validator.New())

	tests := []struct {
		desc   string
		params params
		valid  bool
	}{
		{
			desc:   "valid",
			params: params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "1000000000000000000"},
			valid:  true,
		},
		{
			desc:   "address without prefix",
			params: params{"939ae6a4c8dfdbb1f7085189574f0a938013952b", "1"},
			valid:  false,
		},
		{
			desc:   "negative amount",
			params: params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "-1"},
			valid:  false,
		},
		{
			desc:   "amount over 2^256-1",
			params: params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "115792089237316195423570985008687907853269984665640564039457584007913129639936"},
			valid:  false,
		},
		{
			desc:   "decimal amount",
			params: params{"0x939ae6a4c8dfdbb1f7085189574f0a938013952b", "1.5"},
			valid:  false,
		},
	}
	for _, t := range tests {
		err := v.Validate(t.params)
		s.Equal(t.valid, err == nil, t.desc)
	}
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
