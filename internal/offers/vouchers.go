package offers

import (
	"bufio"
	"bytes"
	"io"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
)

const (
	voucherCapacity = 4096
	voucherFPR      = 0.001
	minCodeLen      = 8
	maxCodeLen      = 10
)

// namedRules maps campaign codes with bespoke discounts. Codes in the
// voucher list without a named rule get defaultRule.
var namedRules = map[string]Rule{
	"CHURRO20": {
		Code:         "CHURRO20",
		DiscountType: DiscountPercentage,
		Value:        decimal.NewFromInt(20),
		Description:  "20% off your first order",
	},
	"COMBODEAL": {
		Code:         "COMBODEAL",
		DiscountType: DiscountFixed,
		Value:        decimal.NewFromInt(40),
		MinItems:     2,
		Description:  "Combo deal: 40 off churros with hot chocolate",
	},
	"FREECHURRO": {
		Code:         "FREECHURRO",
		DiscountType: DiscountFreeLowest,
		Value:        decimal.Zero,
		MinItems:     2,
		Description:  "Cheapest item free",
	},
}

var defaultRule = Rule{
	DiscountType: DiscountPercentage,
	Value:        decimal.NewFromInt(10),
	Description:  "Valid voucher: 10% off",
}

var _ Validator = (*VoucherSet)(nil)

// VoucherSet holds the campaign voucher codes behind a bloom filter and
// resolves codes to discount rules. It implements Validator.
type VoucherSet struct {
	filter *bloom.BloomFilter
	count  int
}

// LoadVouchers reads a gzipped voucher list, one code per line, and builds
// the membership filter. Lines outside the campaign code length bounds are
// ignored.
func LoadVouchers(gz []byte) (*VoucherSet, error) {
	r, err := pgzip.NewReader(bytes.NewReader(gz))
	if err != nil {
		return nil, errors.Wrap(err, "create gzip reader")
	}
	defer func() { _ = r.Close() }()

	return readVouchers(r)
}

func readVouchers(r io.Reader) (*VoucherSet, error) {
	set := &VoucherSet{
		filter: bloom.NewWithEstimates(voucherCapacity, voucherFPR),
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		code := scanner.Text()
		if len(code) < minCodeLen || len(code) > maxCodeLen {
			continue
		}
		set.filter.AddString(code)
		set.count++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan voucher list")
	}

	return set, nil
}

// Len returns the number of codes loaded into the set.
func (s *VoucherSet) Len() int {
	return s.count
}

// Contains reports whether the code is in the campaign set. Subject to the
// filter's false positive rate; never reports false for a loaded code.
func (s *VoucherSet) Contains(code string) bool {
	if len(code) < minCodeLen || len(code) > maxCodeLen {
		return false
	}
	return s.filter.TestString(code)
}

// Resolve returns the discount rule for the code, or ErrInvalidCode when
// the code is not part of the campaign.
func (s *VoucherSet) Resolve(code string) (*Rule, error) {
	if !s.Contains(code) {
		return nil, ErrInvalidCode
	}
	if rule, ok := namedRules[code]; ok {
		return &rule, nil
	}
	rule := defaultRule
	rule.Code = code
	return &rule, nil
}

// Validate resolves the code and applies its rule to the cart items.
func (s *VoucherSet) Validate(code string, items []Item) (*Discount, error) {
	rule, err := s.Resolve(code)
	if err != nil {
		return nil, err
	}

	d, err := Apply(rule, items)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
