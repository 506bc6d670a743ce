// Package data provides the embedded storefront data files.
package data

import _ "embed"

// Menu contains the full menu catalog as JSON.
//
//go:embed menu.json
var Menu []byte

// Locations contains the pickup branches as JSON.
//
//go:embed locations.json
var Locations []byte

// Offers contains the promotional offers as JSON.
//
//go:embed offers.json
var Offers []byte

// Vouchers contains the gzipped campaign voucher code list, one code per line.
//
//go:embed vouchers.gz
var Vouchers []byte
