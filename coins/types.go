// Package coins values a wallet of fantasy coins in copper pieces (cp) and
// splits an amount back into platinum, gold, silver and copper.
//
// Coin value depends only on its Denomination; material, size, year and mint
// are descriptive.
//
//	pp = 1000 cp, gp = 100 cp, ep = 50 cp, sp = 10 cp, cp = 1 cp
//
// Errors:
//
//	ErrUnknownDenomination - a Denomination outside the declared constants.
package coins

import "errors"

// ErrUnknownDenomination indicates a Denomination value outside the declared set.
var ErrUnknownDenomination = errors.New("coins: unknown denomination")

const unknownName = "unknown"

// Denomination is the face value class of a coin.
type Denomination int

const (
	// Copper is worth 1 cp.
	Copper Denomination = iota
	// Silver is worth 10 cp.
	Silver
	// Electrum is worth 50 cp.
	Electrum
	// Gold is worth 100 cp.
	Gold
	// Platinum is worth 1000 cp.
	Platinum
)

var denominations = [...]struct {
	name  string
	code  string
	value uint32
}{
	Copper:   {"Copper", "cp", 1},
	Silver:   {"Silver", "sp", 10},
	Electrum: {"Electrum", "ep", 50},
	Gold:     {"Gold", "gp", 100},
	Platinum: {"Platinum", "pp", 1000},
}

func (d Denomination) known() bool {
	return d >= 0 && int(d) < len(denominations)
}

// Validate returns ErrUnknownDenomination if d is not a declared constant.
func (d Denomination) Validate() error {
	if !d.known() {
		return ErrUnknownDenomination
	}
	return nil
}

// Value returns the worth of d in copper pieces, or 0 if d is unknown.
func (d Denomination) Value() uint32 {
	if !d.known() {
		return 0
	}
	return denominations[d].value
}

// Code returns the short display code ("cp", "sp", "ep", "gp", "pp").
func (d Denomination) Code() string {
	if !d.known() {
		return unknownName
	}
	return denominations[d].code
}

// String returns the denomination name, e.g. "Gold".
func (d Denomination) String() string {
	if !d.known() {
		return unknownName
	}
	return denominations[d].name
}

// Material is what a coin is struck from.
type Material int

// Coin materials. Material is descriptive and never changes a coin's value.
const (
	MaterialCopper Material = iota
	MaterialSilver
	MaterialElectrum
	MaterialGold
	MaterialPlatinum
	MaterialMithril
	MaterialObsidian
)

var materialNames = [...]string{
	MaterialCopper:   "Copper",
	MaterialSilver:   "Silver",
	MaterialElectrum: "Electrum",
	MaterialGold:     "Gold",
	MaterialPlatinum: "Platinum",
	MaterialMithril:  "Mithril",
	MaterialObsidian: "Obsidian",
}

// String returns the material name, e.g. "Mithril".
func (m Material) String() string {
	if m < 0 || int(m) >= len(materialNames) {
		return unknownName
	}
	return materialNames[m]
}

// Mint is where a coin was struck.
type Mint int

// Mints that strike coins.
const (
	Capital Mint = iota
	Coastal
	Mountain
	Desert
)

var mintNames = [...]string{
	Capital:  "Capital",
	Coastal:  "Coastal",
	Mountain: "Mountain",
	Desert:   "Desert",
}

// String returns the mint name, e.g. "Coastal".
func (m Mint) String() string {
	if m < 0 || int(m) >= len(mintNames) {
		return unknownName
	}
	return mintNames[m]
}

// Coin is a single struck coin.
type Coin struct {
	Denom       Denomination
	Material    Material
	DiameterMM  uint16
	ThicknessMM uint16
	Year        uint16
	Mint        Mint
}

// Value returns the coin's worth in copper pieces.
func (c Coin) Value() uint32 {
	return c.Denom.Value()
}
