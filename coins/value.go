package coins

// Purse is an amount split into platinum, gold, silver and copper pieces.
// Electrum is never produced by Breakdown.
type Purse struct {
	PP, GP, SP, CP uint32
}

// TotalValue sums the copper value of all coins.
func TotalValue(coins []Coin) uint32 {
	var total uint32
	for _, c := range coins {
		total += c.Value()
	}
	return total
}

// Breakdown greedily splits cp into the largest denominations first.
func Breakdown(cp uint32) Purse {
	pp := cp / Platinum.Value()
	cp %= Platinum.Value()
	gp := cp / Gold.Value()
	cp %= Gold.Value()
	sp := cp / Silver.Value()
	cp %= Silver.Value()
	return Purse{PP: pp, GP: gp, SP: sp, CP: cp}
}

// Total returns the purse value in copper pieces.
func (p Purse) Total() uint32 {
	return p.PP*Platinum.Value() + p.GP*Gold.Value() + p.SP*Silver.Value() + p.CP*Copper.Value()
}
