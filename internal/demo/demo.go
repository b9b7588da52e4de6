// Package demo runs short showcases of each library package and reports the
// results through a logging.Logger.
package demo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/drills/arrays"
	"github.com/katalvlaran/drills/coins"
	"github.com/katalvlaran/drills/fold"
	"github.com/katalvlaran/drills/internal/logging"
	"github.com/katalvlaran/drills/vector"
)

// ErrUnknownDemo indicates a demo name that is not registered.
var ErrUnknownDemo = errors.New("demo: unknown demo")

// All selects every registered demo, in name order.
const All = "all"

var registry = map[string]func(logging.Logger) error{
	"vector": runVector,
	"arrays": runArrays,
	"fold":   runFold,
	"coins":  runCoins,
}

// Names returns the registered demo names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Run executes the named demo, or all of them for All. It stops at the first
// failing demo.
func Run(name string, log logging.Logger) error {
	if name == All {
		for _, n := range Names() {
			if err := Run(n, log); err != nil {
				return err
			}
		}
		return nil
	}

	fn, ok := registry[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownDemo)
	}
	log.Debug("demo start", "demo", name)
	if err := fn(log); err != nil {
		return fmt.Errorf("demo %s: %w", name, err)
	}
	return nil
}

func runVector(log logging.Logger) error {
	a := vector.New(3, 4)
	b := vector.New(1, -2)
	log.Info("vector add", "a", a, "b", b, "result", vector.Add(a, b))
	log.Info("vector sub", "a", a, "b", b, "result", vector.Sub(a, b))

	f := vector.Sum(vector.New(1.5, -2.0), vector.New(0.5, 10.0))
	log.Info("vector sum", "result", f, "fixed", vector.Format(f, vector.WithPrecision(2)))
	log.Info("vector dot", "result", vector.Dot(vector.New(1.0, 2.0), vector.New(3.0, 4.0)))
	return nil
}

func runArrays(log logging.Logger) error {
	nums := []uint32{1, 3, 5}
	log.Info("arrays product", "in", nums, "result", arrays.Product(nums))

	d, err := arrays.Dot(nums, []uint32{4, 5, 6})
	if err != nil {
		return err
	}
	log.Info("arrays dot", "result", d)

	if _, err := arrays.Dot(nums, []uint32{1}); err != nil {
		log.Warn("arrays dot rejected", "err", err)
	}

	arrays.SquareInPlace(nums)
	log.Info("arrays squared", "result", nums)

	t, f := arrays.CountBools([]bool{true, false, true, true, false})
	log.Info("arrays count bools", "true", t, "false", f)
	return nil
}

func runFold(log logging.Logger) error {
	log.Info("fold smaller than", "limit", 5, "result", fold.SmallerThan(5, []uint32{1, 5, 3, 7, 2}))

	w, err := fold.SmallestWord([]string{"rust", "go", "c"})
	if err != nil {
		return err
	}
	log.Info("fold smallest word", "result", w)

	answer := 42
	if first := fold.FirstSome([]*int{nil, &answer}); first != nil {
		log.Info("fold first some", "result", *first)
	}
	return nil
}

func runCoins(log logging.Logger) error {
	wallet := []coins.Coin{
		{Denom: coins.Gold, Material: coins.MaterialGold, DiameterMM: 25, ThicknessMM: 2, Year: 1023, Mint: coins.Capital},
		{Denom: coins.Silver, Material: coins.MaterialSilver, DiameterMM: 22, ThicknessMM: 2, Year: 1023, Mint: coins.Coastal},
		{Denom: coins.Copper, Material: coins.MaterialCopper, DiameterMM: 21, ThicknessMM: 2, Year: 1022, Mint: coins.Mountain},
		{Denom: coins.Platinum, Material: coins.MaterialPlatinum, DiameterMM: 27, ThicknessMM: 2, Year: 1024, Mint: coins.Capital},
		{Denom: coins.Electrum, Material: coins.MaterialElectrum, DiameterMM: 24, ThicknessMM: 2, Year: 1021, Mint: coins.Desert},
		{Denom: coins.Gold, Material: coins.MaterialMithril, DiameterMM: 25, ThicknessMM: 2, Year: 1020, Mint: coins.Mountain},
	}
	for i, c := range wallet {
		if err := c.Denom.Validate(); err != nil {
			return fmt.Errorf("coin %d: %w", i, err)
		}
		log.Debug("coin", "index", i, "denom", c.Denom.Code(), "material", c.Material, "mint", c.Mint, "cp", c.Value())
	}

	total := coins.TotalValue(wallet)
	p := coins.Breakdown(total)
	log.Info("coins total", "cp", total, "pp", p.PP, "gp", p.GP, "sp", p.SP, "rest_cp", p.CP)
	return nil
}
