package tstoken

import (
	"math/big"
	"strconv"
	"strings"
)

var thousand = big.NewInt(1000)

// msToSeconds floors a millisecond count to whole seconds.
// big.Int.Div is Euclidean, which floors for a positive divisor.
func msToSeconds(ms *big.Int) *big.Int {
	return new(big.Int).Div(ms, thousand)
}

// secondsToMs re-expresses a seconds count in milliseconds.
func secondsToMs(s *big.Int) *big.Int {
	return new(big.Int).Mul(s, thousand)
}

// synthesize builds the fallback timestamp: five chained draws rnd(rnd(999)),
// concatenated as decimal text. The result is a non-negative integer with no
// distribution guarantee.
func synthesize(src Source) *big.Int {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(strconv.Itoa(Rnd(src, Rnd(src, 999, 0), 0)))
	}
	n, _ := new(big.Int).SetString(b.String(), 10)
	return n
}
