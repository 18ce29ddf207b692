package domain

import "fmt"

// Denominations are the coin values change is paid out in, largest first.
var Denominations = [...]int64{100, 50, 20, 10, 5}

// MakeChange breaks amount into Denominations greedily. The result sums to
// amount whenever amount is a multiple of 5, which every deposit and cost is.
func MakeChange(amount int64) ([]int64, error) {
	if amount < 0 {
		return nil, &InvalidArgumentsError{Msg: fmt.Sprintf("cannot make change for negative amount %d", amount)}
	}

	change := make([]int64, 0)
	remaining := amount

	for _, coin := range Denominations {
		for count := remaining / coin; count > 0; count-- {
			change = append(change, coin)
		}
		remaining %= coin
	}

	return change, nil
}
