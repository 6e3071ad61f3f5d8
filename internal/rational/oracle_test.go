package rational

import (
	"math/big"

	apperrors "github.com/agbru/ratcalc/internal/errors"
	"github.com/agbru/ratcalc/internal/wide"
)

type bigRat = big.Rat

func bigAdd(a, b *bigRat) *bigRat { return new(big.Rat).Add(a, b) }
func bigSub(a, b *bigRat) *bigRat { return new(big.Rat).Sub(a, b) }
func bigMul(a, b *bigRat) *bigRat { return new(big.Rat).Mul(a, b) }
func bigQuo(a, b *bigRat) *bigRat { return new(big.Rat).Quo(a, b) }

func wideOf(v int64) wide.Int { return wide.FromInt64(v) }

func tryCmp(a, b Rat) (c int, err error) {
	defer apperrors.RecoverArithmetic(&err)
	return Cmp(a, b), nil
}
