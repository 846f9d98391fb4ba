package fraction_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbolino/fraction"
)

type GCFCase struct {
	M, N, D int64
}

var GCFCases = []GCFCase{
	{1, 1, 1},
	{1, 2, 1},
	{2, 2, 2},
	{2, 3, 1},
	{2, 4, 2},
	{3, 6, 3},
	{4, 6, 2},
	{6, 8, 2},
	{6, 9, 3},
	{24, 120, 24},
	{36, 120, 12},
	{7, 360, 1},
	{360, 92822, 2},
	{3600, 216000, 3600},
	{123456789, 987654321, 9},
	{P1 * P2 * P3, P2 * P3 * P4, P2 * P3},
	{
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 47,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 53,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43,
	},
	{math.MaxInt64 - 1, math.MaxInt64, 1},
}

var SymGCFCases []GCFCase

func init() {
	SymGCFCases = append(SymGCFCases, GCFCases...)
	for _, c := range GCFCases {
		if c.M == c.N {
			continue
		}
		SymGCFCases = append(SymGCFCases, GCFCase{c.N, c.M, c.D})
	}
}

func TestExtGCD(t *testing.T) {
	for _, c := range SymGCFCases {
		t.Run(fmt.Sprintf("ExtGCD(%d,%d)", c.M, c.N), func(t *testing.T) {
			a, b, d := fraction.ExtGCD(c.M, c.N)
			require.Equal(t, c.D, d)
			require.Equal(t, d, a*c.M+b*c.N, "Bézout identity")
		})
	}
}

func TestGCF(t *testing.T) {
	for _, c := range SymGCFCases {
		t.Run(fmt.Sprintf("GCF(%d,%d)", c.M, c.N), func(t *testing.T) {
			require.Equal(t, c.D, fraction.GCF(c.M, c.N))
			require.Equal(t, c.D, fraction.GCF(-c.M, c.N))
			require.Equal(t, c.D, fraction.GCF(c.M, -c.N))
			require.Equal(t, c.D, fraction.GCF(-c.M, -c.N))
		})
	}
}

func TestGCF_zero(t *testing.T) {
	require.EqualValues(t, 1, fraction.GCF[int64](0, 5))
	require.EqualValues(t, 1, fraction.GCF[int64](5, 0))
	require.EqualValues(t, 1, fraction.GCF[int64](0, 0))
}

func TestGCF_narrowTypes(t *testing.T) {
	require.Equal(t, int8(6), fraction.GCF[int8](-24, 90))
	require.Equal(t, int32(92821), fraction.GCF[int32](92821, 92821*2))
	require.Equal(t, 4, fraction.GCF(8, 12))
}

func TestExtGCD_zero(t *testing.T) {
	a, b, d := fraction.ExtGCD[int64](7, 0)
	require.Equal(t, int64(1), a)
	require.Equal(t, int64(0), b)
	require.Equal(t, int64(7), d)
}
