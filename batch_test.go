package money

import (
	"errors"
	"reflect"
	"testing"
)

func TestAmounts_MulAll(t *testing.T) {
	tests := []struct {
		units []int64
		e     float64
		want  []int64
	}{
		{[]int64{105, -105, 0}, 2.5, []int64{263, -263, 0}},
		{[]int64{100, 200, 300}, 1.5, []int64{150, 300, 450}},
		{[]int64{105}, 0, []int64{0}},
		{[]int64{}, 2.5, []int64{}},
	}
	for _, tt := range tests {
		aa := Amounts(newAmountSlice(usd, tt.units))
		got := aa.MulAll(tt.e)
		want := Amounts(newAmountSlice(usd, tt.want))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v.MulAll(%v) = %v, want %v", aa, tt.e, got, want)
		}
		// The batch form equals the per-value operation mapped over each element
		for i, a := range aa {
			if got[i] != a.Mul(tt.e) {
				t.Errorf("%v.MulAll(%v)[%v] = %q, want %q", aa, tt.e, i, got[i], a.Mul(tt.e))
			}
		}
	}
}

func TestAmounts_MulAllWithMode(t *testing.T) {
	tests := []struct {
		units []int64
		e     float64
		mode  RoundingMode
		want  []int64
	}{
		// 1.05 * 2.5 = 2.625
		{[]int64{105, -105, 0}, 2.5, Nearest, []int64{263, -263, 0}},
		{[]int64{105, -105, 0}, 2.5, Floor, []int64{262, -263, 0}},
		{[]int64{105, -105, 0}, 2.5, Ceil, []int64{263, -262, 0}},
		{[]int64{100, 200}, 1.5, Nearest, []int64{150, 300}},
	}
	for _, tt := range tests {
		aa := Amounts(newAmountSlice(usd, tt.units))
		got := aa.MulAllWithMode(tt.e, tt.mode)
		want := Amounts(newAmountSlice(usd, tt.want))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v.MulAllWithMode(%v, %v) = %v, want %v", aa, tt.e, tt.mode, got, want)
		}
	}
}

func TestAmounts_QuoAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units []int64
			e     float64
			want  []int64
		}{
			{[]int64{105, -105}, 2.8, []int64{38, -38}},
			{[]int64{1000, 500, 0}, 4, []int64{250, 125, 0}},
			{[]int64{}, 2.8, []int64{}},
		}
		for _, tt := range tests {
			aa := Amounts(newAmountSlice(usd, tt.units))
			got, err := aa.QuoAll(tt.e)
			if err != nil {
				t.Errorf("%v.QuoAll(%v) failed: %v", aa, tt.e, err)
				continue
			}
			want := Amounts(newAmountSlice(usd, tt.want))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%v.QuoAll(%v) = %v, want %v", aa, tt.e, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		aa := Amounts(newAmountSlice(usd, []int64{105, 200}))
		got, err := aa.QuoAll(0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%v.QuoAll(0) = %v, want ErrDivisionByZero", aa, err)
		}
		if got != nil {
			t.Errorf("%v.QuoAll(0) = %v, want nil", aa, got)
		}
	})
}

func TestAmounts_QuoAllWithMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			units []int64
			e     float64
			mode  RoundingMode
			want  []int64
		}{
			// 1.05 / 2.8 = 0.375
			{[]int64{105, -105}, 2.8, Nearest, []int64{38, -38}},
			{[]int64{105, -105}, 2.8, Floor, []int64{37, -38}},
			{[]int64{105, -105}, 2.8, Ceil, []int64{38, -37}},
			// 10.00 / 4.5 = 2.2222...
			{[]int64{1000}, 4.5, Floor, []int64{222}},
			{[]int64{1000}, 4.5, Ceil, []int64{223}},
		}
		for _, tt := range tests {
			aa := Amounts(newAmountSlice(usd, tt.units))
			got, err := aa.QuoAllWithMode(tt.e, tt.mode)
			if err != nil {
				t.Errorf("%v.QuoAllWithMode(%v, %v) failed: %v", aa, tt.e, tt.mode, err)
				continue
			}
			want := Amounts(newAmountSlice(usd, tt.want))
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%v.QuoAllWithMode(%v, %v) = %v, want %v", aa, tt.e, tt.mode, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		aa := Amounts(newAmountSlice(usd, []int64{105}))
		for _, mode := range []RoundingMode{Nearest, Floor, Ceil} {
			if _, err := aa.QuoAllWithMode(0, mode); !errors.Is(err, ErrDivisionByZero) {
				t.Errorf("%v.QuoAllWithMode(0, %v) = %v, want ErrDivisionByZero", aa, mode, err)
			}
		}
	})
}

func TestAmounts_PercentAll(t *testing.T) {
	tests := []struct {
		units []int64
		e     float64
		want  []int64
	}{
		{[]int64{105, -105, 0}, 2.8, []int64{3, -3, 0}},
		{[]int64{1000, 2000}, 0.5, []int64{5, 10}},
		{[]int64{1000}, 100, []int64{1000}},
		{[]int64{}, 2.8, []int64{}},
	}
	for _, tt := range tests {
		aa := Amounts(newAmountSlice(usd, tt.units))
		got := aa.PercentAll(tt.e)
		want := Amounts(newAmountSlice(usd, tt.want))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v.PercentAll(%v) = %v, want %v", aa, tt.e, got, want)
		}
		// The batch form equals the per-value operation mapped over each element
		for i, a := range aa {
			if got[i] != a.Percent(tt.e) {
				t.Errorf("%v.PercentAll(%v)[%v] = %q, want %q", aa, tt.e, i, got[i], a.Percent(tt.e))
			}
		}
	}
}

func TestAmounts_PercentAllWithMode(t *testing.T) {
	tests := []struct {
		units []int64
		e     float64
		mode  RoundingMode
		want  []int64
	}{
		// 2.8% of 1.05 = 0.0294
		{[]int64{105, -105}, 2.8, Nearest, []int64{3, -3}},
		{[]int64{105, -105}, 2.8, Floor, []int64{2, -3}},
		{[]int64{105, -105}, 2.8, Ceil, []int64{3, -2}},
	}
	for _, tt := range tests {
		aa := Amounts(newAmountSlice(usd, tt.units))
		got := aa.PercentAllWithMode(tt.e, tt.mode)
		want := Amounts(newAmountSlice(usd, tt.want))
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%v.PercentAllWithMode(%v, %v) = %v, want %v", aa, tt.e, tt.mode, got, want)
		}
	}
}

func TestAmounts_MixedCurrencies(t *testing.T) {
	// Each element is scaled against its own precision
	aa := Amounts{NewAmount(500, usd), NewAmount(200, jpy), NewAmount(200, btc)}
	got := aa.MulAll(1.5)
	want := Amounts{NewAmount(750, usd), NewAmount(300, jpy), NewAmount(300, btc)}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%v.MulAll(1.5) = %v, want %v", aa, got, want)
	}
}

func TestAmounts_Immutability(t *testing.T) {
	aa := Amounts(newAmountSlice(usd, []int64{105, 200, -300}))
	want := Amounts(newAmountSlice(usd, []int64{105, 200, -300}))

	aa.MulAll(2.5)
	aa.PercentAll(2.8)
	if _, err := aa.QuoAll(2.8); err != nil {
		t.Errorf("%v.QuoAll(2.8) failed: %v", aa, err)
	}

	if !reflect.DeepEqual(aa, want) {
		t.Errorf("the original slice was modified to %v, want %v", aa, want)
	}
}
