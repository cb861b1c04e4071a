package payout

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/crimson/internal/domain"
)

func ptr(v float64) *float64 { return &v }

// randomActivity builds a reproducible activity map with n helpers
func randomActivity(rng *rand.Rand, n int) domain.HelperActivity {
	activity := make(domain.HelperActivity, n)
	for i := 0; i < n; i++ {
		activity[fmt.Sprintf("U%04d", i)] = int64(rng.Intn(500) + 1)
	}
	return activity
}

func TestAllocate_ExampleScenario(t *testing.T) {
	activity := domain.HelperActivity{"A": 3, "B": 1}

	pool, err := Allocate(activity, Pool{Total: 40})
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutResult{"A": 30.0, "B": 10.0}, pool)

	fixed, err := Allocate(activity, FixedRate{Rate: 2.5})
	require.NoError(t, err)
	assert.Equal(t, domain.PayoutResult{"A": 7.5, "B": 2.5}, fixed)
}

func TestPool_SumEqualsTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		activity := randomActivity(rng, rng.Intn(50)+1)
		total := rng.Float64()*10000 + 0.01

		result, err := Pool{Total: total}.Allocate(activity)
		require.NoError(t, err)

		sum := result.Total()
		assert.InEpsilon(t, total, sum, 1e-9, "pool %v over %d helpers", total, len(activity))
	}
}

func TestPool_ZeroTicketsFails(t *testing.T) {
	tests := []struct {
		name     string
		activity domain.HelperActivity
	}{
		{"empty activity", domain.HelperActivity{}},
		{"nil activity", nil},
		{"all zero", domain.HelperActivity{"A": 0, "B": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Allocate(tt.activity, Pool{Total: 40})
			assert.ErrorIs(t, err, domain.ErrEmptyPoolDivision)
			assert.Nil(t, result)
		})
	}
}

func TestPool_ZeroTicketHelperGetsZero(t *testing.T) {
	result, err := Allocate(domain.HelperActivity{"A": 4, "B": 0}, Pool{Total: 10})
	require.NoError(t, err)

	assert.Equal(t, 10.0, result["A"])
	assert.Equal(t, 0.0, result["B"])
	assert.False(t, math.IsNaN(result["B"]))
}

func TestPool_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	activity := randomActivity(rng, 40)
	policy := Pool{Total: 1000.0 / 3.0}

	first, err := Allocate(activity, policy)
	require.NoError(t, err)
	second, err := Allocate(activity, policy)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for id, v := range first {
		assert.Equal(t, math.Float64bits(v), math.Float64bits(second[id]), "helper %s", id)
	}
}

func TestFixedRate_Exact(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		activity := randomActivity(rng, rng.Intn(30)+1)
		rate := rng.Float64() * 10

		result, err := FixedRate{Rate: rate}.Allocate(activity)
		require.NoError(t, err)

		for id, tickets := range activity {
			assert.Equal(t, float64(tickets)*rate, result[id])
		}
	}
}

func TestFixedRate_EmptyActivity(t *testing.T) {
	result, err := Allocate(domain.HelperActivity{}, FixedRate{Rate: 2.5})
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAllocate_KeysMatchActivity(t *testing.T) {
	activity := domain.HelperActivity{"A": 5, "B": 2, "C": 1}

	for _, policy := range []Policy{FixedRate{Rate: 1}, Pool{Total: 8}} {
		result, err := Allocate(activity, policy)
		require.NoError(t, err)

		require.Len(t, result, len(activity), policy.Name())
		for id := range activity {
			assert.Contains(t, result, id)
		}
	}
}

func TestAllocate_RejectsNegativeTickets(t *testing.T) {
	_, err := Allocate(domain.HelperActivity{"A": -1}, FixedRate{Rate: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllocate_NilPolicy(t *testing.T) {
	_, err := Allocate(domain.HelperActivity{"A": 1}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSelectPolicy(t *testing.T) {
	t.Run("rate only", func(t *testing.T) {
		p, err := SelectPolicy(ptr(2.5), nil)
		require.NoError(t, err)
		assert.Equal(t, FixedRate{Rate: 2.5}, p)
	})

	t.Run("pool only", func(t *testing.T) {
		p, err := SelectPolicy(nil, ptr(40))
		require.NoError(t, err)
		assert.Equal(t, Pool{Total: 40}, p)
	})

	t.Run("both set", func(t *testing.T) {
		_, err := SelectPolicy(ptr(2.5), ptr(40))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := SelectPolicy(nil, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	for _, bad := range []float64{0, -1, math.Inf(1), math.NaN()} {
		t.Run(fmt.Sprintf("invalid value %v", bad), func(t *testing.T) {
			_, err := SelectPolicy(ptr(bad), nil)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			_, err = SelectPolicy(nil, ptr(bad))
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "fixed-rate (2.5 cookies per ticket)", FixedRate{Rate: 2.5}.String())
	assert.Equal(t, "pool (40 cookies split by share of tickets)", Pool{Total: 40}.String())
}
