package calculator

import (
	"testing"
	"time"

	"github.com/iwvelando/uprating-calculator/internal/parameters"
	"github.com/iwvelando/uprating-calculator/internal/uprating"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"go.uber.org/zap"
)

// TestPerformance runs every selectable parameter over the longest horizon
// and reports timings.
func TestPerformance(t *testing.T) {
	if !testing.Verbose() {
		t.Skip("Skipping performance test. Run with -v to enable.")
	}

	start := time.Now()
	tree, err := parameters.Default()
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}
	loadTime := time.Since(start)

	calc := New(zap.NewNop(), tree, uprating.DefaultLimits(), nil)

	start = time.Now()
	for _, path := range calc.Options() {
		result, err := calc.Run(Input{
			Value:          constants.DefaultValue,
			StartYear:      constants.MinStartYear,
			Horizon:        constants.MaxHorizon,
			Parameter:      path,
			RoundingBase:   constants.DefaultRoundingBase,
			RoundingMethod: constants.DefaultRoundingMethod,
		})
		if err != nil {
			t.Fatalf("Run(%s) failed: %v", path, err)
		}
		if len(result.Rows) != constants.MaxHorizon+1 {
			t.Fatalf("Run(%s) returned %d rows", path, len(result.Rows))
		}
	}
	runTime := time.Since(start)

	t.Logf("Performance metrics:")
	t.Logf("  Parameter load: %v", loadTime)
	t.Logf("  %d calculations: %v", len(calc.Options()), runTime)

	if runTime > time.Second {
		t.Errorf("calculations took %v, expected under 1s", runTime)
	}
}

func BenchmarkRun(b *testing.B) {
	tree, err := parameters.Default()
	if err != nil {
		b.Fatalf("Default() failed: %v", err)
	}
	calc := New(zap.NewNop(), tree, uprating.DefaultLimits(), nil)
	in := Input{
		Value:          constants.DefaultValue,
		StartYear:      constants.DefaultStartYear,
		Horizon:        constants.DefaultHorizon,
		Parameter:      constants.DefaultParameter,
		RoundingBase:   50,
		RoundingMethod: "downwards",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := calc.Run(in); err != nil {
			b.Fatal(err)
		}
	}
}
