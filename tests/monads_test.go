package tests

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/monads/pkg/monad/chain"
	"github.com/ib-77/monads/pkg/monad/lazy"
	"github.com/ib-77/monads/pkg/monad/try"
)

// TestQuantityParsingScenario runs a batch of raw order quantities
// through validate -> parse -> double, collapsing each outcome to a
// printable summary.
func TestQuantityParsingScenario(t *testing.T) {
	t.Parallel()

	inputs := []string{"1", "2", "bad", "", "5"}
	results := processQuantities(inputs)

	assert.Equal(t, len(inputs), len(results))
	assert.Equal(t, []string{"qty:2", "qty:4", "invalid", "invalid", "qty:10"}, results)

	invalid := 0
	for _, r := range results {
		if r == "invalid" {
			invalid++
		}
	}
	assert.Equal(t, 2, invalid)
}

func processQuantities(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		out = append(out, chain.Finally(
			chain.Map(
				chain.ThenTry(
					chain.Start(validateQuantity(s)),
					strconv.Atoi,
				),
				func(n int) int { return n * 2 },
			),
			func(n int) string { return fmt.Sprintf("qty:%d", n) },
			func(err error) string { return "invalid" },
		))
	}
	return out
}

func validateQuantity(s string) try.Try[string] {
	if strings.TrimSpace(s) == "" {
		return try.Failuref[string]("quantity must not be empty")
	}
	return try.Success(s)
}

// TestLazyConfigScenario shares one deferred, expensive lookup across
// several consumers and checks it is computed exactly once.
func TestLazyConfigScenario(t *testing.T) {
	t.Parallel()

	lookups := 0
	baseURL := lazy.New(func() string {
		lookups++
		return "https://api.example.com"
	})

	ordersURL := lazy.Map(baseURL, func(base string) string { return base + "/orders" })
	usersURL := lazy.Map(baseURL, func(base string) string { return base + "/users" })

	assert.Equal(t, 0, lookups, "composition must not force the lookup")

	assert.Equal(t, "https://api.example.com/orders", ordersURL.Get())
	assert.Equal(t, "https://api.example.com/users", usersURL.Get())
	assert.Equal(t, "https://api.example.com", baseURL.Get())

	assert.Equal(t, 1, lookups)
}

// TestTryOfLazyComposition captures a fallible computation whose result
// is itself deferred.
func TestTryOfLazyComposition(t *testing.T) {
	t.Parallel()

	outcome := try.Of(func() (*lazy.Lazy[int], error) {
		return lazy.New(func() int { return 42 }), nil
	})

	answer := try.Map(outcome, func(l *lazy.Lazy[int]) (int, error) {
		return l.Get(), nil
	})

	assert.Equal(t, 42, answer.MustGet())
}
