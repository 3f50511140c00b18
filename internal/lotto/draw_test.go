package lotto_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/alejandrodnm/lottodraw/internal/domain"
	"github.com/alejandrodnm/lottodraw/internal/lotto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockNotifier struct {
	draws []*domain.DrawResult
	err   error
}

func (m *mockNotifier) Notify(_ context.Context, r *domain.DrawResult) error {
	m.draws = append(m.draws, r)
	return m.err
}

// --- helpers ---

func testConfig() lotto.Config {
	cfg := lotto.DefaultConfig()
	cfg.NumTickets = 50
	return cfg
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// --- tests ---

func TestDrawer_Draw_AccountingIdentities(t *testing.T) {
	d := lotto.New(testConfig(), nil, testRNG())

	result, err := d.Draw()
	require.NoError(t, err)

	assert.NotEmpty(t, result.DrawID)
	assert.Equal(t, 50, result.TicketsSold)
	assert.Len(t, result.Tickets, 50)
	assert.Equal(t, int64(50)*result.TicketPrice, result.TotalRevenue)
	assert.Equal(t, result.TotalRevenue-result.TotalPrizes, result.Profit)

	require.NotNil(t, result.Winning)
	assert.Equal(t, 6, result.Winning.Len())
	assert.Len(t, result.Table, 7)
}

func TestDrawer_Draw_PrizesMatchTableLookups(t *testing.T) {
	d := lotto.New(testConfig(), nil, testRNG())

	result, err := d.Draw()
	require.NoError(t, err)

	var jackpots int
	var total int64
	for _, tr := range result.Tickets {
		assert.Equal(t, tr.Ticket.Matches(result.Winning), tr.MatchCount)
		assert.Equal(t, result.Table.Amount(tr.MatchCount), tr.Prize)
		total += tr.Prize
		if tr.MatchCount == 6 {
			jackpots++
		}
	}
	assert.Equal(t, total, result.TotalPrizes)
	assert.Equal(t, jackpots, result.JackpotWinners)
}

func TestDrawer_Draw_FreshResultPerDraw(t *testing.T) {
	d := lotto.New(testConfig(), nil, testRNG())

	r1, err := d.Draw()
	require.NoError(t, err)
	r2, err := d.Draw()
	require.NoError(t, err)

	assert.NotEqual(t, r1.DrawID, r2.DrawID)
	assert.Equal(t, 50, r2.TicketsSold, "los acumuladores parten de cero en cada sorteo")
	assert.Equal(t, int64(50)*r2.TicketPrice, r2.TotalRevenue)
}

func TestDrawer_Draw_TicketBiggerThanPool(t *testing.T) {
	cfg := lotto.DefaultConfig()
	cfg.PoolSize = 5
	cfg.TicketSize = 6

	d := lotto.New(cfg, nil, testRNG())

	_, err := d.Draw()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestDrawer_Draw_MinMatchesExceedsTicketSize(t *testing.T) {
	cfg := lotto.DefaultConfig()
	cfg.MinMatches = 7

	d := lotto.New(cfg, nil, testRNG())

	_, err := d.Draw()
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}

func TestDrawer_Draw_ZeroTickets(t *testing.T) {
	cfg := lotto.DefaultConfig()
	cfg.NumTickets = 0

	d := lotto.New(cfg, nil, testRNG())

	result, err := d.Draw()
	require.NoError(t, err)
	assert.Zero(t, result.TicketsSold)
	assert.Zero(t, result.TotalRevenue)
	assert.Zero(t, result.TotalPrizes)
	require.NotNil(t, result.Winning, "el ganador se sortea aunque no haya ventas")
}

func TestDrawer_Run_NotifiesResult(t *testing.T) {
	notifier := &mockNotifier{}
	d := lotto.New(testConfig(), notifier, testRNG())

	result, err := d.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, notifier.draws, 1)
	assert.Same(t, result, notifier.draws[0])
}

func TestDrawer_Run_NotifierErrorTolerated(t *testing.T) {
	notifier := &mockNotifier{err: errors.New("console down")}
	d := lotto.New(testConfig(), notifier, testRNG())

	result, err := d.Run(context.Background())
	assert.NoError(t, err, "un fallo del notifier no aborta el sorteo")
	assert.NotNil(t, result)
}

func TestDrawer_Run_NilNotifier(t *testing.T) {
	d := lotto.New(testConfig(), nil, testRNG())

	_, err := d.Run(context.Background())
	assert.NoError(t, err)
}

// --- Config ---

func TestConfig_DefaultsAreValid(t *testing.T) {
	assert.NoError(t, lotto.DefaultConfig().Validate())
}

func TestConfig_Validate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*lotto.Config)
	}{
		{"pool size zero", func(c *lotto.Config) { c.PoolSize = 0 }},
		{"ticket size zero", func(c *lotto.Config) { c.TicketSize = 0 }},
		{"ticket bigger than pool", func(c *lotto.Config) { c.PoolSize = 5; c.TicketSize = 6 }},
		{"negative tickets", func(c *lotto.Config) { c.NumTickets = -1 }},
		{"negative price", func(c *lotto.Config) { c.TicketPrice = -1 }},
		{"min matches zero", func(c *lotto.Config) { c.MinMatches = 0 }},
		{"min matches above ticket size", func(c *lotto.Config) { c.MinMatches = 7 }},
		{"negative top prize", func(c *lotto.Config) { c.TopPrize = -1 }},
		{"divisor zero", func(c *lotto.Config) { c.PrizeDivisor = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := lotto.DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), domain.ErrConfiguration)
		})
	}
}
