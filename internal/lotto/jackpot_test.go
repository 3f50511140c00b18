package lotto_test

import (
	"context"
	"testing"

	"github.com/alejandrodnm/lottodraw/internal/domain"
	"github.com/alejandrodnm/lottodraw/internal/lotto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jackpotConfig usa un bombo pequeño para que el premio mayor caiga rápido:
// la probabilidad por ticket es 1/C(5,2) = 1/10.
func jackpotConfig() lotto.Config {
	return lotto.Config{
		PoolSize:     5,
		TicketSize:   2,
		NumTickets:   10,
		TicketPrice:  10,
		MinMatches:   1,
		TopPrize:     1_000,
		PrizeDivisor: 10,
	}
}

func TestJackpotEstimator_StopsWhenJackpotPays(t *testing.T) {
	d := lotto.New(jackpotConfig(), nil, testRNG())

	est, err := lotto.NewJackpotEstimator(d).Run(context.Background())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, est.Draws, 1)
	assert.GreaterOrEqual(t, est.JackpotTickets, 1)
	assert.Equal(t, est.Draws*10, est.TicketsSold)
	assert.Equal(t, est.TotalRevenue-est.TotalPrizes, est.Profit)
	assert.Greater(t, est.Odds(), 0.0)

	require.NotNil(t, est.LastDraw, "el último sorteo es el que pagó el premio mayor")
	assert.Greater(t, est.LastDraw.JackpotWinners, 0)
}

func TestJackpotEstimator_HonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := lotto.New(jackpotConfig(), nil, testRNG())

	est, err := lotto.NewJackpotEstimator(d).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	require.NotNil(t, est, "la estimación parcial se devuelve igualmente")
	assert.Zero(t, est.Draws)
	assert.Nil(t, est.LastDraw)
}

func TestJackpotEstimator_PropagatesConfigError(t *testing.T) {
	cfg := jackpotConfig()
	cfg.TicketSize = 9 // no cabe en el bombo

	d := lotto.New(cfg, nil, testRNG())

	_, err := lotto.NewJackpotEstimator(d).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
