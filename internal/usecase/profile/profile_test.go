//go:build unit

package profile_test

import (
	"context"
	"testing"
	"time"

	"agenda-web/internal/pkg/clock"
	"agenda-web/internal/pkg/errs"
	"agenda-web/internal/usecase/profile"
	profilemock "agenda-web/tests/mock/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := profilemock.NewMockSource(ctrl)
	clk := clock.NewMockClock(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC))
	uc := profile.NewUseCase(source, clk, 5*time.Minute)

	first := &profile.Profile{Name: "Barbería Centro", Email: "hola@centro.uy"}
	second := &profile.Profile{Name: "Barbería Centro 2"}

	gomock.InOrder(
		source.EXPECT().BusinessProfile(gomock.Any()).Return(nil, errs.ErrBackendUnavailable),
		source.EXPECT().BusinessProfile(gomock.Any()).Return(first, nil),
		source.EXPECT().BusinessProfile(gomock.Any()).Return(second, nil),
	)

	_, err := uc.Get(context.Background())
	assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))

	got, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, got)

	clk.Add(4 * time.Minute)
	got, err = uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, got)

	clk.Add(2 * time.Minute)
	got, err = uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, got)
}
