package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)
	ctx := context.Background()
	at := time.Unix(1700000000, 0)

	grants := testutil.ToFloat64(RewardAmount.WithLabelValues("credits", "kill"))
	milestones := testutil.ToFloat64(StreakMilestones.WithLabelValues("5"))
	unlocks := testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("killing_spree"))
	combos := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ComboChanged)))

	require.NoError(t, bus.Publish(ctx, event.NewRewardGrantedEvent("p1", domain.RewardCredits, 50, domain.SourceKill, at)))
	require.NoError(t, bus.Publish(ctx, event.NewRewardGrantedEvent("p1", domain.RewardCredits, 58, domain.SourceKill, at)))
	require.NoError(t, bus.Publish(ctx, event.NewStreakMilestoneEvent("p1", 5, at)))
	require.NoError(t, bus.Publish(ctx, event.NewAchievementUnlockedEvent("p1", "killing_spree", "Killing Spree", 250, 100, at)))
	require.NoError(t, bus.Publish(ctx, event.NewComboChangedEvent("p1", 2, 110, at)))

	assert.Equal(t, grants+108, testutil.ToFloat64(RewardAmount.WithLabelValues("credits", "kill")))
	assert.Equal(t, milestones+1, testutil.ToFloat64(StreakMilestones.WithLabelValues("5")))
	assert.Equal(t, unlocks+1, testutil.ToFloat64(AchievementsUnlocked.WithLabelValues("killing_spree")))
	assert.Equal(t, combos+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.ComboChanged))))
}

func TestEventMetricsCollector_BadPayloadIsCounted(t *testing.T) {
	before := testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.StreakMilestone)))

	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{
		Type:    event.StreakMilestone,
		Payload: "not a payload",
	})

	assert.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(EventHandlerErrors.WithLabelValues(string(event.StreakMilestone))))
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/players/{playerID}/stats", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}/stats", "418"))

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/players/"+id+"/stats", nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/players/{playerID}/stats", "418")))
}
