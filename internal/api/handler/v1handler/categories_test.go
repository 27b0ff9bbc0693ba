package v1handler_test

import (
	mockaggregator "browse/internal/aggregator/mock"
	"browse/internal/api/handler/v1handler"
	"browse/internal/icons"
	"browse/pkg/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestMux(t *testing.T) (*mockaggregator.MockAggregator, *http.ServeMux) {
	t.Helper()

	agg := mockaggregator.NewMockAggregator(gomock.NewController(t))
	mux := http.NewServeMux()
	v1handler.New(v1handler.Deps{Aggregator: agg}).Register(mux)

	return agg, mux
}

func serve(mux http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestCategories_Enriched(t *testing.T) {
	agg, mux := newTestMux(t)
	agg.EXPECT().Enriched(gomock.Any()).Return([]domain.EnrichedCategory{
		{
			Category: domain.Category{ID: 1, Slug: "math", Name: "Math", MetaTitle: "Math calculators"},
			Icon:     icons.Sigma,
			Href:     "/calculators/math",
			Count:    1,
		},
		{
			Category: domain.Category{ID: 2, Slug: "astrology", Name: "Astrology"},
			Icon:     icons.Default,
			Href:     "/calculators/astrology",
		},
	})

	rec := serve(mux, http.MethodGet, "/v1/categories")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `[
		{"id":1,"slug":"math","name":"Math","icon":"sigma","href":"/calculators/math","count":1,
		 "meta_title":"Math calculators"},
		{"id":2,"slug":"astrology","name":"Astrology","icon":"leaf","href":"/calculators/astrology","count":0}
	]`, rec.Body.String())
}

func TestCategories_DegradedIsEmptyArray(t *testing.T) {
	for _, tc := range []struct {
		path   string
		expect func(agg *mockaggregator.MockAggregator) *gomock.Call
	}{
		{"/v1/categories", func(agg *mockaggregator.MockAggregator) *gomock.Call {
			return agg.EXPECT().Enriched(gomock.Any())
		}},
		{"/v1/categories/main", func(agg *mockaggregator.MockAggregator) *gomock.Call {
			return agg.EXPECT().Main(gomock.Any())
		}},
		{"/v1/categories/other", func(agg *mockaggregator.MockAggregator) *gomock.Call {
			return agg.EXPECT().Other(gomock.Any())
		}},
	} {
		t.Run(tc.path, func(t *testing.T) {
			agg, mux := newTestMux(t)
			tc.expect(agg).Return([]domain.EnrichedCategory{})

			rec := serve(mux, http.MethodGet, tc.path)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "[]", rec.Body.String())
		})
	}
}

func TestCategories_NilViewIsEmptyArray(t *testing.T) {
	agg, mux := newTestMux(t)
	agg.EXPECT().Main(gomock.Any()).Return(nil)

	rec := serve(mux, http.MethodGet, "/v1/categories/main")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", rec.Body.String())
}

func TestCategories_Other(t *testing.T) {
	agg, mux := newTestMux(t)
	agg.EXPECT().Other(gomock.Any()).Return([]domain.EnrichedCategory{{
		Category: domain.Category{ID: 7, Slug: "gaming", Name: "Gaming"},
		Icon:     icons.Default,
		Href:     "/calculators/gaming",
		Count:    3,
	}})

	rec := serve(mux, http.MethodGet, "/v1/categories/other")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`[{"id":7,"slug":"gaming","name":"Gaming","icon":"leaf","href":"/calculators/gaming","count":3}]`,
		rec.Body.String())
}

func TestCategories_MethodNotAllowed(t *testing.T) {
	_, mux := newTestMux(t)

	rec := serve(mux, http.MethodPost, "/v1/categories")

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCategories_UnknownRoute(t *testing.T) {
	_, mux := newTestMux(t)

	rec := serve(mux, http.MethodGet, "/v1/categories/popular/extra")

	require.Equal(t, http.StatusNotFound, rec.Code)
}
