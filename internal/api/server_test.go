package api_test

import (
	"browse/internal/aggregator"
	mockaggregator "browse/internal/aggregator/mock"
	"browse/internal/api"
	"browse/internal/api/handler/v1handler"
	"browse/internal/config"
	"browse/pkg/catalog"
	mockcatalog "browse/pkg/catalog/mock"
	"browse/pkg/domain"
	"browse/pkg/serrors"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, opts api.Options) (*mockaggregator.MockAggregator, *httptest.Server) {
	t.Helper()

	agg := mockaggregator.NewMockAggregator(gomock.NewController(t))
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "browse_test_total"}))

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	srv := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Aggregator: agg},
		Gatherer: reg,
	}, opts)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return agg, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Health(t *testing.T) {
	_, ts := newTestServer(t, api.Options{})

	res, body := get(t, ts.URL+"/healthz")

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Categories(t *testing.T) {
	agg, ts := newTestServer(t, api.Options{AllowedOrigin: "https://calc.example"})
	agg.EXPECT().Main(gomock.Any()).Return([]domain.EnrichedCategory{})

	res, body := get(t, ts.URL+"/v1/categories/main")

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "[]", body)
	require.Equal(t, "https://calc.example", res.Header.Get("Access-Control-Allow-Origin"))
}

func TestServer_Metrics(t *testing.T) {
	_, ts := newTestServer(t, api.Options{MetricsPath: "/internal/metrics"})

	res, body := get(t, ts.URL+"/internal/metrics")

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "browse_test_total")
}

func TestServer_Specs(t *testing.T) {
	_, ts := newTestServer(t, api.Options{})

	res, body := get(t, ts.URL+"/specs/v1.yaml")

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/v1/categories/main")
}

func TestServer_Docs(t *testing.T) {
	_, ts := newTestServer(t, api.Options{})

	res, _ := get(t, ts.URL+"/v1/docs/")

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Pprof(t *testing.T) {
	_, disabled := newTestServer(t, api.Options{})
	res, _ := get(t, disabled.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	_, enabled := newTestServer(t, api.Options{PprofEnabled: true})
	res, _ = get(t, enabled.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_CategoriesDegradeBeforeRequestTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mockcatalog.NewMockClient(ctrl)
	hang := func(ctx context.Context) error {
		<-ctx.Done()

		return serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "could not send request")
	}
	client.EXPECT().Categories(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Category, error) {
		return nil, hang(ctx)
	}).AnyTimes()
	client.EXPECT().Items(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ catalog.ItemFilter) ([]domain.Item, error) {
			return nil, hang(ctx)
		}).AnyTimes()

	agg, err := aggregator.New(client, aggregator.Options{FetchTimeout: 20 * time.Millisecond})
	require.NoError(t, err)

	srv := api.NewServer(api.Deps{
		Deps:     v1handler.Deps{Aggregator: agg},
		Gatherer: prometheus.NewRegistry(),
	}, api.Options{MetricsPath: "/metrics", RequestTimeout: 2 * time.Second})
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	for _, path := range []string{"/v1/categories", "/v1/categories/main", "/v1/categories/other"} {
		res, body := get(t, ts.URL+path)

		require.Equal(t, http.StatusOK, res.StatusCode, path)
		require.Equal(t, "[]", body, path)
	}
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.HTTP.Addr = ":9090"
	cfg.HTTP.AllowedOrigin = "https://calc.example"
	cfg.HTTP.PprofEnabled = true
	cfg.HTTP.RequestTimeout = 5 * time.Second

	opts := api.NewOptions(&cfg)

	require.Equal(t, ":9090", opts.Addr)
	require.Equal(t, "https://calc.example", opts.AllowedOrigin)
	require.True(t, opts.PprofEnabled)
	require.Equal(t, 5*time.Second, opts.RequestTimeout)
}
