package services

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/hostelmanager/hostel-access-service/internal/adapters/storage"
	"github.com/hostelmanager/hostel-access-service/internal/config"
	"github.com/hostelmanager/hostel-access-service/internal/metrics"
	"github.com/hostelmanager/hostel-access-service/internal/mocks"
)

// fixture wires the access layer against a mock backend, a counting fallback
// provider and a real file store in a temp dir.
type fixture struct {
	store  *storage.FileStore
	api    *mocks.MockRemoteAPI
	fb     *mocks.CountingFallback
	auth   *AuthService
	hostel *HostelService
	admin  *AdminService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storage.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	api := mocks.NewMockRemoteAPI()
	fb := mocks.NewCountingFallback()
	cb := config.NewCircuitBreaker("HostelAPI")
	m := metrics.New(prometheus.NewRegistry())
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &fixture{
		store:  store,
		api:    api,
		fb:     fb,
		auth:   NewAuthService(store, api, fb, cb, m, logger),
		hostel: NewHostelService(store, api, fb, cb, m, logger),
		admin:  NewAdminService(store, api, fb, cb, m, logger),
	}
}
