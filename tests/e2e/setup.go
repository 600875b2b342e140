//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"meter-reading-api/cmd/bootstrap"
	"meter-reading-api/cmd/bootstrap/components"
	"meter-reading-api/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	wiremockImage = "wiremock/wiremock:3.9.1"
	wiremockPort  = "8080/tcp"

	RecognitionPath    = "/v1/process_image"
	recognizerTimeout  = 1 * time.Second
	containerStartSecs = 120
)

var (
	wiremockContainerOnce sync.Once
	wiremockTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (ci ContainerInfo) BaseURL() string {
	return fmt.Sprintf("http://%s:%s", ci.Host, ci.Port.Port())
}

// ------------------------------------------------------------
// Per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, config.Config, *RecognitionStub) {
	wiremockInfo := startContainers(t)
	stub := NewRecognitionStub(wiremockInfo.BaseURL())

	router, cfg, app := buildE2EApp(wiremockInfo.BaseURL() + RecognitionPath)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("E2E environment ready",
		"wiremock_host", wiremockInfo.Host,
		"wiremock_port", wiremockInfo.Port.Port())

	return router, cfg, stub
}

// ------------------------------------------------------------
// Containers
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startWireMockContainerOnce(t)

	info, err := getContainerHostPort(wiremockTestContainer, wiremockPort)
	require.NoError(t, err, "failed to resolve WireMock container address")

	return info
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// WireMock stands in for the recognition service; stubs are registered per subtest.
func startWireMockContainerOnce(t *testing.T) {
	wiremockContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        wiremockImage,
			ExposedPorts: []string{wiremockPort},
			Cmd:          []string{"--disable-banner"},
			WaitingFor: wait.ForHTTP("/__admin/mappings").
				WithPort(nat.Port(wiremockPort)).
				WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		wiremockTestContainer, err = startGenericContainer(req, containerStartSecs)
		require.NoError(t, err, "failed to start WireMock container")

		t.Cleanup(func() {
			if wiremockTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := wiremockTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate WireMock container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// Application under test, wired with the production modules
// ------------------------------------------------------------
func buildE2EApp(recognizerURL string) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return createTestConfig(recognizerURL)
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RecognizerModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx application did not provide a router")
	}

	return router, cfg, app
}

func createTestConfig(recognizerURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Recognizer.Provider = config.ProviderHTTP
	testConfig.Recognizer.URL = recognizerURL
	testConfig.Recognizer.Timeout = recognizerTimeout
	return testConfig
}

// ------------------------------------------------------------
// Shared E2E suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	Stub   *RecognitionStub
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	router, cfg, stub := setupE2EEnvironment(t)
	s.Router = router
	s.Config = cfg
	s.Stub = stub
	require.NotEmpty(t, s.Config, "config is empty")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), s.Stub.Reset(s.T().Context()), "failed to reset WireMock state")
}
