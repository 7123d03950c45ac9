// Package registry registers the service with a Consul-style service registry
// so other services can discover it by name.
package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"accounts/config"
	"accounts/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultHealthInterval = 10 * time.Second

// registration is the agent service registration payload.
type registration struct {
	ID      string `json:"ID"`
	Name    string `json:"Name"`
	Address string `json:"Address"`
	Port    int    `json:"Port"`
	Check   struct {
		HTTP                           string `json:"HTTP"`
		Interval                       string `json:"Interval"`
		DeregisterCriticalServiceAfter string `json:"DeregisterCriticalServiceAfter"`
	} `json:"Check"`
}

// Client registers and deregisters this service with the registry agent.
type Client struct {
	baseURL    string
	serviceID  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the registry client, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the registry client and hooks registration into the
// application lifecycle. When no registry is configured it returns nil and
// the service runs standalone.
func New(params Params) *Client {
	cfg := params.Config.Registry
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("No service registry configured, running standalone")

		return nil
	}

	client := &Client{
		baseURL:   cfg.URL,
		serviceID: cfg.ServiceID,
		httpClient: &http.Client{
			Timeout: lifecycle.DefaultTimeout,
		},
		logger: params.Logger,
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.register(ctx, params.Config)
		},
		OnStop: func(ctx context.Context) error {
			return client.deregister(ctx)
		},
	})

	return client
}

// register announces the service to the registry agent.
func (c *Client) register(ctx context.Context, cfg *config.Config) error {
	reg := registration{
		ID:      c.serviceID,
		Name:    cfg.Env.ServiceName,
		Address: cfg.Registry.Address,
		Port:    cfg.HTTP.Port,
	}

	interval := cfg.Registry.HealthInterval
	if interval <= 0 {
		interval = defaultHealthInterval
	}
	reg.Check.HTTP = fmt.Sprintf("http://%s:%d/health", cfg.Registry.Address, cfg.HTTP.Port)
	reg.Check.Interval = interval.String()
	reg.Check.DeregisterCriticalServiceAfter = (10 * interval).String()

	body, err := json.Marshal(reg)
	if err != nil {
		return errors.WithStack(err)
	}

	url := c.baseURL + "/v1/agent/service/register"
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach service registry")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("registry registration returned status %d", resp.StatusCode)
	}

	c.logger.Info("Registered with service registry",
		slog.String("serviceId", c.serviceID),
		slog.String("registry", c.baseURL))

	return nil
}

// deregister removes the service from the registry on shutdown.
func (c *Client) deregister(ctx context.Context) error {
	url := c.baseURL + "/v1/agent/service/deregister/" + c.serviceID
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Shutdown should not be blocked by an unreachable registry.
		c.logger.Warn("Failed to deregister from service registry", slog.Any("error", err))

		return nil
	}
	defer resp.Body.Close()

	c.logger.Info("Deregistered from service registry", slog.String("serviceId", c.serviceID))

	return nil
}
