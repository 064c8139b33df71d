package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/watchearn/internal/cache"
	"github.com/GlebRadaev/watchearn/internal/ratelimit"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitWithoutErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}

func (s *ApplicationSuite) TestWaitReleasesResources() {
	limiter := ratelimit.PerMinute(1)
	s.app.limiters = []*ratelimit.Burst{limiter}
	s.app.cache = &cache.Redis{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.NoError(s.app.Wait(ctx, cancel))
	s.NotPanics(limiter.Stop)
}

func (s *ApplicationSuite) TestStartRejectsBrokenConfig() {
	s.T().Setenv("COOLDOWN_DURATION", "600")

	err := s.app.Start(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "can't load config")
	s.Nil(s.app.pool)
}
