// Copyright (C) 2025 School Voice
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"

	"github.com/schoolvoice/schoolvoice/accesscontrol"
	"github.com/schoolvoice/schoolvoice/cmd/schoolvoice/api"
	"github.com/schoolvoice/schoolvoice/controllers"
	"github.com/schoolvoice/schoolvoice/database"
	"github.com/schoolvoice/schoolvoice/database/repositories"
	"github.com/schoolvoice/schoolvoice/identity"
	"github.com/schoolvoice/schoolvoice/monitoring"
	"github.com/schoolvoice/schoolvoice/router"
	"github.com/schoolvoice/schoolvoice/services"
	"github.com/schoolvoice/schoolvoice/shared"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		// Catch panics
		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				// Wait for events to be send to server
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background())
	if err != nil {
		slog.Error("failed to set up tracing", "error", err)
		panic(err)
	}
	defer shutdownTracing(context.Background()) // nolint: errcheck

	pool := database.NewPgxConnPool(database.GetPoolConfigFromEnv())
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(func() shared.IdentityClient {
			ory := identity.GetOryAPIClient(os.Getenv("ORY_KRATOS_PUBLIC"))
			return identity.NewIdentityClient(ory)
		}),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.ServiceModule,
		controllers.ControllerModule,
		accesscontrol.AccessControlModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(sessionRouter router.SessionRouter) {}),
		fx.Invoke(func(schoolRouter router.SchoolRouter) {}),
		fx.Invoke(func(adminRouter router.AdminRouter) {}),
		fx.Invoke(func(srv api.Server) {}),
	).Run()
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		// Configures whether SDK should generate and attach stack traces to pure
		// capture message calls.
		AttachStacktrace: true,

		// If this flag is enabled, certain personally identifiable information (PII) is added by active integrations.
		// By default, no such data is sent.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
