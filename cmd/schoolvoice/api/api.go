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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/schoolvoice/schoolvoice/middlewares"
	"go.uber.org/fx"
)

// Server wraps the echo instance so routers can register their groups on it.
type Server struct {
	Echo      *echo.Echo
	StartedAt time.Time
}

func listenAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

// NewServer builds the echo server and binds its lifetime to the fx app.
// The listener is only started once every router had a chance to register
// its routes.
func NewServer(lc fx.Lifecycle) Server {
	e := middlewares.Server()
	srv := Server{
		Echo:      e,
		StartedAt: time.Now(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				return routes[i].Path < routes[j].Path
			})
			for _, route := range routes {
				if route.Method != "echo_route_not_found" {
					slog.Info(route.Path, "method", route.Method)
				}
			}

			go func() {
				if err := e.Start(listenAddr()); err != nil && err != http.ErrServerClosed {
					slog.Error("failed to start server", "err", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return srv
}
