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

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AuthzDecisionAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schoolvoice_authz_decision_amount",
	Help: "The total number of authorization decisions, partitioned by entity, action and outcome",
}, []string{"entity", "action", "outcome"})

var InvitationAcceptedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "schoolvoice_invitation_accepted_amount",
	Help: "The total number of invitations accepted",
})

var SchoolCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "schoolvoice_school_created_amount",
	Help: "The total number of schools created",
})

var SuperAdminActionAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "schoolvoice_super_admin_action_amount",
	Help: "The total number of platform super admin operations, partitioned by action",
}, []string{"action"})
