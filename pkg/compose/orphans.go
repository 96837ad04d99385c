/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package compose

import (
	"sort"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
	"github.com/podcompose/podcompose/pkg/utils"
)

// FindOrphans returns the names of observed containers whose service label
// is absent or names a service no longer declared by the composition. A
// service removed from the compose file leaves its containers behind,
// still bearing the project label; this surfaces them without confusing
// them with current or scaled-down replicas.
func (c *Controller) FindOrphans() []model.ContainerName {
	declared := utils.NewSet(c.composition.ServiceNames()...)

	observedServices := utils.NewSet[string]()
	for _, container := range c.observed {
		if service, ok := container.Labels[api.ServiceLabel]; ok {
			observedServices.Add(service)
		}
	}
	undeclared := observedServices.Diff(declared)

	var orphans []model.ContainerName
	for name, container := range c.observed {
		service, ok := container.Labels[api.ServiceLabel]
		if !ok || undeclared.Has(service) {
			orphans = append(orphans, name)
		}
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i] < orphans[j] })
	return orphans
}
