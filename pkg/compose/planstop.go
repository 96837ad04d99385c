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
	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// PlanStop emits a Stop operation for every declared container currently
// observed as Running. Non-Running declared containers and non-declared
// containers are omitted.
func (c *Controller) PlanStop() []api.PlannedOperation {
	var plan []api.PlannedOperation
	for _, spec := range c.composition.Containers {
		observed, ok := c.observed[spec.Name]
		if ok && observed.Status == model.StatusRunning {
			plan = append(plan, api.PlannedOperation{Name: spec.Name, Op: api.OpStop})
		}
	}
	return plan
}
